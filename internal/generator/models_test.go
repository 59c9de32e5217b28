package generator

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/denizgursoy/cacik-bdd/pkg/pattern"
	"github.com/denizgursoy/cacik-bdd/pkg/steps"
	"github.com/denizgursoy/cacik-bdd/pkg/suite"
)

func TestNewSnippet(t *testing.T) {
	tests := []struct {
		text    string
		pattern string
		params  []pattern.Kind
	}{
		{"I am a bird", "I am a bird", []pattern.Kind{}},
		{"I have product with 600 price", "I have product with {int} price", []pattern.Kind{pattern.Int}},
		{"the temperature is -3.5 degrees", "the temperature is {float} degrees", []pattern.Kind{pattern.Float}},
		{"I have $500 in my pocket", "I have ${int} in my pocket", []pattern.Kind{pattern.MoneyInt}},
		{"I have also $500.30 in my pocket", "I have also ${float} in my pocket", []pattern.Kind{pattern.MoneyFloat}},
		{`I say "hello world" to 2 people`, "I say {string} to {int} people", []pattern.Kind{pattern.String, pattern.Int}},
		{"I have 10.", "I have {int}.", []pattern.Kind{pattern.Int}},
		{"item2 is in stock", "item2 is in stock", []pattern.Kind{}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			snippet := NewSnippet(suite.UndefinedStep{Kind: steps.KindGiven, Text: tt.text})
			require.Equal(t, tt.pattern, snippet.Pattern)
			require.Equal(t, tt.params, snippet.Params)

			compiled, err := pattern.Compile(snippet.Pattern)
			require.NoError(t, err)
			_, ok := compiled.Match(tt.text)
			require.True(t, ok, "snippet pattern should match the step it came from")
		})
	}
}

func TestOutput_Generate(t *testing.T) {
	t.Run("should generate a compilable file with pending steps", func(t *testing.T) {
		output := &Output{PackageName: "shop"}
		output.Add(
			suite.UndefinedStep{Kind: steps.KindGiven, Text: "I have $500 in my pocket"},
			suite.UndefinedStep{Kind: steps.KindWhen, Text: `I buy "apples" for 2.5`},
			suite.UndefinedStep{Kind: steps.KindThen, Text: "I am happy"},
			suite.UndefinedStep{Kind: steps.KindThen, Text: "I have $20 in my pocket"},
		)
		require.Len(t, output.Snippets, 3)

		builder := &strings.Builder{}
		require.NoError(t, output.Generate(builder))
		generated := builder.String()

		_, err := parser.ParseFile(token.NewFileSet(), DefaultOutput, generated, parser.AllErrors)
		require.NoError(t, err)

		require.Contains(t, generated, "package shop")
		require.Contains(t, generated, `"github.com/denizgursoy/cacik-bdd/pkg/steps"`)
		require.Contains(t, generated, "func init() {")
		require.Contains(t, generated, `steps.Given("I have ${int} in my pocket", func(arg1 int) error {`)
		require.Contains(t, generated, `steps.When("I buy {string} for {float}", func(arg1 string, arg2 float64) error {`)
		require.Contains(t, generated, `steps.Then("I am happy", func() error {`)
		require.Equal(t, 3, strings.Count(generated, "return steps.ErrPending"))
	})

	t.Run("should default to package main", func(t *testing.T) {
		builder := &strings.Builder{}
		require.NoError(t, (&Output{}).Generate(builder))
		require.Contains(t, builder.String(), "package main")
	})
}
