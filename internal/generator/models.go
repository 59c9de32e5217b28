package generator

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/denizgursoy/cacik-bdd/pkg/pattern"
	"github.com/denizgursoy/cacik-bdd/pkg/steps"
	"github.com/denizgursoy/cacik-bdd/pkg/suite"
)

const stepsPackage = "github.com/denizgursoy/cacik-bdd/pkg/steps"

var (
	tokenRegex  = regexp.MustCompile(`"[^"]*"|\S+`)
	numberRegex = regexp.MustCompile(`^(\$?)([-+]?(?:\d*\.\d+|\d+))([,.;:!?]*)$`)
)

type (
	// Snippet is a step definition stub for an undefined step.
	Snippet struct {
		Kind    steps.Kind
		Pattern string
		Params  []pattern.Kind
	}

	Output struct {
		Snippets    []*Snippet
		PackageName string // Short package name; if empty, defaults to "main"
	}
)

// NewSnippet derives a pattern from the step text. Quoted text becomes
// {string}, numbers become {int} or {float} and $-amounts ${int} or ${float}.
func NewSnippet(step suite.UndefinedStep) *Snippet {
	snippet := &Snippet{Kind: step.Kind, Params: make([]pattern.Kind, 0)}

	var b strings.Builder
	last := 0
	for _, loc := range tokenRegex.FindAllStringIndex(step.Text, -1) {
		b.WriteString(step.Text[last:loc[0]])
		last = loc[1]

		token := step.Text[loc[0]:loc[1]]
		switch {
		case len(token) >= 2 && strings.HasPrefix(token, `"`) && strings.HasSuffix(token, `"`):
			b.WriteString("{string}")
			snippet.Params = append(snippet.Params, pattern.String)

		case numberRegex.MatchString(token):
			parts := numberRegex.FindStringSubmatch(token)
			money, number, trailing := parts[1] != "", parts[2], parts[3]

			decimal := strings.Contains(number, ".")
			var kind pattern.Kind
			switch {
			case money && decimal:
				kind = pattern.MoneyFloat
			case money:
				kind = pattern.MoneyInt
			case decimal:
				kind = pattern.Float
			default:
				kind = pattern.Int
			}
			b.WriteString(placeholder(kind))
			b.WriteString(trailing)
			snippet.Params = append(snippet.Params, kind)

		default:
			b.WriteString(token)
		}
	}
	b.WriteString(step.Text[last:])

	snippet.Pattern = b.String()
	return snippet
}

func placeholder(kind pattern.Kind) string {
	switch kind {
	case pattern.MoneyInt:
		return "${int}"
	case pattern.MoneyFloat:
		return "${float}"
	default:
		return "{" + kind.String() + "}"
	}
}

func paramType(kind pattern.Kind) *jen.Statement {
	switch kind {
	case pattern.Int, pattern.MoneyInt:
		return jen.Int()
	case pattern.Float, pattern.MoneyFloat:
		return jen.Float64()
	default:
		return jen.String()
	}
}

// Add appends snippets for the steps, skipping patterns already present.
func (o *Output) Add(undefined ...suite.UndefinedStep) {
	seen := make(map[string]bool, len(o.Snippets))
	for _, snippet := range o.Snippets {
		seen[snippet.Pattern] = true
	}

	for _, step := range undefined {
		snippet := NewSnippet(step)
		if seen[snippet.Pattern] {
			continue
		}
		seen[snippet.Pattern] = true
		o.Snippets = append(o.Snippets, snippet)
	}
}

// Generate writes a Go file registering every snippet from an init function.
// Each body returns steps.ErrPending until it is implemented.
func (o *Output) Generate(writer io.Writer) error {
	pkgName := o.PackageName
	if pkgName == "" {
		pkgName = "main"
	}
	file := jen.NewFile(pkgName)
	file.HeaderComment("Step definitions for undefined steps. Replace the pending bodies.")

	statements := make([]jen.Code, 0, len(o.Snippets))
	for _, snippet := range o.Snippets {
		params := make([]jen.Code, 0, len(snippet.Params))
		for i, kind := range snippet.Params {
			params = append(params, jen.Id(fmt.Sprintf("arg%d", i+1)).Add(paramType(kind)))
		}

		statements = append(statements,
			jen.Qual(stepsPackage, snippet.Kind.String()).Call(
				jen.Lit(snippet.Pattern),
				jen.Func().Params(params...).Error().Block(
					jen.Return(jen.Qual(stepsPackage, "ErrPending")),
				),
			),
		)
	}

	file.Func().Id("init").Params().Block(statements...)

	_, err := writer.Write([]byte(file.GoString()))

	return err
}
