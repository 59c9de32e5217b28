// Package suite compiles feature text into runnable tests whose steps are
// resolved against a step registry before anything runs.
//
// Scenario outlines are recognized but not expanded: they compile to
// pending tests that run no steps.
package suite

import (
	"errors"
	"fmt"
	"io"
	"strings"

	messages "github.com/cucumber/messages/go/v21"
	tagexpressions "github.com/cucumber/tag-expressions/go/v6"
	"github.com/rs/zerolog"

	"github.com/denizgursoy/cacik-bdd/pkg/async"
	"github.com/denizgursoy/cacik-bdd/pkg/cacik"
	"github.com/denizgursoy/cacik-bdd/pkg/gherkin_parser"
	"github.com/denizgursoy/cacik-bdd/pkg/steps"
)

// ErrNoFeature is returned for documents without a Feature.
var ErrNoFeature = errors.New("document has no feature")

// Recorder is the part of recorder.Recorder tests use.
type Recorder interface {
	IsRunning() bool
	Checkpoint()
	Promise() *async.Deferred
	Log(line string)
}

// Compiler turns gherkin documents into suites. Compiling never changes
// the registry.
type Compiler struct {
	registry  *steps.Registry
	recorder  Recorder
	hooks     []*cacik.Hooks
	reporters []cacik.Reporter
	tags      tagexpressions.Evaluatable
	logger    zerolog.Logger
}

// NewCompiler creates a Compiler.
func NewCompiler(opts ...Option) (*Compiler, error) {
	c := &Compiler{
		registry: steps.Default,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Run compiles feature text with a Compiler built from opts.
func Run(text string, opts ...Option) (*Suite, error) {
	c, err := NewCompiler(opts...)
	if err != nil {
		return nil, err
	}
	return c.Compile(text)
}

// Compile compiles feature source text.
func (c *Compiler) Compile(text string) (*Suite, error) {
	return c.CompileReader(strings.NewReader(text))
}

// CompileReader compiles feature source. Parse errors are returned unchanged.
func (c *Compiler) CompileReader(reader io.Reader) (*Suite, error) {
	document, err := gherkin_parser.ParseGherkinFile(reader)
	if err != nil {
		return nil, err
	}
	return c.CompileDocument(document)
}

// CompileDocument compiles a parsed document. Every step is resolved now;
// the first step without a definition fails the whole compile.
func (c *Compiler) CompileDocument(document *messages.GherkinDocument) (*Suite, error) {
	if document == nil || document.Feature == nil {
		return nil, ErrNoFeature
	}

	suite := &Suite{
		Title:     document.Feature.Name,
		hooks:     cacik.NewHookExecutor(c.hooks...),
		reporters: c.reporters,
		logger:    c.logger,
	}

	err := walk(document.Feature, func(source scenarioSource) error {
		if !c.selected(source) {
			c.logger.Debug().Str("scenario", source.scenario.Name).Msg("skipping scenario (tags)")
			return nil
		}
		test, err := c.compileScenario(source, suite.hooks)
		if err != nil {
			return err
		}
		suite.Tests = append(suite.Tests, test)
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("feature", suite.Title).
		Int("tests", len(suite.Tests)).
		Msg("compiled suite")

	return suite, nil
}

// UndefinedStep is a step no definition matches.
type UndefinedStep struct {
	Kind    steps.Kind
	Keyword string
	Text    string
}

// Undefined lists the steps of the selected scenarios that have no
// definition, without duplicates. Outline steps are not checked.
func (c *Compiler) Undefined(document *messages.GherkinDocument) ([]UndefinedStep, error) {
	if document == nil || document.Feature == nil {
		return nil, ErrNoFeature
	}

	seen := make(map[string]bool)
	undefined := make([]UndefinedStep, 0)

	err := walk(document.Feature, func(source scenarioSource) error {
		if !c.selected(source) || len(source.scenario.Examples) > 0 {
			return nil
		}
		kind := steps.KindGiven
		for _, step := range source.steps() {
			kind = keywordKind(step.KeywordType, kind)
			if _, err := c.registry.Match(step.Text); err == nil || seen[step.Text] {
				continue
			}
			seen[step.Text] = true
			undefined = append(undefined, UndefinedStep{Kind: kind, Keyword: step.Keyword, Text: step.Text})
		}
		return nil
	})
	return undefined, err
}

func keywordKind(keywordType messages.StepKeywordType, previous steps.Kind) steps.Kind {
	switch keywordType {
	case messages.StepKeywordType_CONTEXT:
		return steps.KindGiven
	case messages.StepKeywordType_ACTION:
		return steps.KindWhen
	case messages.StepKeywordType_OUTCOME:
		return steps.KindThen
	default:
		return previous
	}
}

func (c *Compiler) selected(source scenarioSource) bool {
	return c.tags == nil || c.tags.Evaluate(source.tags())
}

func (c *Compiler) compileScenario(source scenarioSource, hooks *cacik.HookExecutor) (*Test, error) {
	metadata := cacik.ScenarioFromMessage(source.scenario, source.inheritedTags)
	metadata.FeatureName = source.feature.Name
	metadata.RuleName = source.ruleName

	title := metadata.Name
	if title == "" {
		title = source.feature.Name
	}

	test := newTest(title, metadata, c.recorder, hooks, c.logger)
	if metadata.Outline {
		test.Pending = true
		return test, nil
	}

	for _, background := range source.backgrounds {
		for _, step := range background.Steps {
			resolved, err := c.resolve(step, true)
			if err != nil {
				return nil, fmt.Errorf("background of %q: %w", title, err)
			}
			test.Steps = append(test.Steps, resolved)
		}
	}
	for _, step := range source.scenario.Steps {
		resolved, err := c.resolve(step, false)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", title, err)
		}
		test.Steps = append(test.Steps, resolved)
	}

	return test, nil
}

func (c *Compiler) resolve(step *messages.Step, background bool) (*Step, error) {
	match, err := c.registry.Match(step.Text)
	if err != nil {
		return nil, err
	}

	if step.DataTable != nil {
		match = match.WithArgument(cacik.NewTableFromDataTable(step.DataTable))
	}
	if step.DocString != nil {
		match = match.WithArgument(step.DocString.Content)
	}

	metadata := cacik.StepFromMessage(step)
	return &Step{
		Keyword:    metadata.Keyword,
		Text:       metadata.Text,
		Line:       metadata.Line,
		Background: background,
		Match:      match,
	}, nil
}

// scenarioSource is a scenario with the context it inherits.
type scenarioSource struct {
	feature       *messages.Feature
	ruleName      string
	backgrounds   []*messages.Background
	inheritedTags []string
	scenario      *messages.Scenario
}

func (s scenarioSource) tags() []string {
	tags := append([]string{}, s.inheritedTags...)
	return append(tags, cacik.TagNames(s.scenario.Tags)...)
}

func (s scenarioSource) steps() []*messages.Step {
	var all []*messages.Step
	for _, background := range s.backgrounds {
		all = append(all, background.Steps...)
	}
	return append(all, s.scenario.Steps...)
}

// walk visits every scenario of the feature, including the ones in rules,
// in document order. A background applies to the scenarios that follow it.
func walk(feature *messages.Feature, visit func(scenarioSource) error) error {
	featureTags := cacik.TagNames(feature.Tags)
	var featureBackgrounds []*messages.Background

	for _, child := range feature.Children {
		switch {
		case child.Background != nil:
			featureBackgrounds = []*messages.Background{child.Background}

		case child.Rule != nil:
			rule := child.Rule
			ruleTags := append(append([]string{}, featureTags...), cacik.TagNames(rule.Tags)...)
			backgrounds := featureBackgrounds

			for _, ruleChild := range rule.Children {
				if ruleChild.Background != nil {
					backgrounds = append(append([]*messages.Background{}, featureBackgrounds...), ruleChild.Background)
					continue
				}
				if ruleChild.Scenario == nil {
					continue
				}
				err := visit(scenarioSource{
					feature:       feature,
					ruleName:      rule.Name,
					backgrounds:   backgrounds,
					inheritedTags: ruleTags,
					scenario:      ruleChild.Scenario,
				})
				if err != nil {
					return err
				}
			}

		case child.Scenario != nil:
			err := visit(scenarioSource{
				feature:       feature,
				backgrounds:   featureBackgrounds,
				inheritedTags: featureTags,
				scenario:      child.Scenario,
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}
