package suite

import (
	"fmt"

	tagexpressions "github.com/cucumber/tag-expressions/go/v6"
	"github.com/rs/zerolog"

	"github.com/denizgursoy/cacik-bdd/pkg/cacik"
	"github.com/denizgursoy/cacik-bdd/pkg/steps"
)

// Option configures a Compiler.
type Option func(*Compiler) error

// WithRegistry sets the step registry. Defaults to steps.Default.
func WithRegistry(registry *steps.Registry) Option {
	return func(c *Compiler) error {
		c.registry = registry
		return nil
	}
}

// WithRecorder makes tests drain the recorder after every step and write
// their lifecycle markers to it.
func WithRecorder(rec Recorder) Option {
	return func(c *Compiler) error {
		c.recorder = rec
		return nil
	}
}

// WithHooks adds lifecycle hooks to the compiled tests.
func WithHooks(hooks ...*cacik.Hooks) Option {
	return func(c *Compiler) error {
		c.hooks = append(c.hooks, hooks...)
		return nil
	}
}

// WithReporter adds a reporter that receives the result of every Suite.Run.
func WithReporter(reporter cacik.Reporter) Option {
	return func(c *Compiler) error {
		c.reporters = append(c.reporters, reporter)
		return nil
	}
}

// WithTags keeps only scenarios whose tags satisfy the expression,
// e.g. "@smoke and not @slow".
func WithTags(expression string) Option {
	return func(c *Compiler) error {
		if expression == "" {
			c.tags = nil
			return nil
		}
		evaluator, err := parseTags(expression)
		if err != nil {
			return err
		}
		c.tags = evaluator
		return nil
	}
}

// parseTags turns the parser's panics on dangling operators into errors.
func parseTags(expression string) (evaluator tagexpressions.Evaluatable, err error) {
	defer func() {
		if r := recover(); r != nil {
			evaluator = nil
			err = fmt.Errorf("invalid tag expression %q: %v", expression, r)
		}
	}()

	evaluator, err = tagexpressions.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid tag expression %q: %w", expression, err)
	}
	return evaluator, nil
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Compiler) error {
		c.logger = logger
		return nil
	}
}
