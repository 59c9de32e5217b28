// Package steps holds Given/When/Then step definitions and resolves step
// text to the definition that handles it.
package steps

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/denizgursoy/cacik-bdd/internal/invoke"
	"github.com/denizgursoy/cacik-bdd/pkg/pattern"
)

// Kind is the keyword a definition was registered with. Matching ignores it.
type Kind int

const (
	KindGiven Kind = iota
	KindWhen
	KindThen
)

func (k Kind) String() string {
	switch k {
	case KindGiven:
		return "Given"
	case KindWhen:
		return "When"
	case KindThen:
		return "Then"
	default:
		return "Step"
	}
}

var (
	// ErrNoMatch is wrapped by NoMatchError.
	ErrNoMatch = errors.New("no matching step definition")

	// ErrPending is returned by step bodies that are not implemented yet.
	ErrPending = errors.New("step is pending")
)

// NoMatchError is returned when no definition matches a step text.
type NoMatchError struct {
	Text string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no matching step definition found for: %s", e.Text)
}

func (e *NoMatchError) Unwrap() error {
	return ErrNoMatch
}

// Definition is a registered step. It is immutable once registered.
type Definition struct {
	Kind    Kind
	Pattern *pattern.Pattern
	Body    any
}

// Registry is an ordered list of step definitions. Earlier registrations
// take precedence over later ones that match the same text.
type Registry struct {
	mu          sync.RWMutex
	definitions []*Definition
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		definitions: make([]*Definition, 0),
	}
}

// Register compiles the pattern and appends a definition. The pattern is a
// string phrase or a *regexp.Regexp; body must be a function.
func (r *Registry) Register(kind Kind, source any, body any) error {
	compiled, err := pattern.Compile(source)
	if err != nil {
		return err
	}

	if err := invoke.Validate(body); err != nil {
		return fmt.Errorf("step %q: %w", compiled.Source(), err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.definitions = append(r.definitions, &Definition{
		Kind:    kind,
		Pattern: compiled,
		Body:    body,
	})
	return nil
}

func (r *Registry) Given(source any, body any) error {
	return r.Register(KindGiven, source, body)
}

func (r *Registry) When(source any, body any) error {
	return r.Register(KindWhen, source, body)
}

func (r *Registry) Then(source any, body any) error {
	return r.Register(KindThen, source, body)
}

// Clear removes every definition.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.definitions = make([]*Definition, 0)
}

// Len returns the number of definitions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.definitions)
}

// Definitions returns the definitions in registration order.
func (r *Registry) Definitions() []*Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	definitions := make([]*Definition, len(r.definitions))
	copy(definitions, r.definitions)
	return definitions
}

// Match finds the first definition whose pattern matches the whole text.
func (r *Registry) Match(text string) (*Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, definition := range r.definitions {
		params, ok := definition.Pattern.Match(text)
		if !ok {
			continue
		}
		return &Match{
			Text:       text,
			Params:     params,
			Definition: definition,
		}, nil
	}

	return nil, &NoMatchError{Text: text}
}

// Match is a definition bound to the parameters extracted from one step text.
type Match struct {
	Text       string
	Params     []any
	Definition *Definition
}

// Invoke runs the step body. Without args it receives Params. A single
// []any argument is used as the parameter list, so Invoke(ctx, m.Params)
// and Invoke(ctx, m.Params...) behave the same.
func (m *Match) Invoke(ctx context.Context, args ...any) (any, error) {
	res, err := m.call(ctx, args)
	return res.Value, err
}

// InvokeContext is like Invoke but also returns the context the body
// returned, or ctx when it returned none.
func (m *Match) InvokeContext(ctx context.Context, args ...any) (context.Context, any, error) {
	res, err := m.call(ctx, args)
	if res.Context != nil {
		ctx = res.Context
	}
	return ctx, res.Value, err
}

func (m *Match) call(ctx context.Context, args []any) (invoke.Result, error) {
	params := m.Params
	switch {
	case len(args) == 1:
		if list, ok := args[0].([]any); ok {
			params = list
		} else {
			params = args
		}
	case len(args) > 1:
		params = args
	}
	return invoke.Call(ctx, m.Definition.Body, params)
}

// WithArgument returns a copy of the match with arg appended to Params.
// Data tables and doc strings attached to a step are passed this way.
func (m *Match) WithArgument(arg any) *Match {
	params := make([]any, len(m.Params), len(m.Params)+1)
	copy(params, m.Params)
	return &Match{
		Text:       m.Text,
		Params:     append(params, arg),
		Definition: m.Definition,
	}
}

// MatchLocs returns the capture offsets of Text, for reports.
func (m *Match) MatchLocs() []int {
	return m.Definition.Pattern.MatchIndex(m.Text)
}
