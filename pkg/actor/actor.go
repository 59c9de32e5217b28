// Package actor lets step bodies perform named actions through helpers.
package actor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/denizgursoy/cacik-bdd/internal/invoke"
	"github.com/denizgursoy/cacik-bdd/pkg/async"
)

// ErrUnknownAction is returned when the helper cannot perform an action.
var ErrUnknownAction = errors.New("unknown action")

// Option configures an Actor.
type Option func(*Actor)

// WithHelper makes the actor use the named helper instead of the default one.
func WithHelper(name string) Option {
	return func(a *Actor) {
		a.helper = name
	}
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(a *Actor) {
		a.logger = logger
	}
}

// Actor forwards actions to a helper. Every action is scheduled, so it is
// recorded in call order and runs after the actions issued before it.
type Actor struct {
	helpers   HelperContainer
	scheduler Scheduler
	helper    string
	logger    zerolog.Logger
}

// New creates an Actor.
func New(helpers HelperContainer, scheduler Scheduler, opts ...Option) *Actor {
	a := &Actor{
		helpers:   helpers,
		scheduler: scheduler,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Do schedules action with args and returns its deferred result. The trace
// line is `do: "action", arg1, ...`. The helper is resolved when the action
// runs, not when it is scheduled.
func (a *Actor) Do(action string, args ...any) *async.Deferred {
	line := "do: " + FormatArgs(append([]any{action}, args...)...)

	return a.scheduler.Add(line, func(ctx context.Context) (any, error) {
		name, helper, err := a.resolve()
		if err != nil {
			return nil, err
		}

		a.logger.Debug().
			Str("helper", name).
			Str("action", action).
			Int("args", len(args)).
			Msg("dispatching action")

		return dispatch(ctx, name, helper, action, args)
	})
}

func (a *Actor) resolve() (string, any, error) {
	if a.helper == "" {
		return a.helpers.Default()
	}
	helper, err := a.helpers.Helper(a.helper)
	return a.helper, helper, err
}

func dispatch(ctx context.Context, name string, helper any, action string, args []any) (any, error) {
	if performer, ok := helper.(Performer); ok {
		value, err := performer.Perform(ctx, action, args...)
		if err != nil {
			return nil, err
		}
		if deferred, ok := value.(*async.Deferred); ok && deferred != nil {
			return deferred.Await(ctx)
		}
		return value, nil
	}

	method := reflect.ValueOf(helper).MethodByName(MethodName(action))
	if !method.IsValid() {
		return nil, fmt.Errorf("%w: helper %s cannot %q", ErrUnknownAction, name, action)
	}

	res, err := invoke.Call(ctx, method.Interface(), args)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", name, action, err)
	}
	return res.Value, nil
}

// MethodName turns an action name into the helper method implementing it,
// e.g. "see element" becomes "SeeElement".
func MethodName(action string) string {
	words := strings.FieldsFunc(action, func(r rune) bool {
		return unicode.IsSpace(r) || r == '_' || r == '-'
	})

	var b strings.Builder
	for _, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	return b.String()
}

// FormatArgs renders values as JSON joined by ", ".
func FormatArgs(values ...any) string {
	parts := make([]string, 0, len(values))
	for _, value := range values {
		parts = append(parts, formatValue(value))
	}
	return strings.Join(parts, ", ")
}

func formatValue(value any) string {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return fmt.Sprintf("%v", value)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
