package invoke

import (
	"context"
	"errors"
	"testing"

	"github.com/denizgursoy/cacik-bdd/pkg/async"
	"github.com/stretchr/testify/require"
)

type Priority int

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(func() {}))
	require.ErrorContains(t, Validate("not a function"), "must be a function")
	require.ErrorContains(t, Validate(nil), "must be a function")
}

func TestCall(t *testing.T) {
	ctx := context.Background()

	t.Run("converts raw strings to declared types", func(t *testing.T) {
		var (
			count   int
			price   float64
			enabled bool
			level   Priority
		)
		_, err := Call(ctx, func(c int, p float64, e bool, l Priority) {
			count, price, enabled, level = c, p, e, l
		}, []any{"5", "19.99", "yes", "3"})
		require.NoError(t, err)
		require.Equal(t, 5, count)
		require.Equal(t, 19.99, price)
		require.True(t, enabled)
		require.Equal(t, Priority(3), level)
	})

	t.Run("converts between numeric types", func(t *testing.T) {
		var total float64
		_, err := Call(ctx, func(v float64) { total = v }, []any{600})
		require.NoError(t, err)
		require.Equal(t, 600.0, total)
	})

	t.Run("passes all args to a single []any parameter", func(t *testing.T) {
		res, err := Call(ctx, func(params []any) int {
			return params[0].(int) + params[1].(int)
		}, []any{2, 2})
		require.NoError(t, err)
		require.Equal(t, 4, res.Value)
	})

	t.Run("injects context", func(t *testing.T) {
		type ctxKey string
		parent := context.WithValue(ctx, ctxKey("k"), "v")

		var seen any
		_, err := Call(parent, func(c context.Context, name string) {
			seen = c.Value(ctxKey("k"))
		}, []any{"bird"})
		require.NoError(t, err)
		require.Equal(t, "v", seen)
	})

	t.Run("ignores extra args", func(t *testing.T) {
		res, err := Call(ctx, func() int { return 3 }, []any{"ocean"})
		require.NoError(t, err)
		require.Equal(t, 3, res.Value)
	})

	t.Run("fills variadic parameters", func(t *testing.T) {
		res, err := Call(ctx, func(action string, args ...any) int {
			return len(args)
		}, []any{"add", 1, 2})
		require.NoError(t, err)
		require.Equal(t, 2, res.Value)
	})

	t.Run("returns error when arguments are missing", func(t *testing.T) {
		_, err := Call(ctx, func(a, b int) {}, []any{1})
		require.ErrorContains(t, err, "not enough arguments")
	})

	t.Run("returns error for type conversion failure", func(t *testing.T) {
		_, err := Call(ctx, func(count int) {}, []any{"many"})
		require.ErrorContains(t, err, "failed to convert")
	})

	t.Run("returns the function error", func(t *testing.T) {
		expectedErr := errors.New("step failed")
		_, err := Call(ctx, func() error { return expectedErr }, nil)
		require.ErrorIs(t, err, expectedErr)
	})

	t.Run("returns the new context", func(t *testing.T) {
		type ctxKey string
		res, err := Call(ctx, func(c context.Context) (context.Context, error) {
			return context.WithValue(c, ctxKey("k"), 42), nil
		}, nil)
		require.NoError(t, err)
		require.Equal(t, 42, res.Context.Value(ctxKey("k")))
	})

	t.Run("awaits deferred results", func(t *testing.T) {
		res, err := Call(ctx, func() *async.Deferred {
			return async.Go(func() (any, error) { return "settled", nil })
		}, nil)
		require.NoError(t, err)
		require.Equal(t, "settled", res.Value)
	})

	t.Run("returns rejected deferred as error", func(t *testing.T) {
		expectedErr := errors.New("rejected")
		_, err := Call(ctx, func() any { return async.Rejected(expectedErr) }, nil)
		require.ErrorIs(t, err, expectedErr)
	})

	t.Run("recovers panics", func(t *testing.T) {
		_, err := Call(ctx, func() { panic("assertion failed") }, nil)
		require.ErrorContains(t, err, "assertion failed")
	})
}
