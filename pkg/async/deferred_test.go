package async

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDeferred(t *testing.T) {
	t.Run("settles only once", func(t *testing.T) {
		d := New()
		require.False(t, d.Settled())

		d.Resolve(1)
		d.Reject(errors.New("too late"))
		d.Resolve(2)

		value, err := d.Wait()
		require.NoError(t, err)
		require.Equal(t, 1, value)
		require.True(t, d.Settled())
	})

	t.Run("rejected carries the error", func(t *testing.T) {
		expectedErr := errors.New("boom")
		_, err := Rejected(expectedErr).Wait()
		require.ErrorIs(t, err, expectedErr)
	})

	t.Run("Go settles with the function result", func(t *testing.T) {
		value, err := Go(func() (any, error) { return "done", nil }).Wait()
		require.NoError(t, err)
		require.Equal(t, "done", value)
	})

	t.Run("Go turns panics into errors", func(t *testing.T) {
		_, err := Go(func() (any, error) { panic("bad step") }).Wait()
		require.Error(t, err)
		require.Contains(t, err.Error(), "bad step")
	})

	t.Run("Await returns when context is done", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := New().Await(ctx)
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("Then chains values", func(t *testing.T) {
		d := Resolved(2).Then(func(v any) (any, error) {
			return v.(int) * 10, nil
		})
		value, err := d.Wait()
		require.NoError(t, err)
		require.Equal(t, 20, value)
	})

	t.Run("Then skips on error", func(t *testing.T) {
		called := false
		expectedErr := errors.New("first failed")
		_, err := Rejected(expectedErr).Then(func(v any) (any, error) {
			called = true
			return v, nil
		}).Wait()
		require.ErrorIs(t, err, expectedErr)
		require.False(t, called)
	})
}
