package container

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContainer(t *testing.T) {
	t.Run("returns helper by name", func(t *testing.T) {
		c := New()
		c.Create(map[string]any{"simple": "helper"})

		h, err := c.Helper("simple")
		require.NoError(t, err)
		require.Equal(t, "helper", h)
	})

	t.Run("returns error for unknown helper", func(t *testing.T) {
		_, err := New().Helper("missing")
		require.ErrorIs(t, err, ErrHelperNotFound)
		require.Contains(t, err.Error(), "missing")
	})

	t.Run("append keeps registration order", func(t *testing.T) {
		c := New()
		c.Create(map[string]any{"web": 1})
		c.Append(map[string]any{"rest": 2, "db": 3})
		c.Append(map[string]any{"web": 4})

		require.Equal(t, []string{"web", "db", "rest"}, c.Helpers())

		h, err := c.Helper("web")
		require.NoError(t, err)
		require.Equal(t, 4, h)

		name, h, err := c.Default()
		require.NoError(t, err)
		require.Equal(t, "web", name)
		require.Equal(t, 4, h)
	})

	t.Run("clear removes everything", func(t *testing.T) {
		c := New()
		c.Create(map[string]any{"simple": 1})
		c.Clear()

		require.Empty(t, c.Helpers())
		_, _, err := c.Default()
		require.ErrorIs(t, err, ErrHelperNotFound)
	})
}
