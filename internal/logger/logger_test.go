package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("writes json at the configured level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log, err := New(Options{Level: "DEBUG", Writer: buf})
		require.NoError(t, err)

		log.Debug().Str("file", "checkout.feature").Msg("parsed feature file")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		require.Equal(t, "parsed feature file", entry["message"])
		require.Equal(t, "checkout.feature", entry["file"])
		require.Equal(t, "debug", entry["level"])
		require.Contains(t, entry, "time")
	})

	t.Run("defaults to info", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log, err := New(Options{Writer: buf})
		require.NoError(t, err)

		log.Debug().Msg("this should not appear")
		require.Empty(t, strings.TrimSpace(buf.String()))
	})

	t.Run("writes human readable lines", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log, err := New(Options{HumanReadable: true, Writer: buf})
		require.NoError(t, err)

		log.Info().Msg("collected snippets")
		require.Contains(t, buf.String(), "collected snippets")
		require.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
	})

	t.Run("rejects unknown levels", func(t *testing.T) {
		_, err := New(Options{Level: "loud"})
		require.Error(t, err)
	})
}
