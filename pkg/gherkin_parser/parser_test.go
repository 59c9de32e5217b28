package gherkin_parser

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseGherkinFile(t *testing.T) {
	t.Run("should return feature", func(t *testing.T) {
		file, err := os.Open("testdata/checkout.feature")
		require.NoError(t, err)
		defer file.Close()

		document, err := ParseGherkinFile(file)
		require.NoError(t, err)
		require.Equal(t, "checkout process", document.Feature.Name)
		require.Len(t, document.Feature.Children, 1)

		steps := document.Feature.Children[0].Scenario.Steps
		require.Len(t, steps, 3)
		require.Equal(t, "I have product with 600 price", steps[0].Text)
		require.NotEmpty(t, steps[0].Id)
		require.NotEqual(t, steps[0].Id, steps[1].Id)
	})

	t.Run("should return error for invalid gherkin", func(t *testing.T) {
		_, err := ParseGherkinText("Feature: broken\n  Scenario: a\n    Given a\n\n  @dangling\n")
		require.Error(t, err)
	})

	t.Run("empty text has no feature", func(t *testing.T) {
		document, err := ParseGherkinText("")
		require.NoError(t, err)
		require.Nil(t, document.Feature)
	})
}

func TestSearchFeatureFilesIn(t *testing.T) {
	t.Run("should return all feature files in a directory", func(t *testing.T) {
		expectedFiles := []string{
			"testdata/checkout.feature",
			"testdata/nested/pocket.feature",
		}

		actualFiles, err := SearchFeatureFilesIn([]string{"testdata"})

		require.NoError(t, err)
		require.Equal(t, expectedFiles, actualFiles)
	})

	t.Run("should return error for missing directory", func(t *testing.T) {
		_, err := SearchFeatureFilesIn([]string{"testdata/missing"})
		require.Error(t, err)
	})
}
