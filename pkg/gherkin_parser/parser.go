package gherkin_parser

import (
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	gherkin "github.com/cucumber/gherkin/go/v26"
	messages "github.com/cucumber/messages/go/v21"
	"github.com/google/uuid"
)

const (
	FeatureExtension = ".feature"
)

// SearchFeatureFilesIn walks the directories and returns every feature
// file path in lexical order per directory.
func SearchFeatureFilesIn(directories []string) ([]string, error) {
	featureFiles := make([]string, 0)

	for _, directory := range directories {
		err := filepath.WalkDir(directory, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !entry.IsDir() && strings.HasSuffix(entry.Name(), FeatureExtension) {
				featureFiles = append(featureFiles, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return featureFiles, nil
}

// ParseGherkinFile parses a feature document. Node ids are random UUIDs.
func ParseGherkinFile(reader io.Reader) (*messages.GherkinDocument, error) {
	return gherkin.ParseGherkinDocument(reader, uuid.NewString)
}

// ParseGherkinText parses feature source text.
func ParseGherkinText(text string) (*messages.GherkinDocument, error) {
	return ParseGherkinFile(strings.NewReader(text))
}
