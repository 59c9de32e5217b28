// Package generator writes step definition stubs for the steps of feature
// files that no definition matches.
package generator

import (
	"context"
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/mod/modfile"

	"github.com/denizgursoy/cacik-bdd/pkg/gherkin_parser"
	"github.com/denizgursoy/cacik-bdd/pkg/suite"
)

const (
	// DefaultOutput is the file snippets are written to.
	DefaultOutput = "cacik_steps.go"
)

// Collect parses every feature file under the directories and returns the
// snippets for their undefined steps. Files are read in walk order, so the
// first file mentioning a step decides its keyword.
func Collect(ctx context.Context, finder StepFinder, directories []string) (*Output, error) {
	logger := zerolog.Ctx(ctx)

	files, err := gherkin_parser.SearchFeatureFilesIn(directories)
	if err != nil {
		return nil, fmt.Errorf("cannot search feature files: %w", err)
	}

	output := &Output{Snippets: make([]*Snippet, 0)}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		undefined, err := undefinedIn(finder, path)
		if err != nil {
			return nil, err
		}
		logger.Debug().Str("file", path).Int("undefined", len(undefined)).Msg("parsed feature file")

		output.Add(undefined...)
	}

	logger.Info().Int("files", len(files)).Int("snippets", len(output.Snippets)).Msg("collected snippets")
	return output, nil
}

func undefinedIn(finder StepFinder, path string) ([]suite.UndefinedStep, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	document, err := gherkin_parser.ParseGherkinFile(file)
	if err != nil {
		return nil, fmt.Errorf("cannot parse %s: %w", path, err)
	}
	if document.Feature == nil {
		return nil, nil
	}

	undefined, err := finder.Undefined(document)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return undefined, nil
}

// DetectPackageName detects the Go package name for the given directory.
// It first tries to read the package clause from existing Go files, skipping
// the file being generated. If no Go files exist, it falls back to deriving
// the name from the directory path (or the module path for the module root).
func DetectPackageName(dir, generated string) (string, error) {
	fset := token.NewFileSet()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("cannot read directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") || name == generated {
			continue
		}

		f, parseErr := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.PackageClauseOnly)
		if parseErr != nil {
			continue
		}
		if f.Name != nil && f.Name.Name != "" {
			return strings.TrimSuffix(f.Name.Name, "_test"), nil
		}
	}

	return packageNameFromDir(dir)
}

// packageNameFromDir uses the last segment of the module path at the module
// root and the sanitized directory name elsewhere.
func packageNameFromDir(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	goModPath := filepath.Join(absDir, "go.mod")
	if data, readErr := os.ReadFile(goModPath); readErr == nil {
		modFile, parseErr := modfile.Parse(goModPath, data, nil)
		if parseErr == nil && modFile.Module != nil {
			if name := sanitizePackageName(filepath.Base(modFile.Module.Mod.Path)); name != "" {
				return name, nil
			}
		}
	}

	if name := sanitizePackageName(filepath.Base(absDir)); name != "" {
		return name, nil
	}

	return "", fmt.Errorf("cannot derive package name from directory %s", dir)
}

// sanitizePackageName lowercases raw, replaces hyphens and dots with
// underscores, drops other invalid characters and prefixes a leading digit
// with an underscore.
func sanitizePackageName(raw string) string {
	if raw == "" || raw == "." || raw == "/" {
		return ""
	}

	var b strings.Builder
	for i, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r - 'A' + 'a')
		case r == '-' || r == '.':
			if i == 0 {
				continue
			}
			b.WriteRune('_')
		}
	}

	name := b.String()
	if name == "" {
		return ""
	}
	if name[0] >= '0' && name[0] <= '9' {
		name = "_" + name
	}
	return name
}
