package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/denizgursoy/cacik-bdd/internal/generator"
	"github.com/denizgursoy/cacik-bdd/internal/logger"
	"github.com/denizgursoy/cacik-bdd/pkg/steps"
	"github.com/denizgursoy/cacik-bdd/pkg/suite"
)

const stdoutOutput = "-"

type snippetsOptions struct {
	Directories []string
	Output      string
	PackageName string
	Tags        string
	LogLevel    string
	Human       bool
}

func newSnippetsCmd(root *rootFlags) *cobra.Command {
	opts := snippetsOptions{}

	cmd := &cobra.Command{
		Use:   "snippets [directories...]",
		Short: "Write step definition stubs for the steps of .feature files",
		Long: "Searches the directories (the working directory by default) for .feature files " +
			"and writes a Go file registering a pending step definition for every distinct step.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Directories = args
			if len(opts.Directories) == 0 {
				opts.Directories = []string{"."}
			}
			opts.LogLevel = root.logLevel
			opts.Human = root.human

			return runSnippets(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "out", "o", generator.DefaultOutput, `File to write, "-" for stdout`)
	cmd.Flags().StringVarP(&opts.PackageName, "package", "p", "", "Package of the generated file (detected when empty)")
	cmd.Flags().StringVarP(&opts.Tags, "tags", "t", "", `Only scenarios matching the tag expression, e.g. "@smoke and not @slow"`)

	return cmd
}

func runSnippets(cmd *cobra.Command, opts snippetsOptions) error {
	log, err := logger.New(logger.Options{
		Level:         opts.LogLevel,
		HumanReadable: opts.Human,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = log.WithContext(ctx)

	compiler, err := suite.NewCompiler(
		suite.WithRegistry(steps.NewRegistry()),
		suite.WithTags(opts.Tags),
		suite.WithLogger(log),
	)
	if err != nil {
		return err
	}

	output, err := generator.Collect(ctx, compiler, opts.Directories)
	if err != nil {
		return err
	}
	if len(output.Snippets) == 0 {
		log.Info().Msg("no steps found, nothing to write")
		return nil
	}

	output.PackageName = opts.PackageName
	if opts.Output == stdoutOutput {
		return output.Generate(cmd.OutOrStdout())
	}

	if output.PackageName == "" {
		output.PackageName, err = generator.DetectPackageName(filepath.Dir(opts.Output), filepath.Base(opts.Output))
		if err != nil {
			log.Warn().Err(err).Msg("could not detect package name, using main")
		}
	}

	if err := writeFile(opts.Output, output); err != nil {
		return err
	}
	log.Info().Str("file", opts.Output).Int("snippets", len(output.Snippets)).Msg("wrote snippets")
	return nil
}

func writeFile(path string, output *generator.Output) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()

	return output.Generate(file)
}
