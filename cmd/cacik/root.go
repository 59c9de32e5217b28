package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	logLevel string
	human    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "cacik",
		Short:         "cacik compiles Gherkin features into Go step definitions and tests",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&flags.human, "human", true, "Write human readable logs instead of JSON")

	cmd.AddCommand(newSnippetsCmd(flags))

	return cmd
}
