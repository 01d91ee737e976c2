package main

import (
	"github.com/spf13/cobra"

	"dataid/internal/logger"
)

type rootFlags struct {
	logLevel  string
	logPretty bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:           "dataid",
		Short:         "Inspect identifier schemas and resolve identifiers",
		Long:          "dataid validates identifier schemas and filters, ranks and resolves\nidentifiers against partial queries.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger.Init(logger.Config{
				Level:  flags.logLevel,
				Pretty: flags.logPretty,
				Output: cmd.ErrOrStderr(),
			})
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error, off)")
	pf.BoolVar(&flags.logPretty, "log-pretty", false, "Human-readable log output")

	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newFilterCmd())
	cmd.AddCommand(newRankCmd())
	cmd.AddCommand(newResolveCmd())

	return cmd
}
