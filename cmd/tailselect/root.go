package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose     bool
	preferences string
	logFile     string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "tailselect",
		Short:         "tailselect picks options from a YAML or TOML option document",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.preferences, "preferences", "", "Path to a preferences file (default: <user config dir>/tailselect/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this rotated file")

	cmd.AddCommand(newRunCmd(flags))
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newThemesCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
