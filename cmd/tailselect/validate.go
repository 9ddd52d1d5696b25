package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tailselect/internal/config"
	"github.com/alexisbeaulieu97/tailselect/internal/domain/selection"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>...",
		Short: "Check option documents without opening the picker",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0

			for _, path := range args {
				doc, err := config.LoadDocument(path)
				if err != nil {
					failed++
					fmt.Fprintf(out, "✗ %s: %v\n", path, err)
					continue
				}

				options := len(selection.Flatten(selection.Normalize(doc.Items())))
				fmt.Fprintf(out, "✓ %s: %d options\n", path, options)
				for _, w := range doc.Warnings() {
					fmt.Fprintf(out, "  ! %s\n", w)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d documents failed validation", failed, len(args))
			}
			return nil
		},
	}

	return cmd
}
