package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tailselect/internal/config"
	"github.com/alexisbeaulieu97/tailselect/internal/theme"
)

func newThemesCmd(root *rootFlags) *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the primary color tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, _, err := config.LoadPreferences(config.PreferencesOptions{File: root.preferences})
			if err != nil {
				return err
			}
			if noColor || prefs.NoColor {
				lipgloss.SetColorProfile(termenv.Ascii)
			}

			out := cmd.OutOrStdout()
			for _, token := range theme.Tokens() {
				classes := theme.Resolve(token)
				swatch := lipgloss.NewStyle().Background(classes.Accent).Render("  ")
				marker := " "
				if token == prefs.PrimaryColor {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s %-8s %s %s\n", marker, swatch, token, classes.Accent, classes.Soft)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colors")

	return cmd
}
