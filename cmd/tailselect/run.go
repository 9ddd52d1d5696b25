package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/tailselect/internal/config"
	"github.com/alexisbeaulieu97/tailselect/internal/domain/selection"
	"github.com/alexisbeaulieu97/tailselect/internal/logger"
	"github.com/alexisbeaulieu97/tailselect/internal/theme"
	"github.com/alexisbeaulieu97/tailselect/internal/tui"
	"github.com/alexisbeaulieu97/tailselect/internal/tui/selectbox"
)

// errCancelled is returned when the user leaves the picker without confirming.
var errCancelled = errors.New("selection cancelled")

type runOptions struct {
	Path    string
	Title   string
	Labels  bool
	NoColor bool

	Multiple   bool
	Searchable bool
	Clearable  bool
	Disabled   bool
	Open       bool
	Color      string

	// changed records which override flags were given explicitly.
	changed map[string]bool
}

var runCmdRunner = runPicker

func newRunCmd(root *rootFlags) *cobra.Command {
	opts := runOptions{}

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Open the interactive picker for an option document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Path = args[0]
			opts.changed = make(map[string]bool)
			for _, name := range []string{"multiple", "searchable", "clearable", "disabled", "open", "color"} {
				opts.changed[name] = cmd.Flags().Changed(name)
			}

			if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stderr.Fd())) {
				return fmt.Errorf("run needs an interactive terminal on stdin and stderr")
			}

			return runCmdRunner(cmd.OutOrStdout(), root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "Title shown above the control")
	cmd.Flags().BoolVar(&opts.Labels, "labels", false, "Print labels instead of values")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false, "Disable colors")
	cmd.Flags().BoolVarP(&opts.Multiple, "multiple", "m", false, "Allow selecting several options")
	cmd.Flags().BoolVarP(&opts.Searchable, "searchable", "s", false, "Show a search box in the menu")
	cmd.Flags().BoolVar(&opts.Clearable, "clearable", false, "Show a clear affordance")
	cmd.Flags().BoolVar(&opts.Disabled, "disabled", false, "Render the control disabled")
	cmd.Flags().BoolVar(&opts.Open, "open", false, "Start with the menu open")
	cmd.Flags().StringVar(&opts.Color, "color", "", "Primary color token (see 'tailselect themes')")

	return cmd
}

func runPicker(out io.Writer, root *rootFlags, opts runOptions) error {
	prefs, _, err := config.LoadPreferences(config.PreferencesOptions{File: root.preferences})
	if err != nil {
		return err
	}

	log, err := newLogger(root, prefs)
	if err != nil {
		return err
	}
	defer log.Close()

	if opts.NoColor || prefs.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	doc, err := config.LoadDocument(opts.Path)
	if err != nil {
		log.Error(err, "load document")
		return err
	}
	applyOverrides(doc, opts)
	log.Debug(fmt.Sprintf("loaded %d options from %s", len(selection.Flatten(doc.Items())), opts.Path))

	warnings := doc.Warnings()
	for _, w := range warnings {
		log.Warn(w)
	}

	model := tui.NewModel(tui.Options{
		Title:    opts.Title,
		Select:   selectConfig(doc, prefs),
		Warnings: warnings,
		Logger:   log.WithFields(map[string]any{"document": opts.Path}),
	})
	defer model.Close()
	model.SetValue(doc.InitialValue(model.List()))

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithOutput(os.Stderr),
	)
	final, err := program.Run()
	if err != nil {
		log.Error(err, "picker exited with an error")
		return fmt.Errorf("run picker: %w", err)
	}

	result := final.(tui.Model).Result()
	if result.Cancelled {
		return errCancelled
	}

	log.Info(fmt.Sprintf("selection confirmed: %s", result.Value))
	if text := formatResult(result.Value, opts.Labels); text != "" {
		fmt.Fprintln(out, text)
	}
	return nil
}

// applyOverrides lets explicit flags win over the document settings.
func applyOverrides(doc *config.Document, opts runOptions) {
	s := &doc.Settings
	if opts.changed["multiple"] {
		s.Multiple = opts.Multiple
	}
	if opts.changed["searchable"] {
		s.Searchable = opts.Searchable
	}
	if opts.changed["clearable"] {
		s.Clearable = opts.Clearable
	}
	if opts.changed["disabled"] {
		s.Disabled = opts.Disabled
	}
	if opts.changed["open"] {
		s.MenuOpen = opts.Open
	}
	if opts.changed["color"] {
		s.PrimaryColor = strings.TrimSpace(opts.Color)
	}
}

// selectConfig builds the control configuration from a document. The
// preferred color applies when the document does not name one.
func selectConfig(doc *config.Document, prefs config.Preferences) selectbox.Config {
	s := doc.Settings

	color := s.PrimaryColor
	if color == "" {
		color = prefs.PrimaryColor
	}
	if color == "" {
		color = theme.DefaultToken
	}

	return selectbox.Config{
		Options:                doc.Items(),
		Placeholder:            s.Placeholder,
		SearchInputPlaceholder: s.SearchPlaceholder,
		NoOptionsMessage:       s.NoOptionsMessage,
		PrimaryColor:           color,
		Multiple:               s.Multiple,
		Clearable:              s.Clearable,
		Searchable:             s.Searchable,
		Disabled:               s.Disabled,
		Loading:                s.Loading,
		MenuIsOpen:             s.MenuOpen,
	}
}

// formatResult prints one selected option per line.
func formatResult(v selection.Value, labels bool) string {
	if labels {
		return strings.Join(v.Labels(), "\n")
	}
	return strings.Join(v.Values(), "\n")
}

// newLogger logs human-readable lines to a rotated file when one is
// configured. Interactive sessions never log to the terminal.
func newLogger(root *rootFlags, prefs config.Preferences) (*logger.Logger, error) {
	file := root.logFile
	if file == "" {
		file = prefs.LogFile
	}
	if file == "" {
		return logger.Nop(), nil
	}

	level := prefs.LogLevel
	if root.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{Level: level, HumanReadable: true, File: file})
}
