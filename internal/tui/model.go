package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tailselect/internal/domain/selection"
	"github.com/alexisbeaulieu97/tailselect/internal/logger"
	"github.com/alexisbeaulieu97/tailselect/internal/outside"
	"github.com/alexisbeaulieu97/tailselect/internal/tui/selectbox"
)

const (
	maxControlWidth = 60

	// headerHeight is the title line plus one blank line above the control.
	headerHeight = 2
)

// Options configures the picker program.
type Options struct {
	Title    string
	Select   selectbox.Config
	Warnings []string
	Logger   *logger.Logger
}

// Result is what the picker hands back once the program exits.
type Result struct {
	Value     selection.Value
	Confirmed bool
	Cancelled bool
}

// Model contains the Bubbletea state of the interactive picker. It owns the
// pointer event surface and forwards every mouse event to it so the control
// can notice presses outside itself.
type Model struct {
	title    string
	doc      *outside.Document
	sel      selectbox.Model
	warnings []string
	log      *logger.Logger

	changes   int
	showHelp  bool
	finished  bool
	confirmed bool
	cancelled bool
	width     int
	height    int
}

// NewModel constructs the picker model.
func NewModel(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	doc := outside.NewDocument()
	sel := selectbox.New(opts.Select, selectbox.WithDocument(doc), selectbox.WithLogger(log))
	sel.SetOrigin(0, headerHeight)

	return Model{
		title:    opts.Title,
		doc:      doc,
		sel:      sel,
		warnings: opts.Warnings,
		log:      log,
	}
}

// Init starts the control.
func (m Model) Init() tea.Cmd {
	return m.sel.Init()
}

// List returns the normalized options the control renders.
func (m Model) List() []selection.Item {
	return m.sel.Controller().List()
}

// SetValue installs the initial selection.
func (m *Model) SetValue(v selection.Value) {
	m.sel.SetValue(v)
}

// Value returns the current selection.
func (m Model) Value() selection.Value {
	return m.sel.Value()
}

// Result reports the outcome of the session.
func (m Model) Result() Result {
	return Result{
		Value:     m.sel.Value(),
		Confirmed: m.confirmed,
		Cancelled: m.cancelled,
	}
}

// IsFinished reports whether the session has ended.
func (m Model) IsFinished() bool {
	return m.finished
}

// Close releases the control's outside-press subscription.
func (m Model) Close() error {
	return m.sel.Close()
}
