package selectbox

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tailselect/internal/domain/selection"
	"github.com/alexisbeaulieu97/tailselect/internal/outside"
	"github.com/alexisbeaulieu97/tailselect/internal/theme"
)

const (
	defaultWidth = 40
	minWidth     = 16

	// controlHeight is the bordered control line.
	controlHeight = 3
)

// outbox collects controller callbacks fired during one Update so they can be
// turned into messages once the update is done.
type outbox struct {
	changes  []selection.Value
	searches []SearchChange
}

// Model is the Bubble Tea rendition of the select control. It drives a
// Controller and by default hosts its value: every emitted value is adopted
// right away and also announced with a ChangeMsg. Call SetControlled to leave
// value ownership with the parent model.
type Model struct {
	ctrl    *Controller
	search  SearchBox
	list    *OptionsList
	spinner spinner.Model
	help    help.Model
	keys    KeyMap
	styles  styles
	box     *outbox

	controlled bool
	focused    bool
	width      int
	origin     outside.Point
}

// New creates a focused select control. opts are passed to the underlying
// Controller after the default search box has been attached, so WithSearchBox
// replaces it.
func New(cfg Config, opts ...ControllerOption) Model {
	box := &outbox{}

	onChange := cfg.OnChange
	cfg.OnChange = func(v selection.Value) {
		if onChange != nil {
			onChange(v)
		}
		box.changes = append(box.changes, v)
	}
	onSearch := cfg.OnSearchInputChange
	cfg.OnSearchInputChange = func(change SearchChange) {
		if onSearch != nil {
			onSearch(change)
		}
		box.searches = append(box.searches, change)
	}

	effective := cfg.withDefaults()
	fallback := newTextSearchBox(effective.SearchInputPlaceholder, theme.Resolve(effective.PrimaryColor).Accent)
	ctrl := NewController(cfg, append([]ControllerOption{WithSearchBox(fallback)}, opts...)...)

	st := newStyles(ctrl.Theme(), ctrl.Config().ClassNames)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = st.spinner()

	list := NewOptionsList(defaultMaxRows)

	m := Model{
		ctrl:    ctrl,
		search:  ctrl.SearchBox(),
		list:    &list,
		spinner: s,
		help:    help.New(),
		keys:    DefaultKeyMap(),
		styles:  st,
		box:     box,
		focused: true,
	}
	m.SetWidth(defaultWidth)
	m.sync()
	return m
}

// Init starts the spinner when loading and the cursor blink when the menu
// starts open with a search box.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.ctrl.Config().Loading {
		cmds = append(cmds, m.spinner.Tick)
	}
	if m.search.Focused() {
		cmds = append(cmds, textinput.Blink)
	}
	return tea.Batch(cmds...)
}

// Controller exposes the underlying controller.
func (m Model) Controller() *Controller {
	return m.ctrl
}

// Value returns the current selection.
func (m Model) Value() selection.Value {
	return m.ctrl.Value()
}

// IsOpen reports whether the dropdown is open.
func (m Model) IsOpen() bool {
	return m.ctrl.IsOpen()
}

// Focused reports whether the control receives key presses.
func (m Model) Focused() bool {
	return m.focused
}

// Focus gives the control keyboard focus.
func (m *Model) Focus() {
	m.focused = true
}

// Blur removes keyboard focus and closes the dropdown.
func (m *Model) Blur() {
	m.focused = false
	m.ctrl.RequestClose()
	m.sync()
}

// SetControlled stops the model from adopting emitted values. The parent must
// then call SetValue in response to ChangeMsg.
func (m *Model) SetControlled(controlled bool) {
	m.controlled = controlled
}

// SetValue installs the selection owned by the parent.
func (m *Model) SetValue(v selection.Value) {
	m.ctrl.SetValue(v)
	m.sync()
}

// SetOptions replaces the option list.
func (m *Model) SetOptions(items []selection.Item) {
	m.ctrl.SetOptions(items)
	m.sync()
}

// SetDisabled switches the disabled flag.
func (m *Model) SetDisabled(disabled bool) {
	m.ctrl.SetDisabled(disabled)
	m.sync()
}

// SetLoading switches the loading indicator. It returns the command that
// starts the spinner when loading turns on.
func (m *Model) SetLoading(loading bool) tea.Cmd {
	was := m.ctrl.Config().Loading
	m.ctrl.SetLoading(loading)
	m.sync()
	if loading && !was {
		return m.spinner.Tick
	}
	return nil
}

// SetWidth sets the rendered width in cells, borders included.
func (m *Model) SetWidth(width int) {
	if width < minWidth {
		width = minWidth
	}
	m.width = width
	m.search.SetWidth(max(m.innerWidth()-2, 1))
	m.help.Width = width
	m.sync()
}

// SetOrigin sets the screen position of the top-left corner. Mouse events are
// translated relative to it.
func (m *Model) SetOrigin(x, y int) {
	m.origin = outside.Point{X: x, Y: y}
	m.sync()
}

// SetMaxRows sets how many option rows the menu shows at once.
func (m *Model) SetMaxRows(rows int) {
	list := NewOptionsList(rows)
	m.list = &list
	m.sync()
}

// SetKeyMap replaces the key bindings.
func (m *Model) SetKeyMap(keys KeyMap) {
	m.keys = keys
}

// KeyMap returns the key bindings, suitable for a help.Model.
func (m Model) KeyMap() KeyMap {
	return m.keys
}

// HelpView renders the short help line.
func (m Model) HelpView() string {
	return helpStyle.Render(m.help.View(m.keys))
}

// Bounds returns the screen region the control currently occupies, menu
// included.
func (m Model) Bounds() outside.Region {
	return outside.Region{
		X:      m.origin.X,
		Y:      m.origin.Y,
		Width:  m.width,
		Height: m.height(),
	}
}

// Close releases the outside-press subscription.
func (m Model) Close() error {
	return m.ctrl.Close()
}

func (m Model) menuVisible() bool {
	return m.ctrl.IsOpen() && !m.ctrl.Config().Disabled
}

func (m Model) innerWidth() int {
	return m.width - 4
}

func (m Model) searchRows() int {
	if m.ctrl.Config().Searchable {
		return 1
	}
	return 0
}

func (m Model) menuHeight() int {
	if !m.menuVisible() {
		return 0
	}
	return 2 + m.searchRows() + m.list.Height()
}

func (m Model) height() int {
	return controlHeight + m.menuHeight()
}

// sync rebuilds the visible options and rebinds the outside-press region.
func (m *Model) sync() {
	cfg := m.ctrl.Config()
	m.list.Sync(m.ctrl.List(), m.ctrl.SearchText(), cfg.Multiple, m.ctrl.Value())
	m.ctrl.Bind(m.Bounds())
}

// flush turns the callbacks collected during an update into messages.
func (m *Model) flush() []tea.Cmd {
	var cmds []tea.Cmd
	for _, change := range m.box.searches {
		cmds = append(cmds, func() tea.Msg { return SearchMsg{Change: change} })
	}
	for _, v := range m.box.changes {
		if !m.controlled {
			m.ctrl.SetValue(v)
		}
		cmds = append(cmds, func() tea.Msg { return ChangeMsg{Value: v} })
	}
	m.box.searches = nil
	m.box.changes = nil
	return cmds
}
