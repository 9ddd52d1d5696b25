package selectbox

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tailselect/internal/outside"
)

// Update handles key presses, mouse presses inside the control and spinner
// ticks. Presses outside the control are the host's business: it dispatches
// them to the outside.Document the controller watches.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.focused {
			cmds = append(cmds, m.handleKey(msg))
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case spinner.TickMsg:
		if m.ctrl.Config().Loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	default:
		if m.search.Focused() {
			cmds = append(cmds, m.updateSearch(msg))
		}
	}

	cmds = append(cmds, m.flush()...)
	m.sync()
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	cfg := m.ctrl.Config()

	if !m.menuVisible() {
		switch {
		case key.Matches(msg, m.keys.Clear):
			m.ctrl.Clear()
		case key.Matches(msg, m.keys.RemoveLast) && cfg.Multiple:
			m.removeLast()
		case key.Matches(msg, m.keys.Toggle):
			wasOpen := m.ctrl.IsOpen()
			m.ctrl.ActivateViaKey(activationKey)
			if !wasOpen && m.ctrl.IsOpen() && cfg.Searchable {
				return textinput.Blink
			}
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Close):
		m.ctrl.RequestClose()
	case key.Matches(msg, m.keys.Up):
		m.list.Prev()
	case key.Matches(msg, m.keys.Down):
		m.list.Next()
	case key.Matches(msg, m.keys.Pick):
		if opt, ok := m.list.Highlighted(); ok {
			m.ctrl.Pick(opt)
		}
	case key.Matches(msg, m.keys.Clear):
		m.ctrl.Clear()
	case key.Matches(msg, m.keys.RemoveLast) && cfg.Multiple && m.ctrl.SearchText() == "":
		m.removeLast()
	case cfg.Searchable:
		return m.updateSearch(msg)
	case key.Matches(msg, m.keys.Toggle):
		// Space closes a menu without a search box.
		m.ctrl.ActivateViaKey(activationKey)
	}
	return nil
}

func (m *Model) updateSearch(msg tea.Msg) tea.Cmd {
	change, changed, cmd := m.search.Update(msg)
	if changed {
		m.ctrl.OnSearchTextChange(change)
		m.sync()
	}
	return cmd
}

func (m *Model) removeLast() {
	opts := m.ctrl.Value().Options()
	if len(opts) == 0 {
		return
	}
	m.ctrl.Remove(opts[len(opts)-1])
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	p := outside.Point{X: msg.X - m.origin.X, Y: msg.Y - m.origin.Y}
	local := outside.Region{Width: m.width, Height: m.height()}
	if !local.Contains(p) {
		m.focused = false
		return
	}
	m.focused = true

	if p.Y < controlHeight {
		m.clickControl(p.X)
		return
	}
	if !m.menuVisible() {
		return
	}

	// Menu top border, then the search row.
	line := p.Y - controlHeight - 1 - m.searchRows()
	if r, ok := m.list.rowAt(line); ok && r.selectable() {
		m.ctrl.Pick(r.option)
	}
}

func (m *Model) clickControl(x int) {
	_, zones := m.controlLine()
	for _, z := range zones {
		if x < z.start || x >= z.end {
			continue
		}
		switch z.action {
		case zoneRemove:
			if m.ctrl.Remove(z.option) {
				return
			}
		case zoneClear:
			if m.ctrl.Clear() {
				return
			}
		}
		break
	}
	m.ctrl.Toggle()
}

// PointerEvent converts a mouse message into the event a Document dispatches.
// Left, middle and right button presses count as presses; motion, release and
// wheel events do not.
func PointerEvent(msg tea.MouseMsg) outside.Event {
	kind := outside.Other
	if msg.Action == tea.MouseActionPress && !tea.MouseEvent(msg).IsWheel() {
		kind = outside.Press
	}
	return outside.Event{Kind: kind, Target: outside.Point{X: msg.X, Y: msg.Y}}
}
