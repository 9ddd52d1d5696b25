package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tailselect/internal/tui/selectbox"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.sel.SetWidth(min(msg.Width, maxControlWidth))
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.cancelled = true
			m.finished = true
			return m, tea.Quit
		}
		if !m.sel.IsOpen() {
			switch msg.String() {
			case "q", "ctrl+d":
				m.confirmed = true
				m.finished = true
				return m, tea.Quit
			case "esc":
				m.cancelled = true
				m.finished = true
				return m, tea.Quit
			case "?":
				m.showHelp = !m.showHelp
				return m, nil
			}
		}

	case tea.MouseMsg:
		m.doc.Dispatch(selectbox.PointerEvent(msg))

	case selectbox.ChangeMsg:
		m.changes++
		m.log.Debugf("selection changed", map[string]any{"value": msg.Value.String(), "changes": m.changes})
		return m, nil

	case selectbox.SearchMsg:
		m.log.Debugf("search changed", map[string]any{"text": msg.Change.Value, "previous": msg.Change.Previous})
		return m, nil

	case tea.QuitMsg:
		m.finished = true
		return m, nil
	}

	var cmd tea.Cmd
	m.sel, cmd = m.sel.Update(msg)
	return m, cmd
}
