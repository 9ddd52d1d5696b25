package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tailselect/internal/domain/selection"
	"github.com/alexisbeaulieu97/tailselect/internal/tui/selectbox"
)

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

func TestUpdateHandlesWindowSize(t *testing.T) {
	m := NewModel(Options{Select: selectbox.Config{Options: fruitOptions()}})
	defer m.Close()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	require.Equal(t, 120, m.width)
	require.Equal(t, maxControlWidth, m.sel.Bounds().Width)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	require.Equal(t, 30, m.sel.Bounds().Width)
}

func TestUpdateCtrlCCancels(t *testing.T) {
	m := NewModel(Options{Select: selectbox.Config{Options: fruitOptions(), MenuIsOpen: true}})
	defer m.Close()

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.True(t, m.Result().Cancelled)
	require.True(t, m.IsFinished())
}

func TestUpdateConfirmWhenClosed(t *testing.T) {
	m := NewModel(Options{Select: selectbox.Config{Options: fruitOptions()}})
	defer m.Close()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, m.sel.IsOpen())

	for _, msg := range drain(cmd) {
		m, _ = update(t, m, msg)
	}
	require.Equal(t, 1, m.changes)

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)

	res := m.Result()
	require.True(t, res.Confirmed)
	require.False(t, res.Cancelled)
	require.Equal(t, "banana", res.Value.String())
}

func TestUpdateEscClosesMenuBeforeCancelling(t *testing.T) {
	m := NewModel(Options{Select: selectbox.Config{Options: fruitOptions(), MenuIsOpen: true}})
	defer m.Close()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, m.sel.IsOpen())
	require.False(t, m.IsFinished())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.True(t, m.Result().Cancelled)
}

func TestUpdateQueryKeysGoToSearchWhileOpen(t *testing.T) {
	m := NewModel(Options{Select: selectbox.Config{Options: fruitOptions(), Searchable: true}})
	defer m.Close()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	require.False(t, m.IsFinished())
	require.Equal(t, "q", m.sel.Controller().SearchText())
}

func TestUpdateOutsideClickClosesMenu(t *testing.T) {
	m := NewModel(Options{Select: selectbox.Config{Options: fruitOptions(), MenuIsOpen: true}})
	defer m.Close()

	press := tea.MouseMsg{X: 70, Y: 30, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m, _ = update(t, m, press)
	require.False(t, m.sel.IsOpen())
	require.True(t, m.Value().IsNone())
}

func TestUpdateClickInsideOpensMenu(t *testing.T) {
	m := NewModel(Options{Select: selectbox.Config{Options: fruitOptions()}})
	defer m.Close()

	press := tea.MouseMsg{X: 4, Y: headerHeight + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m, _ = update(t, m, press)
	require.True(t, m.sel.IsOpen())
}

func TestUpdateToggleHelp(t *testing.T) {
	m := NewModel(Options{})
	defer m.Close()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	require.True(t, m.showHelp)
}

func TestUpdateCountsChanges(t *testing.T) {
	m := NewModel(Options{})
	defer m.Close()

	m, _ = update(t, m, selectbox.ChangeMsg{Value: selection.None()})
	m, _ = update(t, m, selectbox.SearchMsg{Change: selectbox.SearchChange{Value: "a"}})
	require.Equal(t, 1, m.changes)
}

// drain runs cmd and the commands batched inside it.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}
