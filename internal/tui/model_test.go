package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tailselect/internal/domain/selection"
	"github.com/alexisbeaulieu97/tailselect/internal/tui/selectbox"
)

func fruitOptions() []selection.Item {
	return []selection.Item{
		selection.OptionItem(selection.NewOption("apple", "Apple", false)),
		selection.OptionItem(selection.NewOption("banana", "Banana", false)),
	}
}

func TestNewModelInitialisesState(t *testing.T) {
	m := NewModel(Options{Title: "Fruit", Select: selectbox.Config{Options: fruitOptions()}})
	defer m.Close()

	require.Equal(t, "Fruit", m.title)
	require.False(t, m.finished)
	require.Zero(t, m.changes)
	require.Len(t, m.List(), 2)
	require.True(t, m.Value().IsNone())
	require.Equal(t, 1, m.doc.Listeners())
}

func TestModelSetValueUsesNormalizedList(t *testing.T) {
	m := NewModel(Options{Select: selectbox.Config{Options: fruitOptions()}})
	defer m.Close()

	opt, ok := selection.FindByValue(m.List(), "banana")
	require.True(t, ok)
	m.SetValue(selection.Single(opt))

	got, ok := m.Value().Single()
	require.True(t, ok)
	require.Same(t, opt, got)
}

func TestModelInitStartsSpinnerWhenLoading(t *testing.T) {
	m := NewModel(Options{Select: selectbox.Config{Loading: true}})
	defer m.Close()
	require.NotNil(t, m.Init())
}

func TestModelCloseReleasesListener(t *testing.T) {
	m := NewModel(Options{})
	require.NoError(t, m.Close())
	require.Zero(t, m.doc.Listeners())
}

func TestModelMarksFinished(t *testing.T) {
	m := NewModel(Options{})
	defer m.Close()

	updated, cmd := m.Update(tea.QuitMsg{})
	require.Nil(t, cmd)
	m = updated.(Model)
	require.True(t, m.IsFinished())
}
