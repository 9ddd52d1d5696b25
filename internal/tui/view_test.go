package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tailselect/internal/domain/selection"
	"github.com/alexisbeaulieu97/tailselect/internal/tui/selectbox"
)

func TestViewRendersBasicLayout(t *testing.T) {
	m := NewModel(Options{
		Title:    "Pick a fruit",
		Select:   selectbox.Config{Options: fruitOptions()},
		Warnings: []string{"primary_color \"teal\" is not recognized"},
	})
	defer m.Close()

	view := m.View()
	require.Contains(t, view, "Pick a fruit")
	require.Contains(t, view, selectbox.DefaultPlaceholder)
	require.Contains(t, view, "Nothing selected")
	require.Contains(t, view, "Warnings:")
	require.Contains(t, view, "! primary_color \"teal\" is not recognized")
	require.Contains(t, view, "q confirm")
}

func TestViewDefaultTitle(t *testing.T) {
	m := NewModel(Options{})
	defer m.Close()
	require.Contains(t, m.View(), "Select an option")
}

func TestViewShowsSelection(t *testing.T) {
	m := NewModel(Options{Select: selectbox.Config{Options: fruitOptions(), Multiple: true}})
	defer m.Close()

	a, _ := selection.FindByValue(m.List(), "apple")
	b, _ := selection.FindByValue(m.List(), "banana")
	m.SetValue(selection.Multi(a, b))

	require.Contains(t, m.View(), "Selected (2): Apple, Banana")
}
