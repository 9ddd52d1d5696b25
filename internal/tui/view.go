package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tailselect/internal/tui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	sections := []string{
		titleStyle.Render(m.titleText()),
		"",
		m.sel.View(),
	}

	summary := components.NewSummary(components.SummaryData{
		Multiple:  m.sel.Controller().Config().Multiple,
		Labels:    m.sel.Value().Labels(),
		Changes:   m.changes,
		Finished:  m.finished,
		Cancelled: m.cancelled,
		Warnings:  m.warnings,
	}).View()
	sections = append(sections, summaryStyle.Render(summary))

	if m.showHelp {
		sections = append(sections, hintStyle.Render(m.sel.HelpView()))
	}
	sections = append(sections, hintStyle.Render("q confirm • esc cancel • ? help"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) titleText() string {
	if strings.TrimSpace(m.title) != "" {
		return m.title
	}
	return "Select an option"
}
