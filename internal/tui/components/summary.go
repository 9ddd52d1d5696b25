package components

import (
	"fmt"
	"strings"
)

// SummaryData aggregates what the selection summary shows.
type SummaryData struct {
	Multiple  bool
	Labels    []string
	Changes   int
	Finished  bool
	Cancelled bool
	Warnings  []string
}

// Summary renders a textual summary of the current selection.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary.
func (s Summary) View() string {
	var lines []string

	switch {
	case len(s.data.Labels) == 0:
		lines = append(lines, "Nothing selected")
	case s.data.Multiple:
		lines = append(lines, fmt.Sprintf("Selected (%d): %s", len(s.data.Labels), strings.Join(s.data.Labels, ", ")))
	default:
		lines = append(lines, fmt.Sprintf("Selected: %s", s.data.Labels[0]))
	}

	if s.data.Changes > 0 {
		lines = append(lines, fmt.Sprintf("Changes: %d", s.data.Changes))
	}

	if s.data.Cancelled {
		lines = append(lines, "Selection cancelled")
	} else if s.data.Finished {
		lines = append(lines, "Selection confirmed")
	}

	if len(s.data.Warnings) > 0 {
		lines = append(lines, "Warnings:")
		for _, w := range s.data.Warnings {
			lines = append(lines, fmt.Sprintf("  ! %s", w))
		}
	}

	return strings.Join(lines, "\n")
}
