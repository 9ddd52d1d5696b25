package selectbox

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// textSearchBox is the default SearchBox, backed by a bubbles text input.
// "Select all" is emulated: the next edit replaces the whole text.
type textSearchBox struct {
	input     textinput.Model
	selectAll bool
}

func newTextSearchBox(placeholder string, accent lipgloss.TerminalColor) *textSearchBox {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "⌕ "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(accent)
	ti.PlaceholderStyle = searchPlaceholderStyle
	ti.CharLimit = 128
	return &textSearchBox{input: ti}
}

func (s *textSearchBox) SetValue(value string) {
	s.input.SetValue(value)
	s.selectAll = false
}

func (s *textSearchBox) Value() string {
	return s.input.Value()
}

func (s *textSearchBox) FocusAndSelectAll() {
	s.input.Focus()
	s.input.CursorEnd()
	s.selectAll = s.input.Value() != ""
}

func (s *textSearchBox) Blur() {
	s.input.Blur()
	s.selectAll = false
}

func (s *textSearchBox) Focused() bool {
	return s.input.Focused()
}

func (s *textSearchBox) SetWidth(width int) {
	s.input.Width = width
}

// Update feeds msg to the input and reports the resulting change, if any.
func (s *textSearchBox) Update(msg tea.Msg) (SearchChange, bool, tea.Cmd) {
	before := s.input.Value()

	if s.selectAll {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.Type {
			case tea.KeyRunes, tea.KeySpace, tea.KeyBackspace, tea.KeyDelete:
				s.input.SetValue("")
				if keyMsg.Type == tea.KeyBackspace || keyMsg.Type == tea.KeyDelete {
					s.selectAll = false
					return SearchChange{Value: "", Previous: before}, true, nil
				}
			}
			s.selectAll = false
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	after := s.input.Value()
	if after == before {
		return SearchChange{}, false, cmd
	}
	return SearchChange{Value: after, Previous: before}, true, cmd
}

func (s *textSearchBox) View() string {
	return s.input.View()
}
