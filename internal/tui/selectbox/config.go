package selectbox

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tailselect/internal/domain/selection"
	"github.com/alexisbeaulieu97/tailselect/internal/theme"
)

const (
	DefaultPlaceholder       = "Select..."
	DefaultSearchPlaceholder = "Search..."
	DefaultNoOptionsMessage  = "No options found"
)

// SearchChange is the raw change event emitted by the search box.
type SearchChange struct {
	Value    string
	Previous string
}

// ClassNames overrides the default styles of individual parts. A nil entry
// keeps the default. The core never interprets these.
type ClassNames struct {
	MenuButton     func(disabled bool) lipgloss.Style
	TagItem        func(disabled bool) lipgloss.Style
	TagItemText    *lipgloss.Style
	TagItemIcon    *lipgloss.Style
	CloseIcon      *lipgloss.Style
	Menu           *lipgloss.Style
	ListItem       func(selected bool) lipgloss.Style
	ListGroupLabel *lipgloss.Style
}

// Config is the full configuration surface of the select control.
type Config struct {
	Options []selection.Item
	Value   selection.Value

	OnChange            func(selection.Value)
	OnSearchInputChange func(SearchChange)

	Placeholder            string
	SearchInputPlaceholder string
	NoOptionsMessage       string
	PrimaryColor           string

	Multiple   bool
	Clearable  bool
	Searchable bool
	Disabled   bool
	Loading    bool
	MenuIsOpen bool

	FormatGroupLabel  func(group *selection.Group) string
	FormatOptionLabel func(opt *selection.Option, selected bool) string
	ClassNames        *ClassNames
}

func (c Config) withDefaults() Config {
	if c.Placeholder == "" {
		c.Placeholder = DefaultPlaceholder
	}
	if c.SearchInputPlaceholder == "" {
		c.SearchInputPlaceholder = DefaultSearchPlaceholder
	}
	if c.NoOptionsMessage == "" {
		c.NoOptionsMessage = DefaultNoOptionsMessage
	}
	if c.PrimaryColor == "" {
		c.PrimaryColor = theme.DefaultToken
	}
	return c
}

// Mode returns the reconciler mode implied by Multiple.
func (c Config) Mode() selection.Mode {
	return selection.ModeFor(c.Multiple)
}
