package selectbox

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tailselect/internal/theme"
)

var (
	// Colors
	mutedColor    = lipgloss.Color("245")
	dimColor      = lipgloss.Color("240")
	borderColor   = lipgloss.Color("240")
	surfaceColor  = lipgloss.Color("237")
	textColor     = lipgloss.Color("252")
	dangerColor   = lipgloss.Color("203")
	disabledColor = lipgloss.Color("238")

	controlStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)

	disabledControlStyle = controlStyle.
				BorderForeground(disabledColor).
				Foreground(mutedColor)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(mutedColor)

	valueStyle = lipgloss.NewStyle().
			Foreground(textColor)

	tagStyle = lipgloss.NewStyle().
			Background(surfaceColor).
			Foreground(textColor)

	disabledTagStyle = tagStyle.
				Foreground(mutedColor)

	tagIconStyle = lipgloss.NewStyle().
			Background(surfaceColor).
			Foreground(dangerColor)

	closeIconStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	separatorStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	chevronStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	menuStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(borderColor)

	groupLabelStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Bold(true)

	itemStyle = lipgloss.NewStyle().
			Foreground(textColor)

	disabledItemStyle = lipgloss.NewStyle().
				Foreground(disabledColor).
				Strikethrough(true)

	noOptionsStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	searchPlaceholderStyle = lipgloss.NewStyle().
				Foreground(dimColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(dimColor)
)

// styles is the resolved style set for one control: defaults tinted with the
// theme accent, with ClassNames overrides applied on top.
type styles struct {
	classes theme.Classes
	names   ClassNames
}

func newStyles(classes theme.Classes, names *ClassNames) styles {
	s := styles{classes: classes}
	if names != nil {
		s.names = *names
	}
	return s
}

func (s styles) control(disabled, focused bool) lipgloss.Style {
	if s.names.MenuButton != nil {
		return s.names.MenuButton(disabled)
	}
	if disabled {
		return disabledControlStyle
	}
	if focused {
		return controlStyle.BorderForeground(s.classes.Accent)
	}
	return controlStyle
}

func (s styles) tag(disabled bool) lipgloss.Style {
	if s.names.TagItem != nil {
		return s.names.TagItem(disabled)
	}
	if disabled {
		return disabledTagStyle
	}
	return tagStyle
}

func (s styles) tagText() lipgloss.Style {
	if s.names.TagItemText != nil {
		return *s.names.TagItemText
	}
	return lipgloss.NewStyle().Inherit(tagStyle)
}

func (s styles) tagIcon() lipgloss.Style {
	if s.names.TagItemIcon != nil {
		return *s.names.TagItemIcon
	}
	return tagIconStyle
}

func (s styles) closeIcon() lipgloss.Style {
	if s.names.CloseIcon != nil {
		return *s.names.CloseIcon
	}
	return closeIconStyle
}

func (s styles) chevron(open bool) lipgloss.Style {
	if open {
		return chevronStyle.Foreground(mutedColor)
	}
	return chevronStyle
}

func (s styles) spinner() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.classes.Accent)
}

func (s styles) menu() lipgloss.Style {
	if s.names.Menu != nil {
		return *s.names.Menu
	}
	return menuStyle
}

func (s styles) groupLabel() lipgloss.Style {
	if s.names.ListGroupLabel != nil {
		return *s.names.ListGroupLabel
	}
	return groupLabelStyle
}

func (s styles) item(selected, highlighted, disabled bool) lipgloss.Style {
	if s.names.ListItem != nil {
		return s.names.ListItem(selected)
	}
	switch {
	case disabled:
		return disabledItemStyle
	case selected:
		return itemStyle.Foreground(lipgloss.Color("#ffffff")).Background(s.classes.Accent)
	case highlighted:
		return itemStyle.Foreground(s.classes.Accent).Bold(true)
	default:
		return itemStyle
	}
}

func (s styles) match() lipgloss.Style {
	return lipgloss.NewStyle().Underline(true)
}
