package selectbox

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/tailselect/internal/domain/selection"
)

type zoneAction int

const (
	zoneToggle zoneAction = iota
	zoneRemove
	zoneClear
)

// zone is a clickable span of the control line, in cells relative to the
// left edge of the control.
type zone struct {
	start  int
	end    int
	action zoneAction
	option *selection.Option
}

type piece struct {
	text   string
	action zoneAction
	option *selection.Option
}

// contentOffset is the left border plus padding of the control.
const contentOffset = 2

// View renders the control and, when open, the menu below it.
func (m Model) View() string {
	cfg := m.ctrl.Config()
	line, _ := m.controlLine()

	control := m.styles.control(cfg.Disabled, m.focused).
		Width(m.width - 2).
		Render(line)

	if !m.menuVisible() {
		return control
	}
	return lipgloss.JoinVertical(lipgloss.Left, control, m.menuView())
}

// controlLine renders the content of the control and reports where its
// clickable parts are.
func (m Model) controlLine() (string, []zone) {
	inner := m.innerWidth()
	right := m.indicators()
	left := m.valuePieces(inner - piecesWidth(right) - 1)

	var (
		b     strings.Builder
		zones []zone
		x     = contentOffset
	)
	emit := func(p piece) {
		w := lipgloss.Width(p.text)
		zones = append(zones, zone{start: x, end: x + w, action: p.action, option: p.option})
		b.WriteString(p.text)
		x += w
	}

	for _, p := range left {
		emit(p)
	}
	if gap := inner - piecesWidth(left) - piecesWidth(right); gap > 0 {
		emit(piece{text: strings.Repeat(" ", gap)})
	}
	for _, p := range right {
		emit(p)
	}
	return ansi.Truncate(b.String(), inner, ""), zones
}

// indicators returns the right-hand side of the control: the loading spinner,
// the clear icon and the chevron.
func (m Model) indicators() []piece {
	cfg := m.ctrl.Config()
	var out []piece

	if cfg.Loading {
		out = append(out, piece{text: m.spinner.View()}, piece{text: " "})
	}
	if cfg.Clearable && !cfg.Disabled && !m.ctrl.Value().IsNone() {
		out = append(out, piece{text: m.styles.closeIcon().Render("×"), action: zoneClear}, piece{text: " "})
	}

	chevron := "▾"
	if m.ctrl.IsOpen() {
		chevron = "▴"
	}
	out = append(out,
		piece{text: separatorStyle.Render("│") + " "},
		piece{text: m.styles.chevron(m.ctrl.IsOpen()).Render(chevron)},
	)
	return out
}

// valuePieces renders the placeholder, the single label or the tags within
// width cells.
func (m Model) valuePieces(width int) []piece {
	cfg := m.ctrl.Config()
	value := m.ctrl.Value()

	if width < 1 {
		return nil
	}
	if value.IsNone() {
		return []piece{{text: placeholderStyle.Render(ansi.Truncate(cfg.Placeholder, width, "…"))}}
	}

	if !cfg.Multiple {
		opt, _ := value.Single()
		label := m.optionLabel(opt, true)
		return []piece{{text: valueStyle.Render(ansi.Truncate(label, width, "…"))}}
	}

	opts := value.Options()
	var (
		out  []piece
		used int
	)
	for i, opt := range opts {
		tag := m.tagPieces(opt)
		w := piecesWidth(tag)
		rest := len(opts) - i - 1
		reserve := 0
		if rest > 0 {
			reserve = len(moreLabel(rest))
		}
		if used+w+reserve > width {
			more := moreLabel(len(opts) - i)
			if used+len(more) <= width {
				out = append(out, piece{text: placeholderStyle.Render(more)})
			}
			break
		}
		out = append(out, tag...)
		used += w
	}
	return out
}

func (m Model) tagPieces(opt *selection.Option) []piece {
	cfg := m.ctrl.Config()
	label := m.optionLabel(opt, true)

	text := m.styles.tag(cfg.Disabled).Inherit(m.styles.tagText()).Render(" " + label + " ")
	if cfg.Disabled {
		return []piece{{text: text}, {text: " "}}
	}
	return []piece{
		{text: text},
		{text: m.styles.tagIcon().Render("×"), action: zoneRemove, option: opt},
		{text: " "},
	}
}

func moreLabel(n int) string {
	return fmt.Sprintf("+%d more", n)
}

func piecesWidth(pieces []piece) int {
	w := 0
	for _, p := range pieces {
		w += lipgloss.Width(p.text)
	}
	return w
}

func (m Model) menuView() string {
	cfg := m.ctrl.Config()
	inner := m.width - 2

	var lines []string
	if cfg.Searchable {
		lines = append(lines, ansi.Truncate(m.search.View(), inner, ""))
	}

	if m.list.Empty() {
		lines = append(lines, noOptionsStyle.Render(ansi.Truncate(" "+cfg.NoOptionsMessage, inner, "…")))
	} else {
		rows, first := m.list.visible()
		for i, r := range rows {
			lines = append(lines, m.rowView(r, first+i == m.list.cursor, inner))
		}
	}

	return m.styles.menu().Width(inner).Render(strings.Join(lines, "\n"))
}

func (m Model) rowView(r row, highlighted bool, width int) string {
	cfg := m.ctrl.Config()

	if r.kind == rowGroup {
		label := r.group.Label
		if cfg.FormatGroupLabel != nil {
			label = cfg.FormatGroupLabel(r.group)
		}
		return m.styles.groupLabel().Render(ansi.Truncate(" "+label, width, "…"))
	}

	selected := !cfg.Multiple && m.ctrl.Value().Contains(r.option.Value)
	label := m.optionLabel(r.option, selected)
	if cfg.FormatOptionLabel == nil && len(r.matches) > 0 {
		label = highlightMatches(label, r.matches, m.styles.match())
	}

	cursor := "  "
	if highlighted {
		cursor = "› "
	}
	text := ansi.Truncate(cursor+label, width, "…")
	style := m.styles.item(selected, highlighted, r.option.IsDisabled())
	return style.Width(width).Render(text)
}

func (m Model) optionLabel(opt *selection.Option, selected bool) string {
	if fn := m.ctrl.Config().FormatOptionLabel; fn != nil {
		return fn(opt, selected)
	}
	return opt.Label
}

// highlightMatches renders the runes starting at the given byte offsets with
// style.
func highlightMatches(label string, matches []int, style lipgloss.Style) string {
	marked := make(map[int]bool, len(matches))
	for _, i := range matches {
		marked[i] = true
	}

	var b strings.Builder
	for i, r := range label {
		if marked[i] {
			b.WriteString(style.Render(string(r)))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
