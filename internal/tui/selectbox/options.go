package selectbox

import (
	"sort"

	"github.com/sahilm/fuzzy"

	"github.com/alexisbeaulieu97/tailselect/internal/domain/selection"
)

const defaultMaxRows = 8

type rowKind int

const (
	rowGroup rowKind = iota
	rowOption
)

// row is one visible line of the options menu.
type row struct {
	kind    rowKind
	label   string
	option  *selection.Option
	group   *selection.Group
	matches []int
}

func (r row) selectable() bool {
	return r.kind == rowOption && !r.option.IsDisabled()
}

// OptionsList filters the normalized list by the search text and tracks the
// highlighted row. It never changes the selection itself; the caller feeds the
// highlighted option back into the controller as a pick.
type OptionsList struct {
	rows     []row
	cursor   int
	offset   int
	maxRows  int
	multiple bool
	value    selection.Value
}

// NewOptionsList creates an empty list showing at most maxRows rows at once.
func NewOptionsList(maxRows int) OptionsList {
	if maxRows <= 0 {
		maxRows = defaultMaxRows
	}
	return OptionsList{maxRows: maxRows, cursor: -1}
}

// Sync rebuilds the visible rows. In multiple mode options that are already
// selected are hidden. The highlight stays on the same option when it survives
// the rebuild.
func (l *OptionsList) Sync(list []selection.Item, text string, multiple bool, value selection.Value) {
	var highlighted *selection.Option
	if r, ok := l.Highlighted(); ok {
		highlighted = r
	}

	l.multiple = multiple
	l.value = value
	l.rows = make([]row, 0, len(list))

	for _, item := range list {
		switch item.Kind() {
		case selection.KindGroup:
			group, _ := item.Group()
			if group == nil {
				continue
			}
			children := l.filter(group.Options, text)
			if len(children) == 0 {
				continue
			}
			l.rows = append(l.rows, row{kind: rowGroup, label: group.Label, group: group})
			l.rows = append(l.rows, children...)
		case selection.KindOption:
			opt, _ := item.Option()
			l.rows = append(l.rows, l.filter([]*selection.Option{opt}, text)...)
		}
	}

	l.cursor = -1
	if highlighted != nil {
		for i, r := range l.rows {
			if r.kind == rowOption && r.option == highlighted && r.selectable() {
				l.cursor = i
				break
			}
		}
	}
	if l.cursor < 0 {
		l.cursor = l.firstSelectable()
	}
	l.scrollToCursor()
}

func (l *OptionsList) filter(opts []*selection.Option, text string) []row {
	visible := make([]*selection.Option, 0, len(opts))
	for _, opt := range opts {
		if opt == nil || (l.multiple && l.value.Contains(opt.Value)) {
			continue
		}
		visible = append(visible, opt)
	}

	if text == "" {
		out := make([]row, 0, len(visible))
		for _, opt := range visible {
			out = append(out, row{kind: rowOption, label: opt.Label, option: opt})
		}
		return out
	}

	labels := make([]string, len(visible))
	for i, opt := range visible {
		labels[i] = opt.Label
	}
	matches := fuzzy.Find(text, labels)
	sort.Slice(matches, func(i, j int) bool { return matches[i].Index < matches[j].Index })

	out := make([]row, 0, len(matches))
	for _, m := range matches {
		opt := visible[m.Index]
		out = append(out, row{kind: rowOption, label: opt.Label, option: opt, matches: m.MatchedIndexes})
	}
	return out
}

// Empty reports whether no rows are visible.
func (l *OptionsList) Empty() bool {
	return len(l.rows) == 0
}

// Highlighted returns the option under the cursor.
func (l *OptionsList) Highlighted() (*selection.Option, bool) {
	if l.cursor < 0 || l.cursor >= len(l.rows) || !l.rows[l.cursor].selectable() {
		return nil, false
	}
	return l.rows[l.cursor].option, true
}

// Next moves the highlight to the next selectable row, wrapping around.
func (l *OptionsList) Next() {
	l.step(1)
}

// Prev moves the highlight to the previous selectable row, wrapping around.
func (l *OptionsList) Prev() {
	l.step(-1)
}

func (l *OptionsList) step(dir int) {
	n := len(l.rows)
	if n == 0 {
		return
	}
	start := l.cursor
	if start < 0 {
		start = 0
		if dir < 0 {
			start = n - 1
		}
		if l.rows[start].selectable() {
			l.cursor = start
			l.scrollToCursor()
			return
		}
	}
	for i := 1; i <= n; i++ {
		idx := ((start+dir*i)%n + n) % n
		if l.rows[idx].selectable() {
			l.cursor = idx
			l.scrollToCursor()
			return
		}
	}
}

func (l *OptionsList) firstSelectable() int {
	for i, r := range l.rows {
		if r.selectable() {
			return i
		}
	}
	return -1
}

func (l *OptionsList) scrollToCursor() {
	if l.offset > len(l.rows)-l.maxRows {
		l.offset = max(len(l.rows)-l.maxRows, 0)
	}
	if l.cursor < 0 {
		return
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+l.maxRows {
		l.offset = l.cursor - l.maxRows + 1
	}
	// Keep a group header visible above its first option.
	if l.offset > 0 && l.offset == l.cursor && l.rows[l.offset-1].kind == rowGroup {
		l.offset--
	}
}

// visible returns the rows inside the scroll window and the index of the
// first one.
func (l *OptionsList) visible() ([]row, int) {
	end := min(l.offset+l.maxRows, len(l.rows))
	return l.rows[l.offset:end], l.offset
}

// rowAt returns the row displayed on the given line of the window.
func (l *OptionsList) rowAt(line int) (row, bool) {
	rows, _ := l.visible()
	if line < 0 || line >= len(rows) {
		return row{}, false
	}
	return rows[line], true
}

// Height returns the number of lines the list occupies.
func (l *OptionsList) Height() int {
	if len(l.rows) == 0 {
		return 1
	}
	return min(len(l.rows), l.maxRows)
}
