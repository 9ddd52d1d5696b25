package selection

import "strings"

// Mode selects between single and multiple selection.
type Mode int

const (
	ModeSingle Mode = iota
	ModeMultiple
)

func (m Mode) String() string {
	if m == ModeMultiple {
		return "multiple"
	}
	return "single"
}

// ModeFor maps the host's isMultiple flag to a Mode.
func ModeFor(multiple bool) Mode {
	if multiple {
		return ModeMultiple
	}
	return ModeSingle
}

type valueKind int

const (
	valueNone valueKind = iota
	valueSingle
	valueMulti
)

// Value is the current selection: nothing, one option (single mode) or an
// ordered sequence of options (multiple mode). The zero value is None.
type Value struct {
	kind   valueKind
	single *Option
	multi  []*Option
}

// None returns the empty selection.
func None() Value {
	return Value{}
}

// Single returns a single-mode selection holding opt.
func Single(opt *Option) Value {
	if opt == nil {
		return None()
	}
	return Value{kind: valueSingle, single: opt}
}

// Multi returns a multiple-mode selection holding a copy of opts without nil
// entries. An empty sequence is still a multiple-mode value, distinct from
// None.
func Multi(opts ...*Option) Value {
	seq := make([]*Option, 0, len(opts))
	for _, opt := range opts {
		if opt != nil {
			seq = append(seq, opt)
		}
	}
	return Value{kind: valueMulti, multi: seq}
}

// IsNone reports whether nothing is selected.
func (v Value) IsNone() bool {
	return v.kind == valueNone
}

// Single returns the selected option for single-mode values.
func (v Value) Single() (*Option, bool) {
	if v.kind != valueSingle {
		return nil, false
	}
	return v.single, true
}

// Multi returns a copy of the selected options for multiple-mode values.
func (v Value) Multi() ([]*Option, bool) {
	if v.kind != valueMulti {
		return nil, false
	}
	seq := make([]*Option, len(v.multi))
	copy(seq, v.multi)
	return seq, true
}

// Options returns the selected options regardless of mode.
func (v Value) Options() []*Option {
	switch v.kind {
	case valueSingle:
		return []*Option{v.single}
	case valueMulti:
		out, _ := v.Multi()
		return out
	default:
		return nil
	}
}

// Len returns the number of selected options.
func (v Value) Len() int {
	switch v.kind {
	case valueSingle:
		return 1
	case valueMulti:
		return len(v.multi)
	default:
		return 0
	}
}

// Contains reports whether an option with the given value key is selected.
func (v Value) Contains(value string) bool {
	for _, opt := range v.Options() {
		if opt.Value == value {
			return true
		}
	}
	return false
}

// Values returns the value keys of the selection in order.
func (v Value) Values() []string {
	opts := v.Options()
	out := make([]string, 0, len(opts))
	for _, opt := range opts {
		out = append(out, opt.Value)
	}
	return out
}

// Labels returns the labels of the selection in order.
func (v Value) Labels() []string {
	opts := v.Options()
	out := make([]string, 0, len(opts))
	for _, opt := range opts {
		out = append(out, opt.Label)
	}
	return out
}

func (v Value) String() string {
	switch v.kind {
	case valueSingle:
		return v.single.Value
	case valueMulti:
		return "[" + strings.Join(v.Values(), ",") + "]"
	default:
		return "<none>"
	}
}
