// Package selection models option lists and the rules that turn user actions
// into the next selection value.
package selection

// Option is a single selectable entry. A nil Disabled means the flag was never
// set; Normalize fills it in.
type Option struct {
	Value    string
	Label    string
	Disabled *bool
}

// NewOption builds an option with an explicit disabled flag.
func NewOption(value, label string, disabled bool) *Option {
	return &Option{Value: value, Label: label, Disabled: &disabled}
}

// IsDisabled reports the effective disabled flag, treating an unset flag as false.
func (o *Option) IsDisabled() bool {
	if o == nil || o.Disabled == nil {
		return false
	}
	return *o.Disabled
}

// HasDisabled reports whether the disabled flag was set explicitly.
func (o *Option) HasDisabled() bool {
	return o != nil && o.Disabled != nil
}

// Group is a labeled, non-selectable container of options.
type Group struct {
	Label   string
	Options []*Option
}

// ItemKind discriminates the entries of an option list.
type ItemKind int

const (
	KindOption ItemKind = iota
	KindGroup
)

func (k ItemKind) String() string {
	switch k {
	case KindOption:
		return "option"
	case KindGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Item is one entry of an option list: either a leaf option or a group.
type Item struct {
	kind   ItemKind
	option *Option
	group  *Group
}

// OptionItem wraps a leaf option.
func OptionItem(opt *Option) Item {
	return Item{kind: KindOption, option: opt}
}

// GroupItem wraps a group.
func GroupItem(group *Group) Item {
	return Item{kind: KindGroup, group: group}
}

// Kind returns the variant held by the item.
func (i Item) Kind() ItemKind {
	return i.kind
}

// Option returns the leaf option when the item is one.
func (i Item) Option() (*Option, bool) {
	if i.kind != KindOption {
		return nil, false
	}
	return i.option, true
}

// Group returns the group when the item is one.
func (i Item) Group() (*Group, bool) {
	if i.kind != KindGroup {
		return nil, false
	}
	return i.group, true
}

// Flatten returns every leaf option in list order, descending into groups.
// Nil options are skipped.
func Flatten(items []Item) []*Option {
	out := make([]*Option, 0, len(items))
	for _, item := range items {
		switch item.Kind() {
		case KindOption:
			if item.option != nil {
				out = append(out, item.option)
			}
		case KindGroup:
			if item.group == nil {
				continue
			}
			for _, opt := range item.group.Options {
				if opt != nil {
					out = append(out, opt)
				}
			}
		}
	}
	return out
}

// FindByValue returns the first leaf option whose value matches.
func FindByValue(items []Item, value string) (*Option, bool) {
	for _, opt := range Flatten(items) {
		if opt.Value == value {
			return opt, true
		}
	}
	return nil, false
}
