package selection

// Normalize returns a copy of items in which every option carries an explicit
// disabled flag. Options that already have one are returned as-is (same
// pointer); the input slice and its groups are never mutated. Nil options and
// nil groups are dropped.
func Normalize(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		switch item.Kind() {
		case KindGroup:
			group := item.group
			if group == nil {
				continue
			}
			options := make([]*Option, 0, len(group.Options))
			for _, opt := range group.Options {
				if opt != nil {
					options = append(options, normalizeOption(opt))
				}
			}
			out = append(out, GroupItem(&Group{Label: group.Label, Options: options}))
		case KindOption:
			if item.option != nil {
				out = append(out, OptionItem(normalizeOption(item.option)))
			}
		}
	}
	return out
}

func normalizeOption(opt *Option) *Option {
	if opt == nil || opt.HasDisabled() {
		return opt
	}
	disabled := false
	return &Option{Value: opt.Value, Label: opt.Label, Disabled: &disabled}
}

// Normalizer caches the normalized form of an option list and recomputes it
// only when the list is replaced by a different slice. Mutating the elements of
// the current slice in place does not trigger recomputation.
type Normalizer struct {
	source     []Item
	normalized []Item
	generation uint64
	computed   uint64
}

// Set installs a new raw option list. It reports whether the list was treated
// as a replacement.
func (n *Normalizer) Set(items []Item) bool {
	if sameSlice(n.source, items) && n.generation > 0 {
		return false
	}
	n.source = items
	n.generation++
	return true
}

// List returns the normalized list, recomputing it if the source was replaced
// since the last call.
func (n *Normalizer) List() []Item {
	if n.computed != n.generation {
		n.normalized = Normalize(n.source)
		n.computed = n.generation
	}
	return n.normalized
}

// Generation counts how many times the source list has been replaced.
func (n *Normalizer) Generation() uint64 {
	return n.generation
}

func sameSlice(a, b []Item) bool {
	if len(a) != len(b) || cap(a) != cap(b) {
		return false
	}
	if len(a) == 0 {
		return (a == nil) == (b == nil)
	}
	return &a[0] == &b[0]
}
