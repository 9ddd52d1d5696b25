package config

import (
	"fmt"

	"github.com/alexisbeaulieu97/tailselect/internal/domain/selection"
	"github.com/alexisbeaulieu97/tailselect/internal/theme"
)

// Items converts the document's entries into a raw option list. Disabled flags
// that were not written in the document stay unset.
func (d *Document) Items() []selection.Item {
	items := make([]selection.Item, 0, len(d.Options))
	for _, entry := range d.Options {
		if entry.IsGroup() {
			group := &selection.Group{Label: entry.Label, Options: make([]*selection.Option, 0, len(entry.Options))}
			for _, opt := range entry.Options {
				group.Options = append(group.Options, &selection.Option{
					Value:    opt.Value,
					Label:    opt.Label,
					Disabled: copyFlag(opt.Disabled),
				})
			}
			items = append(items, selection.GroupItem(group))
			continue
		}
		items = append(items, selection.OptionItem(&selection.Option{
			Value:    entry.Value,
			Label:    entry.Label,
			Disabled: copyFlag(entry.Disabled),
		}))
	}
	return items
}

// InitialValue resolves settings.value against list, which should be the
// normalized list the control renders so picks compare by identity.
func (d *Document) InitialValue(list []selection.Item) selection.Value {
	if len(d.Settings.Value) == 0 {
		return selection.None()
	}

	opts := make([]*selection.Option, 0, len(d.Settings.Value))
	for _, value := range d.Settings.Value {
		if opt, ok := selection.FindByValue(list, value); ok {
			opts = append(opts, opt)
		}
	}
	if len(opts) == 0 {
		return selection.None()
	}
	if d.Settings.Multiple {
		return selection.Multi(opts...)
	}
	return selection.Single(opts[0])
}

// Warnings reports settings that load fine but will not behave as written.
func (d *Document) Warnings() []string {
	var warnings []string
	if color := d.Settings.PrimaryColor; color != "" && !theme.IsKnown(color) {
		warnings = append(warnings, fmt.Sprintf("primary_color %q is not recognized; falling back to %q", color, theme.DefaultToken))
	}
	for i, entry := range d.Options {
		if entry.IsGroup() && len(entry.Options) == 0 {
			warnings = append(warnings, fmt.Sprintf("options[%d] group %q has no options", i, entry.Label))
		}
	}
	return warnings
}

func copyFlag(flag *bool) *bool {
	if flag == nil {
		return nil
	}
	v := *flag
	return &v
}
