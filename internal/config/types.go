package config

// Document is an option document: display settings plus the option list.
type Document struct {
	Settings Settings `yaml:"settings,omitempty" toml:"settings,omitempty"`
	Options  []Entry  `yaml:"options" toml:"options" validate:"dive"`
}

// Settings mirrors the select control's configuration surface.
type Settings struct {
	Placeholder       string `yaml:"placeholder,omitempty" toml:"placeholder,omitempty" validate:"max=120"`
	SearchPlaceholder string `yaml:"search_placeholder,omitempty" toml:"search_placeholder,omitempty" validate:"max=120"`
	NoOptionsMessage  string `yaml:"no_options_message,omitempty" toml:"no_options_message,omitempty" validate:"max=120"`
	PrimaryColor      string `yaml:"primary_color,omitempty" toml:"primary_color,omitempty" validate:"omitempty,color_token"`

	Multiple   bool `yaml:"multiple,omitempty" toml:"multiple,omitempty"`
	Clearable  bool `yaml:"clearable,omitempty" toml:"clearable,omitempty"`
	Searchable bool `yaml:"searchable,omitempty" toml:"searchable,omitempty"`
	Disabled   bool `yaml:"disabled,omitempty" toml:"disabled,omitempty"`
	Loading    bool `yaml:"loading,omitempty" toml:"loading,omitempty"`
	MenuOpen   bool `yaml:"menu_open,omitempty" toml:"menu_open,omitempty"`

	// Value lists the option values selected initially.
	Value []string `yaml:"value,omitempty" toml:"value,omitempty" validate:"omitempty,dive,option_value"`
}

// Entry is one item of the option list. An entry that has an options key is
// a group; anything else is a leaf option.
type Entry struct {
	Value    string        `yaml:"value,omitempty" toml:"value,omitempty" validate:"omitempty,option_value"`
	Label    string        `yaml:"label" toml:"label" validate:"required,max=200"`
	Disabled *bool         `yaml:"disabled,omitempty" toml:"disabled,omitempty"`
	Options  []OptionEntry `yaml:"options,omitempty" toml:"options,omitempty" validate:"omitempty,dive"`
}

// IsGroup reports whether the entry declared an options key.
func (e Entry) IsGroup() bool {
	return e.Options != nil
}

// OptionEntry is a leaf option nested inside a group.
type OptionEntry struct {
	Value    string `yaml:"value" toml:"value" validate:"required,option_value"`
	Label    string `yaml:"label" toml:"label" validate:"required,max=200"`
	Disabled *bool  `yaml:"disabled,omitempty" toml:"disabled,omitempty"`
}
