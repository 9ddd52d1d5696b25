package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/tailselect/internal/theme"
)

// EnvPrefix is the prefix of environment variables that override preferences.
const EnvPrefix = "TAILSELECT"

// Preferences are user-level defaults that apply to every document.
type Preferences struct {
	PrimaryColor string `mapstructure:"primary_color"`
	LogLevel     string `mapstructure:"log_level"`
	LogFile      string `mapstructure:"log_file"`
	NoColor      bool   `mapstructure:"no_color"`
}

// DefaultPreferences returns the built-in preference values.
func DefaultPreferences() Preferences {
	return Preferences{
		PrimaryColor: theme.DefaultToken,
		LogLevel:     "info",
	}
}

// PreferencesOptions controls where preferences are read from.
type PreferencesOptions struct {
	// File overrides the default preferences path.
	File string
	// Dir overrides the directory searched for config.yaml.
	Dir string
}

// LoadPreferences merges defaults, the optional preferences file and
// TAILSELECT_* environment variables, in increasing priority.
func LoadPreferences(opts PreferencesOptions) (Preferences, string, error) {
	defaults := DefaultPreferences()

	v := viper.New()
	v.SetDefault("primary_color", defaults.PrimaryColor)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_file", defaults.LogFile)
	v.SetDefault("no_color", defaults.NoColor)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	resolved := ""
	switch {
	case opts.File != "":
		v.SetConfigFile(opts.File)
		if err := v.ReadInConfig(); err != nil {
			return Preferences{}, "", fmt.Errorf("read preferences %s: %w", opts.File, err)
		}
		resolved = opts.File
	default:
		dir := opts.Dir
		if dir == "" {
			var err error
			dir, err = defaultPreferencesDir()
			if err != nil {
				return Preferences{}, "", err
			}
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Preferences{}, "", fmt.Errorf("read preferences: %w", err)
			}
		} else {
			resolved = v.ConfigFileUsed()
		}
	}

	var prefs Preferences
	if err := v.Unmarshal(&prefs); err != nil {
		return Preferences{}, "", fmt.Errorf("decode preferences: %w", err)
	}
	return prefs, resolved, nil
}

func defaultPreferencesDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(base, "tailselect"), nil
}
