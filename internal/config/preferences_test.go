package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPreferencesDefaults(t *testing.T) {
	prefs, path, err := LoadPreferences(PreferencesOptions{Dir: t.TempDir()})
	require.NoError(t, err)

	assert.Empty(t, path)
	assert.Equal(t, DefaultPreferences(), prefs)
}

func TestLoadPreferencesFromDir(t *testing.T) {
	dir := t.TempDir()
	contents := "primary_color: violet\nlog_level: debug\nlog_file: /tmp/tailselect.log\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(contents), 0o600))

	prefs, path, err := LoadPreferences(PreferencesOptions{Dir: dir})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "config.yaml"), path)
	assert.Equal(t, "violet", prefs.PrimaryColor)
	assert.Equal(t, "debug", prefs.LogLevel)
	assert.Equal(t, "/tmp/tailselect.log", prefs.LogFile)
	assert.False(t, prefs.NoColor)
}

func TestLoadPreferencesEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "prefs.yaml")
	require.NoError(t, os.WriteFile(file, []byte("primary_color: violet\n"), 0o600))

	t.Setenv("TAILSELECT_PRIMARY_COLOR", "rose")
	t.Setenv("TAILSELECT_NO_COLOR", "true")

	prefs, path, err := LoadPreferences(PreferencesOptions{File: file})
	require.NoError(t, err)

	assert.Equal(t, file, path)
	assert.Equal(t, "rose", prefs.PrimaryColor)
	assert.True(t, prefs.NoColor)
}

func TestLoadPreferencesMissingExplicitFile(t *testing.T) {
	_, _, err := LoadPreferences(PreferencesOptions{File: filepath.Join(t.TempDir(), "nope.yaml")})
	require.Error(t, err)
}
