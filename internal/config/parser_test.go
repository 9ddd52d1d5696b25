package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tailselect/internal/domain/selection"
	tserrors "github.com/alexisbeaulieu97/tailselect/pkg/errors"
)

const animalsYAML = `settings:
  placeholder: "Pick animals"
  multiple: true
  searchable: true
  primary_color: emerald
  value: [fox, owl]
options:
  - value: fox
    label: "Fox"
  - value: cat
    label: "Cat"
    disabled: true
  - label: "Birds"
    options:
      - value: owl
        label: "Owl"
      - value: emu
        label: "Emu"
        disabled: false
`

const animalsTOML = `[settings]
placeholder = "Pick animals"
clearable = true
value = ["emu"]

[[options]]
value = "fox"
label = "Fox"

[[options]]
label = "Birds"

  [[options.options]]
  value = "emu"
  label = "Emu"
  disabled = true
`

func TestParseConfig(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		file     string
		contents string
		assert   func(t *testing.T, doc *Document, err error)
	}{
		{
			name:     "yaml document is parsed",
			file:     "animals.yaml",
			contents: animalsYAML,
			assert: func(t *testing.T, doc *Document, err error) {
				require.NoError(t, err)
				assert.Equal(t, "Pick animals", doc.Settings.Placeholder)
				assert.True(t, doc.Settings.Multiple)
				assert.Equal(t, "emerald", doc.Settings.PrimaryColor)
				require.Len(t, doc.Options, 3)
				assert.False(t, doc.Options[0].IsGroup())
				assert.Nil(t, doc.Options[0].Disabled)
				require.NotNil(t, doc.Options[1].Disabled)
				assert.True(t, *doc.Options[1].Disabled)
				assert.True(t, doc.Options[2].IsGroup())
				assert.Len(t, doc.Options[2].Options, 2)
			},
		},
		{
			name:     "toml document is parsed",
			file:     "animals.toml",
			contents: animalsTOML,
			assert: func(t *testing.T, doc *Document, err error) {
				require.NoError(t, err)
				assert.True(t, doc.Settings.Clearable)
				require.Len(t, doc.Options, 2)
				require.True(t, doc.Options[1].IsGroup())
				require.Len(t, doc.Options[1].Options, 1)
				assert.Equal(t, "emu", doc.Options[1].Options[0].Value)
			},
		},
		{
			name:     "syntax errors carry the line",
			file:     "broken.yaml",
			contents: "options:\n  - value: [1, 2\n",
			assert: func(t *testing.T, doc *Document, err error) {
				require.Error(t, err)
				var parseErr *tserrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Positive(t, parseErr.Line)
			},
		},
		{
			name:     "missing label fails validation",
			file:     "nolabel.yaml",
			contents: "options:\n  - value: fox\n",
			assert: func(t *testing.T, doc *Document, err error) {
				var valErr *tserrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				assert.Equal(t, "options[0].label", valErr.Field)
			},
		},
		{
			name:     "leaf without value fails validation",
			file:     "novalue.yaml",
			contents: "options:\n  - label: Fox\n",
			assert: func(t *testing.T, doc *Document, err error) {
				var valErr *tserrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				assert.Equal(t, "options[0].value", valErr.Field)
			},
		},
		{
			name:     "duplicate values are rejected",
			file:     "dup.yaml",
			contents: "options:\n  - {value: fox, label: Fox}\n  - label: More\n    options:\n      - {value: fox, label: Fox again}\n",
			assert: func(t *testing.T, doc *Document, err error) {
				var valErr *tserrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				assert.Equal(t, "options[1].options[0].value", valErr.Field)
				assert.Contains(t, valErr.Message, "duplicate")
			},
		},
		{
			name:     "group with a value is rejected",
			file:     "groupvalue.yaml",
			contents: "options:\n  - label: Birds\n    value: birds\n    options:\n      - {value: owl, label: Owl}\n",
			assert: func(t *testing.T, doc *Document, err error) {
				var valErr *tserrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				assert.Equal(t, "options[0].value", valErr.Field)
			},
		},
		{
			name:     "unknown initial value is rejected",
			file:     "unknown.yaml",
			contents: "settings:\n  value: [yak]\noptions:\n  - {value: fox, label: Fox}\n",
			assert: func(t *testing.T, doc *Document, err error) {
				var valErr *tserrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				assert.Equal(t, "settings.value[0]", valErr.Field)
			},
		},
		{
			name:     "several initial values need multiple mode",
			file:     "single.yaml",
			contents: "settings:\n  value: [fox, cat]\noptions:\n  - {value: fox, label: Fox}\n  - {value: cat, label: Cat}\n",
			assert: func(t *testing.T, doc *Document, err error) {
				var valErr *tserrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				assert.Equal(t, "settings.value", valErr.Field)
			},
		},
		{
			name:     "malformed color token is rejected",
			file:     "color.yaml",
			contents: "settings:\n  primary_color: \"Blue-500\"\noptions: []\n",
			assert: func(t *testing.T, doc *Document, err error) {
				var valErr *tserrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				assert.Equal(t, "settings.primarycolor", valErr.Field)
			},
		},
		{
			name:     "unsupported extension",
			file:     "animals.json",
			contents: "{}",
			assert: func(t *testing.T, doc *Document, err error) {
				var formatErr *tserrors.FormatError
				require.ErrorAs(t, err, &formatErr)
				assert.Equal(t, ".json", formatErr.Format)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), tc.file)
			require.NoError(t, os.WriteFile(path, []byte(tc.contents), 0o600))

			doc, err := LoadDocument(path)
			tc.assert(t, doc, err)
		})
	}
}

func TestLoadDocumentMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadDocument(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *tserrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDocumentItemsAndInitialValue(t *testing.T) {
	t.Parallel()

	doc, err := ParseDocument("animals.yaml", []byte(animalsYAML), FormatYAML)
	require.NoError(t, err)

	items := doc.Items()
	require.Len(t, items, 3)
	assert.Equal(t, selection.KindOption, items[0].Kind())
	assert.Equal(t, selection.KindGroup, items[2].Kind())

	fox, ok := items[0].Option()
	require.True(t, ok)
	assert.False(t, fox.HasDisabled(), "absent flags stay unset until normalization")

	list := selection.Normalize(items)
	value := doc.InitialValue(list)
	seq, ok := value.Multi()
	require.True(t, ok)
	require.Len(t, seq, 2)

	owl, ok := selection.FindByValue(list, "owl")
	require.True(t, ok)
	assert.Same(t, owl, seq[1])
}

func TestDocumentInitialValueSingle(t *testing.T) {
	t.Parallel()

	doc, err := ParseDocument("animals.toml", []byte(animalsTOML), FormatTOML)
	require.NoError(t, err)

	value := doc.InitialValue(selection.Normalize(doc.Items()))
	opt, ok := value.Single()
	require.True(t, ok)
	assert.Equal(t, "emu", opt.Value)
	assert.True(t, opt.IsDisabled())

	doc.Settings.Value = nil
	assert.True(t, doc.InitialValue(nil).IsNone())
}

func TestDocumentWarnings(t *testing.T) {
	t.Parallel()

	doc := &Document{
		Settings: Settings{PrimaryColor: "magenta"},
		Options: []Entry{
			{Label: "Empty", Options: []OptionEntry{}},
		},
	}
	require.NoError(t, ValidateDocument(doc))

	warnings := doc.Warnings()
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "magenta")
	assert.Contains(t, warnings[1], "no options")
}

func TestFormatForPath(t *testing.T) {
	t.Parallel()

	format, err := FormatForPath("a/b/OPTIONS.YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, format)

	format, err = FormatForPath("options.toml")
	require.NoError(t, err)
	assert.Equal(t, FormatTOML, format)

	_, err = FormatForPath("options")
	require.Error(t, err)
}
