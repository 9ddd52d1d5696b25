package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const fruitDocument = `settings:
  primary_color: mauve
options:
  - value: apple
    label: Apple
  - label: Citrus
    options:
      - value: lemon
        label: Lemon
      - value: lime
        label: Lime
`

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestValidateCommandReportsOptionsAndWarnings(t *testing.T) {
	path := writeFile(t, "fruit.yaml", fruitDocument)

	output, err := executeRoot(t, "validate", path)
	require.NoError(t, err)
	require.Contains(t, output, "✓ "+path+": 3 options")
	require.Contains(t, output, `primary_color "mauve" is not recognized`)
}

func TestValidateCommandFailsOnInvalidDocument(t *testing.T) {
	good := writeFile(t, "good.yaml", fruitDocument)
	bad := writeFile(t, "bad.yaml", "options:\n  - value: apple\n")
	unknown := writeFile(t, "fruit.json", "{}")

	output, err := executeRoot(t, "validate", good, bad, unknown)
	require.Error(t, err)
	require.Contains(t, err.Error(), "2 of 3 documents failed validation")
	require.Contains(t, output, "✗ "+bad)
	require.Contains(t, output, "✗ "+unknown)
}

func TestValidateCommandRequiresArguments(t *testing.T) {
	_, err := executeRoot(t, "validate")
	require.Error(t, err)
}
