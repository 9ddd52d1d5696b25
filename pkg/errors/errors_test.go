package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("options.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "options.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "options.yaml")
}

func TestValidationErrorAggregatesFields(t *testing.T) {
	t.Parallel()

	err := NewValidationError("options[1].options[0].value", "is required", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "options[1].options[0].value", validationErr.Field)
	require.Contains(t, validationErr.Message, "is required")
}

func TestFormatErrorNamesExtension(t *testing.T) {
	t.Parallel()

	err := NewFormatError("options.json", ".json")

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	require.Equal(t, ".json", formatErr.Format)
	require.Contains(t, err.Error(), "options.json")
	require.Contains(t, NewFormatError("options", "").Error(), "missing file extension")
}
