package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	tserrors "github.com/alexisbeaulieu97/tailselect/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	colorTokenPattern = regexp.MustCompile(`^[a-z]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("color_token", func(fl validator.FieldLevel) bool {
			return colorTokenPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("option_value", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			return value != "" && strings.TrimSpace(value) == value
		})

		validateInst = v
	})

	return validateInst
}

// ValidateDocument performs schema and cross-field validation on an option document.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return tserrors.NewValidationError("document", "document is nil", nil)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]string)
	claim := func(value, field string) error {
		if previous, exists := seen[value]; exists {
			return tserrors.NewValidationError(field, fmt.Sprintf("duplicate option value %q (first declared at %s)", value, previous), nil)
		}
		seen[value] = field
		return nil
	}

	for i, entry := range doc.Options {
		if entry.IsGroup() {
			if entry.Value != "" {
				return tserrors.NewValidationError(fieldForEntry(i, "value"), "groups cannot carry a value", nil)
			}
			if entry.Disabled != nil {
				return tserrors.NewValidationError(fieldForEntry(i, "disabled"), "groups cannot be disabled; disable their options instead", nil)
			}
			for j, opt := range entry.Options {
				if err := claim(opt.Value, fieldForGroupOption(i, j, "value")); err != nil {
					return err
				}
			}
			continue
		}

		if entry.Value == "" {
			return tserrors.NewValidationError(fieldForEntry(i, "value"), "options require a value", nil)
		}
		if err := claim(entry.Value, fieldForEntry(i, "value")); err != nil {
			return err
		}
	}

	if !doc.Settings.Multiple && len(doc.Settings.Value) > 1 {
		return tserrors.NewValidationError("settings.value", "single selection accepts at most one initial value", nil)
	}
	for i, value := range doc.Settings.Value {
		if _, ok := seen[value]; !ok {
			return tserrors.NewValidationError(fmt.Sprintf("settings.value[%d]", i), fmt.Sprintf("references unknown option %q", value), nil)
		}
	}

	return nil
}

// convertValidationError normalizes validator errors into validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return tserrors.NewValidationError(field, msg, err)
	}

	return tserrors.NewValidationError("document", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	lowered := make([]string, 0, len(parts))
	for _, part := range parts[1:] {
		lowered = append(lowered, strings.ToLower(part))
	}
	if len(lowered) == 0 {
		return strings.ToLower(ns)
	}
	return strings.Join(lowered, ".")
}

func fieldForEntry(index int, field string) string {
	return fmt.Sprintf("options[%d].%s", index, field)
}

func fieldForGroupOption(group, index int, field string) string {
	return fmt.Sprintf("options[%d].options[%d].%s", group, index, field)
}
