package application

import (
	"errors"
	"fmt"
	"strings"

	"jot/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// ValidateName checks a required item name and reports the invalid-name
// error under fieldName.
func ValidateName(fieldName, value string) error {
	if err := ValidateRequired(fieldName, value); err != nil {
		return err
	}
	if err := domain.ValidateName(value); err != nil {
		var nameErr *domain.NameError
		if errors.As(err, &nameErr) {
			return &ValidationError{
				Field:   fieldName,
				Message: fmt.Sprintf("%s %s", formatFieldName(fieldName), nameErr.Reason),
			}
		}
		return err
	}
	return nil
}

// ValidateKind checks that kind is one of allowed.
func ValidateKind(kind domain.ItemKind, allowed ...domain.ItemKind) error {
	for _, k := range allowed {
		if k == kind {
			return nil
		}
	}
	names := make([]string, len(allowed))
	for i, k := range allowed {
		names[i] = k.String()
	}
	return &ValidationError{
		Field:   "kind",
		Message: fmt.Sprintf("expected %s, got: %s", strings.Join(names, " or "), kind),
	}
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "newName" -> "new name")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"newName":      "new name",
		"vaultName":    "vault name",
		"parentDir":    "parent directory",
		"destination":  "destination",
		"templateName": "template name",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
