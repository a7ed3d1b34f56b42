package application

import (
	"errors"
	"testing"

	"jot/internal/domain"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
	}{
		{
			name:      "valid value",
			fieldName: "name",
			value:     "meeting notes",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "name",
			value:     "",
			wantErr:   true,
		},
		{
			name:      "whitespace only",
			fieldName: "vaultName",
			value:     "   ",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Fatalf("expected ValidationError, got %T", err)
				}
				if valErr.Field != tt.fieldName {
					t.Errorf("expected field %s, got %s", tt.fieldName, valErr.Field)
				}
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
		errMsg    string
	}{
		{
			name:      "valid name",
			fieldName: "name",
			value:     "todo",
			wantErr:   false,
		},
		{
			name:      "missing",
			fieldName: "newName",
			value:     "",
			wantErr:   true,
			errMsg:    "new name is required",
		},
		{
			name:      "separator",
			fieldName: "name",
			value:     "a/b",
			wantErr:   true,
			errMsg:    "name must not contain",
		},
		{
			name:      "reserved",
			fieldName: "name",
			value:     domain.MetadataDir,
			wantErr:   true,
			errMsg:    "name is reserved",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.fieldName, tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errMsg)
				}
				if !contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
				if !IsValidation(err) {
					t.Errorf("expected ValidationError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateKind(t *testing.T) {
	if err := ValidateKind(domain.KindNote, domain.KindNote, domain.KindFolder); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := ValidateKind(domain.KindVault, domain.KindNote, domain.KindFolder)
	if err == nil {
		t.Fatal("expected error for vault")
	}
	if err.Error() != "kind: expected note or folder, got: vault" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestMoveError(t *testing.T) {
	err := sameVault("todo", "work")
	if !errors.Is(err, domain.ErrSameVault) {
		t.Error("expected ErrSameVault")
	}
	if err.Error() != "cannot move todo to vault work: source and destination vault are the same" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
