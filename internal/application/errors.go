package application

import (
	"fmt"

	"jot/internal/domain"
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// MoveError represents a rejected move between vaults
type MoveError struct {
	Source      string
	Destination string
	Reason      error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("cannot move %s to vault %s: %v", e.Source, e.Destination, e.Reason)
}

func (e *MoveError) Is(target error) bool {
	return target == e.Reason
}

func (e *MoveError) Unwrap() error {
	return e.Reason
}

// sameVault reports a vmove whose destination is the vault the item is in.
func sameVault(source, vaultName string) error {
	return &MoveError{Source: source, Destination: vaultName, Reason: domain.ErrSameVault}
}
