package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors. Typed errors below report Is() against these.
var (
	ErrInvalidName    = errors.New("invalid name")
	ErrPathNotFound   = errors.New("couldn't find the path specified")
	ErrOutOfBounds    = errors.New("path crosses the bounds of vault")
	ErrItemExists     = errors.New("item already exists")
	ErrItemNotFound   = errors.New("item not found")
	ErrVaultExists    = errors.New("vault already exists")
	ErrVaultNotFound  = errors.New("vault not found")
	ErrNotInsideVault = errors.New("not inside a vault")
	ErrAlreadyInVault = errors.New("already in vault")
	ErrFileSystem     = errors.New("file system error")
	ErrAliasNotFound  = errors.New("alias does not exist")
	ErrSameVault      = errors.New("source and destination vault are the same")
	ErrCancelled      = errors.New("cancelled")
)

// NameError reports a name that fails ValidateName.
type NameError struct {
	Name   string
	Reason string
}

func (e *NameError) Error() string {
	if e.Reason == "" {
		return ErrInvalidName.Error()
	}
	return fmt.Sprintf("%s: %q %s", ErrInvalidName, e.Name, e.Reason)
}

func (e *NameError) Is(target error) bool {
	return target == ErrInvalidName
}

// ItemError reports a note or folder that exists where it must not, or is
// missing where it must exist.
type ItemError struct {
	Kind ItemKind
	Name string
	Err  error // ErrItemExists or ErrItemNotFound
}

// ItemExists returns an ItemAlreadyExists error.
func ItemExists(kind ItemKind, name string) error {
	return &ItemError{Kind: kind, Name: name, Err: ErrItemExists}
}

// ItemNotFound returns an ItemNotFound error.
func ItemNotFound(kind ItemKind, name string) error {
	return &ItemError{Kind: kind, Name: name, Err: ErrItemNotFound}
}

func (e *ItemError) Error() string {
	if e.Err == ErrItemExists {
		return fmt.Sprintf("a %s named %s already exists in this location", e.Kind, e.Name)
	}
	return fmt.Sprintf("%s %s not found", e.Kind, e.Name)
}

func (e *ItemError) Is(target error) bool {
	return target == e.Err
}

// VaultError reports a registry-level failure for a named vault.
type VaultError struct {
	Name string
	Err  error // ErrVaultExists, ErrVaultNotFound or ErrAlreadyInVault
}

// VaultExists returns a VaultAlreadyExists error.
func VaultExists(name string) error {
	return &VaultError{Name: name, Err: ErrVaultExists}
}

// VaultNotFound returns a VaultNotFound error.
func VaultNotFound(name string) error {
	return &VaultError{Name: name, Err: ErrVaultNotFound}
}

// AlreadyInVault returns an AlreadyInVault error.
func AlreadyInVault(name string) error {
	return &VaultError{Name: name, Err: ErrAlreadyInVault}
}

func (e *VaultError) Error() string {
	switch e.Err {
	case ErrVaultExists:
		return fmt.Sprintf("vault %s already exists", e.Name)
	case ErrVaultNotFound:
		return fmt.Sprintf("vault %s doesn't exist", e.Name)
	case ErrAlreadyInVault:
		return fmt.Sprintf("already in vault %s", e.Name)
	default:
		return fmt.Sprintf("vault %s: %v", e.Name, e.Err)
	}
}

func (e *VaultError) Is(target error) bool {
	return target == e.Err
}

// FileSystemError wraps an I/O failure with the operation and path
// involved.
type FileSystemError struct {
	Op   string
	Path string
	Err  error
}

// FileSystem wraps err as a FileSystemError, or returns nil when err is nil.
func FileSystem(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &FileSystemError{Op: op, Path: path, Err: err}
}

func (e *FileSystemError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileSystemError) Is(target error) bool {
	return target == ErrFileSystem
}

func (e *FileSystemError) Unwrap() error {
	return e.Err
}

// AliasError reports a note without an alias.
type AliasError struct {
	Note string
}

func (e *AliasError) Error() string {
	return fmt.Sprintf("alias for note %s does not exist", e.Note)
}

func (e *AliasError) Is(target error) bool {
	return target == ErrAliasNotFound
}
