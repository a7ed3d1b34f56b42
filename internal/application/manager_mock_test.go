package application

import (
	"errors"
	"path/filepath"
	"testing"

	"go.uber.org/mock/gomock"

	"jot/internal/domain"
	"jot/internal/ports/mocks"
	"jot/internal/vault"
)

var errRegistryWrite = errors.New("registry write failed")

func TestCreateVault_RegistryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockRegistry(ctrl)
	dir := t.TempDir()

	registry.EXPECT().Location("notes").Return("", false)
	registry.EXPECT().Add("notes", dir).Return(errRegistryWrite)

	m := NewManager(registry, nil)
	if _, err := m.CreateVault("notes", dir); !errors.Is(err, errRegistryWrite) {
		t.Fatalf("expected registry error, got %v", err)
	}
}

func TestCreateVault_InvalidNameSkipsRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockRegistry(ctrl)

	m := NewManager(registry, nil)
	_, err := m.CreateVault("a/b", t.TempDir())
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestEnterVault_SetCurrentFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockRegistry(ctrl)
	dir := t.TempDir()
	if _, err := vault.CreateVault(vault.VaultPath(dir, "work")); err != nil {
		t.Fatalf("failed to create vault: %v", err)
	}

	registry.EXPECT().Location("work").Return(dir, true).AnyTimes()
	registry.EXPECT().Current().Return("", false).AnyTimes()
	registry.EXPECT().SetCurrent("work").Return(errRegistryWrite)

	m := NewManager(registry, nil)
	if err := m.EnterVault("work"); !errors.Is(err, errRegistryWrite) {
		t.Fatalf("expected registry error, got %v", err)
	}
	if _, err := m.Current(); !errors.Is(err, domain.ErrNotInsideVault) {
		t.Errorf("expected no current vault after failed enter, got %v", err)
	}
}

func TestEnterVault_AlreadyCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockRegistry(ctrl)

	registry.EXPECT().Location("work").Return(filepath.Join(t.TempDir(), "vaults"), true)
	registry.EXPECT().Current().Return("work", true)

	m := NewManager(registry, nil)
	if err := m.EnterVault("work"); !errors.Is(err, domain.ErrAlreadyInVault) {
		t.Fatalf("expected ErrAlreadyInVault, got %v", err)
	}
}

func TestRefresh_ReloadsRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockRegistry(ctrl)

	registry.EXPECT().Refresh().Return(errRegistryWrite)
	registry.EXPECT().Refresh().Return(nil)
	registry.EXPECT().Current().Return("", false)

	m := NewManager(registry, nil)
	if err := m.Refresh(); !errors.Is(err, errRegistryWrite) {
		t.Fatalf("expected registry error, got %v", err)
	}
	if err := m.Refresh(); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if _, err := m.Current(); !errors.Is(err, domain.ErrNotInsideVault) {
		t.Errorf("expected ErrNotInsideVault, got %v", err)
	}
}
