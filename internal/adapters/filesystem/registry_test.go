package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jot/internal/domain"
)

func setupTestRegistry(t *testing.T) (*Registry, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "jot", RegistryFileName)
	r, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry failed: %v", err)
	}
	return r, path
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	r, path := setupTestRegistry(t)

	if len(r.Vaults()) != 0 {
		t.Errorf("expected no vaults, got %v", r.Vaults())
	}
	if _, ok := r.Current(); ok {
		t.Error("expected no current vault")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("loading should not create the registry file")
	}
}

func TestRegistry_PersistsEveryMutation(t *testing.T) {
	r, path := setupTestRegistry(t)

	if err := r.Add("notes", "/home/me/vaults"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := r.SetCurrent("notes"); err != nil {
		t.Fatalf("SetCurrent failed: %v", err)
	}

	reloaded, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry failed: %v", err)
	}
	dir, ok := reloaded.Location("notes")
	if !ok || dir != "/home/me/vaults" {
		t.Errorf("Location(notes) = %q, %v", dir, ok)
	}
	if current, ok := reloaded.Current(); !ok || current != "notes" {
		t.Errorf("Current() = %q, %v", current, ok)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), `current_vault = "notes"`) {
		t.Errorf("unexpected registry content:\n%s", data)
	}
}

func TestRegistry_Errors(t *testing.T) {
	r, _ := setupTestRegistry(t)
	if err := r.Add("a", "/x"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := r.Add("b", "/y"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	tests := []struct {
		name string
		call func() error
		want error
	}{
		{name: "add duplicate", call: func() error { return r.Add("a", "/z") }, want: domain.ErrVaultExists},
		{name: "remove unknown", call: func() error { return r.Remove("c") }, want: domain.ErrVaultNotFound},
		{name: "rename unknown", call: func() error { return r.Rename("c", "d") }, want: domain.ErrVaultNotFound},
		{name: "rename onto existing", call: func() error { return r.Rename("a", "b") }, want: domain.ErrVaultExists},
		{name: "relocate unknown", call: func() error { return r.SetLocation("c", "/z") }, want: domain.ErrVaultNotFound},
		{name: "enter unknown", call: func() error { return r.SetCurrent("c") }, want: domain.ErrVaultNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestRegistry_RenameAndRemoveTrackCurrent(t *testing.T) {
	r, _ := setupTestRegistry(t)
	if err := r.Add("a", "/x"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := r.SetCurrent("a"); err != nil {
		t.Fatalf("SetCurrent failed: %v", err)
	}

	if err := r.Rename("a", "b"); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	if current, _ := r.Current(); current != "b" {
		t.Errorf("expected current vault b, got %q", current)
	}
	if dir, _ := r.Location("b"); dir != "/x" {
		t.Errorf("expected renamed vault to keep its location, got %q", dir)
	}

	if err := r.Remove("b"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, ok := r.Current(); ok {
		t.Error("removing the current vault should clear it")
	}
}

func TestLoadRegistry_DropsDanglingCurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), RegistryFileName)
	content := "current_vault = \"gone\"\n\n[vaults]\nnotes = \"/x\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	r, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry failed: %v", err)
	}
	if _, ok := r.Current(); ok {
		t.Error("a current vault missing from the vault map should be dropped")
	}
	if _, ok := r.Location("notes"); !ok {
		t.Error("expected vault notes to be loaded")
	}
}

func TestRegistry_RefreshSeesOtherWriters(t *testing.T) {
	r, path := setupTestRegistry(t)
	if err := r.Add("work", "/vaults"); err != nil {
		t.Fatal(err)
	}

	other, err := LoadRegistry(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := other.Add("archive", "/vaults"); err != nil {
		t.Fatal(err)
	}
	if err := other.SetCurrent("archive"); err != nil {
		t.Fatal(err)
	}

	if _, ok := r.Location("archive"); ok {
		t.Fatal("registry should not see other writers before Refresh")
	}
	if err := r.Refresh(); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if current, _ := r.Current(); current != "archive" {
		t.Errorf("Current() = %q, want archive", current)
	}
	if len(r.Vaults()) != 2 {
		t.Errorf("expected 2 vaults, got %v", r.Vaults())
	}

	if err := os.WriteFile(path, []byte("not = [toml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := r.Refresh(); err == nil {
		t.Error("expected a parse error")
	}
	if current, _ := r.Current(); current != "archive" {
		t.Errorf("a failed Refresh should keep the loaded state, got current %q", current)
	}
}
