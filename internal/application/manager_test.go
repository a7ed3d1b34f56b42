package application

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"jot/internal/adapters/filesystem"
	"jot/internal/domain"
	"jot/internal/vault"
)

func setupTestManager(t *testing.T) (*Manager, string) {
	t.Helper()
	root := t.TempDir()
	registry, err := filesystem.LoadRegistry(filepath.Join(root, filesystem.RegistryFileName))
	if err != nil {
		t.Fatalf("failed to load registry: %v", err)
	}
	return NewManager(registry, nil), root
}

func mustCreateVault(t *testing.T, m *Manager, name, parentDir string) *vault.Vault {
	t.Helper()
	v, err := m.CreateVault(name, parentDir)
	if err != nil {
		t.Fatalf("CreateVault(%q) error = %v", name, err)
	}
	return v
}

func mustEnter(t *testing.T, m *Manager, name string) {
	t.Helper()
	if err := m.EnterVault(name); err != nil {
		t.Fatalf("EnterVault(%q) error = %v", name, err)
	}
}

func TestCreateVault_Uniqueness(t *testing.T) {
	m, root := setupTestManager(t)

	mustCreateVault(t, m, "notes", filepath.Join(root, "a"))

	_, err := m.CreateVault("notes", filepath.Join(root, "b"))
	if !errors.Is(err, domain.ErrVaultExists) {
		t.Fatalf("expected ErrVaultExists, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "b", "notes")); !os.IsNotExist(err) {
		t.Error("second vault directory should not exist")
	}
}

func TestCreateVault_Errors(t *testing.T) {
	m, root := setupTestManager(t)

	tests := []struct {
		name    string
		vault   string
		setup   func()
		wantErr error
	}{
		{
			name:    "invalid name",
			vault:   "a:b",
			wantErr: nil,
		},
		{
			name:  "directory already present",
			vault: "taken",
			setup: func() {
				if err := os.MkdirAll(filepath.Join(root, "taken"), 0o755); err != nil {
					t.Fatal(err)
				}
			},
			wantErr: domain.ErrItemExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}
			_, err := m.CreateVault(tt.vault, root)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.wantErr == nil {
				if !IsValidation(err) {
					t.Errorf("expected ValidationError, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if _, ok := m.registry.Location(tt.vault); ok {
				t.Error("vault should not be registered")
			}
		})
	}
}

func TestVaultLifecycle_Scenario(t *testing.T) {
	m, root := setupTestManager(t)
	parent := filepath.Join(root, "tests", "vaults")

	mustCreateVault(t, m, "v1", parent)
	mustEnter(t, m, "v1")

	if _, err := m.CreateNote("note_1"); err != nil {
		t.Fatalf("CreateNote() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(parent, "v1", "note_1.md")); err != nil {
		t.Fatalf("note file missing: %v", err)
	}

	current, err := m.Current()
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if _, err := current.NoteNamed("note_1"); err != nil {
		t.Errorf("NoteNamed() error = %v", err)
	}

	if err := m.RemoveVault("v1"); err != nil {
		t.Fatalf("RemoveVault() error = %v", err)
	}
	if _, ok := m.registry.Location("v1"); ok {
		t.Error("v1 should be unregistered")
	}
	if _, ok := m.CurrentName(); ok {
		t.Error("current vault should be cleared")
	}
	if _, err := m.Current(); !errors.Is(err, domain.ErrNotInsideVault) {
		t.Errorf("expected ErrNotInsideVault, got %v", err)
	}
	if err := m.EnterVault("v1"); !errors.Is(err, domain.ErrVaultNotFound) {
		t.Errorf("expected ErrVaultNotFound, got %v", err)
	}
}

func TestEnterVault(t *testing.T) {
	m, root := setupTestManager(t)
	mustCreateVault(t, m, "work", root)

	if err := m.EnterVault("missing"); !errors.Is(err, domain.ErrVaultNotFound) {
		t.Errorf("expected ErrVaultNotFound, got %v", err)
	}

	mustEnter(t, m, "work")
	if err := m.EnterVault("work"); !errors.Is(err, domain.ErrAlreadyInVault) {
		t.Errorf("expected ErrAlreadyInVault, got %v", err)
	}
}

func TestRemoveVault_MissingDirectory(t *testing.T) {
	m, root := setupTestManager(t)
	v := mustCreateVault(t, m, "gone", root)

	if err := os.RemoveAll(v.Path()); err != nil {
		t.Fatal(err)
	}
	if err := m.RemoveVault("gone"); err != nil {
		t.Fatalf("RemoveVault() error = %v", err)
	}
	if len(m.Vaults()) != 0 {
		t.Errorf("expected no vaults, got %v", m.Vaults())
	}
}

func TestRenameVault(t *testing.T) {
	m, root := setupTestManager(t)
	mustCreateVault(t, m, "old", root)
	mustCreateVault(t, m, "other", root)
	mustEnter(t, m, "old")

	if err := m.RenameVault("old", "other"); !errors.Is(err, domain.ErrVaultExists) {
		t.Errorf("expected ErrVaultExists, got %v", err)
	}
	if err := m.RenameVault("missing", "fresh"); !errors.Is(err, domain.ErrVaultNotFound) {
		t.Errorf("expected ErrVaultNotFound, got %v", err)
	}

	if err := m.RenameVault("old", "new"); err != nil {
		t.Fatalf("RenameVault() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "new")); err != nil {
		t.Errorf("renamed directory missing: %v", err)
	}
	if name, _ := m.CurrentName(); name != "new" {
		t.Errorf("expected current vault new, got %q", name)
	}
	v, err := m.Current()
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if v.Store().Path() != vault.StorePath(filepath.Join(root, "new")) {
		t.Errorf("store not repointed: %s", v.Store().Path())
	}
}

func TestMoveVault(t *testing.T) {
	m, root := setupTestManager(t)
	mustCreateVault(t, m, "notes", filepath.Join(root, "src"))

	dest := filepath.Join(root, "dest", "nested")
	if err := m.MoveVault("notes", dest); err != nil {
		t.Fatalf("MoveVault() error = %v", err)
	}

	path, err := m.VaultPath("notes")
	if err != nil {
		t.Fatalf("VaultPath() error = %v", err)
	}
	if path != filepath.Join(dest, "notes") {
		t.Errorf("unexpected path %s", path)
	}
	if _, err := vault.LoadVault(path); err != nil {
		t.Errorf("LoadVault() error = %v", err)
	}
}

func TestVaults_Sorted(t *testing.T) {
	m, root := setupTestManager(t)
	for _, name := range []string{"zeta", "alpha", "mid"} {
		mustCreateVault(t, m, name, root)
	}
	mustEnter(t, m, "mid")

	entries := m.Vaults()
	want := []string{"alpha", "mid", "zeta"}
	if len(entries) != len(want) {
		t.Fatalf("expected %d vaults, got %d", len(want), len(entries))
	}
	for i, entry := range entries {
		if entry.Name != want[i] {
			t.Errorf("entry %d: expected %s, got %s", i, want[i], entry.Name)
		}
		if entry.Current != (entry.Name == "mid") {
			t.Errorf("entry %s: unexpected current flag", entry.Name)
		}
	}
}

func TestMoveItemToVault(t *testing.T) {
	m, root := setupTestManager(t)
	mustCreateVault(t, m, "V1", root)
	mustCreateVault(t, m, "V2", root)
	mustEnter(t, m, "V1")

	if _, err := m.CreateNote("n"); err != nil {
		t.Fatalf("CreateNote() error = %v", err)
	}
	if err := m.SetAlias("n", "en"); err != nil {
		t.Fatalf("SetAlias() error = %v", err)
	}

	change, err := m.MoveItemToVault(domain.KindNote, "n", "V2")
	if err != nil {
		t.Fatalf("MoveItemToVault() error = %v", err)
	}
	if change.From != "n.md" || change.Vault != "V2" {
		t.Errorf("unexpected change %+v", change)
	}

	v1, err := m.LoadVault("V1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := v1.NoteNamed("n"); !errors.Is(err, domain.ErrItemNotFound) {
		t.Errorf("expected note gone from V1, got %v", err)
	}
	if _, ok := v1.Store().Alias("n"); ok {
		t.Error("alias should leave V1")
	}

	v2, err := m.LoadVault("V2")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := v2.NoteNamed("n"); err != nil {
		t.Errorf("expected note in V2, got %v", err)
	}
	if alias, _ := v2.Store().Alias("n"); alias != "en" {
		t.Errorf("expected alias en in V2, got %q", alias)
	}
}

func TestMoveItemToVault_Rejected(t *testing.T) {
	m, root := setupTestManager(t)
	mustCreateVault(t, m, "V1", root)
	mustCreateVault(t, m, "V2", root)
	mustEnter(t, m, "V2")
	if _, err := m.CreateNote("n"); err != nil {
		t.Fatal(err)
	}
	mustEnter(t, m, "V1")
	if _, err := m.CreateNote("n"); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		kind    domain.ItemKind
		item    string
		dest    string
		wantErr error
	}{
		{name: "same vault", kind: domain.KindNote, item: "n", dest: "V1", wantErr: domain.ErrSameVault},
		{name: "collision", kind: domain.KindNote, item: "n", dest: "V2", wantErr: domain.ErrItemExists},
		{name: "unknown vault", kind: domain.KindNote, item: "n", dest: "V3", wantErr: domain.ErrVaultNotFound},
		{name: "missing folder", kind: domain.KindFolder, item: "nope", dest: "V2", wantErr: domain.ErrItemNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.MoveItemToVault(tt.kind, tt.item, tt.dest)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	var moveErr *MoveError
	_, err := m.MoveItemToVault(domain.KindNote, "n", "V1")
	if !errors.As(err, &moveErr) {
		t.Fatalf("expected MoveError, got %T", err)
	}

	if _, err := os.Stat(filepath.Join(root, "V1", "n.md")); err != nil {
		t.Error("rejected moves must leave the note in place")
	}
}

func TestMoveItemToVault_FolderResetsActiveFolder(t *testing.T) {
	m, root := setupTestManager(t)
	mustCreateVault(t, m, "V1", root)
	mustCreateVault(t, m, "V2", root)
	mustEnter(t, m, "V1")

	if _, err := m.CreateFolder("projects"); err != nil {
		t.Fatal(err)
	}
	if err := m.ChangeFolder("projects"); err != nil {
		t.Fatal(err)
	}
	if _, err := m.CreateFolder("go"); err != nil {
		t.Fatal(err)
	}
	if err := m.ChangeFolder(".."); err != nil {
		t.Fatal(err)
	}
	if err := m.ChangeFolder("projects/go"); err != nil {
		t.Fatal(err)
	}

	if _, err := m.MoveItemToVault(domain.KindFolder, "projects", "V2"); err != nil {
		t.Fatalf("MoveItemToVault() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "V2", "projects", "go")); err != nil {
		t.Errorf("folder not moved: %v", err)
	}

	v1, err := m.Current()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := v1.Store().ActiveFolderPath(); ok {
		t.Error("active folder should return to the root")
	}
}

func TestMoveItemToVault_FolderCarriesAliases(t *testing.T) {
	m, root := setupTestManager(t)
	mustCreateVault(t, m, "V1", root)
	mustCreateVault(t, m, "V2", root)
	mustEnter(t, m, "V1")

	if _, err := m.CreateFolder("projects"); err != nil {
		t.Fatal(err)
	}
	if err := m.ChangeFolder("projects"); err != nil {
		t.Fatal(err)
	}
	if _, err := m.CreateNote("plan"); err != nil {
		t.Fatal(err)
	}
	if err := m.SetAlias("plan", "p"); err != nil {
		t.Fatal(err)
	}
	if err := m.ChangeFolder(".."); err != nil {
		t.Fatal(err)
	}
	if _, err := m.CreateNote("keep"); err != nil {
		t.Fatal(err)
	}
	if err := m.SetAlias("keep", "k"); err != nil {
		t.Fatal(err)
	}

	if _, err := m.MoveItemToVault(domain.KindFolder, "projects", "V2"); err != nil {
		t.Fatalf("MoveItemToVault() error = %v", err)
	}

	v1, err := m.LoadVault("V1")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := v1.Store().Alias("plan"); ok {
		t.Error("alias of a moved note should leave V1")
	}
	if alias, _ := v1.Store().Alias("keep"); alias != "k" {
		t.Errorf("expected alias k to stay in V1, got %q", alias)
	}

	v2, err := m.LoadVault("V2")
	if err != nil {
		t.Fatal(err)
	}
	if alias, _ := v2.Store().Alias("plan"); alias != "p" {
		t.Errorf("expected alias p in V2, got %q", alias)
	}
}

func TestRemoveItem_FolderDropsAliases(t *testing.T) {
	m, root := setupTestManager(t)
	mustCreateVault(t, m, "V1", root)
	mustEnter(t, m, "V1")

	if _, err := m.CreateNote("plan"); err != nil {
		t.Fatal(err)
	}
	if err := m.SetAlias("plan", "p"); err != nil {
		t.Fatal(err)
	}
	if _, err := m.CreateFolder("projects"); err != nil {
		t.Fatal(err)
	}
	if err := m.ChangeFolder("projects"); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"plan", "inner"} {
		if _, err := m.CreateNote(name); err != nil {
			t.Fatal(err)
		}
	}
	if err := m.SetAlias("inner", "i"); err != nil {
		t.Fatal(err)
	}
	if err := m.ChangeFolder(".."); err != nil {
		t.Fatal(err)
	}

	if _, err := m.RemoveItem(domain.KindFolder, "projects"); err != nil {
		t.Fatalf("RemoveItem() error = %v", err)
	}

	v1, err := m.LoadVault("V1")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := v1.Store().Alias("inner"); ok {
		t.Error("alias of a removed note should be dropped")
	}
	if alias, _ := v1.Store().Alias("plan"); alias != "p" {
		t.Errorf("alias shared with a surviving note should stay, got %q", alias)
	}
}
