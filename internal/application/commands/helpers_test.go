package commands

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/mock/gomock"

	"jot/internal/adapters/filesystem"
	"jot/internal/application"
	"jot/internal/config"
	"jot/internal/ports/mocks"
	"jot/internal/vault"
)

type testApp struct {
	*application.App
	ctrl     *gomock.Controller
	root     string
	editor   *mocks.MockEditorLauncher
	prompter *mocks.MockPrompter
	history  *mocks.MockHistory
}

// setupTestApp creates a registry with the vaults work and archive under a
// temp dir and enters work.
func setupTestApp(t *testing.T) *testApp {
	t.Helper()
	ctrl := gomock.NewController(t)
	root := t.TempDir()

	registry, err := filesystem.LoadRegistry(filepath.Join(root, filesystem.RegistryFileName))
	if err != nil {
		t.Fatalf("failed to load registry: %v", err)
	}
	manager := application.NewManager(registry, nil)
	for _, name := range []string{"work", "archive"} {
		if _, err := manager.CreateVault(name, filepath.Join(root, "vaults")); err != nil {
			t.Fatalf("failed to create vault %s: %v", name, err)
		}
	}
	if err := manager.EnterVault("work"); err != nil {
		t.Fatalf("failed to enter vault: %v", err)
	}

	cfg, err := config.Load(filepath.Join(root, config.ConfigFileName))
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	ta := &testApp{
		ctrl:     ctrl,
		root:     root,
		editor:   mocks.NewMockEditorLauncher(ctrl),
		prompter: mocks.NewMockPrompter(ctrl),
		history:  mocks.NewMockHistory(ctrl),
	}
	ta.App = &application.App{
		Config:   cfg,
		Manager:  manager,
		Editor:   ta.editor,
		Prompter: ta.prompter,
		History:  ta.history,
	}
	return ta
}

func (ta *testApp) vaultPath(name string) string {
	return filepath.Join(ta.root, "vaults", name)
}

func (ta *testApp) current(t *testing.T) *vault.Vault {
	t.Helper()
	v, err := ta.Manager.Current()
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	return v
}

func (ta *testApp) createNote(t *testing.T, name string) *vault.Note {
	t.Helper()
	note, err := ta.Manager.CreateNote(name)
	if err != nil {
		t.Fatalf("CreateNote(%q) error = %v", name, err)
	}
	return note
}

func (ta *testApp) createFolder(t *testing.T, name string) {
	t.Helper()
	if _, err := ta.Manager.CreateFolder(name); err != nil {
		t.Fatalf("CreateFolder(%q) error = %v", name, err)
	}
}

// expectHistoryTx expects one history transaction on the work vault and
// returns it for further expectations.
func (ta *testApp) expectHistoryTx() *mocks.MockHistoryTx {
	tx := mocks.NewMockHistoryTx(ta.ctrl)
	ta.history.EXPECT().Open(ta.vaultPath("work")).Return(nil)
	ta.history.EXPECT().BeginTx(gomock.Any()).Return(tx, nil)
	ta.history.EXPECT().Close().Return(nil)
	return tx
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
