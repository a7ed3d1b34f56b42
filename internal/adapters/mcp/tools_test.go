package mcp

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"jot/internal/adapters/filesystem"
	"jot/internal/application"
)

// setupApp registers the vaults work and archive under a temp dir and
// enters work.
func setupApp(t *testing.T) (*application.App, string) {
	t.Helper()
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
	return &application.App{Manager: manager}, root
}

func call(t *testing.T, app *application.App, h server.ToolHandlerFunc, args map[string]any) (string, bool) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args

	result, err := serialized(app, h)(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if len(result.Content) == 0 {
		t.Fatal("expected content in result")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text, result.IsError
}

func TestVaults(t *testing.T) {
	app, _ := setupApp(t)

	text, isErr := call(t, app, vaultsHandler(app), nil)
	if isErr {
		t.Fatalf("unexpected error: %s", text)
	}
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 vaults, got %q", text)
	}
	if !strings.HasPrefix(lines[0], "  archive") {
		t.Errorf("first line = %q, want archive unmarked", lines[0])
	}
	if !strings.HasPrefix(lines[1], "* work") {
		t.Errorf("second line = %q, want work marked current", lines[1])
	}
}

func TestCreateReadAndTree(t *testing.T) {
	app, root := setupApp(t)

	text, isErr := call(t, app, createNoteHandler(app), map[string]any{"name": "todo"})
	if isErr {
		t.Fatalf("create_note failed: %s", text)
	}
	if text != "Created note todo" {
		t.Errorf("create_note = %q", text)
	}

	if err := os.WriteFile(filepath.Join(root, "vaults", "work", "todo.md"), []byte("# Todo\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	text, isErr = call(t, app, readNoteHandler(app), map[string]any{"name": "todo"})
	if isErr || text != "# Todo\n" {
		t.Errorf("read_note = %q (error %v)", text, isErr)
	}

	if _, isErr := call(t, app, createFolderHandler(app), map[string]any{"name": "projects"}); isErr {
		t.Fatal("create_folder failed")
	}
	text, _ = call(t, app, treeHandler(app), nil)
	for _, want := range []string{"work", "projects", "todo"} {
		if !strings.Contains(text, want) {
			t.Errorf("tree %q missing %q", text, want)
		}
	}
}

func TestCreateNote_Duplicate(t *testing.T) {
	app, _ := setupApp(t)

	call(t, app, createNoteHandler(app), map[string]any{"name": "todo"})
	text, isErr := call(t, app, createNoteHandler(app), map[string]any{"name": "todo"})
	if !isErr {
		t.Fatalf("expected duplicate note to fail, got %q", text)
	}
	if !strings.Contains(text, "already exists") {
		t.Errorf("error = %q", text)
	}
}

func TestReadNote_Missing(t *testing.T) {
	app, _ := setupApp(t)

	text, isErr := call(t, app, readNoteHandler(app), map[string]any{"name": "nope"})
	if !isErr {
		t.Fatalf("expected error, got %q", text)
	}
}

func TestFind(t *testing.T) {
	app, _ := setupApp(t)
	call(t, app, createNoteHandler(app), map[string]any{"name": "todo"})
	call(t, app, createNoteHandler(app), map[string]any{"name": "ideas"})

	text, isErr := call(t, app, findHandler(app), map[string]any{"pattern": "to*"})
	if isErr {
		t.Fatalf("find failed: %s", text)
	}
	if !strings.Contains(text, "todo.md") || strings.Contains(text, "ideas") {
		t.Errorf("find = %q", text)
	}

	text, _ = call(t, app, findHandler(app), map[string]any{"pattern": "zzz*"})
	if text != "No results found." {
		t.Errorf("find = %q", text)
	}
}

func TestRenameAndMoveToVault(t *testing.T) {
	app, root := setupApp(t)
	call(t, app, createNoteHandler(app), map[string]any{"name": "todo"})

	text, isErr := call(t, app, renameNoteHandler(app), map[string]any{"name": "todo", "new_name": "done"})
	if isErr {
		t.Fatalf("rename_note failed: %s", text)
	}

	text, isErr = call(t, app, moveNoteToVaultHandler(app), map[string]any{"name": "done", "vault": "archive"})
	if isErr {
		t.Fatalf("move_note_to_vault failed: %s", text)
	}
	if _, err := os.Stat(filepath.Join(root, "vaults", "archive", "done.md")); err != nil {
		t.Errorf("expected note in archive: %v", err)
	}

	text, isErr = call(t, app, moveNoteToVaultHandler(app), map[string]any{"name": "done", "vault": ""})
	if !isErr || text != "vault is required" {
		t.Errorf("expected vault is required, got %q", text)
	}
}

func TestToolsFollowRegistryChanges(t *testing.T) {
	app, root := setupApp(t)

	if text, isErr := call(t, app, treeHandler(app), nil); isErr || !strings.HasPrefix(text, "work") {
		t.Fatalf("tree before switch = %q (error %v)", text, isErr)
	}

	// the CLI enters another vault through its own registry
	cli, err := filesystem.LoadRegistry(filepath.Join(root, filesystem.RegistryFileName))
	if err != nil {
		t.Fatal(err)
	}
	if err := application.NewManager(cli, nil).EnterVault("archive"); err != nil {
		t.Fatal(err)
	}

	text, isErr := call(t, app, treeHandler(app), nil)
	if isErr || !strings.HasPrefix(text, "archive") {
		t.Errorf("tree after switch = %q (error %v)", text, isErr)
	}

	if text, _ := call(t, app, vaultsHandler(app), nil); !strings.Contains(text, "* archive") {
		t.Errorf("vaults after switch = %q", text)
	}
}
