package editor

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestCommand(t *testing.T) {
	tests := []struct {
		name     string
		editor   string
		path     string
		wantArgs []string
	}{
		{
			name:     "plain editor",
			editor:   "nvim",
			path:     "/notes/todo.md",
			wantArgs: []string{"nvim", "/notes/todo.md"},
		},
		{
			name:     "editor with arguments",
			editor:   "code --wait",
			path:     "/notes/it's.md",
			wantArgs: []string{"sh", "-c", `code --wait '/notes/it'\''s.md'`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := NewLauncher(tt.editor, true).Command(tt.path)
			if err != nil {
				t.Fatalf("Command() error = %v", err)
			}
			if len(cmd.Args) != len(tt.wantArgs) {
				t.Fatalf("args = %q, want %q", cmd.Args, tt.wantArgs)
			}
			for i := range tt.wantArgs {
				if cmd.Args[i] != tt.wantArgs[i] {
					t.Errorf("arg %d = %q, want %q", i, cmd.Args[i], tt.wantArgs[i])
				}
			}
		})
	}
}

func TestCommand_FallsBackToEnv(t *testing.T) {
	t.Setenv("EDITOR", "hx")

	cmd, err := NewLauncher("", true).Command("/notes/todo.md")
	if err != nil {
		t.Fatalf("Command() error = %v", err)
	}
	if cmd.Args[0] != "hx" {
		t.Errorf("expected hx, got %q", cmd.Args[0])
	}
}

func TestOpen_Wait(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.md")
	var out bytes.Buffer

	l := NewLauncher("echo", true)
	l.stdout = &out

	blocked, err := l.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if !blocked {
		t.Error("expected launcher to wait")
	}
	if out.String() != path+"\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestOpen_Background(t *testing.T) {
	blocked, err := NewLauncher("true", false).Open("/notes/todo.md")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if blocked {
		t.Error("expected launcher not to wait")
	}
}

func TestOpen_MissingEditor(t *testing.T) {
	_, err := NewLauncher("jot-no-such-editor", true).Open("/notes/todo.md")
	if err == nil {
		t.Error("expected error for missing editor")
	}
}
