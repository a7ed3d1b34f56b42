package editor

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"jot/internal/ports"
)

var _ ports.EditorLauncher = (*Launcher)(nil)

// Launcher opens notes in the configured editor.
type Launcher struct {
	editor string
	// wait runs the editor in the foreground, for terminal editors that
	// share the terminal with jot.
	wait bool

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewLauncher creates a launcher for editor. An empty editor falls back
// to $EDITOR, $VISUAL and a few common editors.
func NewLauncher(editor string, wait bool) *Launcher {
	return &Launcher{
		editor: strings.TrimSpace(editor),
		wait:   wait,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// Open launches the editor on path. It waits for the editor to exit only
// when the launcher was built to wait.
func (l *Launcher) Open(path string) (bool, error) {
	cmd, err := l.Command(path)
	if err != nil {
		return false, err
	}

	if l.wait {
		if err := cmd.Run(); err != nil {
			return true, fmt.Errorf("editor %s failed: %w", l.name(), err)
		}
		return true, nil
	}

	if err := cmd.Start(); err != nil {
		return false, fmt.Errorf("failed to start editor %s: %w", l.name(), err)
	}
	return false, cmd.Process.Release()
}

// Command returns an exec.Cmd for opening path in the editor.
// Editors given with arguments, like "code --wait", run through sh.
func (l *Launcher) Command(path string) (*exec.Cmd, error) {
	editor := l.name()
	if editor == "" {
		return nil, fmt.Errorf("no editor found: set editor in the config or $EDITOR")
	}

	var cmd *exec.Cmd
	if strings.Contains(editor, " ") {
		cmd = exec.Command("sh", "-c", editor+" "+shellQuote(path))
	} else {
		cmd = exec.Command(editor, path)
	}
	if l.wait {
		cmd.Stdin = l.stdin
		cmd.Stdout = l.stdout
		cmd.Stderr = l.stderr
	}
	return cmd, nil
}

func (l *Launcher) name() string {
	if l.editor != "" {
		return l.editor
	}
	return findEditor()
}

// findEditor returns the editor to use when none is configured
func findEditor() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}

	for _, editor := range []string{"nvim", "vim", "vi", "nano"} {
		if path, err := exec.LookPath(editor); err == nil {
			return path
		}
	}
	return ""
}

// shellQuote wraps s in single quotes for sh -c.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
