package obsidian

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"jot/internal/domain"
	"jot/internal/ports"
)

// EditorName selects this launcher in the config.
const EditorName = "obsidian"

var _ ports.EditorLauncher = (*Launcher)(nil)

// Launcher opens notes in Obsidian through the obsidian:// URI scheme.
// The Obsidian vault is the jot vault containing the note.
type Launcher struct {
	run func(uri string) error
}

// NewLauncher creates a launcher using the platform URI opener.
func NewLauncher() *Launcher {
	return &Launcher{run: openURI}
}

// Open hands the note to Obsidian. It never waits.
func (l *Launcher) Open(path string) (bool, error) {
	vaultPath, err := vaultRoot(path)
	if err != nil {
		return false, err
	}
	uri, err := BuildURI(vaultPath, path)
	if err != nil {
		return false, err
	}
	return false, l.run(uri)
}

// BuildURI constructs the obsidian:// URI for filePath inside vaultPath.
func BuildURI(vaultPath, filePath string) (string, error) {
	relPath, err := filepath.Rel(vaultPath, filePath)
	if err != nil {
		return "", fmt.Errorf("failed to get relative path: %w", err)
	}
	if relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("file is outside the vault: %s", filePath)
	}

	// Obsidian expects forward slashes and %20 for spaces
	uri := fmt.Sprintf("obsidian://open?vault=%s&file=%s",
		escape(filepath.Base(vaultPath)),
		escape(filepath.ToSlash(relPath)),
	)
	return uri, nil
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// vaultRoot walks up from path to the directory holding the vault
// metadata directory.
func vaultRoot(path string) (string, error) {
	dir := filepath.Dir(path)
	for {
		if info, err := os.Stat(filepath.Join(dir, domain.MetadataDir)); err == nil && info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s: %w", path, domain.ErrNotInsideVault)
		}
		dir = parent
	}
}

func openURI(uri string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", uri)
	case "linux":
		cmd = exec.Command("xdg-open", uri)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", uri)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}

	return cmd.Run()
}
