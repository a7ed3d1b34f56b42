package domain

import (
	"os"
	"path/filepath"
	"strings"
)

// Join concatenates path segments with the OS separator.
func Join(segments ...string) string {
	return filepath.Join(segments...)
}

// Normalize collapses "." and ".." components without touching the
// filesystem, so the result may name a path that does not exist.
// A ".." at the root stays at the root.
func Normalize(path string) string {
	if path == "" {
		return ""
	}

	volume := filepath.VolumeName(path)
	rest := path[len(volume):]
	absolute := strings.HasPrefix(rest, string(os.PathSeparator)) || strings.HasPrefix(rest, "/")

	var parts []string
	for _, part := range strings.FieldsFunc(rest, isSeparator) {
		switch part {
		case ".":
			continue
		case "..":
			if len(parts) > 0 && parts[len(parts)-1] != ".." {
				parts = parts[:len(parts)-1]
			} else if !absolute {
				parts = append(parts, part)
			}
		default:
			parts = append(parts, part)
		}
	}

	joined := strings.Join(parts, string(os.PathSeparator))
	if absolute {
		return volume + string(os.PathSeparator) + joined
	}
	if joined == "" {
		return volume + "."
	}
	return volume + joined
}

// IsContainedIn reports whether candidate lies inside root, comparing
// normalized paths component by component. A path contains itself.
func IsContainedIn(candidate, root string) bool {
	rel, err := filepath.Rel(Normalize(root), Normalize(candidate))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(os.PathSeparator))
}

// RelativeTo returns path relative to root using forward slashes, or ""
// when path is root itself.
func RelativeTo(path, root string) (string, error) {
	rel, err := filepath.Rel(Normalize(root), Normalize(path))
	if err != nil {
		return "", err
	}
	if rel == "." {
		return "", nil
	}
	return filepath.ToSlash(rel), nil
}

// Segments splits a slash-separated relative path into its components.
func Segments(rel string) []string {
	return strings.FieldsFunc(filepath.ToSlash(rel), func(r rune) bool { return r == '/' })
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}

// Absolute expands "~", resolves path against the working directory and
// normalizes it.
func Absolute(path string) (string, error) {
	expanded, err := ExpandHome(path)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", err
	}
	return Normalize(abs), nil
}

func isSeparator(r rune) bool {
	return r == '/' || r == os.PathSeparator
}
