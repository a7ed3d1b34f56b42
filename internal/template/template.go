// Package template loads note templates from a vault and fills in their
// variables.
package template

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"jot/internal/domain"
)

// DirName is the directory under the vault metadata dir holding templates.
const DirName = "templates"

const (
	DateLayout     = "2006-01-02"
	DatetimeLayout = "2006-01-02T15:04"
)

// Variables holds the values substituted into a template.
type Variables struct {
	Title    string
	Slug     string
	Date     string
	Datetime string
	Year     string
	Month    string
	Day      string
	Weekday  string
}

// NewVariables creates variables for a note titled title at now.
func NewVariables(title, slug string, now time.Time) *Variables {
	return &Variables{
		Title:    title,
		Slug:     slug,
		Date:     now.Format(DateLayout),
		Datetime: now.Format(DatetimeLayout),
		Year:     now.Format("2006"),
		Month:    now.Format("01"),
		Day:      now.Format("02"),
		Weekday:  now.Weekday().String(),
	}
}

// Dir returns the template directory of the vault at vaultPath.
func Dir(vaultPath string) string {
	return filepath.Join(vaultPath, domain.MetadataDir, DirName)
}

// Path returns the file of template name.
func Path(vaultPath, name string) string {
	return filepath.Join(Dir(vaultPath), domain.StripNoteExtension(name)+domain.NoteExtension)
}

// List returns the template names of the vault, sorted.
func List(vaultPath string) ([]string, error) {
	entries, err := os.ReadDir(Dir(vaultPath))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.FileSystem("read templates", Dir(vaultPath), err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != domain.NoteExtension {
			continue
		}
		names = append(names, domain.StripNoteExtension(entry.Name()))
	}
	slices.Sort(names)
	return names, nil
}

// Load reads template name. A missing template is ErrItemNotFound.
func Load(vaultPath, name string) (string, error) {
	if err := domain.ValidateName(name); err != nil {
		return "", err
	}
	path := Path(vaultPath, name)
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", domain.ItemNotFound(domain.KindNote, "template "+domain.StripNoteExtension(name))
	}
	if err != nil {
		return "", domain.FileSystem("read template", path, err)
	}
	return string(content), nil
}

// Create makes an empty template name unless it exists, and returns its
// path.
func Create(vaultPath, name string) (string, error) {
	if err := domain.ValidateName(name); err != nil {
		return "", err
	}
	if err := os.MkdirAll(Dir(vaultPath), 0o755); err != nil {
		return "", domain.FileSystem("create directory", Dir(vaultPath), err)
	}
	path := Path(vaultPath, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return "", domain.FileSystem("create template", path, err)
	}
	return path, domain.FileSystem("create template", path, f.Close())
}

// Apply substitutes {{name}} variables in content. Unknown variables are
// left as they are and \{{ escapes a literal {{.
func Apply(content string, vars *Variables) string {
	if content == "" || vars == nil {
		return content
	}

	content = strings.ReplaceAll(content, "\\{{", "\x00open\x00")
	content = strings.NewReplacer(
		"{{title}}", vars.Title,
		"{{slug}}", vars.Slug,
		"{{date}}", vars.Date,
		"{{datetime}}", vars.Datetime,
		"{{year}}", vars.Year,
		"{{month}}", vars.Month,
		"{{day}}", vars.Day,
		"{{weekday}}", vars.Weekday,
	).Replace(content)
	return strings.ReplaceAll(content, "\x00open\x00", "{{")
}
