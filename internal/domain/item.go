package domain

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	// NoteExtension is the file extension every note carries.
	NoteExtension = ".md"

	// MetadataDir is the reserved directory inside a vault that holds
	// jot's own state. It is never treated as a folder.
	MetadataDir = ".jot"
)

// ItemKind identifies the kind of a vault item.
type ItemKind int

const (
	KindNote ItemKind = iota
	KindFolder
	KindVault
)

// String returns the lower-case name used in messages.
func (k ItemKind) String() string {
	switch k {
	case KindNote:
		return "note"
	case KindFolder:
		return "folder"
	case KindVault:
		return "vault"
	default:
		return "item"
	}
}

// ParseItemKind accepts the long and short forms used on the command line.
func ParseItemKind(s string) (ItemKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "note", "nt":
		return KindNote, true
	case "folder", "fd":
		return KindFolder, true
	case "vault", "vl":
		return KindVault, true
	default:
		return 0, false
	}
}

const forbiddenNameChars = `\/?%*:|"<>`

var nameRules = []validation.Rule{
	validation.Required,
	validation.By(func(value interface{}) error {
		name, _ := value.(string)
		if strings.ContainsAny(name, forbiddenNameChars) {
			return validation.NewError("validation_name_chars", "must not contain any of "+forbiddenNameChars)
		}
		if name == "." || name == ".." || name == MetadataDir {
			return validation.NewError("validation_name_reserved", "is reserved")
		}
		if strings.TrimSpace(name) != name {
			return validation.NewError("validation_name_space", "must not start or end with whitespace")
		}
		return nil
	}),
}

// ValidateName checks an item name (without extension). The returned
// error wraps ErrInvalidName.
func ValidateName(name string) error {
	if err := validation.Validate(name, nameRules...); err != nil {
		return &NameError{Name: name, Reason: err.Error()}
	}
	return nil
}

// StripNoteExtension removes a trailing note extension, if present.
func StripNoteExtension(name string) string {
	return strings.TrimSuffix(name, NoteExtension)
}
