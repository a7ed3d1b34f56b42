package application

import "jot/internal/domain"

// Re-export item kinds for use by adapters
type ItemKind = domain.ItemKind

const (
	KindNote   = domain.KindNote
	KindFolder = domain.KindFolder
	KindVault  = domain.KindVault
)

// ParseItemKind accepts note/nt, folder/fd and vault/vl
func ParseItemKind(s string) (ItemKind, error) {
	kind, ok := domain.ParseItemKind(s)
	if !ok {
		return 0, &ValidationError{Field: "kind", Message: "expected note, folder or vault, got: " + s}
	}
	return kind, nil
}
