package application

import (
	"errors"
	"log/slog"
	"os"
	"slices"
	"strings"

	"jot/internal/domain"
	"jot/internal/ports"
	"jot/internal/vault"
)

// VaultEntry is one registered vault as shown in listings.
type VaultEntry struct {
	Name      string
	ParentDir string
	Path      string
	Current   bool
}

// Manager owns the registry and the in-memory current vault. It is the
// only place that changes which vaults exist and which one is current.
type Manager struct {
	registry ports.Registry
	logger   *slog.Logger
	current  *vault.Vault
}

// NewManager creates a manager over registry.
func NewManager(registry ports.Registry, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{registry: registry, logger: logger}
}

// Vaults lists the registered vaults sorted by name.
func (m *Manager) Vaults() []VaultEntry {
	current, _ := m.registry.Current()
	registered := m.registry.Vaults()

	entries := make([]VaultEntry, 0, len(registered))
	for name, dir := range registered {
		entries = append(entries, VaultEntry{
			Name:      name,
			ParentDir: dir,
			Path:      vault.VaultPath(dir, name),
			Current:   name == current,
		})
	}
	slices.SortFunc(entries, func(a, b VaultEntry) int {
		return strings.Compare(a.Name, b.Name)
	})
	return entries
}

// VaultPath returns the absolute location of a registered vault.
func (m *Manager) VaultPath(name string) (string, error) {
	dir, ok := m.registry.Location(name)
	if !ok {
		return "", domain.VaultNotFound(name)
	}
	return vault.VaultPath(dir, name), nil
}

// LoadVault loads a registered vault from disk.
func (m *Manager) LoadVault(name string) (*vault.Vault, error) {
	path, err := m.VaultPath(name)
	if err != nil {
		return nil, err
	}
	return vault.LoadVault(path)
}

// CurrentName returns the name of the current vault, if any.
func (m *Manager) CurrentName() (string, bool) {
	return m.registry.Current()
}

// Current returns the current vault, loading it on first use.
func (m *Manager) Current() (*vault.Vault, error) {
	if m.current != nil {
		return m.current, nil
	}
	name, ok := m.registry.Current()
	if !ok {
		return nil, domain.ErrNotInsideVault
	}
	v, err := m.LoadVault(name)
	if err != nil {
		return nil, err
	}
	m.current = v
	return v, nil
}

// Reload drops the cached current vault so the next call rescans it.
func (m *Manager) Reload() {
	m.current = nil
}

// Refresh re-reads the registry and drops the cached current vault, for
// long-lived processes that share the registry with the CLI.
func (m *Manager) Refresh() error {
	m.Reload()
	return m.registry.Refresh()
}

// CreateVault creates a vault named name inside parentDir and registers
// it. The current vault is not changed.
func (m *Manager) CreateVault(name, parentDir string) (*vault.Vault, error) {
	if err := ValidateName("vaultName", name); err != nil {
		return nil, err
	}
	if _, ok := m.registry.Location(name); ok {
		return nil, domain.VaultExists(name)
	}

	dir, err := domain.Absolute(parentDir)
	if err != nil {
		return nil, domain.FileSystem("resolve", parentDir, err)
	}
	path := vault.VaultPath(dir, name)
	if _, err := os.Lstat(path); err == nil {
		return nil, domain.ItemExists(domain.KindVault, name)
	}

	v, err := vault.CreateVault(path)
	if err != nil {
		return nil, err
	}
	if err := m.registry.Add(name, dir); err != nil {
		return nil, err
	}

	m.logger.Debug("vault created", slog.String("vault", name), slog.String("path", path))
	return v, nil
}

// EnterVault makes name the current vault.
func (m *Manager) EnterVault(name string) error {
	if _, ok := m.registry.Location(name); !ok {
		return domain.VaultNotFound(name)
	}
	if current, ok := m.registry.Current(); ok && current == name {
		return domain.AlreadyInVault(name)
	}

	v, err := m.LoadVault(name)
	if err != nil {
		return err
	}
	if err := m.registry.SetCurrent(name); err != nil {
		return err
	}
	m.current = v

	m.logger.Debug("vault entered", slog.String("vault", name))
	return nil
}

// RemoveVault deletes the vault directory and unregisters it. A vault
// whose directory is already gone is only unregistered.
func (m *Manager) RemoveVault(name string) error {
	path, err := m.VaultPath(name)
	if err != nil {
		return err
	}

	v, err := vault.LoadVault(path)
	switch {
	case errors.Is(err, domain.ErrPathNotFound):
		m.logger.Warn("vault directory missing, unregistering only", slog.String("vault", name), slog.String("path", path))
	case err != nil:
		return err
	default:
		if err := v.Delete(); err != nil {
			return err
		}
	}

	current, _ := m.registry.Current()
	if err := m.registry.Remove(name); err != nil {
		return err
	}
	if current == name {
		if err := m.registry.SetCurrent(""); err != nil {
			return err
		}
		m.current = nil
	}

	m.logger.Debug("vault removed", slog.String("vault", name))
	return nil
}

// RenameVault renames the vault directory and its registry entry.
func (m *Manager) RenameVault(name, newName string) error {
	if err := ValidateName("newName", newName); err != nil {
		return err
	}
	if _, ok := m.registry.Location(newName); ok {
		return domain.VaultExists(newName)
	}
	if _, ok := m.registry.Location(name); !ok {
		return domain.VaultNotFound(name)
	}

	v, err := m.LoadVault(name)
	if err != nil {
		return err
	}
	if err := v.Rename(newName); err != nil {
		return err
	}
	if err := m.registry.Rename(name, newName); err != nil {
		return err
	}
	if current, _ := m.registry.Current(); current == name {
		if err := m.registry.SetCurrent(newName); err != nil {
			return err
		}
	}
	m.current = nil

	m.logger.Debug("vault renamed", slog.String("vault", name), slog.String("new_name", newName))
	return nil
}

// MoveVault moves the vault directory into newParentDir.
func (m *Manager) MoveVault(name, newParentDir string) error {
	if err := ValidateRequired("parentDir", newParentDir); err != nil {
		return err
	}

	v, err := m.LoadVault(name)
	if err != nil {
		return err
	}

	dir, err := domain.Absolute(newParentDir)
	if err != nil {
		return domain.FileSystem("resolve", newParentDir, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return domain.FileSystem("create directory", dir, err)
	}
	if err := v.Relocate(vault.VaultPath(dir, name)); err != nil {
		return err
	}
	if err := m.registry.SetLocation(name, dir); err != nil {
		return err
	}
	m.current = nil

	m.logger.Debug("vault moved", slog.String("vault", name), slog.String("parent", dir))
	return nil
}

// MoveItemToVault moves a note from the active location, or a folder from
// the vault root, of the current vault into the root of destination.
// Moves into the current vault and name collisions are rejected before
// anything is touched.
func (m *Manager) MoveItemToVault(kind domain.ItemKind, name, destination string) (*Change, error) {
	if err := ValidateKind(kind, domain.KindNote, domain.KindFolder); err != nil {
		return nil, err
	}
	if err := ValidateRequired("name", name); err != nil {
		return nil, err
	}

	src, err := m.Current()
	if err != nil {
		return nil, err
	}
	currentName, _ := m.registry.Current()
	if _, ok := m.registry.Location(destination); !ok {
		return nil, domain.VaultNotFound(destination)
	}
	if destination == currentName {
		return nil, sameVault(name, destination)
	}
	dst, err := m.LoadVault(destination)
	if err != nil {
		return nil, err
	}

	var item vault.Item
	if kind == domain.KindNote {
		item, err = m.FindNote(name)
	} else {
		item, err = src.FolderNamed(name)
	}
	if err != nil {
		return nil, err
	}

	from, err := domain.RelativeTo(item.Path(), src.Path())
	if err != nil {
		return nil, domain.ErrOutOfBounds
	}
	target := vault.ChildPath(kind, dst.Path(), item.Name())
	if _, err := os.Lstat(target); err == nil {
		return nil, domain.ItemExists(kind, item.Name())
	}

	carried := []string{item.Name()}
	if kind == domain.KindFolder {
		carried = aliasedNotesUnder(src, from)
	}
	if err := item.Relocate(target); err != nil {
		return nil, err
	}

	if err := carryAliases(src.Store(), dst.Store(), carried); err != nil {
		return nil, err
	}
	if kind == domain.KindFolder {
		if err := leaveFolder(src, from); err != nil {
			return nil, err
		}
	}
	m.Reload()

	m.logger.Debug("item moved to vault",
		slog.String("kind", kind.String()),
		slog.String("name", item.Name()),
		slog.String("vault", destination),
	)
	return &Change{Kind: kind, Name: item.Name(), From: from, Vault: destination, To: item.FullName()}, nil
}
