package filesystem

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"

	"github.com/BurntSushi/toml"

	"jot/internal/atomicfile"
	"jot/internal/domain"
	"jot/internal/ports"
)

// RegistryFileName is the registry file inside the jot home directory.
const RegistryFileName = "vaults.toml"

type registryData struct {
	CurrentVault string            `toml:"current_vault,omitempty"`
	Vaults       map[string]string `toml:"vaults"`
}

// Registry implements ports.Registry on a TOML file. The whole file is
// rewritten on every mutation.
type Registry struct {
	path string
	data registryData
}

// Ensure Registry implements ports.Registry
var _ ports.Registry = (*Registry)(nil)

// LoadRegistry reads the registry at path. A missing file yields an empty
// registry; it is created on the first mutation.
func LoadRegistry(path string) (*Registry, error) {
	r := &Registry{path: path}
	if err := r.read(); err != nil {
		return nil, err
	}
	return r, nil
}

// Refresh re-reads the file. On a parse error the loaded state is kept.
func (r *Registry) Refresh() error {
	return r.read()
}

func (r *Registry) read() error {
	data := registryData{}
	if _, err := os.Stat(r.path); !errors.Is(err, fs.ErrNotExist) {
		if _, err := toml.DecodeFile(r.path, &data); err != nil {
			return fmt.Errorf("failed to parse registry %s: %w", r.path, err)
		}
	}
	if data.Vaults == nil {
		data.Vaults = map[string]string{}
	}
	if _, ok := data.Vaults[data.CurrentVault]; !ok {
		data.CurrentVault = ""
	}
	r.data = data
	return nil
}

// Path returns the registry file location.
func (r *Registry) Path() string { return r.path }

func (r *Registry) Vaults() map[string]string {
	return maps.Clone(r.data.Vaults)
}

func (r *Registry) Location(name string) (string, bool) {
	dir, ok := r.data.Vaults[name]
	return dir, ok
}

func (r *Registry) Current() (string, bool) {
	return r.data.CurrentVault, r.data.CurrentVault != ""
}

func (r *Registry) Add(name, parentDir string) error {
	if _, ok := r.data.Vaults[name]; ok {
		return domain.VaultExists(name)
	}
	r.data.Vaults[name] = parentDir
	return r.save()
}

func (r *Registry) Remove(name string) error {
	if _, ok := r.data.Vaults[name]; !ok {
		return domain.VaultNotFound(name)
	}
	delete(r.data.Vaults, name)
	if r.data.CurrentVault == name {
		r.data.CurrentVault = ""
	}
	return r.save()
}

func (r *Registry) Rename(name, newName string) error {
	dir, ok := r.data.Vaults[name]
	if !ok {
		return domain.VaultNotFound(name)
	}
	if _, ok := r.data.Vaults[newName]; ok {
		return domain.VaultExists(newName)
	}
	delete(r.data.Vaults, name)
	r.data.Vaults[newName] = dir
	if r.data.CurrentVault == name {
		r.data.CurrentVault = newName
	}
	return r.save()
}

func (r *Registry) SetLocation(name, parentDir string) error {
	if _, ok := r.data.Vaults[name]; !ok {
		return domain.VaultNotFound(name)
	}
	r.data.Vaults[name] = parentDir
	return r.save()
}

func (r *Registry) SetCurrent(name string) error {
	if name != "" {
		if _, ok := r.data.Vaults[name]; !ok {
			return domain.VaultNotFound(name)
		}
	}
	r.data.CurrentVault = name
	return r.save()
}

func (r *Registry) save() error {
	err := atomicfile.Encode(r.path, func(w io.Writer) error {
		return toml.NewEncoder(w).Encode(r.data)
	})
	return domain.FileSystem("write registry", r.path, err)
}
