package ports

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_registry.go -package=mocks jot/internal/ports Registry

// Registry is the process-wide index of vaults: name to parent directory,
// plus the name of the current vault. Every mutator persists immediately.
type Registry interface {
	// Vaults returns a copy of the name to parent directory map.
	Vaults() map[string]string
	// Location returns the parent directory registered for name.
	Location(name string) (string, bool)
	// Current returns the current vault name, if any.
	Current() (string, bool)

	Add(name, parentDir string) error
	Remove(name string) error
	Rename(name, newName string) error
	SetLocation(name, parentDir string) error
	// SetCurrent sets the current vault. An empty name clears it.
	SetCurrent(name string) error
	// Refresh re-reads the persisted registry, picking up changes made by
	// other processes.
	Refresh() error
}
