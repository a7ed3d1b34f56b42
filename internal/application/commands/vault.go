package commands

import (
	"context"
	"fmt"

	"jot/internal/application"
)

// CreateVaultResult contains the result of creating a vault
type CreateVaultResult struct {
	Name    string
	Path    string
	Message string
}

// CreateVaultCommand creates and registers a vault
type CreateVaultCommand struct {
	manager   *application.Manager
	Name      string
	ParentDir string
}

// NewCreateVaultCommand creates a new CreateVaultCommand
func NewCreateVaultCommand(manager *application.Manager, name, parentDir string) *CreateVaultCommand {
	return &CreateVaultCommand{
		manager:   manager,
		Name:      name,
		ParentDir: parentDir,
	}
}

// Validate checks the vault name and parent directory
func (c *CreateVaultCommand) Validate() error {
	if err := application.ValidateName("vaultName", c.Name); err != nil {
		return err
	}
	return application.ValidateRequired("parentDir", c.ParentDir)
}

// Execute runs the create vault command
func (c *CreateVaultCommand) Execute(ctx context.Context) (*CreateVaultResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	v, err := c.manager.CreateVault(c.Name, c.ParentDir)
	if err != nil {
		return nil, err
	}

	return &CreateVaultResult{
		Name:    v.Name(),
		Path:    v.Path(),
		Message: fmt.Sprintf("Created vault %s at %s", v.Name(), v.Path()),
	}, nil
}

// EnterVaultResult contains the result of entering a vault
type EnterVaultResult struct {
	Name    string
	Message string
}

// EnterVaultCommand makes a vault current
type EnterVaultCommand struct {
	manager *application.Manager
	Name    string
}

// NewEnterVaultCommand creates a new EnterVaultCommand
func NewEnterVaultCommand(manager *application.Manager, name string) *EnterVaultCommand {
	return &EnterVaultCommand{manager: manager, Name: name}
}

// Validate checks the vault name
func (c *EnterVaultCommand) Validate() error {
	return application.ValidateRequired("vaultName", c.Name)
}

// Execute runs the enter vault command
func (c *EnterVaultCommand) Execute(ctx context.Context) (*EnterVaultResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := c.manager.EnterVault(c.Name); err != nil {
		return nil, err
	}
	return &EnterVaultResult{
		Name:    c.Name,
		Message: fmt.Sprintf("Entered vault %s", c.Name),
	}, nil
}

// ListVaultsResult contains the registered vaults
type ListVaultsResult struct {
	Vaults []application.VaultEntry
}

// ListVaultsCommand lists the registered vaults
type ListVaultsCommand struct {
	manager *application.Manager
}

// NewListVaultsCommand creates a new ListVaultsCommand
func NewListVaultsCommand(manager *application.Manager) *ListVaultsCommand {
	return &ListVaultsCommand{manager: manager}
}

// Execute runs the list vaults command
func (c *ListVaultsCommand) Execute(ctx context.Context) (*ListVaultsResult, error) {
	return &ListVaultsResult{Vaults: c.manager.Vaults()}, nil
}

// VaultLocationResult contains the location of one vault
type VaultLocationResult struct {
	Name string
	Path string
}

// VaultLocationCommand shows where a vault lives
type VaultLocationCommand struct {
	manager *application.Manager
	Name    string
}

// NewVaultLocationCommand creates a new VaultLocationCommand
func NewVaultLocationCommand(manager *application.Manager, name string) *VaultLocationCommand {
	return &VaultLocationCommand{manager: manager, Name: name}
}

// Execute runs the vault location command
func (c *VaultLocationCommand) Execute(ctx context.Context) (*VaultLocationResult, error) {
	if err := application.ValidateRequired("vaultName", c.Name); err != nil {
		return nil, err
	}
	path, err := c.manager.VaultPath(c.Name)
	if err != nil {
		return nil, err
	}
	return &VaultLocationResult{Name: c.Name, Path: path}, nil
}
