package environment

import (
	"context"
)

// Store defines the interface for environment persistence operations.
type Store interface {
	// Create creates a new environment in the store.
	Create(ctx context.Context, env *Environment) error

	// GetByName retrieves an environment by its unique name.
	GetByName(ctx context.Context, name string) (*Environment, error)

	// List retrieves all environments, most recently created first.
	List(ctx context.Context) ([]*Environment, error)

	// Update updates an environment with the given setters.
	Update(ctx context.Context, name string, setters ...UpdateSetter) error

	// Delete deletes an environment by name.
	Delete(ctx context.Context, name string) error
}

// UpdateSetter is a function that updates an environment field.
type UpdateSetter func(*Environment) error
