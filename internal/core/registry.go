// Package core defines the Registry interface for managing machine definitions.
package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/comalice/tokennet/internal/primitives"
)

// Registry stores immutable, versioned machine definitions so hosts can construct
// machines by ID. Implementations hold definitions in memory only.
type Registry interface {
	// Register validates and stores config under its computed version.
	Register(ctx context.Context, config primitives.MachineConfig) (string, error)

	// Latest returns the most recently registered definition for machineID.
	Latest(ctx context.Context, machineID string) (primitives.MachineConfig, error)

	// Version returns the definition for a specific version.
	Version(ctx context.Context, machineID, version string) (primitives.MachineConfig, error)

	// ListVersions returns versions for machineID, newest first.
	ListVersions(ctx context.Context, machineID string) ([]string, error)

	// ListMachines returns all machine IDs.
	ListMachines(ctx context.Context) ([]string, error)
}

var (
	ErrNotFound = errors.New("version or machine not found")
	ErrExists   = errors.New("version already exists")
)

// NewMachineFromRegistry builds a Machine from the latest definition of machineID.
func NewMachineFromRegistry(ctx context.Context, r Registry, machineID string, opts ...Option) (*Machine, error) {
	config, err := r.Latest(ctx, machineID)
	if err != nil {
		return nil, fmt.Errorf("machine %q: %w", machineID, err)
	}
	return NewMachine(config, opts...)
}
