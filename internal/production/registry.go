package production

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/comalice/tokennet/internal/core"
	"github.com/comalice/tokennet/internal/primitives"
)

// MemoryRegistry is an in-memory core.Registry. Stored configs are deep copies and
// every read returns a fresh copy, so definitions stay immutable once registered.
type MemoryRegistry struct {
	mu       sync.RWMutex
	versions map[string][]string // machineID -> versions, oldest first
	configs  map[string]map[string]primitives.MachineConfig
}

var _ core.Registry = (*MemoryRegistry)(nil)

// NewMemoryRegistry creates an empty MemoryRegistry.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		versions: make(map[string][]string),
		configs:  make(map[string]map[string]primitives.MachineConfig),
	}
}

// Register validates config and stores a copy under its computed version.
func (r *MemoryRegistry) Register(ctx context.Context, config primitives.MachineConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if config.ID == "" {
		return "", errors.New("machine ID is required")
	}
	if err := config.Validate(); err != nil {
		return "", fmt.Errorf("machine %q: %w", config.ID, err)
	}
	version := primitives.ComputeVersion(&config)

	r.mu.Lock()
	defer r.mu.Unlock()

	byVersion, ok := r.configs[config.ID]
	if !ok {
		byVersion = make(map[string]primitives.MachineConfig)
		r.configs[config.ID] = byVersion
	}
	if _, exists := byVersion[version]; exists {
		return "", fmt.Errorf("machine %q version %q: %w", config.ID, version, core.ErrExists)
	}
	byVersion[version] = config.Clone()
	r.versions[config.ID] = append(r.versions[config.ID], version)
	return version, nil
}

// Latest returns a copy of the newest definition of machineID.
func (r *MemoryRegistry) Latest(ctx context.Context, machineID string) (primitives.MachineConfig, error) {
	if err := ctx.Err(); err != nil {
		return primitives.MachineConfig{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	versions := r.versions[machineID]
	if len(versions) == 0 {
		return primitives.MachineConfig{}, core.ErrNotFound
	}
	config := r.configs[machineID][versions[len(versions)-1]]
	return config.Clone(), nil
}

// Version returns a copy of one stored definition.
func (r *MemoryRegistry) Version(ctx context.Context, machineID, version string) (primitives.MachineConfig, error) {
	if err := ctx.Err(); err != nil {
		return primitives.MachineConfig{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	config, ok := r.configs[machineID][version]
	if !ok {
		return primitives.MachineConfig{}, core.ErrNotFound
	}
	return config.Clone(), nil
}

// ListVersions returns the versions of machineID, newest first.
func (r *MemoryRegistry) ListVersions(ctx context.Context, machineID string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	versions := r.versions[machineID]
	if len(versions) == 0 {
		return nil, core.ErrNotFound
	}
	out := make([]string, len(versions))
	for i, v := range versions {
		out[len(versions)-1-i] = v
	}
	return out, nil
}

// ListMachines returns the registered machine IDs in sorted order.
func (r *MemoryRegistry) ListMachines(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.versions))
	for id := range r.versions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
