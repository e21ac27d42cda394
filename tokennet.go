// Package tokennet is a deterministic, embeddable token machine: a fixed vector of
// non-negative place counts evolves through named transitions, each defined by a
// delta vector, a role tag and optional guard vectors. A transform either commits
// state+delta wholesale or leaves the marking untouched.
//
// A Machine holds no lock. Share one between goroutines through a Session.
package tokennet

import (
	"github.com/comalice/tokennet/internal/core"
	"github.com/comalice/tokennet/internal/primitives"
	"github.com/comalice/tokennet/internal/production"
)

type (
	Vector           = primitives.Vector
	MachineConfig    = primitives.MachineConfig
	TransitionConfig = primitives.TransitionConfig
	PlaceSchema      = primitives.PlaceSchema
	MachineBuilder   = primitives.MachineBuilder

	Machine         = core.Machine
	Transition      = core.Transition
	TransitionTable = core.TransitionTable
	Outcome         = core.Outcome
	MachineSnapshot = core.MachineSnapshot
	Option          = core.Option
	Registry        = core.Registry

	Session       = production.Session
	SessionOption = production.SessionOption
	Firing        = production.Firing

	EventPublisher   = production.EventPublisher
	ChannelPublisher = production.ChannelPublisher
	MemoryRegistry   = production.MemoryRegistry

	DefaultVisualizer = production.DefaultVisualizer
)

const (
	Accepted      = core.Accepted
	Underflow     = core.Underflow
	Overcapacity  = core.Overcapacity
	GuardViolated = core.GuardViolated

	DefaultRole = primitives.DefaultRole
)

var (
	ErrUnknownTransition = core.ErrUnknownTransition
	ErrDimensionMismatch = primitives.ErrDimensionMismatch
	ErrNegativeMarking   = primitives.ErrNegativeMarking
	ErrOverCapacity      = primitives.ErrOverCapacity

	WithLogger = core.WithLogger
	WithID     = core.WithID

	WithPublisher     = production.WithPublisher
	WithSessionLogger = production.WithSessionLogger
)

// New builds a Machine from an initial marking, a capacity vector (0 = unbounded)
// and named transitions.
func New(initial, capacity Vector, transitions map[string]TransitionConfig, opts ...Option) (*Machine, error) {
	return core.NewMachine(MachineConfig{
		Initial:     initial,
		Capacity:    capacity,
		Transitions: transitions,
	}, opts...)
}

// NewFromConfig builds a Machine from a complete definition.
func NewFromConfig(config MachineConfig, opts ...Option) (*Machine, error) {
	return core.NewMachine(config, opts...)
}

// NewMachineBuilder starts a definition built from labelled places and arcs.
func NewMachineBuilder(id string) *MachineBuilder {
	return primitives.NewMachineBuilder(id)
}

// NewSession wraps m for use from several goroutines.
func NewSession(m *Machine, opts ...SessionOption) *Session {
	return production.NewSession(m, opts...)
}

// NewChannelPublisher publishes firings to ch, dropping them when it is full.
func NewChannelPublisher(ch chan<- Firing) *ChannelPublisher {
	return production.NewChannelPublisher(ch)
}

// NewMemoryRegistry creates an empty in-memory definition registry.
func NewMemoryRegistry() *MemoryRegistry {
	return production.NewMemoryRegistry()
}

// IsUnknownTransition reports whether err comes from a lookup of an undefined name.
func IsUnknownTransition(err error) bool {
	return core.IsUnknownTransition(err)
}
