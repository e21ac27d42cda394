// Package core provides the runtime core tier of the token engine: the immutable
// TransitionTable and the Machine that owns a marking and validates transforms.
// Dependencies: internal/primitives.
//
// A Machine is synchronous and holds no lock. Embedders that share one instance
// between goroutines must serialise access themselves.
package core

import (
	"log/slog"
	"time"

	"github.com/comalice/tokennet/internal/log"
	"github.com/comalice/tokennet/internal/primitives"
)

// Outcome is the result of evaluating a transition against the current marking.
type Outcome int

const (
	// Unknown accompanies an error; no evaluation took place.
	Unknown Outcome = iota
	Accepted
	// Underflow: state + delta drives a place below zero.
	Underflow
	// Overcapacity: state + delta exceeds a bounded place.
	Overcapacity
	// GuardViolated: state + guard holds a negative entry.
	GuardViolated
)

func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case Underflow:
		return "underflow"
	case Overcapacity:
		return "overcapacity"
	case GuardViolated:
		return "guard_violated"
	default:
		return "unknown"
	}
}

// MachineSnapshot is a point-in-time copy of a machine's marking for diagnostics.
type MachineSnapshot struct {
	MachineID string            `json:"machineID" yaml:"machineID"`
	Version   string            `json:"version" yaml:"version"`
	State     primitives.Vector `json:"state" yaml:"state,flow"`
	Capacity  primitives.Vector `json:"capacity" yaml:"capacity,flow"`
	Timestamp time.Time         `json:"timestamp" yaml:"timestamp"`
}

// Option applies configuration to Machine via functional options pattern.
type Option func(*Machine)

// Machine owns the current marking, the capacity vector and the transition table.
type Machine struct {
	id       string
	version  string
	state    primitives.Vector
	capacity primitives.Vector
	table    *TransitionTable
	schema   *primitives.PlaceSchema
	logger   *slog.Logger
}

// NewMachine validates config and creates a Machine at its initial marking.
func NewMachine(config primitives.MachineConfig, opts ...Option) (*Machine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	table, err := NewTransitionTable(config.Places(), config.Transitions)
	if err != nil {
		return nil, err
	}

	m := &Machine{
		id:       config.ID,
		version:  primitives.ComputeVersion(&config),
		state:    config.Initial.Clone(),
		capacity: config.Capacity.Clone(),
		table:    table,
		schema:   config.Schema.Clone(),
		logger:   log.Discard(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// ID returns the machine ID from its config.
func (m *Machine) ID() string {
	return m.id
}

// Version returns the definition version the machine was built from.
func (m *Machine) Version() string {
	return m.version
}

// State returns a copy of the current marking.
func (m *Machine) State() primitives.Vector {
	return m.state.Clone()
}

// Capacity returns a copy of the capacity vector.
func (m *Machine) Capacity() primitives.Vector {
	return m.capacity.Clone()
}

// Table returns the machine's transition table.
func (m *Machine) Table() *TransitionTable {
	return m.table
}

// Schema returns a copy of the optional place labels (nil when absent).
func (m *Machine) Schema() *primitives.PlaceSchema {
	return m.schema.Clone()
}

// Role returns the role tag of the named transition.
func (m *Machine) Role(name string) (string, error) {
	tr, err := m.table.lookup(name)
	if err != nil {
		return "", err
	}
	return tr.Role, nil
}

// Transform fires the named transition. It returns false, with the marking
// untouched, when the transition would underflow a place, exceed a capacity or
// violate a guard. Unknown names are reported as an error, never as false.
func (m *Machine) Transform(name string) (bool, error) {
	o, err := m.Fire(name)
	if err != nil {
		return false, err
	}
	return o == Accepted, nil
}

// Fire is Transform reporting why a rejected transition failed.
func (m *Machine) Fire(name string) (Outcome, error) {
	tr, o, next, err := m.evaluate(name)
	if err != nil {
		m.logger.Warn("transition lookup failed",
			log.Machine(m.id), log.Transition(name), log.Error(err))
		return Unknown, err
	}
	if o != Accepted {
		m.logger.Debug("transition rejected",
			log.Machine(m.id), log.Transition(name), log.Role(tr.Role),
			log.Outcome(o), log.State(m.state))
		return o, nil
	}
	m.state = next
	m.logger.Debug("transition accepted",
		log.Machine(m.id), log.Transition(name), log.Role(tr.Role),
		log.State(m.state))
	return Accepted, nil
}

// CanFire evaluates the named transition without committing it.
func (m *Machine) CanFire(name string) (Outcome, error) {
	_, o, _, err := m.evaluate(name)
	if err != nil {
		return Unknown, err
	}
	return o, nil
}

// Enabled returns the sorted names of transitions Transform would accept now.
func (m *Machine) Enabled() []string {
	var out []string
	for _, name := range m.table.names {
		if _, o, _, err := m.evaluate(name); err == nil && o == Accepted {
			out = append(out, name)
		}
	}
	return out
}

// Snapshot copies the current marking for diagnostics.
func (m *Machine) Snapshot() MachineSnapshot {
	return MachineSnapshot{
		MachineID: m.id,
		Version:   m.version,
		State:     m.state.Clone(),
		Capacity:  m.capacity.Clone(),
		Timestamp: time.Now(),
	}
}

// evaluate runs lookup, underflow, capacity and guard checks in that order.
// The marking is only read.
func (m *Machine) evaluate(name string) (*Transition, Outcome, primitives.Vector, error) {
	tr, err := m.table.lookup(name)
	if err != nil {
		return nil, Unknown, nil, err
	}

	next, ok, err := primitives.Add(m.state, tr.Delta)
	if err != nil {
		return nil, Unknown, nil, err
	}
	if !ok {
		return tr, Underflow, nil, nil
	}

	for i, c := range m.capacity {
		if c > 0 && next[i] > c {
			return tr, Overcapacity, nil, nil
		}
	}

	// guards test the current marking, not the candidate
	for _, g := range tr.Guards {
		_, ok, err := primitives.Add(m.state, g)
		if err != nil {
			return nil, Unknown, nil, err
		}
		if !ok {
			return tr, GuardViolated, nil, nil
		}
	}

	return tr, Accepted, next, nil
}
