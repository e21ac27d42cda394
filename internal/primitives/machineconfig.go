// Package primitives defines the foundational data structures for the token engine.
//
// MachineConfig is the complete construction input for one machine: initial marking,
// capacity vector and transition definitions, plus optional place labels.
// Validation enforces a single dimension across every vector, a non-negative initial
// marking within capacity, and non-empty transition names.
package primitives

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNegativeMarking = errors.New("marking holds a negative place")
	ErrOverCapacity    = errors.New("marking exceeds place capacity")
	ErrNoPlaces        = errors.New("machine requires at least one place")
)

// MachineConfig defines a complete token machine.
type MachineConfig struct {
	Version     string                      `json:"version,omitempty" yaml:"version,omitempty"`
	ID          string                      `json:"id" yaml:"id"`
	Initial     Vector                      `json:"initial" yaml:"initial,flow"`
	Capacity    Vector                      `json:"capacity" yaml:"capacity,flow"`
	Transitions map[string]TransitionConfig `json:"transitions" yaml:"transitions"`
	Schema      *PlaceSchema                `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// Places returns the dimension N of the machine.
func (m *MachineConfig) Places() int {
	return len(m.Initial)
}

// Validate validates the entire machine configuration:
// - At least one place; Capacity has the same length as Initial
// - Capacity entries are non-negative (0 = unbounded)
// - Initial is non-negative and within capacity
// - Every transition has a name and vectors of length N
// - The schema, when present, labels valid distinct indices
func (m *MachineConfig) Validate() error {
	n := m.Places()
	if n == 0 {
		return ErrNoPlaces
	}
	if err := checkLen("capacity", m.Capacity, n); err != nil {
		return err
	}
	for i, c := range m.Capacity {
		if c < 0 {
			return fmt.Errorf("capacity of place %d is negative (%d)", i, c)
		}
	}
	if err := CheckMarking(m.Initial, m.Capacity); err != nil {
		return fmt.Errorf("initial marking: %w", err)
	}
	for _, name := range m.TransitionNames() {
		if strings.TrimSpace(name) == "" {
			return errors.New("transition name cannot be empty")
		}
		t := m.Transitions[name]
		if err := t.Validate(n); err != nil {
			return fmt.Errorf("transition %q: %w", name, err)
		}
	}
	if m.Schema != nil {
		if err := m.Schema.Validate(n); err != nil {
			return fmt.Errorf("schema: %w", err)
		}
	}
	return nil
}

// CheckMarking verifies that a marking is non-negative and respects capacity.
func CheckMarking(marking, capacity Vector) error {
	if err := checkLen("marking", marking, len(capacity)); err != nil {
		return err
	}
	for i, v := range marking {
		if v < 0 {
			return fmt.Errorf("%w: place %d = %d", ErrNegativeMarking, i, v)
		}
		if capacity[i] > 0 && v > capacity[i] {
			return fmt.Errorf("%w: place %d = %d > %d", ErrOverCapacity, i, v, capacity[i])
		}
	}
	return nil
}

// TransitionNames returns the transition names in sorted order.
func (m *MachineConfig) TransitionNames() []string {
	names := make([]string, 0, len(m.Transitions))
	for name := range m.Transitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy sharing no vectors with m.
func (m *MachineConfig) Clone() MachineConfig {
	out := MachineConfig{
		Version:  m.Version,
		ID:       m.ID,
		Initial:  m.Initial.Clone(),
		Capacity: m.Capacity.Clone(),
		Schema:   m.Schema.Clone(),
	}
	if m.Transitions != nil {
		out.Transitions = make(map[string]TransitionConfig, len(m.Transitions))
		for name, t := range m.Transitions {
			out.Transitions[name] = t.Clone()
		}
	}
	return out
}
