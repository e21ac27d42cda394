// Package primitives defines the foundational data structures for the token engine.
// TransitionConfig defines one named state-update rule: a delta added to the marking,
// an informational role and any number of guard vectors.
//
// Guards are checked against the current marking, before the delta is applied. A guard
// is violated when marking + guard holds a negative entry. Guard names only document
// intent; evaluation never depends on them or on their order.
package primitives

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultRole is assigned to transitions that do not name a role.
const DefaultRole = "default"

// TransitionConfig defines a single transition.
type TransitionConfig struct {
	Role   string            `json:"role" yaml:"role"`
	Delta  Vector            `json:"delta" yaml:"delta,flow"`
	Guards map[string]Vector `json:"guards,omitempty" yaml:"guards,omitempty"`
}

// Validate checks the transition against a machine of n places.
func (t *TransitionConfig) Validate(n int) error {
	if err := checkLen("delta", t.Delta, n); err != nil {
		return err
	}
	for name, g := range t.Guards {
		if strings.TrimSpace(name) == "" {
			return errors.New("guard name cannot be empty")
		}
		if err := checkLen(fmt.Sprintf("guard %q", name), g, n); err != nil {
			return err
		}
	}
	return nil
}

// RoleOrDefault returns Role, or DefaultRole when unset.
func (t *TransitionConfig) RoleOrDefault() string {
	if t.Role == "" {
		return DefaultRole
	}
	return t.Role
}

// Clone returns a deep copy.
func (t TransitionConfig) Clone() TransitionConfig {
	out := TransitionConfig{
		Role:  t.Role,
		Delta: t.Delta.Clone(),
	}
	if t.Guards != nil {
		out.Guards = make(map[string]Vector, len(t.Guards))
		for name, g := range t.Guards {
			out.Guards[name] = g.Clone()
		}
	}
	return out
}
