package core

import (
	"fmt"
	"sort"

	"github.com/comalice/tokennet/internal/primitives"
)

// Transition is the compiled form of a TransitionConfig. Guard names are dropped:
// guards are an unordered set of vectors that must all hold.
type Transition struct {
	Name   string
	Role   string
	Delta  primitives.Vector
	Guards []primitives.Vector
}

// TransitionTable is an immutable name -> Transition mapping for one machine.
type TransitionTable struct {
	places      int
	transitions map[string]*Transition
	names       []string
}

// NewTransitionTable compiles the full set of definitions for a machine of the
// given number of places. Every vector is copied.
func NewTransitionTable(places int, defs map[string]primitives.TransitionConfig) (*TransitionTable, error) {
	t := &TransitionTable{
		places:      places,
		transitions: make(map[string]*Transition, len(defs)),
		names:       make([]string, 0, len(defs)),
	}
	for name, def := range defs {
		if err := def.Validate(places); err != nil {
			return nil, fmt.Errorf("transition %q: %w", name, err)
		}
		tr := &Transition{
			Name:  name,
			Role:  def.RoleOrDefault(),
			Delta: def.Delta.Clone(),
		}
		for _, g := range def.Guards {
			tr.Guards = append(tr.Guards, g.Clone())
		}
		t.transitions[name] = tr
		t.names = append(t.names, name)
	}
	sort.Strings(t.names)
	return t, nil
}

// Lookup returns a copy of the named transition.
func (t *TransitionTable) Lookup(name string) (Transition, error) {
	tr, err := t.lookup(name)
	if err != nil {
		return Transition{}, err
	}
	out := Transition{
		Name:  tr.Name,
		Role:  tr.Role,
		Delta: tr.Delta.Clone(),
	}
	for _, g := range tr.Guards {
		out.Guards = append(out.Guards, g.Clone())
	}
	return out, nil
}

func (t *TransitionTable) lookup(name string) (*Transition, error) {
	tr, ok := t.transitions[name]
	if !ok {
		return nil, &UnknownTransitionError{Name: name}
	}
	return tr, nil
}

// Names returns transition names in sorted order.
func (t *TransitionTable) Names() []string {
	return append([]string(nil), t.names...)
}

// Len returns the number of transitions.
func (t *TransitionTable) Len() int {
	return len(t.names)
}

// Places returns the vector dimension every transition was validated against.
func (t *TransitionTable) Places() int {
	return t.places
}
