// Package primitives includes builder helpers for MachineConfig.
package primitives

import (
	"fmt"
)

type (
	// MachineBuilder builds a MachineConfig fluently from labelled places and
	// arc-style transitions. Arcs are resolved against place labels in Build, so
	// transitions may be declared before the places they touch.
	MachineBuilder struct {
		id          string
		version     string
		schemaName  string
		labels      []string
		initial     Vector
		capacity    Vector
		transitions []*TransitionBuilder
		byName      map[string]*TransitionBuilder
		err         error
	}

	// TransitionBuilder configures one transition of a MachineBuilder.
	TransitionBuilder struct {
		mb     *MachineBuilder
		name   string
		role   string
		delta  Vector
		guards map[string]Vector
		arcs   []arc
	}

	arcKind int

	arc struct {
		kind   arcKind
		place  string
		weight int64
	}
)

const (
	inputArc arcKind = iota
	outputArc
	guardArc
)

// NewMachineBuilder creates a new MachineBuilder.
func NewMachineBuilder(id string) *MachineBuilder {
	return &MachineBuilder{
		id:         id,
		schemaName: id,
		byName:     make(map[string]*TransitionBuilder),
	}
}

// Version pins the definition version instead of a content hash.
func (b *MachineBuilder) Version(v string) *MachineBuilder {
	b.version = v
	return b
}

// Schema names the place schema (defaults to the machine ID).
func (b *MachineBuilder) Schema(name string) *MachineBuilder {
	b.schemaName = name
	return b
}

// Place appends a labelled place. A capacity of 0 leaves the place unbounded.
func (b *MachineBuilder) Place(label string, initial, capacity int64) *MachineBuilder {
	for _, l := range b.labels {
		if l == label {
			b.fail(fmt.Errorf("duplicate place %q", label))
			return b
		}
	}
	b.labels = append(b.labels, label)
	b.initial = append(b.initial, initial)
	b.capacity = append(b.capacity, capacity)
	return b
}

// Transition starts (or resumes) the transition with the given name.
func (b *MachineBuilder) Transition(name string) *TransitionBuilder {
	if tb, ok := b.byName[name]; ok {
		return tb
	}
	tb := &TransitionBuilder{mb: b, name: name}
	b.byName[name] = tb
	b.transitions = append(b.transitions, tb)
	return tb
}

// Build finalizes config (resolves arcs, validates).
func (b *MachineBuilder) Build() (MachineConfig, error) {
	if b.err != nil {
		return MachineConfig{}, b.err
	}
	n := len(b.labels)
	schema := &PlaceSchema{Name: b.schemaName, Places: make(map[string]int, n)}
	for i, l := range b.labels {
		schema.Places[l] = i
	}

	config := MachineConfig{
		Version:     b.version,
		ID:          b.id,
		Initial:     b.initial.Clone(),
		Capacity:    b.capacity.Clone(),
		Transitions: make(map[string]TransitionConfig, len(b.transitions)),
		Schema:      schema,
	}
	for _, tb := range b.transitions {
		t, err := tb.resolve(schema, n)
		if err != nil {
			return MachineConfig{}, fmt.Errorf("transition %q: %w", tb.name, err)
		}
		config.Transitions[tb.name] = t
	}
	if err := config.Validate(); err != nil {
		return MachineConfig{}, err
	}
	return config, nil
}

// MustBuild is Build that panics on error.
func (b *MachineBuilder) MustBuild() MachineConfig {
	config, err := b.Build()
	if err != nil {
		panic(err)
	}
	return config
}

func (b *MachineBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Role sets the informational role tag.
func (tb *TransitionBuilder) Role(role string) *TransitionBuilder {
	tb.role = role
	return tb
}

// Delta sets the full delta vector. Arcs are added on top of it.
func (tb *TransitionBuilder) Delta(values ...int64) *TransitionBuilder {
	tb.delta = Vector(values).Clone()
	return tb
}

// Guard adds a named guard vector.
func (tb *TransitionBuilder) Guard(name string, values ...int64) *TransitionBuilder {
	if tb.guards == nil {
		tb.guards = make(map[string]Vector)
	}
	if _, ok := tb.guards[name]; ok {
		tb.mb.fail(fmt.Errorf("transition %q: duplicate guard %q", tb.name, name))
		return tb
	}
	tb.guards[name] = Vector(values).Clone()
	return tb
}

// Input consumes weight tokens from place when the transition fires.
func (tb *TransitionBuilder) Input(place string, weight int64) *TransitionBuilder {
	return tb.addArc(inputArc, place, weight)
}

// Output produces weight tokens into place when the transition fires.
func (tb *TransitionBuilder) Output(place string, weight int64) *TransitionBuilder {
	return tb.addArc(outputArc, place, weight)
}

// Requires guards the transition on place currently holding at least weight
// tokens, without consuming them. The guard is named after the place.
func (tb *TransitionBuilder) Requires(place string, weight int64) *TransitionBuilder {
	return tb.addArc(guardArc, place, weight)
}

// Transition continues with another transition of the same machine.
func (tb *TransitionBuilder) Transition(name string) *TransitionBuilder {
	return tb.mb.Transition(name)
}

// Place continues with the machine builder.
func (tb *TransitionBuilder) Place(label string, initial, capacity int64) *MachineBuilder {
	return tb.mb.Place(label, initial, capacity)
}

// Build finalizes the owning machine builder.
func (tb *TransitionBuilder) Build() (MachineConfig, error) {
	return tb.mb.Build()
}

// MustBuild finalizes the owning machine builder and panics on error.
func (tb *TransitionBuilder) MustBuild() MachineConfig {
	return tb.mb.MustBuild()
}

func (tb *TransitionBuilder) addArc(kind arcKind, place string, weight int64) *TransitionBuilder {
	if weight <= 0 {
		tb.mb.fail(fmt.Errorf("transition %q: arc weight for %q must be positive", tb.name, place))
		return tb
	}
	tb.arcs = append(tb.arcs, arc{kind: kind, place: place, weight: weight})
	return tb
}

func (tb *TransitionBuilder) resolve(schema *PlaceSchema, n int) (TransitionConfig, error) {
	delta := Zero(n)
	if tb.delta != nil {
		if err := checkLen("delta", tb.delta, n); err != nil {
			return TransitionConfig{}, err
		}
		copy(delta, tb.delta)
	}
	var guards map[string]Vector
	if len(tb.guards) > 0 || len(tb.arcs) > 0 {
		guards = make(map[string]Vector, len(tb.guards))
		for name, g := range tb.guards {
			guards[name] = g.Clone()
		}
	}
	for _, a := range tb.arcs {
		idx, ok := schema.Index(a.place)
		if !ok {
			return TransitionConfig{}, fmt.Errorf("unknown place %q", a.place)
		}
		switch a.kind {
		case inputArc:
			delta[idx] -= a.weight
		case outputArc:
			delta[idx] += a.weight
		case guardArc:
			if _, ok := guards[a.place]; ok {
				return TransitionConfig{}, fmt.Errorf("duplicate guard %q", a.place)
			}
			guards[a.place] = Unit(n, idx, -a.weight)
		}
	}
	if len(guards) == 0 {
		guards = nil
	}
	role := tb.role
	if role == "" {
		role = DefaultRole
	}
	return TransitionConfig{Role: role, Delta: delta, Guards: guards}, nil
}
