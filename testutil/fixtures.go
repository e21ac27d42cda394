// Package testutil provides machine definitions shared by tests, benchmarks and the demo.
package testutil

import "github.com/comalice/tokennet/internal/primitives"

// CounterConfig returns the 3-place counter: places 0 and 1 unbounded, place 2
// capped at 1, inc/dec transitions of ±1 per place. inc0 carries the guard
// "atomic" = [-1,0,0]: it is rejected unless place 0 currently holds a token.
func CounterConfig() primitives.MachineConfig {
	return primitives.MachineConfig{
		ID:       "counter",
		Initial:  primitives.Vector{0, 0, 0},
		Capacity: primitives.Vector{0, 0, 1},
		Transitions: map[string]primitives.TransitionConfig{
			"inc0": {
				Role:   primitives.DefaultRole,
				Delta:  primitives.Vector{1, 0, 0},
				Guards: map[string]primitives.Vector{"atomic": {-1, 0, 0}},
			},
			"inc1": {Role: primitives.DefaultRole, Delta: primitives.Vector{0, 1, 0}},
			"inc2": {Role: primitives.DefaultRole, Delta: primitives.Vector{0, 0, 1}},
			"dec0": {Role: primitives.DefaultRole, Delta: primitives.Vector{-1, 0, 0}},
			"dec1": {Role: primitives.DefaultRole, Delta: primitives.Vector{0, -1, 0}},
			"dec2": {Role: primitives.DefaultRole, Delta: primitives.Vector{0, 0, -1}},
		},
		Schema: &primitives.PlaceSchema{
			Name:   "counter",
			Places: map[string]int{"p0": 0, "p1": 1, "p2": 2},
		},
	}
}

// CounterAt returns CounterConfig starting from the given marking.
func CounterAt(initial ...int64) primitives.MachineConfig {
	config := CounterConfig()
	config.Initial = primitives.Vector(initial).Clone()
	return config
}

// OnOffConfig returns a two-role switch: a "user" turns it on, an "admin" turns
// it off. Exactly one of the places off/on holds the single token.
func OnOffConfig() primitives.MachineConfig {
	return primitives.NewMachineBuilder("onoff").
		Place("off", 1, 1).
		Place("on", 0, 1).
		Transition("on").Role("user").Input("off", 1).Output("on", 1).
		Transition("off").Role("admin").Input("on", 1).Output("off", 1).
		MustBuild()
}
