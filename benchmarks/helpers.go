// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/comalice/tokennet/internal/core"
	"github.com/comalice/tokennet/internal/primitives"
)

// GenRingConfig creates a ring of n places holding one token at place 0.
// Transition "t<i>" moves the token from place i to place (i+1)%n.
func GenRingConfig(n int) primitives.MachineConfig {
	if n < 2 {
		n = 2
	}
	mb := primitives.NewMachineBuilder(fmt.Sprintf("ring_%d", n))
	for i := 0; i < n; i++ {
		initial := int64(0)
		if i == 0 {
			initial = 1
		}
		mb.Place(fmt.Sprintf("p%d", i), initial, 1)
	}
	for i := 0; i < n; i++ {
		mb.Transition(fmt.Sprintf("t%d", i)).
			Input(fmt.Sprintf("p%d", i), 1).
			Output(fmt.Sprintf("p%d", (i+1)%n), 1)
	}
	return mb.MustBuild()
}

// GenGuardedConfig creates a two-place machine whose only transition "tick"
// carries numGuards guards, all satisfied while the place holds a token.
func GenGuardedConfig(numGuards int) primitives.MachineConfig {
	if numGuards < 1 {
		numGuards = 1
	}
	config := primitives.MachineConfig{
		ID:       fmt.Sprintf("guarded_%d", numGuards),
		Initial:  primitives.Vector{1, 0},
		Capacity: primitives.Vector{0, 0},
		Transitions: map[string]primitives.TransitionConfig{
			"tick": {
				Delta:  primitives.Vector{0, 0},
				Guards: make(map[string]primitives.Vector, numGuards),
			},
		},
	}
	for i := 0; i < numGuards; i++ {
		config.Transitions["tick"].Guards[fmt.Sprintf("g%d", i)] = primitives.Vector{-1, 0}
	}
	return config
}

// RingWalk returns the transition names that walk the token once around a ring.
func RingWalk(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("t%d", i)
	}
	return names
}

// GenSnapshotYAML generates YAML bytes for a snapshot of a ring of n places
// after the token has moved once.
func GenSnapshotYAML(n int) []byte {
	m, err := core.NewMachine(GenRingConfig(n))
	if err != nil {
		panic(err)
	}
	if _, err := m.Transform("t0"); err != nil {
		panic(err)
	}
	data, err := yaml.Marshal(m.Snapshot())
	if err != nil {
		panic(err)
	}
	return data
}
