package primitives

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachineBuilderCounter(t *testing.T) {
	cfg, err := NewMachineBuilder("counter").
		Place("p0", 0, 0).
		Place("p1", 0, 0).
		Place("p2", 0, 1).
		Transition("inc0").Output("p0", 1).Guard("atomic", -1, 0, 0).
		Transition("dec0").Input("p0", 1).
		Transition("inc2").Delta(0, 0, 1).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "counter", cfg.ID)
	assert.Equal(t, Vector{0, 0, 0}, cfg.Initial)
	assert.Equal(t, Vector{0, 0, 1}, cfg.Capacity)

	inc0 := cfg.Transitions["inc0"]
	assert.Equal(t, DefaultRole, inc0.Role)
	assert.Equal(t, Vector{1, 0, 0}, inc0.Delta)
	assert.Equal(t, map[string]Vector{"atomic": {-1, 0, 0}}, inc0.Guards)

	assert.Equal(t, Vector{-1, 0, 0}, cfg.Transitions["dec0"].Delta)
	assert.Nil(t, cfg.Transitions["dec0"].Guards)
	assert.Equal(t, Vector{0, 0, 1}, cfg.Transitions["inc2"].Delta)

	require.NotNil(t, cfg.Schema)
	assert.Equal(t, "counter", cfg.Schema.Name)
	assert.Equal(t, map[string]int{"p0": 0, "p1": 1, "p2": 2}, cfg.Schema.Places)
}

func TestMachineBuilderArcs(t *testing.T) {
	cfg, err := NewMachineBuilder("handoff").
		Schema("relay").
		Version("v1").
		Transition("pass").Role("runner").
		Input("a", 2).Output("b", 1).Requires("baton", 1).
		Place("a", 2, 0).
		Place("b", 0, 3).
		Place("baton", 1, 1).
		Build()
	require.NoError(t, err)

	pass := cfg.Transitions["pass"]
	assert.Equal(t, "runner", pass.Role)
	assert.Equal(t, Vector{-2, 1, 0}, pass.Delta)
	assert.Equal(t, map[string]Vector{"baton": {0, 0, -1}}, pass.Guards)
	assert.Equal(t, "relay", cfg.Schema.Name)
	assert.Equal(t, "v1", cfg.Version)
}

func TestMachineBuilderResumeTransition(t *testing.T) {
	b := NewMachineBuilder("m").Place("p", 0, 0)
	b.Transition("t").Output("p", 1)
	b.Transition("t").Output("p", 1)
	cfg, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, Vector{2}, cfg.Transitions["t"].Delta)
}

func TestMachineBuilderErrors(t *testing.T) {
	tests := []struct {
		name    string
		build   func() (MachineConfig, error)
		message string
	}{
		{
			name: "unknown place",
			build: func() (MachineConfig, error) {
				return NewMachineBuilder("m").Place("p", 0, 0).
					Transition("t").Input("q", 1).Build()
			},
			message: `unknown place "q"`,
		},
		{
			name: "duplicate place",
			build: func() (MachineConfig, error) {
				return NewMachineBuilder("m").Place("p", 0, 0).Place("p", 0, 0).Build()
			},
			message: `duplicate place "p"`,
		},
		{
			name: "non-positive weight",
			build: func() (MachineConfig, error) {
				return NewMachineBuilder("m").Place("p", 0, 0).
					Transition("t").Output("p", 0).Build()
			},
			message: "must be positive",
		},
		{
			name: "duplicate guard",
			build: func() (MachineConfig, error) {
				return NewMachineBuilder("m").Place("p", 0, 0).
					Transition("t").Guard("p", -1).Requires("p", 1).Build()
			},
			message: `duplicate guard "p"`,
		},
		{
			name: "delta length",
			build: func() (MachineConfig, error) {
				return NewMachineBuilder("m").Place("p", 0, 0).
					Transition("t").Delta(1, 1).Build()
			},
			message: "dimension mismatch",
		},
		{
			name: "initial over capacity",
			build: func() (MachineConfig, error) {
				return NewMachineBuilder("m").Place("p", 2, 1).Build()
			},
			message: "exceeds place capacity",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.build()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestMachineBuilderMustBuildPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewMachineBuilder("empty").MustBuild()
	})
}

func TestMachineBuilderMustBuildFromTransition(t *testing.T) {
	cfg := NewMachineBuilder("onoff").
		Place("off", 1, 1).
		Place("on", 0, 1).
		Transition("on").Input("off", 1).Output("on", 1).
		MustBuild()
	assert.Equal(t, Vector{-1, 1}, cfg.Transitions["on"].Delta)

	assert.Panics(t, func() {
		NewMachineBuilder("bad").
			Place("p", 0, 0).
			Transition("t").Input("missing", 1).
			MustBuild()
	})
}
