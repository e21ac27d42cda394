package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/tokennet/internal/primitives"
	"github.com/comalice/tokennet/testutil"
)

func TestTransitionTable_Lookup(t *testing.T) {
	cfg := testutil.CounterConfig()
	table, err := NewTransitionTable(cfg.Places(), cfg.Transitions)
	require.NoError(t, err)

	tr, err := table.Lookup("inc0")
	require.NoError(t, err)
	assert.Equal(t, "inc0", tr.Name)
	assert.Equal(t, primitives.DefaultRole, tr.Role)
	assert.Equal(t, primitives.Vector{1, 0, 0}, tr.Delta)
	assert.Equal(t, []primitives.Vector{{-1, 0, 0}}, tr.Guards)

	tr, err = table.Lookup("dec2")
	require.NoError(t, err)
	assert.Empty(t, tr.Guards)
}

func TestTransitionTable_UnknownName(t *testing.T) {
	cfg := testutil.CounterConfig()
	table, err := NewTransitionTable(cfg.Places(), cfg.Transitions)
	require.NoError(t, err)

	for _, name := range []string{"nonexistent", "INC0", "inc", ""} {
		_, err := table.Lookup(name)
		assert.ErrorIs(t, err, ErrUnknownTransition, name)
		assert.True(t, IsUnknownTransition(err))

		var ute *UnknownTransitionError
		require.True(t, errors.As(err, &ute))
		assert.Equal(t, name, ute.Name)
	}
}

func TestTransitionTable_Immutable(t *testing.T) {
	defs := map[string]primitives.TransitionConfig{
		"t": {Delta: primitives.Vector{1}, Guards: map[string]primitives.Vector{"g": {0}}},
	}
	table, err := NewTransitionTable(1, defs)
	require.NoError(t, err)

	// mutating the source definitions does not leak into the table
	defs["t"].Delta[0] = 9
	defs["t"].Guards["g"][0] = -9
	delete(defs, "t")

	tr, err := table.Lookup("t")
	require.NoError(t, err)
	assert.Equal(t, primitives.Vector{1}, tr.Delta)

	// nor does mutating a looked-up copy
	tr.Delta[0] = 5
	tr.Guards[0][0] = -5
	again, err := table.Lookup("t")
	require.NoError(t, err)
	assert.Equal(t, primitives.Vector{1}, again.Delta)
	assert.Equal(t, []primitives.Vector{{0}}, again.Guards)
}

func TestTransitionTable_DefaultRole(t *testing.T) {
	table, err := NewTransitionTable(1, map[string]primitives.TransitionConfig{
		"t": {Delta: primitives.Vector{1}},
	})
	require.NoError(t, err)
	tr, err := table.Lookup("t")
	require.NoError(t, err)
	assert.Equal(t, primitives.DefaultRole, tr.Role)
}

func TestTransitionTable_DimensionMismatch(t *testing.T) {
	_, err := NewTransitionTable(3, map[string]primitives.TransitionConfig{
		"t": {Delta: primitives.Vector{1, 0}},
	})
	assert.ErrorIs(t, err, primitives.ErrDimensionMismatch)
}

func TestTransitionTable_Names(t *testing.T) {
	cfg := testutil.CounterConfig()
	table, err := NewTransitionTable(cfg.Places(), cfg.Transitions)
	require.NoError(t, err)

	assert.Equal(t, 6, table.Len())
	assert.Equal(t, 3, table.Places())
	names := table.Names()
	assert.Equal(t, []string{"dec0", "dec1", "dec2", "inc0", "inc1", "inc2"}, names)

	names[0] = "changed"
	assert.Equal(t, "dec0", table.Names()[0])
}
