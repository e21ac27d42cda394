package benchmarks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/tokennet/internal/core"
	"github.com/comalice/tokennet/internal/primitives"
)

func TestGenRingConfig(t *testing.T) {
	config := GenRingConfig(3)
	require.NoError(t, config.Validate())

	m, err := core.NewMachine(config)
	require.NoError(t, err)
	for _, name := range RingWalk(3) {
		ok, err := m.Transform(name)
		require.NoError(t, err)
		assert.True(t, ok, name)
	}
	assert.Equal(t, primitives.Vector{1, 0, 0}, m.State())

	ok, err := m.Transform("t1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGenGuardedConfig(t *testing.T) {
	m, err := core.NewMachine(GenGuardedConfig(4))
	require.NoError(t, err)
	assert.Equal(t, []string{"tick"}, m.Enabled())
}

func TestGenSnapshotYAML(t *testing.T) {
	data := string(GenSnapshotYAML(3))
	assert.Contains(t, data, "machineID: ring_3")
	assert.Contains(t, data, "state: [0, 1, 0]")
}
