package primitives

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Vector
		want   Vector
		wantOK bool
	}{
		{"all positive", Vector{1, 2, 3}, Vector{1, 0, -1}, Vector{2, 2, 2}, true},
		{"reaches zero", Vector{1, 0, 0}, Vector{-1, 0, 0}, Vector{0, 0, 0}, true},
		{"goes negative", Vector{0, 0, 0}, Vector{-1, 0, 0}, Vector{-1, 0, 0}, false},
		{"negative elsewhere", Vector{5, 0}, Vector{0, -2}, Vector{5, -2}, false},
		{"empty", Vector{}, Vector{}, Vector{}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok, err := Add(tc.a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantOK, ok)
		})
	}
}

func TestAddDoesNotMutateInputs(t *testing.T) {
	a := Vector{1, 1}
	b := Vector{-1, 2}
	_, _, err := Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, Vector{1, 1}, a)
	assert.Equal(t, Vector{-1, 2}, b)
}

func TestAddDimensionMismatch(t *testing.T) {
	_, ok, err := Add(Vector{1, 2}, Vector{1})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	assert.False(t, ok)
}

func TestVectorClone(t *testing.T) {
	v := Vector{1, 2}
	c := v.Clone()
	c[0] = 9
	assert.Equal(t, int64(1), v[0])
	assert.Nil(t, Vector(nil).Clone())
}

func TestVectorEqual(t *testing.T) {
	assert.True(t, Vector{1, 2}.Equal(Vector{1, 2}))
	assert.False(t, Vector{1, 2}.Equal(Vector{2, 1}))
	assert.False(t, Vector{1}.Equal(Vector{1, 0}))
}

func TestUnitAndZero(t *testing.T) {
	assert.Equal(t, Vector{0, 0, 0}, Zero(3))
	assert.Equal(t, Vector{0, -2, 0}, Unit(3, 1, -2))
}
