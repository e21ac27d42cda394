package primitives

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch reports vectors of differing lengths for one machine.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// Vector is an ordered sequence of token counts, one entry per place.
type Vector []int64

// Add returns the elementwise sum of a and b. ok is false when any entry of the sum
// is negative. Vectors of unequal length are rejected with ErrDimensionMismatch.
func Add(a, b Vector) (Vector, bool, error) {
	if len(a) != len(b) {
		return nil, false, fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, len(a), len(b))
	}
	out := make(Vector, len(a))
	ok := true
	for i := range a {
		out[i] = a[i] + b[i]
		if out[i] < 0 {
			ok = false
		}
	}
	return out, ok, nil
}

// Zero returns a vector of n zeros.
func Zero(n int) Vector {
	return make(Vector, n)
}

// Unit returns a vector of length n holding v at index i and zero elsewhere.
func Unit(n, i int, v int64) Vector {
	out := make(Vector, n)
	out[i] = v
	return out
}

// Clone returns a copy that shares no memory with v.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Equal reports whether v and o hold the same values.
func (v Vector) Equal(o Vector) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i] != o[i] {
			return false
		}
	}
	return true
}

// checkLen validates the length of a named vector.
func checkLen(what string, v Vector, n int) error {
	if len(v) != n {
		return fmt.Errorf("%w: %s has %d places, want %d", ErrDimensionMismatch, what, len(v), n)
	}
	return nil
}
