package primitives

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceSchemaValidate(t *testing.T) {
	s := &PlaceSchema{Name: "counter", Places: map[string]int{"p0": 0, "p1": 1}}
	assert.NoError(t, s.Validate(2))
	assert.ErrorContains(t, s.Validate(1), "out of range")

	dup := &PlaceSchema{Places: map[string]int{"a": 0, "b": 0}}
	assert.ErrorContains(t, dup.Validate(2), "share index 0")

	blank := &PlaceSchema{Places: map[string]int{"": 0}}
	assert.ErrorContains(t, blank.Validate(1), "label cannot be empty")
}

func TestPlaceSchemaLookup(t *testing.T) {
	s := &PlaceSchema{Name: "onoff", Places: map[string]int{"off": 0, "on": 1}}

	idx, ok := s.Index("on")
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = s.Index("dim")
	assert.False(t, ok)

	assert.Equal(t, "off", s.Label(0))
	assert.Equal(t, "p2", s.Label(2))
	assert.Equal(t, []string{"off", "on", "p2"}, s.Labels(3))
}

func TestPlaceSchemaNil(t *testing.T) {
	var s *PlaceSchema
	_, ok := s.Index("p0")
	assert.False(t, ok)
	assert.Equal(t, "p1", s.Label(1))
	assert.Equal(t, []string{"p0", "p1"}, s.Labels(2))
	assert.Nil(t, s.Clone())
}
