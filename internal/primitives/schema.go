package primitives

import (
	"errors"
	"fmt"
	"sort"
)

// PlaceSchema labels the places of a machine. It is informational: the engine never
// consults it when validating a transition.
type PlaceSchema struct {
	Name   string         `json:"name" yaml:"name"`
	Places map[string]int `json:"places" yaml:"places"`
}

// Validate checks that every label maps to a distinct index below n.
func (s *PlaceSchema) Validate(n int) error {
	seen := make(map[int]string, len(s.Places))
	for label, idx := range s.Places {
		if label == "" {
			return errors.New("place label cannot be empty")
		}
		if idx < 0 || idx >= n {
			return fmt.Errorf("place %q index %d out of range [0,%d)", label, idx, n)
		}
		if other, ok := seen[idx]; ok {
			return fmt.Errorf("places %q and %q share index %d", other, label, idx)
		}
		seen[idx] = label
	}
	return nil
}

// Index returns the index of a labelled place.
func (s *PlaceSchema) Index(label string) (int, bool) {
	if s == nil {
		return 0, false
	}
	idx, ok := s.Places[label]
	return idx, ok
}

// Label returns the label of place i, or "p<i>" when the place is unlabelled.
func (s *PlaceSchema) Label(i int) string {
	if s != nil {
		for label, idx := range s.Places {
			if idx == i {
				return label
			}
		}
	}
	return fmt.Sprintf("p%d", i)
}

// Labels returns the labels for n places in index order.
func (s *PlaceSchema) Labels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("p%d", i)
	}
	if s == nil {
		return out
	}
	keys := make([]string, 0, len(s.Places))
	for label := range s.Places {
		keys = append(keys, label)
	}
	sort.Strings(keys)
	for _, label := range keys {
		if idx := s.Places[label]; idx >= 0 && idx < n {
			out[idx] = label
		}
	}
	return out
}

// Clone returns a deep copy; nil stays nil.
func (s *PlaceSchema) Clone() *PlaceSchema {
	if s == nil {
		return nil
	}
	out := &PlaceSchema{Name: s.Name, Places: make(map[string]int, len(s.Places))}
	for k, v := range s.Places {
		out.Places[k] = v
	}
	return out
}
