// Package primitives provides the foundational data structures for the token engine.
//
// A machine is described by a MachineConfig: an initial marking, a capacity vector
// and a map of named transitions. Every vector belonging to one machine has the same
// length N, one entry per place. Configs are plain values; they are validated once and
// compiled by package core into an immutable transition table.
//
// Core invariants:
// - Vectors of one machine share a fixed length (ErrDimensionMismatch otherwise)
// - Committed markings never hold a negative entry
// - A capacity of 0 means the place is unbounded
//
// Place labels (PlaceSchema) are metadata for diagnostics and export only.
package primitives
