// Package seedstream is a deterministic pseudo-random stream keyed by a seed
// string. The same seed always yields the same infinite sequence, across runs
// and across implementations that follow the same hash/mix algorithm, so it is
// the single source of variation for generated robots.
package seedstream

import "math"

// Stream holds the 32-bit generator state. One robot owns exactly one Stream;
// streams are never shared between generations.
type Stream struct {
	state uint32
}

// New derives the initial state from the seed text with a rolling 31-multiply
// hash over code points. The fold is done in signed 32-bit arithmetic with
// wraparound (matching `(acc*31 + code) | 0`), then reinterpreted as unsigned.
// An empty string hashes to state 0, which is still a valid stream.
func New(seed string) *Stream {
	var acc int32
	for _, r := range seed {
		acc = acc*31 + int32(r)
	}
	return &Stream{state: uint32(acc)}
}

// State returns the current 32-bit state. Used to pin the seed hash in tests.
func (s *Stream) State() uint32 {
	return s.state
}

// Next advances the state and returns a float64 in [0,1). The mixer is
// Mulberry32: a fixed odd additive constant, then two xorshift-multiply
// rounds, all in wrapping 32-bit arithmetic.
func (s *Stream) Next() float64 {
	s.state += 0x6D2B79F5
	t := s.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// Range returns a float64 in [lo,hi).
func (s *Stream) Range(lo, hi float64) float64 {
	return lo + s.Next()*(hi-lo)
}

// IntInclusive returns an int in [lo,hi], both ends included.
func (s *Stream) IntInclusive(lo, hi int) int {
	return int(math.Floor(s.Range(float64(lo), float64(hi)+1)))
}

// Chance returns true with probability p.
func (s *Stream) Chance(p float64) bool {
	return s.Next() < p
}

// Pick returns a uniformly chosen element of list, consuming one draw.
// Picking from an empty list is a programming error and panics.
func Pick[T any](s *Stream, list []T) T {
	if len(list) == 0 {
		panic("seedstream: Pick from empty list")
	}
	return list[s.IntInclusive(0, len(list)-1)]
}
