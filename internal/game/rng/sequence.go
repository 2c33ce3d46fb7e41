package rng

import "sync"

// SequenceSource replays a fixed sequence of float draws, cycling when the
// sequence is exhausted. It exists so tests can pin every probabilistic
// branch of a tick and assert byte-identical outcomes.
type SequenceSource struct {
	mu   sync.Mutex
	vals []float64
	next int
}

// NewSequence returns a SequenceSource replaying vals in order, wrapping
// around after the last value.
//
// Precondition: vals must be non-empty and every value must be in [0, 1).
func NewSequence(vals ...float64) *SequenceSource {
	if len(vals) == 0 {
		panic("rng: NewSequence called with no values")
	}
	for _, v := range vals {
		if v < 0 || v >= 1 {
			panic("rng: NewSequence value outside [0, 1)")
		}
	}
	return &SequenceSource{vals: vals}
}

// Float64 returns the next scripted value.
func (s *SequenceSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.vals[s.next]
	s.next = (s.next + 1) % len(s.vals)
	return v
}

// Intn maps the next scripted value into [0, n).
//
// Precondition: n > 0.
func (s *SequenceSource) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn called with n <= 0")
	}
	return int(s.Float64() * float64(n))
}

// Reset rewinds the sequence to its first value.
func (s *SequenceSource) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next = 0
}
