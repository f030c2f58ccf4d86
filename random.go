package scenegen

import "math/rand"

// RandomSource yields uniform draws in [0,1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

func NewRandomSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

// ConstantSource returns the same value for every draw.
type ConstantSource float64

func (c ConstantSource) Float64() float64 { return float64(c) }

// SequenceSource replays Values in order and wraps around when exhausted.
type SequenceSource struct {
	Values []float64
	next   int
}

func (s *SequenceSource) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}

// Draws reports how many values have been consumed.
func (s *SequenceSource) Draws() int { return s.next }
