package engine

// Stream is a deterministic pseudo-random number stream (mulberry32).
// Every stochastic draw in the core flows through an explicitly passed
// Stream; nothing reads an ambient generator. A service tick derives its
// stream from (seed, serviceIndex), so any service is independently
// replayable.
type Stream struct {
	state uint32
}

// NewStream seeds a stream. The seed is truncated to 32 bits.
func NewStream(seed int64) *Stream {
	return &Stream{state: uint32(seed)}
}

// Float64 returns the next value in [0, 1).
func (s *Stream) Float64() float64 {
	s.state += 0x6D2B79F5
	x := s.state
	x = (x ^ (x >> 15)) * (x | 1)
	x ^= x + (x^(x>>7))*(x|61)
	x ^= x >> 14
	return float64(x) / 4294967296.0
}

// Intn returns an int in [0, n).
func (s *Stream) Intn(n int) int {
	return int(s.Float64() * float64(n))
}
