package engine

import "math"

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// jsRound rounds half toward positive infinity, which is what every
// balance formula here was tuned against.
func jsRound(v float64) float64 {
	return math.Floor(v + 0.5)
}

// roundTo rounds to d decimal places, half toward positive infinity.
func roundTo(v float64, d int) float64 {
	p := math.Pow(10, float64(d))
	return math.Floor(v*p+0.5) / p
}
