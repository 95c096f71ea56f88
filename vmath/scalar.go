package vmath

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampAbs limits v to [-limit, limit]
func ClampAbs(v, limit float64) float64 {
	return Clamp(v, -limit, limit)
}

// Lerp interpolates a→b by t, t unclamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
