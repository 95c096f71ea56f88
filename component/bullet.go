package component

// Lifetime counts down a bullet's remaining time to live in seconds
// The bullet is removed on the tick Remaining reaches zero or below
type Lifetime struct {
	Remaining float64
}

// Tick consumes dt and reports whether the lifetime has expired
func (l *Lifetime) Tick(dt float64) bool {
	l.Remaining -= dt
	return l.Remaining <= 0
}
