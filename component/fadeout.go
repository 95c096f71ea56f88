package component

// Fadeout represents the remaining and total lifetime of a debris or spark particle
// Opacity follows Remaining/Total until removal
type Fadeout struct {
	Remaining float64
	Total     float64
}

// Tick consumes dt and reports whether the particle has fully faded
func (f *Fadeout) Tick(dt float64) bool {
	f.Remaining -= dt
	return f.Remaining <= 0
}

// Opacity returns the fade fraction clamped to [0, 1]
func (f *Fadeout) Opacity() float64 {
	if f.Total <= 0 || f.Remaining <= 0 {
		return 0
	}
	if f.Remaining >= f.Total {
		return 1
	}
	return f.Remaining / f.Total
}
