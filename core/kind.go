package core

// Kind is the closed set of simulation object types
type Kind uint8

const (
	KindPlayerShip Kind = iota
	KindAsteroid
	KindBullet
	KindDebris
	KindSpark
	kindCount
)

// KindCount is the number of entity kinds, for per-kind tables
const KindCount = int(kindCount)

var kindNames = [KindCount]string{
	KindPlayerShip: "ship",
	KindAsteroid:   "asteroid",
	KindBullet:     "bullet",
	KindDebris:     "debris",
	KindSpark:      "spark",
}

func (k Kind) String() string {
	if int(k) < KindCount {
		return kindNames[k]
	}
	return "unknown"
}

// IsParticle reports whether the kind fades out and is tracked by a fade lifetime
func (k Kind) IsParticle() bool {
	return k == KindDebris || k == KindSpark
}
