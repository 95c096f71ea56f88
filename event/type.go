package event

import (
	"github.com/lixenwraith/rockstorm/core"
	"github.com/lixenwraith/rockstorm/vmath"
)

// EventType represents the type of game event
type EventType int

const (
	// EventBulletFired is pushed when a fire intent passes the cooldown gate
	// Entity: bullet | Position: muzzle
	EventBulletFired EventType = iota

	// EventBulletHit is pushed for every resolved bullet-asteroid manifold
	// Entity: bullet | Other: asteroid | Position: impact point
	EventBulletHit

	// EventAsteroidFragmented is pushed when a hit asteroid splits into children
	// Entity: parent | Amount: parent scale
	EventAsteroidFragmented

	// EventAsteroidVanished is pushed when a hit asteroid is below the fragment floor
	// Entity: asteroid | Amount: scale
	EventAsteroidVanished

	// EventAsteroidSpawned is pushed by the edge spawner
	// Entity: asteroid | Position: spawn point
	EventAsteroidSpawned

	// EventShipDamaged is pushed when an asteroid contact passes the invincibility gate
	// Entity: ship | Other: asteroid | Amount: damage dealt
	EventShipDamaged

	// EventShipLost is pushed when health reaches zero and a life is consumed
	// Entity: ship | Amount: lives remaining
	EventShipLost

	// EventGameOver is pushed once when the last life is consumed
	EventGameOver
)

var typeNames = map[EventType]string{
	EventBulletFired:        "BulletFired",
	EventBulletHit:          "BulletHit",
	EventAsteroidFragmented: "AsteroidFragmented",
	EventAsteroidVanished:   "AsteroidVanished",
	EventAsteroidSpawned:    "AsteroidSpawned",
	EventShipDamaged:        "ShipDamaged",
	EventShipLost:           "ShipLost",
	EventGameOver:           "GameOver",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent carries a flat payload, fields unused by a type stay zero
type GameEvent struct {
	Type     EventType
	Entity   core.EntityID
	Other    core.EntityID
	Position vmath.Vec2
	Amount   float64
}
