package bridge

import (
	"github.com/lixenwraith/rockstorm/core"
	"github.com/lixenwraith/rockstorm/engine"
	"github.com/lixenwraith/rockstorm/vmath"
)

// MessageType tags outbound messages
type MessageType uint8

const (
	MsgInit          MessageType = iota // Ask the backend to build its world
	MsgControlUpdate                    // Latest control intent
)

func (t MessageType) String() string {
	switch t {
	case MsgInit:
		return "Init"
	case MsgControlUpdate:
		return "ControlUpdate"
	default:
		return "Unknown"
	}
}

// Message flows from the simulation to the backend
type Message struct {
	Type    MessageType
	Seq     uint64
	Control engine.Intent
}

// BodyState is one entity transform reported by the backend
type BodyState struct {
	ID       core.EntityID
	Position vmath.Vec3
	Rotation vmath.Quat
}

// Snapshot flows from the backend to the simulation, only the newest is kept
type Snapshot struct {
	Seq    uint64
	Bodies []BodyState
}
