package parameter

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// DefaultTickRate is the simulation step rate when not configured
	DefaultTickRate = 60

	// MaxFrameDelta caps the delta handed to a single step after a stall (seconds)
	MaxFrameDelta = 0.1
)

// Event queue limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)

// Physics bridge
const (
	// BridgeOutboxSize bounds queued outbound messages, newer messages are dropped when full
	BridgeOutboxSize = 64
	// BridgeStepInterval is the null backend snapshot cadence
	BridgeStepInterval = time.Second / 60
)
