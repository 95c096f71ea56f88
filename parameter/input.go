package parameter

import "time"

// Key hold windows, terminals report presses and repeats but never releases
const (
	// KeyHoldInitial keeps a fresh press alive across the OS repeat delay
	KeyHoldInitial = 550 * time.Millisecond
	// KeyHoldRepeat keeps a repeating key alive between repeat events
	KeyHoldRepeat = 100 * time.Millisecond
)
