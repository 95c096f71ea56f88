package input

import (
	"maps"
	"slices"
)

// Action is a semantic control produced from a key or mouse event
type Action uint8

const (
	ActionNone Action = iota

	// Held controls, kept alive by key repeat
	ActionThrust    // w, Up
	ActionReverse   // s, Down
	ActionTurnLeft  // a, Left
	ActionTurnRight // d, Right
	ActionFire      // Space

	// One-shot commands
	ActionPause       // p
	ActionToggleMute  // m
	ActionToggleDebug // F1, `
	ActionRestart     // r
	ActionQuit        // q, Esc, Ctrl+C

	// ActionResize is reported for terminal resize events, not bindable
	ActionResize

	actionCount
)

// actionRegistry maps config names to bindable actions
var actionRegistry = map[string]Action{
	"thrust":       ActionThrust,
	"reverse":      ActionReverse,
	"turn_left":    ActionTurnLeft,
	"turn_right":   ActionTurnRight,
	"fire":         ActionFire,
	"pause":        ActionPause,
	"toggle_mute":  ActionToggleMute,
	"toggle_debug": ActionToggleDebug,
	"restart":      ActionRestart,
	"quit":         ActionQuit,
}

// ActionByName resolves a config action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

// ActionNames returns all bindable action names, sorted
func ActionNames() []string {
	return slices.Sorted(maps.Keys(actionRegistry))
}

func (a Action) String() string {
	if a == ActionResize {
		return "resize"
	}
	for name, v := range actionRegistry {
		if v == a {
			return name
		}
	}
	return "none"
}

// held reports whether the action is a continuous control
func (a Action) held() bool {
	return a >= ActionThrust && a <= ActionFire
}

// opposite returns the action that cancels a held control
func (a Action) opposite() Action {
	switch a {
	case ActionThrust:
		return ActionReverse
	case ActionReverse:
		return ActionThrust
	case ActionTurnLeft:
		return ActionTurnRight
	case ActionTurnRight:
		return ActionTurnLeft
	}
	return ActionNone
}
