package input

import (
	"maps"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to actions
type KeyTable struct {
	// Printable keys, matched case-insensitively
	Runes map[rune]Action

	// Special keys (arrows, function keys, Ctrl+*)
	Keys map[tcell.Key]Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]Action{
			'w': ActionThrust,
			's': ActionReverse,
			'a': ActionTurnLeft,
			'd': ActionTurnRight,
			' ': ActionFire,
			'p': ActionPause,
			'm': ActionToggleMute,
			'`': ActionToggleDebug,
			'r': ActionRestart,
			'q': ActionQuit,
		},
		Keys: map[tcell.Key]Action{
			tcell.KeyUp:    ActionThrust,
			tcell.KeyDown:  ActionReverse,
			tcell.KeyLeft:  ActionTurnLeft,
			tcell.KeyRight: ActionTurnRight,
			tcell.KeyF1:    ActionToggleDebug,
			tcell.KeyEsc:   ActionQuit,
			tcell.KeyCtrlC: ActionQuit,
		},
	}
}

// Lookup returns the action bound to a key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[unicode.ToLower(ev.Rune())]
	}
	return kt.Keys[ev.Key()]
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Runes: maps.Clone(kt.Runes),
		Keys:  maps.Clone(kt.Keys),
	}
}

// MergeKeyTable returns base with override bindings applied, neither input is modified
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	merged := base.Clone()
	if merged.Runes == nil {
		merged.Runes = make(map[rune]Action)
	}
	if merged.Keys == nil {
		merged.Keys = make(map[tcell.Key]Action)
	}
	if override == nil {
		return merged
	}
	maps.Copy(merged.Runes, override.Runes)
	maps.Copy(merged.Keys, override.Keys)
	return merged
}
