package input

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"backtick":  '`',
}

// keyByName resolves lower-cased tcell key names ("up", "f1", "ctrl-c")
var keyByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// keymapFile is the on-disk keymap layout
type keymapFile struct {
	Keys    map[string]string `toml:"keys"`
	Special map[string]string `toml:"special"`
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
//
//	[keys]
//	w = "thrust"
//	space = "fire"
//
//	[special]
//	Up = "thrust"
//	F2 = "toggle_debug"
//
// Returns error on unknown sections, action names, key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var raw keymapFile
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, errors.Wrap(err, "keymap parse")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("keymap: unknown entry %q", undecoded[0].String())
	}

	kt := &KeyTable{
		Runes: make(map[rune]Action, len(raw.Keys)),
		Keys:  make(map[tcell.Key]Action, len(raw.Special)),
	}

	for name, actionName := range raw.Keys {
		r, err := resolveRune(name)
		if err != nil {
			return nil, errors.Wrap(err, "section [keys]")
		}
		a, err := resolveAction(actionName)
		if err != nil {
			return nil, errors.Wrapf(err, "section [keys] key %q", name)
		}
		kt.Runes[r] = a
	}

	for name, actionName := range raw.Special {
		k, ok := keyByName[strings.ToLower(name)]
		if !ok {
			return nil, errors.Errorf("section [special]: unknown key name %q", name)
		}
		a, err := resolveAction(actionName)
		if err != nil {
			return nil, errors.Wrapf(err, "section [special] key %q", name)
		}
		kt.Keys[k] = a
	}

	return kt, nil
}

// resolveRune accepts a single character or an alias
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, errors.Errorf("invalid key %q: expected single character or alias", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.ToLower(r), nil
}

func resolveAction(name string) (Action, error) {
	a, ok := ActionByName(name)
	if !ok {
		return ActionNone, errors.Errorf("unknown action %q", name)
	}
	return a, nil
}
