package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to actions
type KeyTable struct {
	// Keys holds special keys (arrows, Ctrl+*, Esc)
	Keys map[tcell.Key]Action

	// Runes holds printable key bindings
	Runes map[rune]Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Action{
			tcell.KeyLeft:   ActionLeft,
			tcell.KeyRight:  ActionRight,
			tcell.KeyUp:     ActionJump,
			tcell.KeyDown:   ActionDodge,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyCtrlQ:  ActionQuit,
			tcell.KeyCtrlS:  ActionToggleMute,
			tcell.KeyCtrlD:  ActionToggleDebug,
		},
		Runes: map[rune]Action{
			'a': ActionLeft,
			'h': ActionLeft,
			'd': ActionRight,
			'l': ActionRight,
			'w': ActionJump,
			'k': ActionJump,
			's': ActionDodge,
			'j': ActionDodge,
			' ': ActionAttack,
			'f': ActionAttack,
			'1': ActionAnswer1,
			'2': ActionAnswer2,
			'3': ActionAnswer3,
			'4': ActionAnswer4,
			'p': ActionPause,
			'q': ActionQuit,
		},
	}
}

// Lookup resolves a key event to an action
func (kt *KeyTable) Lookup(key tcell.Key, r rune) Action {
	if key == tcell.KeyRune {
		return kt.Runes[r]
	}
	return kt.Keys[key]
}

// Merge overlays non-nil override maps onto the table; ActionNone unbinds
func (kt *KeyTable) Merge(override *KeyTable) {
	if override == nil {
		return
	}
	mergeInto(kt.Keys, override.Keys)
	mergeInto(kt.Runes, override.Runes)
}

func mergeInto[K comparable](dst, src map[K]Action) {
	maps.Copy(dst, src)
	for k, a := range src {
		if a == ActionNone {
			delete(dst, k)
		}
	}
}
