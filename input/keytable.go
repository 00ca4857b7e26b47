package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// SpecialKeys covers Ctrl+*, arrows, Enter, Esc
	SpecialKeys map[tcell.Key]IntentType
	// Runes covers printable keys
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the built-in bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlS:  IntentToggleEffectMute,
			tcell.KeyCtrlG:  IntentToggleMusicMute,
			tcell.KeyEnter:  IntentPress,
			tcell.KeyUp:     IntentPress,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'Q': IntentQuit,
			' ': IntentPress,
			'w': IntentPress,
			'k': IntentPress,
		},
	}
}

// Lookup resolves a key event to an intent, IntentNone if unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
