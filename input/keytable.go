package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to intents
type KeyTable struct {
	// Special keys (arrows, Esc, Enter, Ctrl+*)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the stock bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyLeft:   IntentMoveLeft,
			tcell.KeyRight:  IntentMoveRight,
			tcell.KeyEnter:  IntentFire,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
		},
		Runes: map[rune]IntentType{
			' ': IntentFire,
			'q': IntentQuit,
			'a': IntentMoveLeft,
			'h': IntentMoveLeft,
			'd': IntentMoveRight,
			'l': IntentMoveRight,
		},
	}
}

// Decode maps an event to an intent; anything unbound is IntentNone
func (kt *KeyTable) Decode(ev tcell.Event) IntentType {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return IntentNone
	}
	if key.Key() == tcell.KeyRune {
		return kt.Runes[key.Rune()]
	}
	return kt.SpecialKeys[key.Key()]
}
