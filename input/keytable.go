package input

import "github.com/gdamore/tcell/v2"

// KeyEntry describes a key's behavior
type KeyEntry struct {
	Intent IntentType
	Dir    Direction
}

// KeyTable maps keys to behaviors
type KeyTable struct {
	// Special keys (Ctrl+*, arrows)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings, matched case-insensitively
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns arrows, WASD and hjkl for movement, digits for overlay choices
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlQ:  {Intent: IntentQuit},
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyEscape: {Intent: IntentEscape},
			tcell.KeyCtrlS:  {Intent: IntentToggleSFX},
			tcell.KeyCtrlG:  {Intent: IntentToggleMusic},
			tcell.KeyCtrlK:  {Intent: IntentToggleShake},
			tcell.KeyUp:     {Intent: IntentMove, Dir: DirUp},
			tcell.KeyDown:   {Intent: IntentMove, Dir: DirDown},
			tcell.KeyLeft:   {Intent: IntentMove, Dir: DirLeft},
			tcell.KeyRight:  {Intent: IntentMove, Dir: DirRight},
		},

		Runes: map[rune]KeyEntry{
			'w': {Intent: IntentMove, Dir: DirUp},
			'a': {Intent: IntentMove, Dir: DirLeft},
			's': {Intent: IntentMove, Dir: DirDown},
			'd': {Intent: IntentMove, Dir: DirRight},

			'k': {Intent: IntentMove, Dir: DirUp},
			'h': {Intent: IntentMove, Dir: DirLeft},
			'j': {Intent: IntentMove, Dir: DirDown},
			'l': {Intent: IntentMove, Dir: DirRight},
		},
	}
}
