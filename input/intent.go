// Package input translates terminal key events into run intents and a held movement vector
package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // Ctrl+Q, Ctrl+C
	IntentEscape // Abandon the live run
	IntentToggleSFX
	IntentToggleMusic
	IntentToggleShake
	IntentResize

	// IntentMove refreshes a held direction
	IntentMove

	// IntentChoose picks an overlay entry, Intent.Choice is 0-based
	IntentChoose
)

// Intent is one resolved key action
type Intent struct {
	Type   IntentType
	Dir    Direction
	Choice int
}
