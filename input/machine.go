package input

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stardrift/vmath"
)

// Machine resolves key events against a KeyTable and tracks held movement
// Owned by the game loop goroutine
type Machine struct {
	table *KeyTable
	state State
}

// NewMachine creates a machine over table, the default table when nil
func NewMachine(table *KeyTable) *Machine {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Machine{table: table}
}

// Process resolves one terminal event at now
func (m *Machine) Process(ev tcell.Event, now time.Time) Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev, now)
	}
	return Intent{}
}

func (m *Machine) processKey(ev *tcell.EventKey, now time.Time) Intent {
	if ev.Key() != tcell.KeyRune {
		entry, ok := m.table.SpecialKeys[ev.Key()]
		if !ok {
			return Intent{}
		}
		return m.resolve(entry, now)
	}

	r := ev.Rune()
	// 1-based digit keys pick overlay entries
	if r >= '1' && r <= '9' {
		return Intent{Type: IntentChoose, Choice: int(r - '1')}
	}
	entry, ok := m.table.Runes[unicode.ToLower(r)]
	if !ok {
		return Intent{}
	}
	return m.resolve(entry, now)
}

func (m *Machine) resolve(entry KeyEntry, now time.Time) Intent {
	if entry.Intent == IntentMove {
		m.state.Press(entry.Dir, now)
	}
	return Intent{Type: entry.Intent, Dir: entry.Dir}
}

// Vector returns the held movement vector at now
func (m *Machine) Vector(now time.Time) vmath.Vec2 {
	return m.state.Vector(now)
}

// Release drops held movement, used when an overlay opens
func (m *Machine) Release() {
	m.state.Release()
}
