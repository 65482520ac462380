package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rooftop-fighter/component"
	"github.com/lixenwraith/rooftop-fighter/parameter"
)

// Machine turns terminal events into held gameplay flags and one-shot intents
type Machine struct {
	keyTable *KeyTable
	held     *HeldState
}

// NewMachine creates a machine with the default bindings overlaid by override
func NewMachine(override *KeyTable) *Machine {
	kt := DefaultKeyTable()
	kt.Merge(override)
	return &Machine{
		keyTable: kt,
		held:     NewHeldState(parameter.InputHoldWindow),
	}
}

// Process parses a terminal event
// Returns nil for events without a binding
func (m *Machine) Process(ev tcell.Event, now time.Time) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Action: ActionResize}
	case *tcell.EventKey:
		return m.Press(ev.Key(), ev.Rune(), now)
	}
	return nil
}

// Press handles one key press
func (m *Machine) Press(key tcell.Key, r rune, now time.Time) *Intent {
	action := m.keyTable.Lookup(key, r)
	if action == ActionNone {
		return nil
	}
	intent := &Intent{Action: action}
	if action.Held() {
		intent.Repeat = m.held.Press(action, now)
		// Opposite directions cancel so a direction change is immediate
		switch action {
		case ActionLeft:
			m.held.Release(ActionRight)
		case ActionRight:
			m.held.Release(ActionLeft)
		}
	}
	return intent
}

// Sample returns the level-triggered input for the frame at now
func (m *Machine) Sample(now time.Time) component.Input {
	return m.held.Sample(now)
}

// Reset releases all held actions, used on pause and session restart
func (m *Machine) Reset() {
	m.held.Reset()
}
