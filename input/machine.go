package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rockstorm/engine"
	"github.com/lixenwraith/rockstorm/parameter"
	"github.com/lixenwraith/rockstorm/vmath"
)

// Projection maps a terminal cell to world coordinates
type Projection func(x, y int) vmath.Vec2

// Machine folds terminal events into a per-tick engine.Intent
// Held controls expire unless refreshed by key repeat; one-shot commands are returned from Process
type Machine struct {
	keyTable   *KeyTable
	heldUntil  [actionCount]time.Time
	projection Projection

	// Mouse state, primary button steers and secondary fires
	pointerDown bool
	pointerX    int
	pointerY    int
	fireDown    bool
}

// NewMachine creates an input machine, nil table uses the defaults
func NewMachine(kt *KeyTable) *Machine {
	if kt == nil {
		kt = DefaultKeyTable()
	}
	return &Machine{keyTable: kt}
}

// SetProjection installs the cell to world mapping used for pointer steering
func (m *Machine) SetProjection(p Projection) {
	m.projection = p
}

// Reset releases every held control and the pointer
func (m *Machine) Reset() {
	m.heldUntil = [actionCount]time.Time{}
	m.pointerDown = false
	m.fireDown = false
}

// Process consumes a terminal event
// Returns the one-shot action it triggered, ActionNone for held controls and ignored events
func (m *Machine) Process(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		m.processMouse(ev)
	case *tcell.EventResize:
		return ActionResize
	}
	return ActionNone
}

func (m *Machine) processKey(ev *tcell.EventKey) Action {
	a := m.keyTable.Lookup(ev)
	if a == ActionNone {
		return ActionNone
	}
	if !a.held() {
		return a
	}

	now := ev.When()
	window := parameter.KeyHoldInitial
	if m.heldUntil[a].After(now) {
		window = parameter.KeyHoldRepeat
	}
	m.heldUntil[a] = now.Add(window)

	// Opposite key takes over immediately
	if opp := a.opposite(); opp != ActionNone {
		m.heldUntil[opp] = time.Time{}
	}
	return ActionNone
}

func (m *Machine) processMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	m.pointerDown = buttons&tcell.ButtonPrimary != 0
	m.fireDown = buttons&tcell.ButtonSecondary != 0
	if m.pointerDown {
		m.pointerX, m.pointerY = ev.Position()
	}
}

// active reports whether a held control is live at now
func (m *Machine) active(a Action, now time.Time) bool {
	return m.heldUntil[a].After(now)
}

// Intent builds the control input for a tick at now
// Left turns are negative because world Y grows downward on screen
func (m *Machine) Intent(now time.Time) engine.Intent {
	var in engine.Intent

	if m.active(ActionThrust, now) {
		in.Thrust++
	}
	if m.active(ActionReverse, now) {
		in.Thrust--
	}
	if m.active(ActionTurnLeft, now) {
		in.Rotate--
	}
	if m.active(ActionTurnRight, now) {
		in.Rotate++
	}
	in.Fire = m.active(ActionFire, now) || m.fireDown

	if m.pointerDown && m.projection != nil {
		target := m.projection(m.pointerX, m.pointerY)
		in.PointerActive = true
		in.PointerTarget = &target
	}
	return in
}
