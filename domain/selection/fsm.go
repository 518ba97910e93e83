package selection

import (
	"log/slog"

	"github.com/soocke/radial-select-go/domain/geometry"
)

// Machine turns polled input batches into a single terminal Outcome.
// It is driven from the frame loop and is not safe for concurrent use.
type Machine struct {
	menu      geometry.Menu
	logger    *slog.Logger
	state     State
	outcome   Outcome
	quit      bool
	listeners []Listener
}

// NewMachine returns a Machine in StateTracking with outcome None.
func NewMachine(menu geometry.Menu, logger *slog.Logger) *Machine {
	return &Machine{menu: menu, logger: logger, state: StateTracking}
}

// AddListener registers l for subsequent transitions.
func (m *Machine) AddListener(l Listener) {
	if l != nil {
		m.listeners = append(m.listeners, l)
	}
}

// Dispatch applies a batch in order. Events after a commit are dropped.
func (m *Machine) Dispatch(batch []Event) {
	for _, ev := range batch {
		if m.state == StateCommitted {
			return
		}
		switch e := ev.(type) {
		case Primary:
			m.commit(m.decide(e))
		case Secondary:
			m.commit(None)
		case Dismiss:
			if !m.quit && m.logger != nil {
				m.logger.Debug("dismiss requested", "outcome", m.outcome.String())
			}
			m.quit = true
		}
	}
}

// decide classifies the pointer at the moment of a primary press.
func (m *Machine) decide(e Primary) Outcome {
	p := geometry.PolarFromCursor(e.Cursor.X, e.Cursor.Y, e.Viewport.Width, e.Viewport.Height)
	res := geometry.Classify(p, m.menu)
	if m.logger != nil {
		m.logger.Debug("primary press", "radius", p.Radius, "angle", p.Angle, "result", res.String())
	}
	switch {
	case res.IsCenter():
		return DeadCenter
	case m.menu.Outside(p):
		return None
	}
	i, _ := res.Index()
	return Chosen(i)
}

func (m *Machine) commit(o Outcome) {
	prev := m.state
	m.state = StateCommitted
	m.outcome = o
	if m.logger != nil {
		m.logger.Debug("selection state transition", "from", prev.String(), "to", m.state.String(), "outcome", o.String())
	}
	for _, l := range m.listeners {
		l(prev, m.state, o)
	}
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Outcome returns the committed outcome, or None if nothing was committed.
func (m *Machine) Outcome() Outcome { return m.outcome }

// QuitRequested reports whether a Dismiss event was seen.
func (m *Machine) QuitRequested() bool { return m.quit }

// Done reports whether the host loop should stop.
func (m *Machine) Done() bool { return m.state == StateCommitted || m.quit }
