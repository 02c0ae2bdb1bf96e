// Package viewstate tracks whether the camera is settled enough to rebuild
// expensive layers. Every view change restarts a quiet-period deadline; the
// composer skips work until the deadline passes.
package viewstate

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// State of the settle machine.
type State int

const (
	Idle State = iota
	Transitioning
)

func (s State) String() string {
	if s == Transitioning {
		return "transitioning"
	}
	return "idle"
}

// DefaultSettleDelay is the quiet period a view change must survive before
// layers rebuild.
const DefaultSettleDelay = 800 * time.Millisecond

// Clock abstracts time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Machine is the settle state machine. It never runs timers of its own: state
// is evaluated lazily against the injected clock, so back-to-back view
// changes collapse into a single settle at lastChange+delay.
type Machine struct {
	clock    Clock
	delay    time.Duration
	deadline time.Time
	active   bool
}

// NewMachine builds a settle machine with the given quiet period. A zero or
// negative delay falls back to the default.
func NewMachine(clock Clock, delay time.Duration) *Machine {
	if delay <= 0 {
		delay = DefaultSettleDelay
	}
	return &Machine{clock: clock, delay: delay}
}

// NoteTransition records a view change and pushes the settle deadline out to
// now+delay, superseding any pending deadline.
func (m *Machine) NoteTransition() {
	m.deadline = m.clock.Now().Add(m.delay)
	if !m.active {
		m.active = true
		log.WithField("prefix", "viewstate").Debug("view transition started")
	}
}

// State evaluates the machine against the clock.
func (m *Machine) State() State {
	if m.active && !m.clock.Now().Before(m.deadline) {
		m.active = false
		log.WithField("prefix", "viewstate").Debug("view settled")
	}
	if m.active {
		return Transitioning
	}
	return Idle
}

// Settled reports whether the quiet period has elapsed.
func (m *Machine) Settled() bool {
	return m.State() == Idle
}

// Deadline returns the pending settle deadline, meaningful only while
// transitioning.
func (m *Machine) Deadline() time.Time {
	return m.deadline
}
