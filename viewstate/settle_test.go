package viewstate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hexavax/hexavax-engine/viewstate"
)

type virtualClock struct {
	now time.Time
}

func (c *virtualClock) Now() time.Time { return c.now }

func (c *virtualClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func TestMachineStartsIdle(t *testing.T) {
	m := viewstate.NewMachine(&virtualClock{}, time.Second)
	assert.True(t, m.Settled())
	assert.Equal(t, viewstate.Idle, m.State())
}

func TestMachineSettlesAfterDelay(t *testing.T) {
	clock := &virtualClock{now: time.Unix(1000, 0)}
	m := viewstate.NewMachine(clock, time.Second)

	m.NoteTransition()
	assert.Equal(t, viewstate.Transitioning, m.State())

	clock.advance(999 * time.Millisecond)
	assert.False(t, m.Settled())

	clock.advance(time.Millisecond)
	assert.True(t, m.Settled())
}

func TestRapidChangesCollapseIntoOneSettle(t *testing.T) {
	clock := &virtualClock{now: time.Unix(1000, 0)}
	m := viewstate.NewMachine(clock, time.Second)

	m.NoteTransition()
	clock.advance(600 * time.Millisecond)
	m.NoteTransition()
	lastChange := clock.now

	// The first deadline would have fired here; the second change superseded it.
	clock.advance(500 * time.Millisecond)
	assert.Equal(t, viewstate.Transitioning, m.State())

	assert.Equal(t, lastChange.Add(time.Second), m.Deadline())
	clock.advance(500 * time.Millisecond)
	assert.True(t, m.Settled())
}

func TestZeroDelayFallsBackToDefault(t *testing.T) {
	clock := &virtualClock{now: time.Unix(1000, 0)}
	m := viewstate.NewMachine(clock, 0)

	m.NoteTransition()
	clock.advance(viewstate.DefaultSettleDelay - time.Millisecond)
	assert.False(t, m.Settled())
	clock.advance(time.Millisecond)
	assert.True(t, m.Settled())
}
