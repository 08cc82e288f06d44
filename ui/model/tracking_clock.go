package model

import (
	"time"
)

// TrackingClock measures how long the tracker has been locked on: the current
// streak and the accumulated total across streaks. Streaks are counted so the
// UI can show how often the target was acquired. The zero value is ready to use.
type TrackingClock struct {
	active      bool
	streakStart time.Time
	lastStreak  time.Duration
	accumulated time.Duration
	streaks     int
}

// NewTrackingClock returns a pointer to a ready-to-use TrackingClock.
func NewTrackingClock() *TrackingClock { return &TrackingClock{} }

// OnTick updates the clock using the current tracking flag and timestamp.
// Call periodically (for example, from a presenter tick).
func (m *TrackingClock) OnTick(tracking bool, now time.Time) {
	if m == nil {
		return
	}
	if tracking {
		if !m.active { // off -> on
			m.active = true
			m.streakStart = now
			m.lastStreak = 0
			m.streaks++
		}
		m.lastStreak = now.Sub(m.streakStart)
	} else if m.active { // on -> off
		m.lastStreak = now.Sub(m.streakStart)
		m.accumulated += m.lastStreak
		m.active = false
	}
}

// Values returns the current streak and the total tracked time. The total
// includes the ongoing streak when active.
func (m *TrackingClock) Values() (streak, total time.Duration) {
	if m == nil {
		return 0, 0
	}
	streak = m.lastStreak
	total = m.accumulated
	if m.active {
		total += streak
	}
	return
}

// Streaks reports how many times tracking started.
func (m *TrackingClock) Streaks() int {
	if m == nil {
		return 0
	}
	return m.streaks
}

// Reset forgets all accumulated time.
func (m *TrackingClock) Reset() {
	if m == nil {
		return
	}
	*m = TrackingClock{}
}
