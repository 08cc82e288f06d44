package presenter

import "time"

// Loop aggregates status presenters and drives their periodic updates,
// independently of the frame clock.
//
// It calls Tick on the sub-presenters and invokes a scheduler callback.
// The zero value is usable (methods are nil-safe).
type Loop struct {
	State    *StatePresenter
	Clock    *ClockPresenter
	Schedule func()
	now      func() time.Time
}

func NewLoop(state *StatePresenter, clock *ClockPresenter, schedule func()) *Loop {
	return &Loop{State: state, Clock: clock, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	if l.now != nil {
		now = l.now()
	}
	if l.State != nil {
		l.State.Tick(now)
	}
	if l.Clock != nil {
		l.Clock.Tick(now)
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
