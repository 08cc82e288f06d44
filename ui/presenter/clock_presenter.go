package presenter

import (
	"time"

	"github.com/soocke/frametrack/domain/tracking"
	"github.com/soocke/frametrack/ui/model"
)

// TrackingStatsView displays the current and total time spent tracking.
type TrackingStatsView interface {
	SetTracking(streak, total time.Duration, streaks int)
}

// ClockPresenter advances the tracking clock from the tracker state and
// pushes the values to the view.
type ClockPresenter struct {
	clock   *model.TrackingClock
	tracker tracking.StateSource
	view    TrackingStatsView
}

func NewClockPresenter(clock *model.TrackingClock, tracker tracking.StateSource, view TrackingStatsView) *ClockPresenter {
	return &ClockPresenter{clock: clock, tracker: tracker, view: view}
}

func (p *ClockPresenter) Tick(now time.Time) {
	if p == nil || p.clock == nil || p.tracker == nil || p.view == nil {
		return
	}
	p.clock.OnTick(p.tracker.State() == tracking.StateTracking, now)
	s, t := p.clock.Values()
	p.view.SetTracking(s, t, p.clock.Streaks())
}
