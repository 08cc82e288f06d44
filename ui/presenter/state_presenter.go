package presenter

import (
	"time"

	"github.com/soocke/frametrack/domain/playback"
	"github.com/soocke/frametrack/domain/tracking"
)

// StateView sets the state label in the view.
type StateView interface{ SetStateLabel(string) }

// StatePresenter receives playback and tracker transitions from listeners and
// reflects the latest of each on the next Tick.
type StatePresenter struct {
	view            StateView
	playback        playback.State
	tracker         tracking.State
	pendingPlayback []playback.State
	pendingTracker  []tracking.State
	shown           string
}

func NewStatePresenter(view StateView) *StatePresenter {
	return &StatePresenter{view: view}
}

// OnPlayback queues a playback transition; wire it with AddPlaybackListener.
func (p *StatePresenter) OnPlayback(_, next playback.State) {
	if p == nil {
		return
	}
	p.pendingPlayback = append(p.pendingPlayback, next)
}

// OnTracker queues a tracker transition; wire it with AddTrackerListener.
func (p *StatePresenter) OnTracker(_, next tracking.State) {
	if p == nil {
		return
	}
	p.pendingTracker = append(p.pendingTracker, next)
}

// Tick processes queued states and updates the label when the text changes.
func (p *StatePresenter) Tick(now time.Time) {
	if p == nil || p.view == nil {
		return
	}
	if n := len(p.pendingPlayback); n > 0 {
		p.playback = p.pendingPlayback[n-1]
		p.pendingPlayback = p.pendingPlayback[:0]
	}
	if n := len(p.pendingTracker); n > 0 {
		p.tracker = p.pendingTracker[n-1]
		p.pendingTracker = p.pendingTracker[:0]
	}
	text := StateText(p.playback, p.tracker)
	if text != p.shown {
		p.shown = text
		p.view.SetStateLabel(text)
	}
}

// StateText formats the combined state line.
func StateText(pb playback.State, tr tracking.State) string {
	return "Playback: " + pb.String() + " | Tracker: " + tr.String()
}
