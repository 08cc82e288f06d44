package tracking

import (
	"image"
	"log/slog"
	"runtime/debug"
)

// Lifecycle owns at most one live Tracker and moves it through
// Idle -> Armed -> Tracking -> Lost. Every method runs synchronously on the
// caller's goroutine; it is not safe for concurrent use.
type Lifecycle struct {
	state     State
	logger    *slog.Logger
	factory   Factory
	tracker   Tracker
	roi       image.Rectangle
	bbox      image.Rectangle
	listeners []Listener
}

// NewLifecycle returns an idle lifecycle creating trackers with factory.
func NewLifecycle(logger *slog.Logger, factory Factory) *Lifecycle {
	return &Lifecycle{state: StateIdle, logger: logger, factory: factory}
}

func (l *Lifecycle) AddListener(fn Listener) {
	if fn != nil {
		l.listeners = append(l.listeners, fn)
	}
}

func (l *Lifecycle) State() State { return l.state }

// ROI returns the committed region while Armed, Tracking or Lost.
func (l *Lifecycle) ROI() (image.Rectangle, bool) {
	if l.state == StateIdle {
		return image.Rectangle{}, false
	}
	return l.roi, true
}

// BBox returns the latest tracked box; only valid while Tracking.
func (l *Lifecycle) BBox() (image.Rectangle, bool) {
	if l.state != StateTracking {
		return image.Rectangle{}, false
	}
	return l.bbox, true
}

// Commit stores roi and arms the lifecycle. Any live tracker is disposed
// first. A zero-size roi is rejected and leaves the state unchanged.
func (l *Lifecycle) Commit(roi image.Rectangle) error {
	roi = roi.Canon()
	if roi.Dx() == 0 || roi.Dy() == 0 {
		return ErrInvalidROI
	}
	l.dispose()
	l.roi = roi
	l.bbox = image.Rectangle{}
	l.transition(StateArmed)
	return nil
}

// Rearm re-arms the stored roi from Tracking or Lost so the next Advance
// initialises a fresh tracker. It reports whether the lifecycle is Armed.
func (l *Lifecycle) Rearm() bool {
	switch l.state {
	case StateArmed:
		return true
	case StateTracking, StateLost:
		l.dispose()
		l.bbox = image.Rectangle{}
		l.transition(StateArmed)
		return true
	}
	return false
}

// Advance feeds one frame. Armed initialises a tracker (failure discards
// the roi), Tracking updates it (failure moves to Lost). Idle and Lost ignore
// frames.
func (l *Lifecycle) Advance(frame *image.RGBA) State {
	if frame == nil {
		return l.state
	}
	switch l.state {
	case StateArmed:
		l.initTracker(frame)
	case StateTracking:
		l.updateTracker(frame)
	}
	return l.state
}

// OnSeek discards a running or lost tracker. A pending roi stays armed.
func (l *Lifecycle) OnSeek() {
	if l.state == StateTracking || l.state == StateLost {
		l.Discard()
	}
}

// Discard disposes the tracker and roi and returns to Idle.
func (l *Lifecycle) Discard() {
	l.dispose()
	l.roi = image.Rectangle{}
	l.bbox = image.Rectangle{}
	l.transition(StateIdle)
}

func (l *Lifecycle) initTracker(frame *image.RGBA) {
	if l.factory == nil {
		l.fail("tracker init skipped", "reason", "no factory")
		return
	}
	t, err := l.factory()
	if err != nil || t == nil {
		l.fail("tracker create failed", "error", err)
		return
	}
	if !l.safeInit(t, frame) {
		_ = t.Close()
		l.fail("tracker init failed", "roi", l.roi.String())
		return
	}
	l.tracker = t
	l.bbox = l.roi
	l.transition(StateTracking)
}

func (l *Lifecycle) updateTracker(frame *image.RGBA) {
	box, ok := l.safeUpdate(frame)
	if !ok {
		if l.logger != nil {
			l.logger.Info("tracker lost target", "last", l.bbox.String())
		}
		l.transition(StateLost)
		return
	}
	l.bbox = box
}

// fail discards the roi after an init problem and returns to Idle.
func (l *Lifecycle) fail(msg string, args ...any) {
	if l.logger != nil {
		l.logger.Warn(msg, args...)
	}
	l.Discard()
}

func (l *Lifecycle) safeInit(t Tracker, frame *image.RGBA) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			l.logPanic("tracker init panic", r)
			ok = false
		}
	}()
	return t.Init(frame, l.roi)
}

func (l *Lifecycle) safeUpdate(frame *image.RGBA) (box image.Rectangle, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			l.logPanic("tracker update panic", r)
			box, ok = image.Rectangle{}, false
		}
	}()
	return l.tracker.Update(frame)
}

func (l *Lifecycle) logPanic(msg string, r any) {
	if l.logger != nil {
		l.logger.Error(msg, "error", r, "stack", string(debug.Stack()))
	}
}

func (l *Lifecycle) dispose() {
	if l.tracker == nil {
		return
	}
	if err := l.tracker.Close(); err != nil && l.logger != nil {
		l.logger.Warn("tracker close failed", "error", err)
	}
	l.tracker = nil
}

func (l *Lifecycle) transition(next State) {
	prev := l.state
	if prev == next {
		return
	}
	l.state = next
	if l.logger != nil {
		l.logger.Debug("tracker state transition", "from", prev.String(), "to", next.String())
	}
	for _, fn := range l.listeners {
		fn(prev, next)
	}
}

// Ensure contract satisfaction
var _ StateSource = (*Lifecycle)(nil)
