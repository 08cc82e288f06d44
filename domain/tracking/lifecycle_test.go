package tracking

import (
	"errors"
	"image"
	"log/slog"
	"testing"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// fakeTracker scripts Init/Update outcomes.
type fakeTracker struct {
	initOK   bool
	updateOK []bool // consumed per Update; last value repeats
	step     image.Point
	box      image.Rectangle
	updates  int
	closed   int
	panicked bool
}

func (f *fakeTracker) Init(frame *image.RGBA, roi image.Rectangle) bool {
	f.box = roi
	return f.initOK
}

func (f *fakeTracker) Update(frame *image.RGBA) (image.Rectangle, bool) {
	if f.panicked {
		panic("boom")
	}
	ok := true
	if len(f.updateOK) > 0 {
		idx := f.updates
		if idx >= len(f.updateOK) {
			idx = len(f.updateOK) - 1
		}
		ok = f.updateOK[idx]
	}
	f.updates++
	f.box = f.box.Add(f.step)
	return f.box, ok
}

func (f *fakeTracker) Close() error { f.closed++; return nil }

type factoryRecorder struct {
	made []*fakeTracker
	next func() *fakeTracker
	err  error
}

func (r *factoryRecorder) factory() (Tracker, error) {
	if r.err != nil {
		return nil, r.err
	}
	t := &fakeTracker{initOK: true}
	if r.next != nil {
		t = r.next()
	}
	r.made = append(r.made, t)
	return t, nil
}

type transitionRecorder struct{ seq []State }

// listener records transitions.
func (r *transitionRecorder) listener(prev, next State) { r.seq = append(r.seq, next) }

var (
	frame = image.NewRGBA(image.Rect(0, 0, 64, 48))
	roi   = image.Rect(10, 10, 30, 30)
)

func newTestLifecycle(r *factoryRecorder) (*Lifecycle, *transitionRecorder) {
	l := NewLifecycle(discardLogger, r.factory)
	rec := &transitionRecorder{}
	l.AddListener(rec.listener)
	return l, rec
}

func TestLifecycle_CommitThenTrack(t *testing.T) {
	f := &factoryRecorder{next: func() *fakeTracker { return &fakeTracker{initOK: true, step: image.Pt(1, 2)} }}
	l, rec := newTestLifecycle(f)
	if err := l.Commit(roi); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if l.State() != StateArmed {
		t.Fatalf("expected armed, got %v", l.State())
	}
	if _, ok := l.BBox(); ok {
		t.Fatalf("armed lifecycle has no bbox")
	}
	if st := l.Advance(frame); st != StateTracking {
		t.Fatalf("expected tracking after init, got %v", st)
	}
	box, ok := l.BBox()
	if !ok || box != roi {
		t.Fatalf("bbox after init should equal roi, got %v", box)
	}
	l.Advance(frame)
	box, _ = l.BBox()
	if box != roi.Add(image.Pt(1, 2)) {
		t.Fatalf("bbox should pass through tracker output unchanged, got %v", box)
	}
	want := []State{StateArmed, StateTracking}
	if len(rec.seq) != len(want) || rec.seq[0] != want[0] || rec.seq[1] != want[1] {
		t.Fatalf("unexpected transitions %v", rec.seq)
	}
}

func TestLifecycle_RejectsDegenerateROI(t *testing.T) {
	l, rec := newTestLifecycle(&factoryRecorder{})
	for _, r := range []image.Rectangle{{}, image.Rect(5, 5, 5, 20), image.Rect(5, 5, 20, 5)} {
		if err := l.Commit(r); !errors.Is(err, ErrInvalidROI) {
			t.Fatalf("expected ErrInvalidROI for %v, got %v", r, err)
		}
	}
	if l.State() != StateIdle || len(rec.seq) != 0 {
		t.Fatalf("degenerate roi must not leave idle: %v %v", l.State(), rec.seq)
	}
}

func TestLifecycle_InitFailureDiscardsROI(t *testing.T) {
	f := &factoryRecorder{next: func() *fakeTracker { return &fakeTracker{initOK: false} }}
	l, _ := newTestLifecycle(f)
	_ = l.Commit(roi)
	if st := l.Advance(frame); st != StateIdle {
		t.Fatalf("expected idle after init failure, got %v", st)
	}
	if _, ok := l.ROI(); ok {
		t.Fatalf("roi should be discarded")
	}
	if f.made[0].closed != 1 {
		t.Fatalf("failed tracker should be closed")
	}
}

func TestLifecycle_FactoryErrorReturnsIdle(t *testing.T) {
	l, _ := newTestLifecycle(&factoryRecorder{err: errors.New("no backend")})
	_ = l.Commit(roi)
	if st := l.Advance(frame); st != StateIdle {
		t.Fatalf("expected idle, got %v", st)
	}
}

func TestLifecycle_UpdateFailureIsLostWithoutRetry(t *testing.T) {
	f := &factoryRecorder{next: func() *fakeTracker { return &fakeTracker{initOK: true, updateOK: []bool{true, false}} }}
	l, _ := newTestLifecycle(f)
	_ = l.Commit(roi)
	l.Advance(frame)
	l.Advance(frame)
	if st := l.Advance(frame); st != StateLost {
		t.Fatalf("expected lost, got %v", st)
	}
	if _, ok := l.BBox(); ok {
		t.Fatalf("lost lifecycle exposes no bbox")
	}
	updates := f.made[0].updates
	l.Advance(frame)
	l.Advance(frame)
	if f.made[0].updates != updates || l.State() != StateLost {
		t.Fatalf("lost must be a no-op on later frames")
	}
	if len(f.made) != 1 {
		t.Fatalf("no automatic re-initialisation expected, made %d trackers", len(f.made))
	}
}

func TestLifecycle_UpdatePanicIsLost(t *testing.T) {
	f := &factoryRecorder{next: func() *fakeTracker { return &fakeTracker{initOK: true, panicked: true} }}
	l, _ := newTestLifecycle(f)
	_ = l.Commit(roi)
	l.Advance(frame)
	if st := l.Advance(frame); st != StateLost {
		t.Fatalf("panicking update should be lost, got %v", st)
	}
}

func TestLifecycle_DiscardFromAnyState(t *testing.T) {
	f := &factoryRecorder{next: func() *fakeTracker { return &fakeTracker{initOK: true, updateOK: []bool{false}} }}
	for _, steps := range []int{0, 1, 2} {
		l, _ := newTestLifecycle(f)
		_ = l.Commit(roi)
		for i := 0; i < steps; i++ {
			l.Advance(frame)
		}
		l.Discard()
		if l.State() != StateIdle {
			t.Fatalf("discard after %d steps: got %v", steps, l.State())
		}
	}
	for _, tr := range f.made {
		if tr.closed != 1 {
			t.Fatalf("every live tracker must be closed exactly once, got %d", tr.closed)
		}
	}
}

func TestLifecycle_OnSeek(t *testing.T) {
	l, _ := newTestLifecycle(&factoryRecorder{})
	_ = l.Commit(roi)
	l.OnSeek()
	if l.State() != StateArmed {
		t.Fatalf("seek keeps a pending roi armed, got %v", l.State())
	}
	l.Advance(frame)
	l.OnSeek()
	if l.State() != StateIdle {
		t.Fatalf("seek while tracking must discard, got %v", l.State())
	}
}

func TestLifecycle_RecommitDisposesLiveTracker(t *testing.T) {
	f := &factoryRecorder{}
	l, _ := newTestLifecycle(f)
	_ = l.Commit(roi)
	l.Advance(frame)
	_ = l.Commit(image.Rect(0, 0, 8, 8))
	if l.State() != StateArmed || f.made[0].closed != 1 {
		t.Fatalf("recommit should close the old tracker and arm: state=%v closed=%d", l.State(), f.made[0].closed)
	}
	got, _ := l.ROI()
	if got != image.Rect(0, 0, 8, 8) {
		t.Fatalf("roi not replaced: %v", got)
	}
}

func TestLifecycle_Rearm(t *testing.T) {
	f := &factoryRecorder{next: func() *fakeTracker { return &fakeTracker{initOK: true, updateOK: []bool{false}} }}
	l, _ := newTestLifecycle(f)
	if l.Rearm() {
		t.Fatalf("idle lifecycle cannot rearm")
	}
	_ = l.Commit(roi)
	l.Advance(frame)
	l.Advance(frame)
	if l.State() != StateLost {
		t.Fatalf("expected lost, got %v", l.State())
	}
	if !l.Rearm() || l.State() != StateArmed {
		t.Fatalf("rearm from lost should arm, got %v", l.State())
	}
	if f.made[0].closed != 1 {
		t.Fatalf("rearm must dispose the old tracker")
	}
	l.Advance(frame)
	if l.State() != StateTracking || len(f.made) != 2 {
		t.Fatalf("rearmed lifecycle should start a fresh tracker: %v made=%d", l.State(), len(f.made))
	}
}

func TestState_String(t *testing.T) {
	names := map[State]string{StateIdle: "idle", StateArmed: "armed", StateTracking: "tracking", StateLost: "lost", State(42): "unknown"}
	for s, want := range names {
		if s.String() != want {
			t.Fatalf("State(%d).String() = %q, want %q", int(s), s.String(), want)
		}
	}
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{"CSRT": KindCSRT, " kcf ": KindKCF, "mil": KindMIL, "ncc": KindNCC} {
		got, err := ParseKind(in)
		if err != nil || got != want {
			t.Fatalf("ParseKind(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseKind("boosting"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}
