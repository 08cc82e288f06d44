package opencv

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
	"gocv.io/x/gocv/contrib"

	"github.com/soocke/frametrack/domain/tracking"
)

// Tracker wraps a gocv tracker behind tracking.Tracker. Frames are converted
// to mats per call; the mat is released before returning.
type Tracker struct {
	impl gocv.Tracker
}

// NewTracker builds an OpenCV tracker of the given kind. NCC is not an
// OpenCV algorithm and is rejected.
func NewTracker(kind tracking.Kind) (*Tracker, error) {
	var impl gocv.Tracker
	switch kind {
	case tracking.KindCSRT:
		impl = contrib.NewTrackerCSRT()
	case tracking.KindKCF:
		impl = contrib.NewTrackerKCF()
	case tracking.KindMIL:
		impl = gocv.NewTrackerMIL()
	default:
		return nil, fmt.Errorf("opencv tracker %q: %w", kind, tracking.ErrUnknownKind)
	}
	return &Tracker{impl: impl}, nil
}

// TrackerFactory returns a tracking.Factory producing kind trackers.
func TrackerFactory(kind tracking.Kind) tracking.Factory {
	return func() (tracking.Tracker, error) {
		t, err := NewTracker(kind)
		if err != nil {
			return nil, err
		}
		return t, nil
	}
}

func (t *Tracker) Init(frame *image.RGBA, roi image.Rectangle) bool {
	if frame == nil {
		return false
	}
	roi = roi.Canon().Intersect(frame.Bounds())
	if roi.Empty() {
		return false
	}
	m, err := RGBAToMat(frame)
	if err != nil {
		return false
	}
	defer m.Close()
	return t.impl.Init(m, roi)
}

func (t *Tracker) Update(frame *image.RGBA) (image.Rectangle, bool) {
	if frame == nil {
		return image.Rectangle{}, false
	}
	m, err := RGBAToMat(frame)
	if err != nil {
		return image.Rectangle{}, false
	}
	defer m.Close()
	box, ok := t.impl.Update(m)
	if !ok || box.Empty() {
		return box, false
	}
	return box, true
}

func (t *Tracker) Close() error { return t.impl.Close() }

var _ tracking.Tracker = (*Tracker)(nil)
