package playback

import (
	"image"
	"time"

	"github.com/soocke/frametrack/domain/geometry"
	"github.com/soocke/frametrack/domain/tracking"
	"github.com/soocke/frametrack/domain/zoom"
)

// State enumerates playback states; it is orthogonal to tracking.State.
type State int

const (
	StateStopped State = iota
	StatePlaying
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Listener is called on each playback state transition.
type Listener func(prev, next State)

// Scheduler drives the frame clock. Implementations must run tick on the
// same goroutine as every other Controller call, and Stop must guarantee that
// no tick fires until the next Start.
type Scheduler interface {
	Start(interval time.Duration, tick func())
	Stop()
	Running() bool
}

// Presentation is one primary frame with its overlays in display space.
type Presentation struct {
	Frame     *image.RGBA
	Index     int
	Geometry  geometry.Geometry
	Box       image.Rectangle // tracked box or armed roi; empty when none
	BoxState  tracking.State
	Selection image.Rectangle // live drag rectangle; empty when none
}

// View receives everything the controller renders.
type View interface {
	PresentFrame(Presentation)
	ClearFrame()
	PresentZoom(*image.RGBA)
	HideZoom()
	Progress(fraction float64, clock string)
	EndOfStream()
}

// ZoomCloseAction selects what closing the zoom view does.
type ZoomCloseAction int

const (
	ZoomCloseClear ZoomCloseAction = iota
	ZoomCloseReset
)

// ParseZoomCloseAction maps "clear" and "reset"; anything else is Clear.
func ParseZoomCloseAction(s string) ZoomCloseAction {
	if s == "reset" {
		return ZoomCloseReset
	}
	return ZoomCloseClear
}

func (a ZoomCloseAction) String() string {
	if a == ZoomCloseReset {
		return "reset"
	}
	return "clear"
}

// Options carries the behavioural switches of the controller.
type Options struct {
	// RearmOnPlay re-initialises the tracker from the committed roi on Play
	// when Tracking or Lost.
	RearmOnPlay bool
	// PauseOnPointerDown pauses playback when a drag starts while playing.
	// When false, presses during playback are ignored.
	PauseOnPointerDown bool
	// PreviewOnSeek decodes and shows the seek target without moving the cursor.
	PreviewOnSeek bool
	// PlaybackRate scales the frame clock; 1 is real time.
	PlaybackRate    float64
	ZoomCloseAction ZoomCloseAction
	ZoomWidth       int
	ZoomHeight      int
}

// DefaultOptions returns the standard controller behaviour.
func DefaultOptions() Options {
	return Options{
		PauseOnPointerDown: true,
		PreviewOnSeek:      true,
		PlaybackRate:       1,
		ZoomCloseAction:    ZoomCloseClear,
		ZoomWidth:          zoom.DefaultWidth,
		ZoomHeight:         zoom.DefaultHeight,
	}
}
