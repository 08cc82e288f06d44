package capture

import (
	"errors"
	"image"
	"time"
)

// Scheme prefixes media paths that name a live screen region instead of a
// file, e.g. "screen:" for the full screen or "screen:100,100,640,480".
const Scheme = "screen:"

// DefaultFPS is the capture rate used when none is configured.
const DefaultFPS = 30

var (
	// ErrNotScreenPath is returned for paths without the screen scheme.
	ErrNotScreenPath = errors.New("capture: not a screen path")
	// ErrBadRegion is returned for malformed or empty region specs.
	ErrBadRegion = errors.New("capture: bad region")
	// ErrNoFrame is returned when the grab loop produced nothing in time.
	ErrNoFrame = errors.New("capture: no frame")
	// ErrClosed is returned by reads after Release.
	ErrClosed = errors.New("capture: source released")
)

// Grabber captures region of the screen; an empty region means the whole
// screen.
type Grabber func(region image.Rectangle) (*image.RGBA, error)

// Stats summarises grab loop behaviour for instrumentation.
type Stats struct {
	Captures       uint64
	Skipped        uint64
	Dropped        uint64
	AvgCapture     time.Duration
	LastCapture    time.Time
	LatestFrameAge time.Duration
	Sequence       uint64
}
