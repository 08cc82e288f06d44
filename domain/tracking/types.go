package tracking

import (
	"fmt"
	"image"
	"strings"
)

// State enumerates the tracker lifecycle states.
type State int

const (
	StateIdle State = iota
	StateArmed
	StateTracking
	StateLost
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateArmed:
		return "armed"
	case StateTracking:
		return "tracking"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Tracker follows one object across frames. Coordinates are frame pixels.
type Tracker interface {
	Init(frame *image.RGBA, roi image.Rectangle) bool
	Update(frame *image.RGBA) (image.Rectangle, bool)
	Close() error
}

// Factory constructs a fresh tracker instance.
type Factory func() (Tracker, error)

// Listener is called on each state transition.
type Listener func(prev, next State)

// StateSource reports the current lifecycle state.
type StateSource interface{ State() State }

// StateFunc adapts a function to StateSource.
type StateFunc func() State

func (f StateFunc) State() State { return f() }

// Kind names a tracker algorithm.
type Kind string

const (
	KindCSRT Kind = "csrt"
	KindKCF  Kind = "kcf"
	KindMIL  Kind = "mil"
	KindNCC  Kind = "ncc"
)

// ParseKind maps a case-insensitive tracker name to a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindCSRT, KindKCF, KindMIL, KindNCC:
		return k, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownKind)
}
