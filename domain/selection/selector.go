package selection

import (
	"image"

	"github.com/soocke/frametrack/domain/geometry"
)

// Result is a committed selection in both coordinate spaces.
type Result struct {
	Display image.Rectangle
	Source  image.Rectangle
}

// Selector turns a press-drag-release gesture in display space into a region
// of interest. The zero value is idle.
type Selector struct {
	anchor image.Point
	live   image.Rectangle
	active bool
}

// Begin anchors a new drag at p, replacing any drag in progress.
func (s *Selector) Begin(p image.Point) {
	s.anchor = p
	s.live = image.Rectangle{Min: p, Max: p}
	s.active = true
}

// Move updates the live rectangle. ok is false when no drag is in progress.
func (s *Selector) Move(p image.Point) (image.Rectangle, bool) {
	if !s.active {
		return image.Rectangle{}, false
	}
	s.live = geometry.Normalize(s.anchor, p)
	return s.live, true
}

// End finishes the drag at p and maps it to source space with g. A release
// without a drag, a zero-size rectangle, or one that does not map onto the
// frame yields ok=false and is otherwise ignored.
func (s *Selector) End(p image.Point, g geometry.Geometry) (Result, bool) {
	if !s.active {
		return Result{}, false
	}
	r := geometry.Normalize(s.anchor, p)
	s.Cancel()
	if r.Dx() == 0 || r.Dy() == 0 {
		return Result{}, false
	}
	src, ok := g.ToSourceRect(r)
	if !ok {
		return Result{}, false
	}
	return Result{Display: r, Source: src}, true
}

// Cancel drops any drag in progress.
func (s *Selector) Cancel() {
	s.active = false
	s.live = image.Rectangle{}
}

// Active reports whether a drag is in progress.
func (s *Selector) Active() bool { return s.active }

// Live returns the rectangle currently being dragged.
func (s *Selector) Live() (image.Rectangle, bool) {
	if !s.active || s.live.Empty() {
		return image.Rectangle{}, false
	}
	return s.live, true
}
