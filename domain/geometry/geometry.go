package geometry

import (
	"image"
	"math"
)

// Geometry describes a frame drawn aspect-preserving and centred inside a
// widget. Widget coordinates are "display space", frame coordinates are
// "source space". The zero value has no mapping.
type Geometry struct {
	WidgetWidth  int
	WidgetHeight int
	FrameWidth   int
	FrameHeight  int
}

// New returns the geometry for a frame of size frame shown in a widget of size widget.
func New(widget, frame image.Point) Geometry {
	return Geometry{WidgetWidth: widget.X, WidgetHeight: widget.Y, FrameWidth: frame.X, FrameHeight: frame.Y}
}

// Valid reports whether every dimension is positive.
func (g Geometry) Valid() bool {
	return g.WidgetWidth > 0 && g.WidgetHeight > 0 && g.FrameWidth > 0 && g.FrameHeight > 0
}

// Scale returns min(ww/fw, wh/fh), or 0 when the geometry is degenerate.
func (g Geometry) Scale() float64 {
	if !g.Valid() {
		return 0
	}
	sx := float64(g.WidgetWidth) / float64(g.FrameWidth)
	sy := float64(g.WidgetHeight) / float64(g.FrameHeight)
	return math.Min(sx, sy)
}

// ContentSize is the scaled frame size in display space.
func (g Geometry) ContentSize() image.Point {
	s := g.Scale()
	if s == 0 {
		return image.Point{}
	}
	return image.Pt(int(float64(g.FrameWidth)*s), int(float64(g.FrameHeight)*s))
}

// Offset returns the letterbox offset of the scaled frame inside the widget.
func (g Geometry) Offset() image.Point {
	c := g.ContentSize()
	if c == (image.Point{}) {
		return image.Point{}
	}
	return image.Pt((g.WidgetWidth-c.X)/2, (g.WidgetHeight-c.Y)/2)
}

// Viewport is the display-space rectangle covered by the scaled frame.
func (g Geometry) Viewport() image.Rectangle {
	off := g.Offset()
	return image.Rectangle{Min: off, Max: off.Add(g.ContentSize())}
}

// ToSource maps a display point to source space, clipped to
// [0,FrameWidth) x [0,FrameHeight). ok is false when no mapping exists.
func (g Geometry) ToSource(p image.Point) (image.Point, bool) {
	s := g.Scale()
	if s == 0 {
		return image.Point{}, false
	}
	off := g.Offset()
	x := round(float64(p.X-off.X) / s)
	y := round(float64(p.Y-off.Y) / s)
	return image.Pt(clamp(x, 0, g.FrameWidth-1), clamp(y, 0, g.FrameHeight-1)), true
}

// ToSourceRect maps a display rectangle to source space. Edges are clipped to
// the frame, so a rectangle drawn entirely over the letterbox bars maps to an
// empty rectangle and ok is false.
func (g Geometry) ToSourceRect(r image.Rectangle) (image.Rectangle, bool) {
	s := g.Scale()
	if s == 0 {
		return image.Rectangle{}, false
	}
	r = r.Canon()
	off := g.Offset()
	out := image.Rect(
		clamp(round(float64(r.Min.X-off.X)/s), 0, g.FrameWidth),
		clamp(round(float64(r.Min.Y-off.Y)/s), 0, g.FrameHeight),
		clamp(round(float64(r.Max.X-off.X)/s), 0, g.FrameWidth),
		clamp(round(float64(r.Max.Y-off.Y)/s), 0, g.FrameHeight),
	)
	if out.Empty() {
		return image.Rectangle{}, false
	}
	return out, true
}

// ToDisplay maps a source point into display space.
func (g Geometry) ToDisplay(p image.Point) (image.Point, bool) {
	s := g.Scale()
	if s == 0 {
		return image.Point{}, false
	}
	off := g.Offset()
	return image.Pt(round(float64(p.X)*s)+off.X, round(float64(p.Y)*s)+off.Y), true
}

// ToDisplayRect maps a source rectangle into display space for drawing outlines.
func (g Geometry) ToDisplayRect(r image.Rectangle) (image.Rectangle, bool) {
	lo, ok := g.ToDisplay(r.Min)
	if !ok {
		return image.Rectangle{}, false
	}
	hi, _ := g.ToDisplay(r.Max)
	return image.Rectangle{Min: lo, Max: hi}.Canon(), true
}

// Normalize returns the rectangle spanned by two corners, with its origin at
// the element-wise minimum and a non-negative size.
func Normalize(a, b image.Point) image.Rectangle {
	return image.Rect(a.X, a.Y, b.X, b.Y)
}

func round(v float64) int { return int(math.Floor(v + 0.5)) }

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
