package zoom

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/soocke/frametrack/domain/geometry"
)

// Default secondary view size.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

// Background fills the letterbox bars of the zoom view.
var Background = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}

// Presenter renders the tracked region, magnified and letterboxed, into a
// fixed-size secondary view. It is always present and only toggles visibility.
type Presenter struct {
	width, height int
	visible       bool
	last          *image.RGBA
	scaler        draw.Scaler
}

// NewPresenter returns a hidden presenter with the given viewport size.
// Non-positive sizes fall back to the defaults.
func NewPresenter(width, height int) *Presenter {
	p := &Presenter{scaler: draw.ApproxBiLinear}
	p.SetViewport(width, height)
	return p
}

// SetViewport changes the output size used by subsequent renders.
func (p *Presenter) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		width, height = DefaultWidth, DefaultHeight
	}
	p.width, p.height = width, height
}

// Size returns the current viewport size.
func (p *Presenter) Size() image.Point { return image.Pt(p.width, p.height) }

// Visible reports whether the last render produced a frame.
func (p *Presenter) Visible() bool { return p.visible }

// Last returns the most recent zoom frame while visible.
func (p *Presenter) Last() (*image.RGBA, bool) {
	if !p.visible {
		return nil, false
	}
	return p.last, true
}

// Render crops frame to box (clipped to the frame) and letterboxes the crop
// into the viewport. A box that does not overlap the frame hides the view.
func (p *Presenter) Render(frame *image.RGBA, box image.Rectangle) (*image.RGBA, bool) {
	if frame == nil {
		p.Hide()
		return nil, false
	}
	crop := box.Canon().Intersect(frame.Bounds())
	if crop.Empty() {
		p.Hide()
		return nil, false
	}
	g := geometry.New(p.Size(), crop.Size())
	dst := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
	p.scaler.Scale(dst, g.Viewport(), frame, crop, draw.Src, nil)
	p.last = dst
	p.visible = true
	return dst, true
}

// Hide clears the view.
func (p *Presenter) Hide() {
	p.visible = false
	p.last = nil
}
