// Package ncc implements a dependency-free template tracker based on
// normalized cross-correlation over a local search window.
package ncc

import (
	"image"
	"math"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/soocke/frametrack/domain/tracking"
)

// Options configures the tracker.
type Options struct {
	Threshold    float64 // minimum NCC score to keep the lock
	Stride       int     // coarse scan stride
	Refine       bool    // full-resolution pass around the coarse winner
	SearchMargin float64 // search window growth per side, relative to the box size
	MinScale     float64
	MaxScale     float64
	ScaleStep    float64
	Workers      int // concurrent scale evaluations; <= 0 means NumCPU
}

// DefaultOptions returns tuned defaults for video tracking.
func DefaultOptions() Options {
	return Options{
		Threshold:    0.60,
		Stride:       2,
		Refine:       true,
		SearchMargin: 0.5,
		MinScale:     0.95,
		MaxScale:     1.05,
		ScaleStep:    0.05,
	}
}

const minMarginPx = 8

// Tracker follows the patch captured at Init.
type Tracker struct {
	opts   Options
	base   *patch
	box    image.Rectangle
	mu     sync.Mutex
	scaled map[float64]*patch
}

// New returns a tracker with opts; zero fields take defaults.
func New(opts Options) *Tracker {
	d := DefaultOptions()
	if opts.Threshold <= 0 || opts.Threshold > 1 {
		opts.Threshold = d.Threshold
	}
	if opts.Stride <= 0 {
		opts.Stride = d.Stride
	}
	if opts.SearchMargin <= 0 {
		opts.SearchMargin = d.SearchMargin
	}
	if opts.MinScale <= 0 {
		opts.MinScale = 1
	}
	if opts.MaxScale < opts.MinScale {
		opts.MaxScale = opts.MinScale
	}
	if opts.ScaleStep <= 0 {
		opts.ScaleStep = d.ScaleStep
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	return &Tracker{opts: opts, scaled: map[float64]*patch{}}
}

// Factory adapts New to tracking.Factory.
func Factory(opts Options) tracking.Factory {
	return func() (tracking.Tracker, error) { return New(opts), nil }
}

// Init captures roi as the template. A roi smaller than 4x4 after clipping,
// or one without texture, cannot be tracked.
func (t *Tracker) Init(frame *image.RGBA, roi image.Rectangle) bool {
	if frame == nil {
		return false
	}
	r := roi.Intersect(frame.Bounds())
	if r.Dx() < 4 || r.Dy() < 4 {
		return false
	}
	p := patchFromFrame(frame, r)
	if p.std <= flatVariance {
		return false
	}
	t.mu.Lock()
	t.base = p
	t.scaled = map[float64]*patch{1: p}
	t.mu.Unlock()
	t.box = r
	return true
}

// Update searches around the previous box at every configured scale and
// returns the best match. ok is false when no score reaches the threshold.
func (t *Tracker) Update(frame *image.RGBA) (image.Rectangle, bool) {
	if frame == nil || t.base == nil {
		return t.box, false
	}
	search := t.searchWindow(frame.Bounds())
	if search.Empty() {
		return t.box, false
	}
	pl := newPlane(frame, search)
	scales := t.scales()
	results := make([]match, len(scales))
	var g errgroup.Group
	g.SetLimit(t.opts.Workers)
	for i, factor := range scales {
		g.Go(func() error {
			results[i] = match{Score: -1}
			p := t.patchAt(factor)
			if p == nil {
				return nil
			}
			m := bestMatch(pl, p, t.opts.Stride, t.opts.Refine)
			m.Scale = factor
			results[i] = m
			return nil
		})
	}
	_ = g.Wait()
	best := match{Score: -1}
	for _, m := range results {
		if m.Score > best.Score {
			best = m
		}
	}
	if best.Score < t.opts.Threshold {
		return t.box, false
	}
	x := search.Min.X + best.X
	y := search.Min.Y + best.Y
	t.box = image.Rect(x, y, x+best.W, y+best.H)
	return t.box, true
}

// Close drops the template.
func (t *Tracker) Close() error {
	t.mu.Lock()
	t.base = nil
	t.scaled = map[float64]*patch{}
	t.mu.Unlock()
	return nil
}

func (t *Tracker) searchWindow(bounds image.Rectangle) image.Rectangle {
	mx := max(int(float64(t.box.Dx())*t.opts.SearchMargin), minMarginPx)
	my := max(int(float64(t.box.Dy())*t.opts.SearchMargin), minMarginPx)
	return image.Rect(t.box.Min.X-mx, t.box.Min.Y-my, t.box.Max.X+mx, t.box.Max.Y+my).Intersect(bounds)
}

func (t *Tracker) scales() []float64 {
	o := t.opts
	if o.MaxScale-o.MinScale < 1e-9 {
		return []float64{o.MinScale}
	}
	out := []float64{}
	for i := 0; len(out) < 64; i++ {
		s := math.Round((o.MinScale+float64(i)*o.ScaleStep)*1e6) / 1e6
		if s > o.MaxScale+1e-9 {
			break
		}
		out = append(out, s)
	}
	return out
}

// patchAt returns the base template resampled by factor, cached per factor.
func (t *Tracker) patchAt(factor float64) *patch {
	t.mu.Lock()
	defer t.mu.Unlock()
	if p, ok := t.scaled[factor]; ok {
		return p
	}
	if t.base == nil {
		return nil
	}
	p := t.base.scaled(factor)
	t.scaled[factor] = p
	return p
}

var _ tracking.Tracker = (*Tracker)(nil)
