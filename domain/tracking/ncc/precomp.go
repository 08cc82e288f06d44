package ncc

import (
	"image"
	"math"
)

// plane stores the grayscale values of a frame region and their summed-area
// tables (integral images). The integrals allow O(1) window sum and variance
// queries.
type plane struct {
	gray       []float64
	integral   []float64
	integralSq []float64
	w, h       int
}

func luma(r, g, b uint8) float64 {
	return 0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)
}

// newPlane builds the grayscale plane of frame restricted to r (frame
// coordinates). r must lie inside the frame bounds.
func newPlane(frame *image.RGBA, r image.Rectangle) *plane {
	w, h := r.Dx(), r.Dy()
	p := &plane{
		gray:       make([]float64, w*h),
		integral:   make([]float64, w*h),
		integralSq: make([]float64, w*h),
		w:          w,
		h:          h,
	}
	for y := 0; y < h; y++ {
		var rowSum, rowSum2 float64
		i := frame.PixOffset(r.Min.X, r.Min.Y+y)
		for x := 0; x < w; x++ {
			px := frame.Pix[i : i+4 : i+4]
			i += 4
			var v float64
			if px[3] != 0 {
				v = luma(px[0], px[1], px[2])
			}
			off := y*w + x
			p.gray[off] = v
			rowSum += v
			rowSum2 += v * v
			if y == 0 {
				p.integral[off] = rowSum
				p.integralSq[off] = rowSum2
			} else {
				p.integral[off] = p.integral[off-w] + rowSum
				p.integralSq[off] = p.integralSq[off-w] + rowSum2
			}
		}
	}
	return p
}

// windowSum returns the inclusive sum over [x0..x1] x [y0..y1] of table.
func (p *plane) windowSum(table []float64, x0, y0, x1, y1 int) float64 {
	at := func(x, y int) float64 {
		if x < 0 || y < 0 {
			return 0
		}
		return table[y*p.w+x]
	}
	return at(x1, y1) - at(x0-1, y1) - at(x1, y0-1) + at(x0-1, y0-1)
}

// patch is a grayscale template with its mean and standard deviation.
type patch struct {
	gray []float64
	w, h int
	mean float64
	std  float64
}

func newPatch(gray []float64, w, h int) *patch {
	var sum, sum2 float64
	for _, v := range gray {
		sum += v
		sum2 += v * v
	}
	n := float64(w * h)
	mean := sum / n
	variance := (sum2 - sum*sum/n) / n
	std := 0.0
	if variance > 0 {
		std = math.Sqrt(variance)
	}
	return &patch{gray: gray, w: w, h: h, mean: mean, std: std}
}

// patchFromFrame copies the grayscale pixels of r (frame coordinates).
func patchFromFrame(frame *image.RGBA, r image.Rectangle) *patch {
	pl := newPlane(frame, r)
	return newPatch(pl.gray, pl.w, pl.h)
}

// scaled returns a bilinear resample of p by factor, or nil when the result
// would be smaller than 2x2.
func (p *patch) scaled(factor float64) *patch {
	if factor == 1 {
		return p
	}
	w := int(float64(p.w) * factor)
	h := int(float64(p.h) * factor)
	if w < 2 || h < 2 {
		return nil
	}
	gray := make([]float64, w*h)
	fx := float64(p.w) / float64(w)
	fy := float64(p.h) / float64(h)
	for y := 0; y < h; y++ {
		ys := clampf((float64(y)+0.5)*fy-0.5, 0, float64(p.h-1))
		y0 := int(ys)
		y1 := min(y0+1, p.h-1)
		dy := ys - float64(y0)
		for x := 0; x < w; x++ {
			xs := clampf((float64(x)+0.5)*fx-0.5, 0, float64(p.w-1))
			x0 := int(xs)
			x1 := min(x0+1, p.w-1)
			dx := xs - float64(x0)
			top := p.gray[y0*p.w+x0]*(1-dx) + p.gray[y0*p.w+x1]*dx
			bottom := p.gray[y1*p.w+x0]*(1-dx) + p.gray[y1*p.w+x1]*dx
			gray[y*w+x] = top*(1-dy) + bottom*dy
		}
	}
	return newPatch(gray, w, h)
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
