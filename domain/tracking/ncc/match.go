package ncc

import "math"

const flatVariance = 1e-9

// match is the best normalized cross-correlation position of a patch inside
// a plane. Score is -1 when no window had usable variance.
type match struct {
	X, Y  int
	Score float64
	Scale float64
	W, H  int
}

// scoreAt computes the NCC of t against the window with top-left (x, y).
func scoreAt(p *plane, t *patch, x, y int) (float64, bool) {
	n := float64(t.w * t.h)
	sumF := p.windowSum(p.integral, x, y, x+t.w-1, y+t.h-1)
	sumF2 := p.windowSum(p.integralSq, x, y, x+t.w-1, y+t.h-1)
	meanF := sumF / n
	varF := (sumF2 - sumF*sumF/n) / n
	if varF <= flatVariance {
		return 0, false
	}
	var sumFT float64
	for ty := 0; ty < t.h; ty++ {
		row := (y+ty)*p.w + x
		trow := ty * t.w
		for tx := 0; tx < t.w; tx++ {
			sumFT += p.gray[row+tx] * t.gray[trow+tx]
		}
	}
	denom := n * math.Sqrt(varF) * t.std
	if denom <= 0 {
		return 0, false
	}
	return (sumFT - n*meanF*t.mean) / denom, true
}

// bestMatch scans p with the given stride and, when refine is set, searches
// the stride neighbourhood of the coarse winner at full resolution.
func bestMatch(p *plane, t *patch, stride int, refine bool) match {
	if t == nil {
		return match{Score: -1}
	}
	best := match{Score: -1, W: t.w, H: t.h}
	if t.std <= flatVariance || p.w < t.w || p.h < t.h {
		return best
	}
	if stride <= 0 {
		stride = 1
	}
	scan := func(x0, y0, x1, y1, step int) {
		for y := y0; y <= y1; y += step {
			for x := x0; x <= x1; x += step {
				if s, ok := scoreAt(p, t, x, y); ok && s > best.Score {
					best.X, best.Y, best.Score = x, y, s
				}
			}
		}
	}
	scan(0, 0, p.w-t.w, p.h-t.h, stride)
	if refine && stride > 1 && best.Score > -1 {
		scan(max(0, best.X-stride), max(0, best.Y-stride), min(p.w-t.w, best.X+stride), min(p.h-t.h, best.Y+stride), 1)
	}
	return best
}
