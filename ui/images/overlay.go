package images

import (
	"image"
	"image/color"
)

// DrawRect outlines r on img with the given stroke thickness. The stroke is
// drawn inside r and clipped to img.
func DrawRect(img *image.RGBA, r image.Rectangle, c color.RGBA, thickness int) {
	if img == nil {
		return
	}
	r = r.Canon()
	if r.Empty() {
		return
	}
	if thickness < 1 {
		thickness = 1
	}
	t := thickness
	if t > r.Dx()/2+1 {
		t = r.Dx()/2 + 1
	}
	if t > r.Dy()/2+1 {
		t = r.Dy()/2 + 1
	}
	fill(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+t), c)
	fill(img, image.Rect(r.Min.X, r.Max.Y-t, r.Max.X, r.Max.Y), c)
	fill(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+t, r.Max.Y), c)
	fill(img, image.Rect(r.Max.X-t, r.Min.Y, r.Max.X, r.Max.Y), c)
}

// DrawDashedRect outlines r with a one pixel dashed stroke: dash pixels on,
// dash pixels off.
func DrawDashedRect(img *image.RGBA, r image.Rectangle, c color.RGBA, dash int) {
	if img == nil {
		return
	}
	r = r.Canon()
	if r.Empty() {
		return
	}
	if dash < 1 {
		dash = 1
	}
	on := func(i int) bool { return (i/dash)%2 == 0 }
	clip := img.Bounds()
	set := func(x, y int) {
		if (image.Point{X: x, Y: y}).In(clip) {
			img.SetRGBA(x, y, c)
		}
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		if on(x - r.Min.X) {
			set(x, r.Min.Y)
			set(x, r.Max.Y-1)
		}
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		if on(y - r.Min.Y) {
			set(r.Min.X, y)
			set(r.Max.X-1, y)
		}
	}
}

func fill(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		off := img.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Pix[off], img.Pix[off+1], img.Pix[off+2], img.Pix[off+3] = c.R, c.G, c.B, c.A
			off += 4
		}
	}
}
