package capture

import (
	"image"
	"sync"
)

// The screenshot library allocates a fresh *image.RGBA per grab. Grabbed
// pixels are copied into pooled buffers so frames that are overwritten before
// the player consumes them can be reused instead of retained.

var framePool sync.Pool // stores *image.RGBA

// acquireFrame returns a reusable RGBA image of the given size anchored at
// the origin. Pix has exactly width*height*4 bytes.
func acquireFrame(size image.Point) *image.RGBA {
	w, h := size.X, size.Y
	rect := image.Rect(0, 0, w, h)
	if w <= 0 || h <= 0 {
		return &image.RGBA{Rect: rect}
	}
	needed := w * h * 4
	var img *image.RGBA
	if v := framePool.Get(); v != nil {
		img = v.(*image.RGBA)
	}
	if img == nil || cap(img.Pix) < needed {
		return &image.RGBA{Pix: make([]byte, needed), Stride: w * 4, Rect: rect}
	}
	img.Stride = w * 4
	img.Rect = rect
	img.Pix = img.Pix[:needed]
	return img
}

// copyFrame copies src into a pooled frame anchored at the origin.
func copyFrame(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	dst := acquireFrame(b.Size())
	rowLen := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		so := src.PixOffset(b.Min.X, b.Min.Y+y)
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+rowLen], src.Pix[so:so+rowLen])
	}
	return dst
}

// recycleFrame hands img back to the pool. The caller must not touch it
// afterwards.
func recycleFrame(img *image.RGBA) {
	if img == nil || img.Pix == nil {
		return
	}
	framePool.Put(img)
}
