package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/draw"

	"github.com/soocke/frametrack/domain/geometry"
)

// Frames are re-encoded every tick, so favour speed over size.
var encoder = png.Encoder{CompressionLevel: png.BestSpeed}

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = encoder.Encode(&buf, img)
	return buf.Bytes()
}

// ScaleToFit scales src so that it fits within maxW x maxH preserving aspect
// ratio. If the source already fits, the original is returned.
func ScaleToFit(src image.Image, maxW, maxH int) image.Image {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	if b.Dx() <= maxW && b.Dy() <= maxH {
		return src
	}
	if maxW < 1 {
		maxW = 1
	}
	if maxH < 1 {
		maxH = 1
	}
	g := geometry.New(image.Pt(maxW, maxH), b.Size())
	size := g.ContentSize()
	if size.X < 1 {
		size.X = 1
	}
	if size.Y < 1 {
		size.Y = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// Letterbox renders frame into a canvas the size of the widget described by
// g, centred, with bg filling the bars. It returns nil for a degenerate
// geometry.
func Letterbox(frame image.Image, g geometry.Geometry, bg color.Color) *image.RGBA {
	if frame == nil || !g.Valid() {
		return nil
	}
	canvas := image.NewRGBA(image.Rect(0, 0, g.WidgetWidth, g.WidgetHeight))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	vp := g.Viewport()
	if vp.Empty() {
		return canvas
	}
	if vp.Size() == frame.Bounds().Size() {
		draw.Draw(canvas, vp, frame, frame.Bounds().Min, draw.Src)
		return canvas
	}
	draw.ApproxBiLinear.Scale(canvas, vp, frame, frame.Bounds(), draw.Src, nil)
	return canvas
}
