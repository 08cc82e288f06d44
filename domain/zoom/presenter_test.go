package zoom

import (
	"image"
	"image/color"
	"testing"
)

func redFrame(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = 0xFF, 0, 0, 0xFF
	}
	return img
}

func TestPresenter_LetterboxesCrop(t *testing.T) {
	p := NewPresenter(0, 0)
	if p.Size() != image.Pt(DefaultWidth, DefaultHeight) {
		t.Fatalf("expected default size, got %v", p.Size())
	}
	if p.Visible() {
		t.Fatalf("presenter starts hidden")
	}
	// 40x80 crop into 640x480: scale 6, content 240x480, bars 200px wide.
	out, ok := p.Render(redFrame(200, 200), image.Rect(10, 10, 50, 90))
	if !ok || out == nil {
		t.Fatalf("expected zoom frame")
	}
	if out.Bounds().Size() != image.Pt(640, 480) {
		t.Fatalf("unexpected zoom size %v", out.Bounds())
	}
	if c := out.RGBAAt(100, 240); c != Background {
		t.Fatalf("left bar should be background, got %v", c)
	}
	if c := out.RGBAAt(320, 240); c != (color.RGBA{0xFF, 0, 0, 0xFF}) {
		t.Fatalf("centre should show the crop, got %v", c)
	}
	if !p.Visible() {
		t.Fatalf("presenter should be visible after render")
	}
}

func TestPresenter_ClipsAndHides(t *testing.T) {
	p := NewPresenter(100, 100)
	if _, ok := p.Render(redFrame(50, 50), image.Rect(40, 40, 90, 90)); !ok {
		t.Fatalf("partially visible box should render")
	}
	if _, ok := p.Render(redFrame(50, 50), image.Rect(60, 60, 90, 90)); ok {
		t.Fatalf("box outside the frame should not render")
	}
	if p.Visible() {
		t.Fatalf("failed render hides the view")
	}
	p.Render(redFrame(50, 50), image.Rect(0, 0, 10, 10))
	p.Hide()
	if _, ok := p.Last(); ok {
		t.Fatalf("hidden presenter has no frame")
	}
}
