package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/soocke/frametrack/domain/geometry"
)

var (
	red   = color.RGBA{0xFF, 0, 0, 0xFF}
	green = color.RGBA{0, 0xFF, 0, 0xFF}
	black = color.RGBA{0, 0, 0, 0xFF}
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fill(img, img.Bounds(), c)
	return img
}

func TestLetterbox_CentresFrame(t *testing.T) {
	frame := solid(1280, 720, red)
	g := geometry.New(image.Pt(640, 480), frame.Bounds().Size())
	out := Letterbox(frame, g, black)
	if out.Bounds() != image.Rect(0, 0, 640, 480) {
		t.Fatalf("canvas should match widget, got %v", out.Bounds())
	}
	if c := out.RGBAAt(320, 30); c != black {
		t.Fatalf("top bar should be background, got %v", c)
	}
	if c := out.RGBAAt(320, 240); c != red {
		t.Fatalf("centre should show the frame, got %v", c)
	}
	if c := out.RGBAAt(320, 450); c != black {
		t.Fatalf("bottom bar should be background, got %v", c)
	}
}

func TestLetterbox_Degenerate(t *testing.T) {
	if Letterbox(solid(10, 10, red), geometry.Geometry{}, black) != nil {
		t.Fatalf("expected nil for zero-size widget")
	}
}

func TestScaleToFit(t *testing.T) {
	src := solid(400, 100, green)
	out := ScaleToFit(src, 200, 200)
	if out.Bounds().Dx() != 200 || out.Bounds().Dy() != 50 {
		t.Fatalf("unexpected scaled size %v", out.Bounds())
	}
	if ScaleToFit(src, 500, 500) != image.Image(src) {
		t.Fatalf("fitting image should be returned as is")
	}
}

func TestDrawRect_OutlineOnly(t *testing.T) {
	img := solid(20, 20, black)
	DrawRect(img, image.Rect(15, 15, 5, 5), green, 2)
	if c := img.RGBAAt(5, 5); c != green {
		t.Fatalf("corner should be stroked, got %v", c)
	}
	if c := img.RGBAAt(6, 10); c != green {
		t.Fatalf("left edge should be 2px, got %v", c)
	}
	if c := img.RGBAAt(10, 10); c != black {
		t.Fatalf("interior should be untouched, got %v", c)
	}
	if c := img.RGBAAt(15, 15); c != black {
		t.Fatalf("max edge is exclusive, got %v", c)
	}
}

func TestDrawRect_ClipsToImage(t *testing.T) {
	img := solid(10, 10, black)
	DrawRect(img, image.Rect(-5, -5, 50, 50), red, 1)
	DrawRect(nil, image.Rect(0, 0, 1, 1), red, 1)
	if c := img.RGBAAt(5, 5); c != black {
		t.Fatalf("stroke outside the image must not wrap, got %v", c)
	}
}

func TestDrawDashedRect(t *testing.T) {
	img := solid(20, 20, black)
	DrawDashedRect(img, image.Rect(0, 0, 12, 12), red, 3)
	if c := img.RGBAAt(1, 0); c != red {
		t.Fatalf("first dash should be drawn, got %v", c)
	}
	if c := img.RGBAAt(4, 0); c != black {
		t.Fatalf("gap should be skipped, got %v", c)
	}
	if c := img.RGBAAt(0, 7); c != red {
		t.Fatalf("left edge dash expected, got %v", c)
	}
}

func TestEncodePNG(t *testing.T) {
	data := EncodePNG(solid(3, 2, red))
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Size() != image.Pt(3, 2) {
		t.Fatalf("unexpected size %v", img.Bounds())
	}
	if EncodePNG(nil) != nil {
		t.Fatalf("nil image encodes to nil")
	}
}
