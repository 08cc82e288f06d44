package geometry

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeometry_ScaleAndOffset(t *testing.T) {
	g := New(image.Pt(640, 480), image.Pt(1280, 720))
	assert.InDelta(t, 0.5, g.Scale(), 1e-9)
	assert.Equal(t, image.Pt(640, 360), g.ContentSize())
	assert.Equal(t, image.Pt(0, 60), g.Offset())
	assert.Equal(t, image.Rect(0, 60, 640, 420), g.Viewport())
}

func TestGeometry_PillarboxOffset(t *testing.T) {
	g := New(image.Pt(500, 300), image.Pt(320, 240))
	assert.InDelta(t, 1.25, g.Scale(), 1e-9)
	assert.Equal(t, image.Pt(50, 0), g.Offset())
}

func TestGeometry_Degenerate(t *testing.T) {
	cases := []Geometry{
		{},
		New(image.Pt(0, 480), image.Pt(640, 480)),
		New(image.Pt(640, 480), image.Pt(0, 0)),
		New(image.Pt(-5, 480), image.Pt(640, 480)),
	}
	for _, g := range cases {
		assert.Zero(t, g.Scale())
		_, ok := g.ToSource(image.Pt(1, 1))
		assert.False(t, ok, "geometry %+v should not map", g)
		_, ok = g.ToDisplay(image.Pt(1, 1))
		assert.False(t, ok)
		_, ok = g.ToSourceRect(image.Rect(0, 0, 10, 10))
		assert.False(t, ok)
	}
}

func TestGeometry_ToSourceClipsLetterbox(t *testing.T) {
	g := New(image.Pt(640, 480), image.Pt(1280, 720))

	p, ok := g.ToSource(image.Pt(320, 240))
	require.True(t, ok)
	assert.Equal(t, image.Pt(640, 360), p)

	// top bar clips to the first row
	p, ok = g.ToSource(image.Pt(100, 10))
	require.True(t, ok)
	assert.Equal(t, image.Pt(200, 0), p)

	// bottom bar clips to the last row
	p, ok = g.ToSource(image.Pt(639, 479))
	require.True(t, ok)
	assert.Equal(t, image.Pt(1278, 719), p)
}

func TestGeometry_ToSourceRect(t *testing.T) {
	g := New(image.Pt(640, 480), image.Pt(1280, 720))

	r, ok := g.ToSourceRect(image.Rect(10, 70, 50, 110))
	require.True(t, ok)
	assert.Equal(t, image.Rect(20, 20, 100, 100), r)

	_, ok = g.ToSourceRect(image.Rect(10, 0, 100, 50))
	assert.False(t, ok, "rectangle inside the letterbox bar must not map")

	r, ok = g.ToSourceRect(image.Rect(600, 400, 700, 500))
	require.True(t, ok)
	assert.Equal(t, image.Rect(1200, 680, 1280, 720), r)
}

func TestGeometry_ToDisplayRect(t *testing.T) {
	g := New(image.Pt(640, 480), image.Pt(1280, 720))
	r, ok := g.ToDisplayRect(image.Rect(0, 0, 1280, 720))
	require.True(t, ok)
	assert.Equal(t, g.Viewport(), r)
}

func TestGeometry_RoundTripWithinOnePixel(t *testing.T) {
	geoms := []Geometry{
		New(image.Pt(500, 300), image.Pt(320, 240)),
		New(image.Pt(640, 480), image.Pt(1280, 720)),
		New(image.Pt(800, 600), image.Pt(400, 300)),
		New(image.Pt(333, 517), image.Pt(191, 97)),
	}
	for _, g := range geoms {
		vp := g.Viewport()
		for y := vp.Min.Y; y < vp.Max.Y; y += 3 {
			for x := vp.Min.X; x < vp.Max.X; x += 3 {
				p := image.Pt(x, y)
				src, ok := g.ToSource(p)
				require.True(t, ok)
				back, ok := g.ToDisplay(src)
				require.True(t, ok)
				if abs(back.X-p.X) > 1 || abs(back.Y-p.Y) > 1 {
					t.Fatalf("round trip %v -> %v -> %v exceeds 1px (geometry %+v)", p, src, back, g)
				}
			}
		}
	}
}

func TestNormalize(t *testing.T) {
	r := Normalize(image.Pt(50, 50), image.Pt(10, 10))
	assert.Equal(t, image.Pt(10, 10), r.Min)
	assert.Equal(t, 40, r.Dx())
	assert.Equal(t, 40, r.Dy())

	r = Normalize(image.Pt(10, 60), image.Pt(30, 20))
	assert.Equal(t, image.Rect(10, 20, 30, 60), r)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
