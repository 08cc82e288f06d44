package assets

import "testing"

func TestSplashImageDecodes(t *testing.T) {
	img, err := SplashImage()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 180 {
		t.Fatalf("unexpected splash size %v", b)
	}
}
