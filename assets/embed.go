package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/png"
)

// SplashPNG contains the raw PNG bytes of the image shown while no media is open.
//
//go:embed splash.png
var SplashPNG []byte

// SplashImage decodes the embedded PNG into an image.Image.
func SplashImage() (image.Image, error) {
	if len(SplashPNG) == 0 {
		return nil, fmt.Errorf("embedded splash.png is empty")
	}
	img, err := png.Decode(bytes.NewReader(SplashPNG))
	if err != nil {
		return nil, err
	}
	return img, nil
}
