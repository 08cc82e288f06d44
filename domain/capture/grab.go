package capture

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/vova616/screenshot"
)

// ScreenGrabber grabs region from the primary display, or the whole display
// when region is empty.
func ScreenGrabber(region image.Rectangle) (*image.RGBA, error) {
	if region.Empty() {
		return screenshot.CaptureScreen()
	}
	return screenshot.CaptureRect(region)
}

// IsScreenPath reports whether path uses the screen scheme.
func IsScreenPath(path string) bool { return strings.HasPrefix(path, Scheme) }

// ParseRegion extracts the capture region from a screen path. "screen:"
// alone selects the full display; otherwise the suffix is "x,y,w,h".
func ParseRegion(path string) (image.Rectangle, error) {
	if !IsScreenPath(path) {
		return image.Rectangle{}, fmt.Errorf("%q: %w", path, ErrNotScreenPath)
	}
	spec := strings.TrimSpace(strings.TrimPrefix(path, Scheme))
	if spec == "" {
		return image.Rectangle{}, nil
	}
	parts := strings.Split(spec, ",")
	if len(parts) != 4 {
		return image.Rectangle{}, fmt.Errorf("%q: want x,y,w,h: %w", spec, ErrBadRegion)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return image.Rectangle{}, fmt.Errorf("%q: %w: %w", spec, ErrBadRegion, err)
		}
		v[i] = n
	}
	if v[2] <= 0 || v[3] <= 0 {
		return image.Rectangle{}, fmt.Errorf("%q: empty size: %w", spec, ErrBadRegion)
	}
	return image.Rect(v[0], v[1], v[0]+v[2], v[1]+v[3]), nil
}
