// Package videotest provides an in-memory video.Source for tests.
package videotest

import (
	"errors"
	"image"
	"image/color"

	"github.com/soocke/frametrack/domain/video"
)

// ErrDecode is returned by ReadFrame at FailAt.
var ErrDecode = errors.New("videotest: decode failure")

// Source is a deterministic in-memory decoder. The zero value behaves like a
// 64x48, 30 fps stream with no frames.
type Source struct {
	FPS    float64
	Frames int
	Width  int
	Height int
	// OpenErr is returned by Open when set.
	OpenErr error
	// FailAt makes ReadFrame fail with ErrDecode when the cursor reaches it (ignored when < 0).
	FailAt int
	// SeekErr is returned by Seek when set; the cursor does not move.
	SeekErr error
	// NotReady makes that many ReadFrame calls return video.ErrFrameNotReady,
	// like a live source that has not produced its first frame.
	NotReady int
	// Render draws frame i; defaults to a uniform gray level of i%256.
	Render func(i int, bounds image.Rectangle) *image.RGBA

	Path     string
	Reads    int
	Seeks    []int
	Releases int
	pos      int
}

// New returns a source with the given frame rate and frame count.
func New(fps float64, frames int) *Source {
	return &Source{FPS: fps, Frames: frames, Width: 64, Height: 48, FailAt: -1}
}

// Factory returns a video.SourceFactory that always yields s.
func (s *Source) Factory() video.SourceFactory {
	return func(string) video.Source { return s }
}

func (s *Source) Open(path string) (video.Info, error) {
	s.Path = path
	if s.OpenErr != nil {
		return video.Info{}, s.OpenErr
	}
	s.pos = 0
	return video.Info{FPS: s.FPS, FrameCount: s.Frames}, nil
}

func (s *Source) ReadFrame() (*image.RGBA, error) {
	if s.NotReady > 0 {
		s.NotReady--
		return nil, video.ErrFrameNotReady
	}
	if s.FailAt >= 0 && s.pos == s.FailAt {
		return nil, ErrDecode
	}
	if s.pos >= s.Frames {
		return nil, video.ErrEndOfStream
	}
	w, h := s.Width, s.Height
	if w <= 0 || h <= 0 {
		w, h = 64, 48
	}
	bounds := image.Rect(0, 0, w, h)
	var frame *image.RGBA
	if s.Render != nil {
		frame = s.Render(s.pos, bounds)
	} else {
		level := uint8(s.pos % 256)
		frame = Fill(bounds, color.RGBA{level, level, level, 0xFF})
	}
	s.pos++
	s.Reads++
	return frame, nil
}

func (s *Source) Seek(index int) error {
	s.Seeks = append(s.Seeks, index)
	if s.SeekErr != nil {
		return s.SeekErr
	}
	s.pos = index
	return nil
}

func (s *Source) Position() int { return s.pos }

func (s *Source) Release() error {
	s.Releases++
	return nil
}

// Fill returns a bounds-sized frame painted with c.
func Fill(bounds image.Rectangle, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(bounds)
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

var _ video.Source = (*Source)(nil)
