package opencv

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/soocke/frametrack/domain/tracking"
	"github.com/soocke/frametrack/domain/video"
)

func TestConvertRoundTrip(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 6, 4))
	src.SetRGBA(2, 1, color.RGBA{10, 20, 30, 0xFF})
	m, err := RGBAToMat(src)
	if err != nil {
		t.Fatalf("to mat: %v", err)
	}
	defer m.Close()
	if m.Cols() != 6 || m.Rows() != 4 {
		t.Fatalf("unexpected mat size %dx%d", m.Cols(), m.Rows())
	}
	out, err := MatToRGBA(m)
	if err != nil {
		t.Fatalf("to rgba: %v", err)
	}
	if got := out.RGBAAt(2, 1); got.R != 10 || got.G != 20 || got.B != 30 {
		t.Fatalf("pixel mismatch: %v", got)
	}
}

func TestNewTrackerRejectsNCC(t *testing.T) {
	if _, err := NewTracker(tracking.KindNCC); !errors.Is(err, tracking.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestFileSourceMissingFile(t *testing.T) {
	s := NewFileSource()
	if _, err := s.Open("does-not-exist.mp4"); !errors.Is(err, video.ErrUnsupportedMedia) {
		t.Fatalf("expected ErrUnsupportedMedia, got %v", err)
	}
	if err := s.Release(); err != nil {
		t.Fatalf("release of unopened source: %v", err)
	}
	if _, err := s.ReadFrame(); err == nil {
		t.Fatalf("read on unopened source should fail")
	}
	if got := s.Position(); got != 0 {
		t.Fatalf("unopened source position = %d, want 0", got)
	}
}
