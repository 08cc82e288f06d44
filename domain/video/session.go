package video

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
)

// Session owns the decode cursor of one opened media file.
// It is not safe for concurrent use.
type Session struct {
	id       string
	path     string
	src      Source
	logger   *slog.Logger
	fps      float64
	total    int
	current  int
	released bool
}

// Open opens path with src and returns a ready session. Any failure to open,
// and a frame rate that is zero or undeterminable, yields ErrUnsupportedMedia;
// src is released in that case.
func Open(src Source, path string, logger *slog.Logger) (*Session, error) {
	if src == nil {
		return nil, fmt.Errorf("open %q: %w", path, ErrUnsupportedMedia)
	}
	info, err := src.Open(path)
	if err != nil {
		_ = src.Release()
		if errors.Is(err, ErrUnsupportedMedia) {
			return nil, fmt.Errorf("open %q: %w", path, err)
		}
		return nil, fmt.Errorf("open %q: %w: %w", path, ErrUnsupportedMedia, err)
	}
	if info.FPS <= 0 || math.IsNaN(info.FPS) || math.IsInf(info.FPS, 0) {
		_ = src.Release()
		return nil, fmt.Errorf("open %q: fps %v: %w", path, info.FPS, ErrUnsupportedMedia)
	}
	total := info.FrameCount
	if total < 0 {
		total = 0
	}
	s := &Session{id: uuid.NewString(), path: path, src: src, logger: logger, fps: info.FPS, total: total}
	if logger != nil {
		logger.Info("video session opened", "session", s.id, "path", path, "fps", s.fps, "frames", s.total, "duration", s.Duration())
	}
	return s, nil
}

func (s *Session) ID() string           { return s.id }
func (s *Session) Path() string         { return s.path }
func (s *Session) FPS() float64         { return s.fps }
func (s *Session) TotalFrames() int     { return s.total }
func (s *Session) CurrentFrame() int    { return s.current }
func (s *Session) DurationSeconds() int { return Seconds(s.total, s.fps) }

// Duration is the media length derived from frame count and frame rate.
func (s *Session) Duration() time.Duration {
	if s.fps <= 0 {
		return 0
	}
	return time.Duration(float64(s.total) / s.fps * float64(time.Second))
}

// Read decodes the next frame. On success the current frame is refreshed from
// the source position.
func (s *Session) Read() (*image.RGBA, error) {
	if s.released {
		return nil, ErrNoSession
	}
	frame, err := s.src.ReadFrame()
	if err != nil {
		if errors.Is(err, ErrEndOfStream) || errors.Is(err, ErrFrameNotReady) {
			return nil, err
		}
		return nil, fmt.Errorf("read frame %d: %w", s.current, err)
	}
	if frame == nil {
		return nil, ErrEndOfStream
	}
	s.current = s.src.Position()
	if s.current < 0 {
		s.current = 0
	}
	if s.total > 0 && s.current > s.total {
		s.current = s.total
	}
	return frame, nil
}

// Seek positions the cursor so that the next Read returns frame index.
// index is clamped to [0, TotalFrames-1].
func (s *Session) Seek(index int) error {
	if s.released {
		return ErrNoSession
	}
	index = s.Clamp(index)
	if err := s.src.Seek(index); err != nil {
		return fmt.Errorf("seek %d: %w", index, err)
	}
	s.current = index
	return nil
}

// Clamp limits index to the valid frame range of the session.
func (s *Session) Clamp(index int) int {
	if s.total <= 0 || index < 0 {
		return 0
	}
	if index > s.total-1 {
		return s.total - 1
	}
	return index
}

// Progress is current/total in [0,1]; unbounded sessions report 0.
func (s *Session) Progress() float64 {
	if s.total <= 0 {
		return 0
	}
	return float64(s.current) / float64(s.total)
}

// TickInterval returns the frame clock period for this session.
func (s *Session) TickInterval(rate float64) time.Duration { return TickInterval(s.fps, rate) }

// Release closes the underlying source. It is idempotent.
func (s *Session) Release() error {
	if s == nil || s.released {
		return nil
	}
	s.released = true
	s.current = 0
	err := s.src.Release()
	if s.logger != nil {
		s.logger.Info("video session released", "session", s.id, "path", s.path)
	}
	return err
}

// TickInterval returns round(1000/(fps*rate)) milliseconds. A rate <= 0 is
// treated as 1. It returns 0 when fps is not positive.
func TickInterval(fps, rate float64) time.Duration {
	if rate <= 0 {
		rate = 1
	}
	if fps <= 0 {
		return 0
	}
	ms := math.Round(1000 / (fps * rate))
	if ms < 1 {
		ms = 1
	}
	return time.Duration(ms) * time.Millisecond
}

// Seconds converts a frame count to whole seconds, truncating.
func Seconds(frames int, fps float64) int {
	if fps <= 0 || frames <= 0 {
		return 0
	}
	return int(float64(frames) / fps)
}
