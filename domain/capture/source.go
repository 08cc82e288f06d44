package capture

import (
	"fmt"
	"image"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/soocke/frametrack/domain/video"
)

const (
	statsLogInterval         = 5 * time.Second
	defaultFirstFrameTimeout = 2 * time.Second
)

type snapshot struct {
	img *image.RGBA
	at  time.Time
	seq uint64
}

// Source plays a live screen region as an unbounded video. A background loop
// grabs at the configured rate and keeps only the newest frame; ReadFrame
// takes ownership of it, or repeats the previous frame when nothing new has
// arrived. Seeking is a no-op.
type Source struct {
	logger *slog.Logger
	grab   Grabber
	fps    float64

	// FirstFrameTimeout is how long after Open ReadFrame reports
	// video.ErrFrameNotReady before giving up with ErrNoFrame. ReadFrame never
	// blocks.
	FirstFrameTimeout time.Duration

	latest   atomic.Pointer[snapshot]
	stop     chan struct{}
	done     chan struct{}
	openedAt time.Time

	captures     atomic.Uint64
	skipped      atomic.Uint64
	dropped      atomic.Uint64
	captureNanos atomic.Uint64
	sequence     atomic.Uint64
	lastAt       atomic.Int64

	region   image.Rectangle
	last     *image.RGBA
	position int
	started  bool
	closed   bool
}

// NewSource returns a screen source grabbing at fps with grab. A nil grab
// uses ScreenGrabber.
func NewSource(logger *slog.Logger, fps float64, grab Grabber) *Source {
	if fps <= 0 {
		fps = DefaultFPS
	}
	if grab == nil {
		grab = ScreenGrabber
	}
	return &Source{logger: logger, grab: grab, fps: fps, FirstFrameTimeout: defaultFirstFrameTimeout}
}

// Factory routes screen paths to a new Source and everything else to next.
func Factory(logger *slog.Logger, fps float64, grab Grabber, next video.SourceFactory) video.SourceFactory {
	return func(path string) video.Source {
		if IsScreenPath(path) {
			return NewSource(logger, fps, grab)
		}
		if next == nil {
			return nil
		}
		return next(path)
	}
}

func (s *Source) Open(path string) (video.Info, error) {
	if s.started {
		return video.Info{}, fmt.Errorf("capture: %q: already open", path)
	}
	region, err := ParseRegion(path)
	if err != nil {
		return video.Info{}, fmt.Errorf("%w: %w", video.ErrUnsupportedMedia, err)
	}
	s.region = region
	s.openedAt = time.Now()
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	s.started = true
	go s.loop()
	if s.logger != nil {
		s.logger.Info("screen capture started", "region", region.String(), "fps", s.fps)
	}
	return video.Info{FPS: s.fps, FrameCount: 0}, nil
}

func (s *Source) ReadFrame() (*image.RGBA, error) {
	if s.closed || !s.started {
		return nil, ErrClosed
	}
	if snap := s.latest.Swap(nil); snap != nil {
		s.last = snap.img
	}
	if s.last == nil {
		if waited := time.Since(s.openedAt); waited >= s.FirstFrameTimeout {
			return nil, fmt.Errorf("waited %s: %w", waited.Round(time.Millisecond), ErrNoFrame)
		}
		return nil, video.ErrFrameNotReady
	}
	s.position++
	return s.last, nil
}

// Seek is ignored; a live source has no timeline.
func (s *Source) Seek(int) error { return nil }

// Position counts frames handed out so far.
func (s *Source) Position() int { return s.position }

// Release stops the grab loop and waits for it to exit. It is idempotent.
func (s *Source) Release() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if !s.started {
		return nil
	}
	close(s.stop)
	<-s.done
	if snap := s.latest.Swap(nil); snap != nil {
		recycleFrame(snap.img)
	}
	s.last = nil
	if s.logger != nil {
		st := s.Stats()
		s.logger.Info("screen capture stopped", "captures", st.Captures, "skipped", st.Skipped, "dropped", st.Dropped)
	}
	return nil
}

// Stats reports grab loop counters. Safe for concurrent use.
func (s *Source) Stats() Stats {
	captures := s.captures.Load()
	total := s.captureNanos.Load()
	var avg time.Duration
	if captures > 0 {
		avg = time.Duration(total / captures)
	}
	var last time.Time
	var age time.Duration
	if ns := s.lastAt.Load(); ns != 0 {
		last = time.Unix(0, ns)
		age = time.Since(last)
	}
	return Stats{
		Captures:       captures,
		Skipped:        s.skipped.Load(),
		Dropped:        s.dropped.Load(),
		AvgCapture:     avg,
		LastCapture:    last,
		LatestFrameAge: age,
		Sequence:       s.sequence.Load(),
	}
}

func (s *Source) loop() {
	defer close(s.done)
	interval := time.Duration(float64(time.Second) / s.fps)
	if interval <= 0 {
		interval = time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	logTicker := time.NewTicker(statsLogInterval)
	defer logTicker.Stop()
	for {
		s.grabOnce()
		select {
		case <-s.stop:
			return
		case <-logTicker.C:
			s.logStats()
		case <-ticker.C:
		}
	}
}

func (s *Source) grabOnce() {
	start := time.Now()
	img, err := s.grab(s.region)
	if err != nil || img == nil || img.Bounds().Empty() {
		s.skipped.Add(1)
		if err != nil && s.logger != nil {
			s.logger.Debug("screen grab failed", "error", err)
		}
		return
	}
	frame := copyFrame(img)
	s.captureNanos.Add(uint64(time.Since(start).Nanoseconds()))
	s.captures.Add(1)
	now := time.Now()
	s.lastAt.Store(now.UnixNano())
	seq := s.sequence.Add(1)
	if old := s.latest.Swap(&snapshot{img: frame, at: now, seq: seq}); old != nil {
		s.dropped.Add(1)
		recycleFrame(old.img)
	}
}

func (s *Source) logStats() {
	if s.logger == nil {
		return
	}
	st := s.Stats()
	s.logger.Debug("capture.stats",
		"captures", st.Captures,
		"skipped", st.Skipped,
		"dropped", st.Dropped,
		"avg_capture", st.AvgCapture,
		"age", st.LatestFrameAge,
	)
}

var _ video.Source = (*Source)(nil)
