package video

import (
	"context"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ProbeResult summarises one media file.
type ProbeResult struct {
	Path            string  `yaml:"path"`
	FPS             float64 `yaml:"fps,omitempty"`
	Frames          int     `yaml:"frames,omitempty"`
	DurationSeconds int     `yaml:"duration_seconds,omitempty"`
	Clock           string  `yaml:"clock,omitempty"`
	Error           string  `yaml:"error,omitempty"`
}

// Probe opens every path with a fresh source from factory and reports its
// frame rate, frame count and duration. Paths are probed concurrently, at most
// limit at a time (limit <= 0 means GOMAXPROCS). Per-file failures are
// reported in the result; only context cancellation returns an error.
func Probe(ctx context.Context, factory SourceFactory, paths []string, limit int, logger *slog.Logger) ([]ProbeResult, error) {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	results := make([]ProbeResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = probeOne(factory, path, logger)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func probeOne(factory SourceFactory, path string, logger *slog.Logger) ProbeResult {
	res := ProbeResult{Path: path}
	var src Source
	if factory != nil {
		src = factory(path)
	}
	s, err := Open(src, path, logger)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	defer s.Release()
	res.FPS = s.FPS()
	res.Frames = s.TotalFrames()
	res.DurationSeconds = s.DurationSeconds()
	res.Clock = FormatSeconds(res.DurationSeconds)
	return res
}
