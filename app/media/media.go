// Package media builds the source and tracker factories from configuration
// and implements the headless probe command.
package media

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/soocke/frametrack/config"
	"github.com/soocke/frametrack/domain/capture"
	"github.com/soocke/frametrack/domain/opencv"
	"github.com/soocke/frametrack/domain/tracking"
	"github.com/soocke/frametrack/domain/tracking/ncc"
	"github.com/soocke/frametrack/domain/video"
)

// Sources routes screen paths to the live screen source and everything else
// to the OpenCV decoder. cfg is read on every open so a changed screen rate
// applies to the next capture.
func Sources(cfg *config.Config, logger *slog.Logger) video.SourceFactory {
	return func(path string) video.Source {
		fps := capture.DefaultFPS
		if cfg != nil {
			fps = cfg.ScreenFPS
		}
		return capture.Factory(logger, fps, nil, opencv.Factory)(path)
	}
}

// Trackers returns a factory for the configured tracker kind. The kind is
// resolved per call, so a settings change applies to the next selection.
func Trackers(cfg *config.Config, logger *slog.Logger) tracking.Factory {
	return func() (tracking.Tracker, error) {
		kind := tracking.KindCSRT
		opts := ncc.DefaultOptions()
		if cfg != nil {
			kind = cfg.TrackerKind()
			opts = cfg.NCCOptions()
		}
		if logger != nil {
			logger.Debug("creating tracker", "kind", string(kind))
		}
		if kind == tracking.KindNCC {
			return ncc.New(opts), nil
		}
		return opencv.TrackerFactory(kind)()
	}
}

// Report is the YAML document written by Probe.
type Report struct {
	Media  []video.ProbeResult `yaml:"media"`
	Failed int                 `yaml:"failed"`
}

// Probe opens every path with factory and writes a YAML report to w. It
// returns the number of files that could not be opened.
func Probe(ctx context.Context, w io.Writer, factory video.SourceFactory, paths []string, logger *slog.Logger) (int, error) {
	results, err := video.Probe(ctx, factory, paths, 0, logger)
	if err != nil {
		return 0, fmt.Errorf("probe: %w", err)
	}
	rep := Report{Media: results}
	for _, r := range results {
		if r.Error != "" {
			rep.Failed++
		}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return rep.Failed, fmt.Errorf("probe report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return rep.Failed, fmt.Errorf("probe report: %w", err)
	}
	return rep.Failed, nil
}
