package app

import (
	"image"
	"log/slog"

	"github.com/soocke/frametrack/app/clock"
	"github.com/soocke/frametrack/app/media"
	"github.com/soocke/frametrack/assets"
	"github.com/soocke/frametrack/config"
	"github.com/soocke/frametrack/domain/capture"
	"github.com/soocke/frametrack/domain/playback"
	"github.com/soocke/frametrack/domain/tracking"
	"github.com/soocke/frametrack/ui/model"
	"github.com/soocke/frametrack/ui/presenter"
	"github.com/soocke/frametrack/ui/view"
)

// AppContainer assembles models, the controller, presenters and the root view.
type AppContainer struct {
	Config     *config.Config
	ConfigPath string
	Logger     *slog.Logger

	Media      *model.MediaModel
	Tracking   *model.TrackingClock
	Scheduler  *clock.Scheduler
	Controller *playback.Controller
	RootView   *view.RootView

	// Presenters
	PlaybackPresenter *presenter.PlaybackPresenter
	StatePresenter    *presenter.StatePresenter
	ClockPresenter    *presenter.ClockPresenter
	ControlsPresenter *presenter.ControlsPresenter
}

// BuildContainer constructs all components. No widgets are created here;
// RootView.Build runs later on the Tk thread.
func BuildContainer(cfg *config.Config, cfgPath string, logger *slog.Logger, after clock.AfterFunc, cancel clock.CancelFunc) *AppContainer {
	c := &AppContainer{Config: cfg, ConfigPath: cfgPath, Logger: logger}
	c.Media = model.NewMediaModel(cfg.LastDir)
	c.Tracking = model.NewTrackingClock()
	c.Scheduler = clock.New(after, cancel, logger)

	var splash image.Image
	if img, err := assets.SplashImage(); err == nil {
		splash = img
	} else if logger != nil {
		logger.Warn("splash image unavailable", "error", err)
	}
	c.RootView = view.NewRootView(cfg, cfgPath, splash, logger)

	c.PlaybackPresenter = presenter.NewPlaybackPresenter(c.RootView, c.RootView, c.RootView, c.RootView)
	c.Controller = playback.NewController(logger, cfg.PlaybackOptions(), c.Scheduler, c.PlaybackPresenter,
		media.Sources(cfg, logger), media.Trackers(cfg, logger))

	c.StatePresenter = presenter.NewStatePresenter(c.RootView)
	c.ClockPresenter = presenter.NewClockPresenter(c.Tracking, tracking.StateFunc(c.Controller.TrackerState), c.RootView)
	c.ControlsPresenter = presenter.NewControlsPresenter(c.Controller, c.Media, c.RootView, logger)
	c.ControlsPresenter.OnOpened = c.mediaOpened

	c.Controller.AddPlaybackListener(c.StatePresenter.OnPlayback)
	c.Controller.AddPlaybackListener(c.ControlsPresenter.OnPlayback)
	c.Controller.AddTrackerListener(c.StatePresenter.OnTracker)
	return c
}

// Handlers maps user actions to the controller and presenters. exit runs
// for the Exit button.
func (c *AppContainer) Handlers(exit func()) view.Handlers {
	l := c.Logger
	ctl := c.Controller
	return view.Handlers{
		Open: guard(l, "open", func() {
			dir := c.Media.Dir()
			if path := c.RootView.AskOpenPath(dir); path != "" {
				_ = c.ControlsPresenter.Open(path)
			}
		}),
		OpenScreen: guard(l, "open screen", func() { _ = c.ControlsPresenter.Open(capture.Scheme) }),
		TogglePlay: guard(l, "toggle", c.ControlsPresenter.TogglePlay),
		Reset:      guard(l, "reset", c.ControlsPresenter.Reset),
		Clear:      guard(l, "clear", c.ControlsPresenter.Clear),
		Exit:       exit,
		Seek: func(f float64) {
			defer recoverLog(l, "seek panic")
			c.ControlsPresenter.Seek(f)
		},
		Pointer: view.PointerHandlers{
			Down: func(p image.Point) {
				defer recoverLog(l, "pointer panic")
				ctl.PointerDown(p)
			},
			Move: func(p image.Point) {
				defer recoverLog(l, "pointer panic")
				ctl.PointerMove(p)
			},
			Up: func(p image.Point) {
				defer recoverLog(l, "pointer panic")
				ctl.PointerUp(p)
			},
		},
		Resize: func(w, h int) {
			defer recoverLog(l, "resize panic")
			ctl.Resize(w, h)
		},
		ZoomClose:  guard(l, "zoom close", ctl.OnZoomClose),
		Configured: c.configApplied,
	}
}

func (c *AppContainer) mediaOpened(path string) {
	c.Tracking.Reset()
	if capture.IsScreenPath(path) {
		return
	}
	c.Config.LastDir = c.Media.Dir()
	if c.ConfigPath == "" {
		return
	}
	if err := c.Config.Save(c.ConfigPath); err != nil && c.Logger != nil {
		c.Logger.Warn("config save failed", "error", err)
	}
}

// configApplied pushes panel edits into the running controller. Tracker and
// screen-rate changes are picked up by the factories on next use.
func (c *AppContainer) configApplied(cfg *config.Config) {
	c.Controller.SetOptions(cfg.PlaybackOptions())
	if c.Logger != nil {
		c.Logger.Info("settings applied", "tracker", cfg.Tracker, "rate", cfg.PlaybackRate)
	}
}
