package app

import (
	"fmt"
	"log/slog"
	"time"

	. "modernc.org/tk9.0"

	"github.com/soocke/frametrack/config"
	"github.com/soocke/frametrack/ui/presenter"
	"github.com/soocke/frametrack/ui/theme"
)

const (
	// status refresh period, independent of the frame clock
	tick = 100 * time.Millisecond
)

type app struct {
	title     string
	container *AppContainer
	logger    *slog.Logger
	loop      *presenter.Loop
	afterID   string
	closed    bool
}

// NewApp prepares the main window. Widgets are built in Start.
func NewApp(title string, cfg *config.Config, cfgPath string, logger *slog.Logger) *app {
	enableDPIAwareness(logger)
	a := &app{title: title, logger: logger}
	a.container = BuildContainer(cfg, cfgPath, logger,
		func(d time.Duration, fn func()) string { return TclAfter(d, fn) },
		func(id string) { TclAfterCancel(id) })

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", cfg.WindowWidth, cfg.WindowHeight))
	return a
}

// Container exposes the wiring.
func (a *app) Container() *AppContainer { return a.container }

// Start builds the UI, optionally opens initialPath and runs the Tk event
// loop until the window closes.
func (a *app) Start(initialPath string) {
	c := a.container
	theme.SetDark(c.Config.DarkMode)
	c.RootView.Build(c.Handlers(a.exitHandler))
	c.RootView.ResetFrame()

	a.loop = presenter.NewLoop(c.StatePresenter, c.ClockPresenter, a.scheduleUpdate)
	a.scheduleUpdate()

	if initialPath != "" {
		// defer the open until the window is mapped and sized
		TclAfter(tick, guard(a.logger, "initial open", func() { _ = c.ControlsPresenter.Open(initialPath) }))
	}
	if a.logger != nil {
		a.logger.Info("ui started", "title", a.title)
	}
	App.Wait()
}

func (a *app) update() {
	defer recoverLog(a.logger, "ui loop panic")
	if a.closed {
		return
	}
	a.loop.Tick()
}

func (a *app) scheduleUpdate() {
	if a.closed {
		return
	}
	// TclAfter keeps the loop on Tk's event thread.
	a.afterID = TclAfter(tick, a.update)
}

// exitHandler releases the media and the clock before destroying the window.
func (a *app) exitHandler() {
	if a.closed {
		return
	}
	a.closed = true
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	func() {
		defer recoverLog(a.logger, "shutdown panic")
		a.container.Controller.OnClose()
		a.container.RootView.HideZoom()
	}()
	Destroy(App)
}
