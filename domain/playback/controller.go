package playback

import (
	"errors"
	"image"
	"log/slog"
	"math"

	"github.com/soocke/frametrack/domain/geometry"
	"github.com/soocke/frametrack/domain/selection"
	"github.com/soocke/frametrack/domain/tracking"
	"github.com/soocke/frametrack/domain/video"
	"github.com/soocke/frametrack/domain/zoom"
)

// Controller ties the frame clock, the video session, the ROI selector, the
// tracker lifecycle and the zoom view together. It is the only entry point
// for clock ticks and UI events; all methods must be called from the
// scheduler's goroutine.
type Controller struct {
	logger    *slog.Logger
	opts      Options
	sched     Scheduler
	view      View
	newSource video.SourceFactory

	session   *video.Session
	lifecycle *tracking.Lifecycle
	zoom      *zoom.Presenter
	selector  selection.Selector

	state     State
	widget    image.Point
	lastFrame *image.RGBA
	listeners []Listener
}

// NewController wires a controller. newTracker builds trackers on demand.
func NewController(logger *slog.Logger, opts Options, sched Scheduler, view View, newSource video.SourceFactory, newTracker tracking.Factory) *Controller {
	if opts.PlaybackRate <= 0 {
		opts.PlaybackRate = 1
	}
	return &Controller{
		logger:    logger,
		opts:      opts,
		sched:     sched,
		view:      view,
		newSource: newSource,
		lifecycle: tracking.NewLifecycle(logger, newTracker),
		zoom:      zoom.NewPresenter(opts.ZoomWidth, opts.ZoomHeight),
		state:     StateStopped,
	}
}

func (c *Controller) PlaybackState() State         { return c.state }
func (c *Controller) TrackerState() tracking.State { return c.lifecycle.State() }
func (c *Controller) ZoomVisible() bool            { return c.zoom.Visible() }

// CurrentFrame is the decoder position, 0 without a session.
func (c *Controller) CurrentFrame() int {
	if c.session == nil {
		return 0
	}
	return c.session.CurrentFrame()
}

// TotalFrames is the frame count of the open media, 0 without a session.
func (c *Controller) TotalFrames() int {
	if c.session == nil {
		return 0
	}
	return c.session.TotalFrames()
}

func (c *Controller) AddPlaybackListener(fn Listener) {
	if fn != nil {
		c.listeners = append(c.listeners, fn)
	}
}

func (c *Controller) AddTrackerListener(fn tracking.Listener) { c.lifecycle.AddListener(fn) }

// SetOptions replaces the behavioural options. A running clock picks up a
// new rate immediately.
func (c *Controller) SetOptions(opts Options) {
	if opts.PlaybackRate <= 0 {
		opts.PlaybackRate = 1
	}
	rateChanged := opts.PlaybackRate != c.opts.PlaybackRate
	c.opts = opts
	c.zoom.SetViewport(opts.ZoomWidth, opts.ZoomHeight)
	if rateChanged && c.state == StatePlaying && c.session != nil {
		c.startClock()
	}
}

// Open replaces the current media with path and starts playing it. On
// failure the controller is left Stopped without a session.
func (c *Controller) Open(path string) error {
	c.sched.Stop()
	c.closeSession()
	c.selector.Cancel()
	c.lifecycle.Discard()
	c.hideZoom()
	c.lastFrame = nil

	var src video.Source
	if c.newSource != nil {
		src = c.newSource(path)
	}
	s, err := video.Open(src, path, c.logger)
	if err != nil {
		if c.logger != nil {
			c.logger.Error("open media failed", "path", path, "error", err)
		}
		c.setState(StateStopped)
		c.view.ClearFrame()
		c.view.Progress(0, video.FormatClock(0, 0, 0))
		return err
	}
	c.session = s
	c.view.Progress(0, video.FormatClock(0, s.TotalFrames(), s.FPS()))
	c.setState(StatePlaying)
	c.startClock()
	return nil
}

// Play (re)starts the frame clock. A pending roi is initialised on the next tick.
func (c *Controller) Play() {
	if c.session == nil {
		return
	}
	if c.opts.RearmOnPlay {
		c.lifecycle.Rearm()
	}
	c.selector.Cancel()
	c.setState(StatePlaying)
	c.startClock()
}

// Pause stops the frame clock and cancels any drag in progress.
func (c *Controller) Pause() {
	c.sched.Stop()
	dragging := c.selector.Active()
	c.selector.Cancel()
	if c.session != nil && c.state == StatePlaying {
		c.setState(StatePaused)
	}
	if dragging {
		c.present()
	}
}

// Reset stops playback, releases the media and discards the tracker.
func (c *Controller) Reset() {
	c.sched.Stop()
	c.selector.Cancel()
	c.lifecycle.Discard()
	c.hideZoom()
	c.closeSession()
	c.lastFrame = nil
	c.setState(StateStopped)
	c.view.ClearFrame()
	c.view.Progress(0, video.FormatClock(0, 0, 0))
}

// Clear discards the tracker and roi; position and playback state are kept.
func (c *Controller) Clear() {
	c.selector.Cancel()
	c.lifecycle.Discard()
	c.hideZoom()
	c.present()
}

// Seek moves to fraction f of the media and pauses. A running or lost
// tracker is discarded; a pending roi stays armed.
func (c *Controller) Seek(f float64) {
	if c.session == nil {
		return
	}
	c.sched.Stop()
	c.selector.Cancel()
	if c.state == StatePlaying {
		c.setState(StatePaused)
	}
	if math.IsNaN(f) || f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	// the tracker is stale whether or not the decoder manages to move
	c.lifecycle.OnSeek()
	c.hideZoom()
	index := c.session.Clamp(int(math.Round(f * float64(c.session.TotalFrames()))))
	if err := c.session.Seek(index); err != nil {
		c.logError("seek failed", err, "index", index)
		c.present()
		c.progress()
		return
	}
	if c.opts.PreviewOnSeek {
		c.preview(index)
	}
	c.progress()
}

// preview decodes the frame at index for display and rewinds the cursor so
// the next tick reads it again.
func (c *Controller) preview(index int) {
	frame, err := c.session.Read()
	if err != nil {
		if !errors.Is(err, video.ErrEndOfStream) && !errors.Is(err, video.ErrFrameNotReady) {
			c.logError("seek preview failed", err, "index", index)
		}
		return
	}
	c.lastFrame = frame
	if err := c.session.Seek(index); err != nil {
		c.logError("seek rewind failed", err, "index", index)
	}
	c.present()
}

// Tick advances one frame: read, step the tracker, render the primary and
// zoom views and report progress.
func (c *Controller) Tick() {
	if c.session == nil {
		c.sched.Stop()
		return
	}
	frame, err := c.session.Read()
	if errors.Is(err, video.ErrFrameNotReady) {
		// live source still warming up; keep the clock running
		return
	}
	if err != nil {
		c.sched.Stop()
		if c.state == StatePlaying {
			c.setState(StatePaused)
		}
		if errors.Is(err, video.ErrEndOfStream) {
			if c.logger != nil {
				c.logger.Info("end of stream", "session", c.session.ID(), "path", c.session.Path(), "frame", c.session.CurrentFrame())
			}
			c.view.EndOfStream()
			return
		}
		c.logError("decode failed", err, "frame", c.session.CurrentFrame())
		return
	}
	c.lastFrame = frame
	st := c.lifecycle.Advance(frame)
	c.present()
	if st == tracking.StateTracking {
		c.renderZoom()
	} else if c.zoom.Visible() {
		c.hideZoom()
	}
	c.progress()
}

// PointerDown starts a selection at p. While playing it either pauses
// first or ignores the press, per PauseOnPointerDown.
func (c *Controller) PointerDown(p image.Point) {
	if c.session == nil || c.lastFrame == nil {
		return
	}
	if c.state == StatePlaying {
		if !c.opts.PauseOnPointerDown {
			return
		}
		c.Pause()
	}
	c.selector.Begin(p)
}

// PointerMove updates the live selection outline.
func (c *Controller) PointerMove(p image.Point) {
	if _, ok := c.selector.Move(p); ok {
		c.present()
	}
}

// PointerUp commits the selection as the new roi. Degenerate selections are
// dropped silently.
func (c *Controller) PointerUp(p image.Point) {
	if !c.selector.Active() {
		return
	}
	res, ok := c.selector.End(p, c.geometry())
	if !ok {
		c.present()
		return
	}
	if err := c.lifecycle.Commit(res.Source); err != nil {
		c.present()
		return
	}
	c.hideZoom()
	if c.logger != nil {
		c.logger.Info("roi committed", "display", res.Display.String(), "source", res.Source.String())
	}
	c.present()
}

// Resize records the primary widget size and re-renders the last frame.
func (c *Controller) Resize(width, height int) {
	p := image.Pt(width, height)
	if p == c.widget {
		return
	}
	c.widget = p
	c.present()
}

// SetZoomViewport changes the zoom view size.
func (c *Controller) SetZoomViewport(width, height int) {
	c.zoom.SetViewport(width, height)
	if c.lifecycle.State() == tracking.StateTracking {
		c.renderZoom()
	}
}

// OnClose is the application shutdown hook.
func (c *Controller) OnClose() {
	c.Reset()
	if c.logger != nil {
		c.logger.Info("controller closed")
	}
}

// OnZoomClose runs when the user closes the zoom view.
func (c *Controller) OnZoomClose() {
	if c.opts.ZoomCloseAction == ZoomCloseReset {
		c.Reset()
		return
	}
	c.Clear()
}

func (c *Controller) startClock() {
	c.sched.Stop()
	c.sched.Start(c.session.TickInterval(c.opts.PlaybackRate), c.Tick)
}

func (c *Controller) closeSession() {
	if c.session == nil {
		return
	}
	if err := c.session.Release(); err != nil {
		c.logError("release failed", err)
	}
	c.session = nil
}

func (c *Controller) geometry() geometry.Geometry {
	if c.lastFrame == nil {
		return geometry.Geometry{}
	}
	return geometry.New(c.widget, c.lastFrame.Bounds().Size())
}

// present re-renders the last frame with the current overlays.
func (c *Controller) present() {
	if c.lastFrame == nil {
		return
	}
	g := c.geometry()
	p := Presentation{Frame: c.lastFrame, Index: c.CurrentFrame(), Geometry: g, BoxState: c.lifecycle.State()}
	var box image.Rectangle
	var ok bool
	switch p.BoxState {
	case tracking.StateTracking:
		box, ok = c.lifecycle.BBox()
	case tracking.StateArmed:
		box, ok = c.lifecycle.ROI()
	}
	if ok {
		if d, mapped := g.ToDisplayRect(box); mapped {
			p.Box = d
		}
	}
	if live, ok := c.selector.Live(); ok {
		p.Selection = live
	}
	c.view.PresentFrame(p)
}

func (c *Controller) renderZoom() {
	box, ok := c.lifecycle.BBox()
	if !ok || c.lastFrame == nil {
		c.hideZoom()
		return
	}
	if img, ok := c.zoom.Render(c.lastFrame, box); ok {
		c.view.PresentZoom(img)
		return
	}
	c.view.HideZoom()
}

func (c *Controller) hideZoom() {
	c.zoom.Hide()
	c.view.HideZoom()
}

func (c *Controller) progress() {
	if c.session == nil {
		return
	}
	c.view.Progress(c.session.Progress(), video.FormatClock(c.session.CurrentFrame(), c.session.TotalFrames(), c.session.FPS()))
}

func (c *Controller) setState(next State) {
	prev := c.state
	if prev == next {
		return
	}
	c.state = next
	if c.logger != nil {
		c.logger.Debug("playback state transition", "from", prev.String(), "to", next.String())
	}
	for _, fn := range c.listeners {
		fn(prev, next)
	}
}

func (c *Controller) logError(msg string, err error, args ...any) {
	if c.logger != nil {
		c.logger.Error(msg, append([]any{"error", err}, args...)...)
	}
}
