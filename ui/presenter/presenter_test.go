package presenter

import (
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/soocke/frametrack/domain/geometry"
	"github.com/soocke/frametrack/domain/playback"
	"github.com/soocke/frametrack/domain/tracking"
	"github.com/soocke/frametrack/ui/model"
)

type mockFrameView struct {
	last   image.Image
	shown  int
	resets int
}

func (v *mockFrameView) ShowFrame(img image.Image) { v.last = img; v.shown++ }
func (v *mockFrameView) ResetFrame()               { v.resets++ }

type mockZoomView struct {
	visible bool
	shows   int
}

func (v *mockZoomView) ShowZoom(image.Image) { v.visible = true; v.shows++ }
func (v *mockZoomView) HideZoom()            { v.visible = false }

type mockStatus struct {
	status   string
	title    string
	playing  bool
	editable bool
	fraction float64
	clock    string
	label    string
}

func (v *mockStatus) SetStatus(s string)                  { v.status = s }
func (v *mockStatus) SetTitle(s string)                   { v.title = s }
func (v *mockStatus) SetPlaying(b bool)                   { v.playing = b }
func (v *mockStatus) ConfigEditable(b bool)               { v.editable = b }
func (v *mockStatus) SetProgress(f float64, clock string) { v.fraction, v.clock = f, clock }
func (v *mockStatus) SetStateLabel(s string)              { v.label = s }

func grayFrame(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = 0x80, 0x80, 0x80, 0xFF
	}
	return img
}

func TestPlaybackPresenter_DrawsOverlays(t *testing.T) {
	fv, zv, sv := &mockFrameView{}, &mockZoomView{}, &mockStatus{}
	p := NewPlaybackPresenter(fv, zv, sv, sv)
	frame := grayFrame(100, 50)
	p.PresentFrame(playback.Presentation{
		Frame:     frame,
		Geometry:  geometry.New(image.Pt(100, 70), frame.Bounds().Size()),
		Box:       image.Rect(20, 20, 40, 40),
		BoxState:  tracking.StateTracking,
		Selection: image.Rect(60, 20, 90, 50),
	})
	if fv.shown != 1 {
		t.Fatalf("expected one frame, got %d", fv.shown)
	}
	out := fv.last.(*image.RGBA)
	if out.Bounds() != image.Rect(0, 0, 100, 70) {
		t.Fatalf("canvas should match the widget, got %v", out.Bounds())
	}
	if c := out.RGBAAt(50, 5); c != ColorBackdrop {
		t.Fatalf("letterbox bar expected, got %v", c)
	}
	if c := out.RGBAAt(21, 30); c != ColorTracking {
		t.Fatalf("tracking box stroke expected, got %v", c)
	}
	if c := out.RGBAAt(30, 30); c != (color.RGBA{0x80, 0x80, 0x80, 0xFF}) {
		t.Fatalf("box interior untouched, got %v", c)
	}
	if c := out.RGBAAt(60, 21); c != ColorSelection {
		t.Fatalf("selection outline expected, got %v", c)
	}
	if frame.RGBAAt(20, 20) != (color.RGBA{0x80, 0x80, 0x80, 0xFF}) {
		t.Fatalf("source frame must not be drawn on")
	}
}

func TestPlaybackPresenter_Forwards(t *testing.T) {
	fv, zv, sv := &mockFrameView{}, &mockZoomView{}, &mockStatus{}
	p := NewPlaybackPresenter(fv, zv, sv, sv)
	p.PresentFrame(playback.Presentation{Frame: grayFrame(10, 10)})
	if fv.shown != 0 {
		t.Fatalf("frame without widget size should not render")
	}
	p.PresentZoom(grayFrame(4, 4))
	if !zv.visible {
		t.Fatalf("zoom should be shown")
	}
	p.HideZoom()
	p.ClearFrame()
	p.Progress(0.5, "00:15 / 00:30")
	p.EndOfStream()
	if zv.visible || fv.resets != 1 || sv.fraction != 0.5 || sv.clock != "00:15 / 00:30" || sv.status != "End of media" {
		t.Fatalf("unexpected forwarding: zoom=%v resets=%d status=%+v", zv.visible, fv.resets, sv)
	}
}

func TestStatePresenter_ReflectsLatest(t *testing.T) {
	sv := &mockStatus{}
	p := NewStatePresenter(sv)
	p.Tick(time.Now())
	if sv.label != "Playback: stopped | Tracker: idle" {
		t.Fatalf("unexpected initial label %q", sv.label)
	}
	p.OnPlayback(playback.StateStopped, playback.StatePlaying)
	p.OnTracker(tracking.StateIdle, tracking.StateArmed)
	p.OnTracker(tracking.StateArmed, tracking.StateTracking)
	if sv.label != "Playback: stopped | Tracker: idle" {
		t.Fatalf("label must only change on Tick")
	}
	p.Tick(time.Now())
	if sv.label != "Playback: playing | Tracker: tracking" {
		t.Fatalf("unexpected label %q", sv.label)
	}
}

type statsView struct {
	streak, total time.Duration
	streaks       int
}

func (v *statsView) SetTracking(s, t time.Duration, n int) { v.streak, v.total, v.streaks = s, t, n }

func TestClockPresenter_CountsTrackingTime(t *testing.T) {
	state := tracking.StateTracking
	view := &statsView{}
	p := NewClockPresenter(model.NewTrackingClock(), tracking.StateFunc(func() tracking.State { return state }), view)
	base := time.Unix(100, 0)
	p.Tick(base)
	p.Tick(base.Add(2 * time.Second))
	state = tracking.StateLost
	p.Tick(base.Add(3 * time.Second))
	if view.total != 3*time.Second || view.streaks != 1 {
		t.Fatalf("expected 3s over 1 streak, got %v over %d", view.total, view.streaks)
	}
}

type mockControl struct {
	state          playback.State
	openErr        error
	opened         []string
	plays, pauses  int
	resets, clears int
	seeks          []float64
}

func (m *mockControl) Open(path string) error {
	m.opened = append(m.opened, path)
	if m.openErr != nil {
		return m.openErr
	}
	m.state = playback.StatePlaying
	return nil
}
func (m *mockControl) Play()                         { m.plays++; m.state = playback.StatePlaying }
func (m *mockControl) Pause()                        { m.pauses++; m.state = playback.StatePaused }
func (m *mockControl) Reset()                        { m.resets++; m.state = playback.StateStopped }
func (m *mockControl) Clear()                        { m.clears++ }
func (m *mockControl) Seek(f float64)                { m.seeks = append(m.seeks, f) }
func (m *mockControl) PlaybackState() playback.State { return m.state }

func TestControlsPresenter_OpenAndToggle(t *testing.T) {
	ctl, view := &mockControl{}, &mockStatus{}
	media := model.NewMediaModel("")
	p := NewControlsPresenter(ctl, media, view, nil)
	var persisted string
	p.OnOpened = func(path string) { persisted = path }

	if err := p.Open("/clips/walk.mp4"); err != nil {
		t.Fatalf("open: %v", err)
	}
	if view.title != "walk.mp4" || media.Dir() != "/clips" || persisted != "/clips/walk.mp4" {
		t.Fatalf("unexpected open result title=%q dir=%q persisted=%q", view.title, media.Dir(), persisted)
	}
	p.TogglePlay()
	p.TogglePlay()
	if ctl.pauses != 1 || ctl.plays != 1 {
		t.Fatalf("toggle should pause then play, got pauses=%d plays=%d", ctl.pauses, ctl.plays)
	}
	p.Seek(0.25)
	p.Clear()
	p.Reset()
	if len(ctl.seeks) != 1 || ctl.clears != 1 || ctl.resets != 1 || media.Path() != "" || view.status != "Stopped" {
		t.Fatalf("unexpected command forwarding: %+v", ctl)
	}
}

func TestControlsPresenter_OpenFailure(t *testing.T) {
	ctl := &mockControl{openErr: errors.New("unsupported media")}
	view := &mockStatus{}
	p := NewControlsPresenter(ctl, model.NewMediaModel(""), view, nil)
	if err := p.Open("broken.bin"); err == nil {
		t.Fatalf("expected error")
	}
	if view.status != "Cannot open broken.bin: unsupported media" {
		t.Fatalf("unexpected status %q", view.status)
	}
	if err := p.Open(""); err != nil || len(ctl.opened) != 1 {
		t.Fatalf("empty path is ignored")
	}
}

func TestControlsPresenter_MirrorsPlayback(t *testing.T) {
	view := &mockStatus{editable: true}
	p := NewControlsPresenter(&mockControl{}, model.NewMediaModel(""), view, nil)
	p.OnPlayback(playback.StateStopped, playback.StatePlaying)
	if !view.playing || view.editable {
		t.Fatalf("playing should disable config editing")
	}
	p.OnPlayback(playback.StatePlaying, playback.StatePaused)
	if view.playing || !view.editable {
		t.Fatalf("paused should re-enable config editing")
	}
}

func TestLoop_TicksAndReschedules(t *testing.T) {
	sv := &mockStatus{}
	scheduled := 0
	l := NewLoop(NewStatePresenter(sv), nil, func() { scheduled++ })
	l.now = func() time.Time { return time.Unix(0, 0) }
	l.Tick()
	var nilLoop *Loop
	nilLoop.Tick()
	if scheduled != 1 || sv.label == "" {
		t.Fatalf("loop should tick presenters and reschedule")
	}
}
