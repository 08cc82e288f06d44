package view

import (
	"image"
	"log/slog"
	"time"

	"github.com/soocke/frametrack/config"
	"github.com/soocke/frametrack/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Handlers are the user actions RootView forwards. Nil entries are no-ops.
type Handlers struct {
	Open       func()
	OpenScreen func()
	TogglePlay func()
	Reset      func()
	Clear      func()
	Exit       func()
	Seek       func(fraction float64)
	Pointer    PointerHandlers
	Resize     func(w, h int)
	ZoomClose  func()
	Configured func(*config.Config)
}

// RootView composes the main window: video surface, transport and status
// on the left, buttons and settings on the right. It implements every view
// contract the presenters need by delegating to its subviews.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger
	splash  image.Image

	// Subviews
	Surface  *VideoSurface
	Progress *ProgressBar
	Zoom     *ZoomWindow
	Stats    *TrackingStats
	Config   *ConfigPanel

	// Widgets
	TitleLabel  *TLabelWidget
	StateLabel  *TLabelWidget
	StatusLabel *TLabelWidget
	playBtn     *TButtonWidget
	playing     bool
}

func NewRootView(cfg *config.Config, cfgPath string, splash image.Image, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, splash: splash, logger: logger}
}

// Build constructs the layout and wires h.
func (rv *RootView) Build(h Handlers) {
	if rv == nil {
		return
	}
	pal := theme.Current()
	GridRowConfigure(App, 0, Weight(1))
	GridColumnConfigure(App, 0, Weight(1))
	GridColumnConfigure(App, 1, Weight(0))

	main := Frame()
	Grid(main, Row(0), Column(0), Sticky("nsew"), Padx("0.4m"), Pady("0.4m"))
	GridRowConfigure(main.Window, 1, Weight(1))
	GridColumnConfigure(main.Window, 0, Weight(1))
	side := Frame()
	Grid(side, Row(0), Column(1), Sticky("ns"), Padx("0.4m"), Pady("0.4m"))

	// Row 0: title and state
	header := Frame()
	Grid(header, In(main), Row(0), Column(0), Sticky("we"))
	GridColumnConfigure(header.Window, 0, Weight(1))
	rv.TitleLabel = TLabel(Txt("No media"), Style(theme.StyleTitleLabel), Anchor("w"))
	Grid(rv.TitleLabel, In(header), Row(0), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	rv.StateLabel = TLabel(Txt("Playback: stopped | Tracker: idle"), Style(theme.StyleStateLabel))
	Grid(rv.StateLabel, In(header), Row(0), Column(1), Sticky("e"), Padx("0.4m"), Pady("0.3m"))

	// Row 1: video; row 2: progress
	w, hgt := 640, 360
	if rv.cfg != nil {
		w, hgt = rv.cfg.WindowWidth*3/4, rv.cfg.WindowHeight*3/4
	}
	rv.Surface = NewVideoSurface(main, 1, 0, w, hgt, pal.VideoBg, rv.splash, h.Pointer, h.Resize)
	bar := Frame()
	Grid(bar, In(main), Row(2), Column(0), Sticky("we"))
	GridColumnConfigure(bar.Window, 0, Weight(1))
	rv.Progress = NewProgressBar(bar, 0, 2, h.Seek)

	// Row 3: status and tracking time
	footer := Frame()
	Grid(footer, In(main), Row(3), Column(0), Sticky("we"))
	GridColumnConfigure(footer.Window, 0, Weight(1))
	rv.StatusLabel = TLabel(Txt("Open a video to start"), Style(theme.StyleStatusLabel), Anchor("w"))
	Grid(rv.StatusLabel, In(footer), Row(0), Column(0), Sticky("we"), Padx("0.4m"))
	rv.Stats = NewTrackingStats(footer, 0, 1)

	// Side: buttons then settings
	row := 0
	button := func(label, style string, fn func()) *TButtonWidget {
		if fn == nil {
			fn = func() {}
		}
		b := TButton(Txt(label), Style(style), Command(fn))
		Grid(b, In(side), Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
		row++
		return b
	}
	button("Open…", "TButton", h.Open)
	button("Screen", "TButton", h.OpenScreen)
	rv.playBtn = button("Play", theme.StylePrimaryButton, h.TogglePlay)
	button("Reset", "TButton", h.Reset)
	button("Clear Target", "TButton", h.Clear)
	button("Exit", theme.StyleDangerButton, h.Exit)

	rv.Config = NewConfigPanel(rv.cfg, rv.cfgPath, rv.logger, h.Configured)
	rv.Config.Build(side, row)

	zw, zh := 640, 480
	if rv.cfg != nil {
		zw, zh = rv.cfg.ZoomWidth, rv.cfg.ZoomHeight
	}
	rv.Zoom = NewZoomWindow("Zoom", zw, zh, h.ZoomClose, rv.logger)
}

// AskOpenPath shows the file dialog starting in dir. It returns "" when
// the dialog is cancelled.
func (rv *RootView) AskOpenPath(dir string) string {
	opts := []Opt{Title("Open video")}
	if dir != "" {
		opts = append(opts, Initialdir(dir))
	}
	files := GetOpenFile(opts...)
	if len(files) == 0 {
		return ""
	}
	return files[0]
}

// --- presenter view contracts ---

func (rv *RootView) ShowFrame(img image.Image) {
	if rv != nil && rv.Surface != nil {
		rv.Surface.ShowFrame(img)
	}
}

func (rv *RootView) ResetFrame() {
	if rv != nil && rv.Surface != nil {
		rv.Surface.ResetFrame()
	}
}

func (rv *RootView) ShowZoom(img image.Image) {
	if rv != nil && rv.Zoom != nil {
		rv.Zoom.ShowZoom(img)
	}
}

func (rv *RootView) HideZoom() {
	if rv != nil && rv.Zoom != nil {
		rv.Zoom.HideZoom()
	}
}

func (rv *RootView) SetProgress(fraction float64, clock string) {
	if rv != nil && rv.Progress != nil {
		rv.Progress.SetProgress(fraction, clock)
	}
}

func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.StatusLabel != nil {
		rv.StatusLabel.Configure(Txt(text))
	}
}

// SetTitle shows the open media name; empty means none.
func (rv *RootView) SetTitle(name string) {
	if rv == nil || rv.TitleLabel == nil {
		return
	}
	if name == "" {
		name = "No media"
	}
	rv.TitleLabel.Configure(Txt(name))
}

// SetPlaying flips the transport button label.
func (rv *RootView) SetPlaying(playing bool) {
	if rv == nil || rv.playBtn == nil || rv.playing == playing {
		return
	}
	rv.playing = playing
	if playing {
		rv.playBtn.Configure(Txt("Pause"))
	} else {
		rv.playBtn.Configure(Txt("Play"))
	}
}

func (rv *RootView) ConfigEditable(enabled bool) {
	if rv != nil && rv.Config != nil {
		rv.Config.SetEditable(enabled)
	}
}

func (rv *RootView) SetStateLabel(text string) {
	if rv != nil && rv.StateLabel != nil {
		rv.StateLabel.Configure(Txt(text))
	}
}

func (rv *RootView) SetTracking(streak, total time.Duration, streaks int) {
	if rv != nil && rv.Stats != nil {
		rv.Stats.SetTracking(streak, total, streaks)
	}
}
