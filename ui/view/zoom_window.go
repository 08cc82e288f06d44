package view

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/soocke/frametrack/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders
	. "modernc.org/tk9.0"
)

// ZoomWindow is the secondary top-level window showing the tracked region.
// It is created on the first ShowZoom and destroyed on HideZoom.
type ZoomWindow struct {
	logger  *slog.Logger
	title   string
	width   int
	height  int
	onClose func()

	win   *ToplevelWidget
	label *LabelWidget
	photo *Img
}

// NewZoomWindow prepares a zoom window of width x height. onClose runs when
// the user closes the window through the window manager.
func NewZoomWindow(title string, width, height int, onClose func(), logger *slog.Logger) *ZoomWindow {
	return &ZoomWindow{logger: logger, title: title, width: width, height: height, onClose: onClose}
}

// Visible reports whether the window currently exists.
func (z *ZoomWindow) Visible() bool { return z != nil && z.win != nil }

func (z *ZoomWindow) ShowZoom(img image.Image) {
	if z == nil || img == nil {
		return
	}
	if z.win == nil {
		z.open()
	}
	png := images.EncodePNG(img)
	if len(png) == 0 {
		return
	}
	if z.photo != nil {
		z.photo.Delete()
	}
	z.photo = NewPhoto(Data(png))
	z.label.Configure(Image(z.photo))
}

func (z *ZoomWindow) HideZoom() {
	if z == nil || z.win == nil {
		return
	}
	win := z.win
	z.win, z.label = nil, nil
	if z.photo != nil {
		z.photo.Delete()
		z.photo = nil
	}
	Destroy(win)
}

func (z *ZoomWindow) open() {
	win := App.Toplevel(Borderwidth(0), Background("#000000"))
	win.WmTitle(z.title)
	WmGeometry(win.Window, fmt.Sprintf("%dx%d", z.width, z.height))
	GridRowConfigure(win.Window, 0, Weight(1))
	GridColumnConfigure(win.Window, 0, Weight(1))
	z.label = win.Label(Background("#000000"), Borderwidth(0), Anchor("center"))
	Grid(z.label, Row(0), Column(0), Sticky("nsew"))
	WmProtocol(win.Window, "WM_DELETE_WINDOW", z.closeRequested)
	Bind(win, "<Escape>", Command(z.closeRequested))
	z.win = win
	if z.logger != nil {
		z.logger.Debug("zoom window opened", "width", z.width, "height", z.height)
	}
}

// closeRequested lets the owner decide what closing means; the owner is
// expected to call HideZoom. Without an owner the window just goes away.
func (z *ZoomWindow) closeRequested() {
	if z.onClose != nil {
		z.onClose()
	}
	z.HideZoom()
}
