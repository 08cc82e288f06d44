package presenter

import (
	"image"
	"image/color"

	"github.com/soocke/frametrack/domain/playback"
	"github.com/soocke/frametrack/domain/tracking"
	"github.com/soocke/frametrack/ui/images"
)

// FrameView shows the composed primary frame.
type FrameView interface {
	ShowFrame(img image.Image)
	ResetFrame()
}

// ZoomView shows or hides the magnified target.
type ZoomView interface {
	ShowZoom(img image.Image)
	HideZoom()
}

// ProgressView shows playback position.
type ProgressView interface {
	SetProgress(fraction float64, clock string)
}

// StatusView shows one line of user feedback.
type StatusView interface{ SetStatus(text string) }

// Overlay colours.
var (
	ColorBackdrop  = color.RGBA{0x00, 0x00, 0x00, 0xFF}
	ColorArmed     = color.RGBA{0xFA, 0xCC, 0x15, 0xFF}
	ColorTracking  = color.RGBA{0x22, 0xC5, 0x5E, 0xFF}
	ColorSelection = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
)

// PlaybackPresenter turns controller output into widget updates: it
// letterboxes each frame to the widget, draws the box and the live selection
// on top and forwards zoom, progress and end-of-media notices.
type PlaybackPresenter struct {
	frame    FrameView
	zoom     ZoomView
	progress ProgressView
	status   StatusView
}

func NewPlaybackPresenter(frame FrameView, zoom ZoomView, progress ProgressView, status StatusView) *PlaybackPresenter {
	return &PlaybackPresenter{frame: frame, zoom: zoom, progress: progress, status: status}
}

func (p *PlaybackPresenter) PresentFrame(pr playback.Presentation) {
	if p == nil || p.frame == nil || pr.Frame == nil {
		return
	}
	canvas := images.Letterbox(pr.Frame, pr.Geometry, ColorBackdrop)
	if canvas == nil {
		return
	}
	switch {
	case pr.Box.Empty():
	case pr.BoxState == tracking.StateTracking:
		images.DrawRect(canvas, pr.Box, ColorTracking, 2)
	case pr.BoxState == tracking.StateArmed:
		images.DrawRect(canvas, pr.Box, ColorArmed, 1)
	}
	if !pr.Selection.Empty() {
		images.DrawDashedRect(canvas, pr.Selection, ColorSelection, 4)
	}
	p.frame.ShowFrame(canvas)
}

func (p *PlaybackPresenter) ClearFrame() {
	if p != nil && p.frame != nil {
		p.frame.ResetFrame()
	}
}

func (p *PlaybackPresenter) PresentZoom(img *image.RGBA) {
	if p != nil && p.zoom != nil && img != nil {
		p.zoom.ShowZoom(img)
	}
}

func (p *PlaybackPresenter) HideZoom() {
	if p != nil && p.zoom != nil {
		p.zoom.HideZoom()
	}
}

func (p *PlaybackPresenter) Progress(fraction float64, clock string) {
	if p != nil && p.progress != nil {
		p.progress.SetProgress(fraction, clock)
	}
}

func (p *PlaybackPresenter) EndOfStream() {
	if p != nil && p.status != nil {
		p.status.SetStatus("End of media")
	}
}

var _ playback.View = (*PlaybackPresenter)(nil)
