package presenter

import (
	"fmt"
	"log/slog"

	"github.com/soocke/frametrack/domain/playback"
	"github.com/soocke/frametrack/ui/model"
)

// PlaybackControl narrows what the presenter needs from the controller.
type PlaybackControl interface {
	Open(path string) error
	Play()
	Pause()
	Reset()
	Clear()
	Seek(fraction float64)
	PlaybackState() playback.State
}

// ControlsView updates the widgets affected by transport commands.
type ControlsView interface {
	SetPlaying(playing bool)
	ConfigEditable(bool)
	SetStatus(text string)
	SetTitle(name string)
}

// ControlsPresenter owns the transport buttons: it forwards commands to the
// controller, keeps the media model current and mirrors playback state into
// the view.
type ControlsPresenter struct {
	ctl    PlaybackControl
	media  *model.MediaModel
	view   ControlsView
	logger *slog.Logger

	// OnOpened runs after a successful open, e.g. to persist the directory.
	OnOpened func(path string)
}

func NewControlsPresenter(ctl PlaybackControl, media *model.MediaModel, view ControlsView, logger *slog.Logger) *ControlsPresenter {
	return &ControlsPresenter{ctl: ctl, media: media, view: view, logger: logger}
}

// Open loads path. Failures are reported on the status line and returned.
func (c *ControlsPresenter) Open(path string) error {
	if c == nil || c.ctl == nil || c.view == nil || path == "" {
		return nil
	}
	if err := c.ctl.Open(path); err != nil {
		c.media.SetPath("")
		c.view.SetTitle("")
		c.view.SetStatus(fmt.Sprintf("Cannot open %s: %v", path, err))
		return err
	}
	c.media.SetPath(path)
	c.view.SetTitle(c.media.Name())
	c.view.SetStatus("Opened " + c.media.Name())
	if c.OnOpened != nil {
		c.OnOpened(path)
	}
	return nil
}

// TogglePlay pauses while playing and plays otherwise.
func (c *ControlsPresenter) TogglePlay() {
	if c == nil || c.ctl == nil {
		return
	}
	if c.ctl.PlaybackState() == playback.StatePlaying {
		c.ctl.Pause()
		return
	}
	c.ctl.Play()
}

// Reset stops playback and forgets the open media.
func (c *ControlsPresenter) Reset() {
	if c == nil || c.ctl == nil || c.view == nil {
		return
	}
	c.ctl.Reset()
	c.media.SetPath("")
	c.view.SetTitle("")
	c.view.SetStatus("Stopped")
}

// Clear drops the tracking target.
func (c *ControlsPresenter) Clear() {
	if c == nil || c.ctl == nil || c.view == nil {
		return
	}
	c.ctl.Clear()
	c.view.SetStatus("Target cleared")
}

func (c *ControlsPresenter) Seek(fraction float64) {
	if c != nil && c.ctl != nil {
		c.ctl.Seek(fraction)
	}
}

// OnPlayback mirrors a playback transition; wire it with AddPlaybackListener.
// The config panel is only editable while not playing.
func (c *ControlsPresenter) OnPlayback(_, next playback.State) {
	if c == nil || c.view == nil {
		return
	}
	c.view.SetPlaying(next == playback.StatePlaying)
	c.view.ConfigEditable(next != playback.StatePlaying)
	if c.logger != nil {
		c.logger.Debug("controls state", "playback", next.String())
	}
}
