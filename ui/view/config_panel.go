package view

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/soocke/frametrack/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ConfigPanel is the settings form. Apply parses the fields into a copy of
// the config, validates it, persists it and hands it to onApply.
type ConfigPanel struct {
	cfg      *config.Config
	cfgPath  string
	logger   *slog.Logger
	onApply  func(*config.Config)
	applyBtn *ButtonWidget
	widgets  map[string]*TextWidget // keyed by field id
}

func NewConfigPanel(cfg *config.Config, cfgPath string, logger *slog.Logger, onApply func(*config.Config)) *ConfigPanel {
	return &ConfigPanel{cfg: cfg, cfgPath: cfgPath, logger: logger, onApply: onApply, widgets: make(map[string]*TextWidget)}
}

// Build constructs the form in parent starting at startRow and returns the
// next free row.
func (v *ConfigPanel) Build(parent *FrameWidget, startRow int) (row int) {
	row = startRow
	makeRow := func(id, label string) {
		lbl := Label(Txt(label), Anchor("w"))
		Grid(lbl, In(parent), Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(12))
		Grid(w, In(parent), Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		v.widgets[id] = w
		row++
	}
	makeRow("tracker", "Tracker (csrt/kcf/mil/ncc)")
	makeRow("playbackRate", "Playback Rate")
	makeRow("rearmOnPlay", "Re-arm On Play")
	makeRow("pauseOnPointerDown", "Pause On Press")
	makeRow("previewOnSeek", "Preview On Seek")
	makeRow("zoomCloseAction", "Zoom Close (clear/reset)")
	makeRow("screenFPS", "Screen FPS")
	makeRow("threshold", "NCC Threshold")
	makeRow("stride", "NCC Stride")
	makeRow("refine", "NCC Refine")
	makeRow("searchMargin", "NCC Search Margin")
	makeRow("minScale", "NCC Min Scale")
	makeRow("maxScale", "NCC Max Scale")
	makeRow("scaleStep", "NCC Scale Step")
	v.Refresh()
	v.applyBtn = Button(Txt("Apply Changes"), Command(func() { v.ApplyChanges() }))
	Grid(v.applyBtn, In(parent), Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	return row
}

// Refresh writes the current config values into the fields.
func (v *ConfigPanel) Refresh() {
	c := v.cfg
	if c == nil {
		return
	}
	set := func(id, value string) {
		if w := v.widgets[id]; w != nil {
			w.Delete("1.0", END)
			w.Insert("1.0", value)
		}
	}
	set("tracker", c.Tracker)
	set("playbackRate", fmt.Sprintf("%.2f", c.PlaybackRate))
	set("rearmOnPlay", fmt.Sprintf("%t", c.RearmOnPlay))
	set("pauseOnPointerDown", fmt.Sprintf("%t", c.PauseOnPointerDown))
	set("previewOnSeek", fmt.Sprintf("%t", c.PreviewOnSeek))
	set("zoomCloseAction", c.ZoomCloseAction)
	set("screenFPS", fmt.Sprintf("%.0f", c.ScreenFPS))
	set("threshold", fmt.Sprintf("%.3f", c.Threshold))
	set("stride", fmt.Sprintf("%d", c.Stride))
	set("refine", fmt.Sprintf("%t", c.Refine))
	set("searchMargin", fmt.Sprintf("%.2f", c.SearchMargin))
	set("minScale", fmt.Sprintf("%.2f", c.MinScale))
	set("maxScale", fmt.Sprintf("%.2f", c.MaxScale))
	set("scaleStep", fmt.Sprintf("%.3f", c.ScaleStep))
}

func (v *ConfigPanel) SetEditable(enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	for _, w := range v.widgets {
		if w != nil {
			w.Configure(State(state))
		}
	}
	if v.applyBtn != nil {
		v.applyBtn.Configure(State(state))
	}
}

func (v *ConfigPanel) text(id string) (string, bool) {
	w := v.widgets[id]
	if w == nil {
		return "", false
	}
	return strings.TrimSpace(strings.Join(w.Get("1.0", END), "")), true
}

func (v *ConfigPanel) ApplyChanges() {
	if v.cfg == nil {
		return
	}
	cfg := *v.cfg // copy
	assignFloat := func(id string, dst *float64) {
		if s, ok := v.text(id); ok {
			if f, ok := parseFloatField(s); ok {
				*dst = f
			}
		}
	}
	assignInt := func(id string, dst *int) {
		if s, ok := v.text(id); ok {
			if i, ok := parseIntField(s); ok {
				*dst = i
			}
		}
	}
	assignBool := func(id string, dst *bool) {
		if s, ok := v.text(id); ok {
			if b, ok := parseBoolLoose(s); ok {
				*dst = b
			}
		}
	}
	assignString := func(id string, dst *string) {
		if s, ok := v.text(id); ok && s != "" {
			*dst = s
		}
	}
	assignString("tracker", &cfg.Tracker)
	assignFloat("playbackRate", &cfg.PlaybackRate)
	assignBool("rearmOnPlay", &cfg.RearmOnPlay)
	assignBool("pauseOnPointerDown", &cfg.PauseOnPointerDown)
	assignBool("previewOnSeek", &cfg.PreviewOnSeek)
	assignString("zoomCloseAction", &cfg.ZoomCloseAction)
	assignFloat("screenFPS", &cfg.ScreenFPS)
	assignFloat("threshold", &cfg.Threshold)
	assignInt("stride", &cfg.Stride)
	assignBool("refine", &cfg.Refine)
	assignFloat("searchMargin", &cfg.SearchMargin)
	assignFloat("minScale", &cfg.MinScale)
	assignFloat("maxScale", &cfg.MaxScale)
	assignFloat("scaleStep", &cfg.ScaleStep)
	if err := cfg.Validate(); err != nil {
		if v.logger != nil {
			v.logger.Warn("invalid settings", "error", err)
		}
		return
	}
	*v.cfg = cfg
	// show the clamped values
	v.Refresh()
	if v.cfgPath != "" {
		if err := v.cfg.Save(v.cfgPath); err != nil {
			if v.logger != nil {
				v.logger.Error("config save failed", "error", err)
			}
		} else if v.logger != nil {
			v.logger.Info("config saved", "path", v.cfgPath)
		}
	}
	if v.onApply != nil {
		v.onApply(v.cfg)
	}
}

func parseFloatField(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
func parseIntField(s string) (int, bool) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return i, true
}
func parseBoolLoose(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "on", "t":
		return true, true
	case "false", "0", "no", "n", "off", "f":
		return false, true
	default:
		return false, false
	}
}
