package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/soocke/frametrack/domain/playback"
	"github.com/soocke/frametrack/domain/tracking"
	"github.com/soocke/frametrack/domain/tracking/ncc"
)

// Config holds runtime configuration for playback, tracking and the UI.
// Fields may be loaded from a JSON or YAML file, then overridden by the
// environment and command-line flags.
type Config struct {
	Debug    bool   `json:"debug" yaml:"debug"`
	DarkMode bool   `json:"dark_mode" yaml:"dark_mode"`
	Tracker  string `json:"tracker" yaml:"tracker"`

	// Playback behaviour
	PlaybackRate       float64 `json:"playback_rate" yaml:"playback_rate"`
	RearmOnPlay        bool    `json:"rearm_on_play" yaml:"rearm_on_play"`
	PauseOnPointerDown bool    `json:"pause_on_pointer_down" yaml:"pause_on_pointer_down"`
	PreviewOnSeek      bool    `json:"preview_on_seek" yaml:"preview_on_seek"`
	ZoomCloseAction    string  `json:"zoom_close_action" yaml:"zoom_close_action"`

	// Window sizes
	ZoomWidth    int `json:"zoom_width" yaml:"zoom_width"`
	ZoomHeight   int `json:"zoom_height" yaml:"zoom_height"`
	WindowWidth  int `json:"window_width" yaml:"window_width"`
	WindowHeight int `json:"window_height" yaml:"window_height"`

	// Live screen source
	ScreenFPS float64 `json:"screen_fps" yaml:"screen_fps"`

	// NCC tracker parameters
	Threshold    float64 `json:"threshold" yaml:"threshold"`
	Stride       int     `json:"stride" yaml:"stride"`
	Refine       bool    `json:"refine" yaml:"refine"`
	SearchMargin float64 `json:"search_margin" yaml:"search_margin"`
	MinScale     float64 `json:"min_scale" yaml:"min_scale"`
	MaxScale     float64 `json:"max_scale" yaml:"max_scale"`
	ScaleStep    float64 `json:"scale_step" yaml:"scale_step"`

	// Directory of the last opened media, used as the file dialog start.
	LastDir string `json:"last_dir" yaml:"last_dir"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	n := ncc.DefaultOptions()
	return &Config{
		Debug:              false,
		Tracker:            string(tracking.KindCSRT),
		PlaybackRate:       1,
		RearmOnPlay:        false,
		PauseOnPointerDown: true,
		PreviewOnSeek:      true,
		ZoomCloseAction:    playback.ZoomCloseClear.String(),
		ZoomWidth:          640,
		ZoomHeight:         480,
		WindowWidth:        1024,
		WindowHeight:       720,
		ScreenFPS:          30,
		Threshold:          n.Threshold,
		Stride:             n.Stride,
		Refine:             n.Refine,
		SearchMargin:       n.SearchMargin,
		MinScale:           n.MinScale,
		MaxScale:           n.MaxScale,
		ScaleStep:          n.ScaleStep,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	def := DefaultConfig()
	if _, err := tracking.ParseKind(c.Tracker); err != nil {
		c.Tracker = def.Tracker
	} else {
		c.Tracker = strings.ToLower(strings.TrimSpace(c.Tracker))
	}
	if c.PlaybackRate <= 0 || c.PlaybackRate > 16 {
		c.PlaybackRate = def.PlaybackRate
	}
	c.ZoomCloseAction = playback.ParseZoomCloseAction(strings.ToLower(strings.TrimSpace(c.ZoomCloseAction))).String()
	if c.ZoomWidth < 64 || c.ZoomHeight < 64 {
		c.ZoomWidth, c.ZoomHeight = def.ZoomWidth, def.ZoomHeight
	}
	if c.WindowWidth < 320 || c.WindowHeight < 240 {
		c.WindowWidth, c.WindowHeight = def.WindowWidth, def.WindowHeight
	}
	if c.ScreenFPS <= 0 || c.ScreenFPS > 240 {
		c.ScreenFPS = def.ScreenFPS
	}
	if c.Threshold <= 0 || c.Threshold > 1 {
		c.Threshold = def.Threshold
	}
	if c.Stride <= 0 {
		c.Stride = def.Stride
	}
	if c.SearchMargin < 0 {
		c.SearchMargin = def.SearchMargin
	}
	if c.MinScale <= 0 {
		c.MinScale = def.MinScale
	}
	if c.MaxScale <= 0 || c.MaxScale < c.MinScale {
		c.MaxScale = c.MinScale
	}
	if c.ScaleStep <= 0 {
		c.ScaleStep = def.ScaleStep
	}
	return nil
}

// PlaybackOptions derives controller options.
func (c *Config) PlaybackOptions() playback.Options {
	return playback.Options{
		RearmOnPlay:        c.RearmOnPlay,
		PauseOnPointerDown: c.PauseOnPointerDown,
		PreviewOnSeek:      c.PreviewOnSeek,
		PlaybackRate:       c.PlaybackRate,
		ZoomCloseAction:    playback.ParseZoomCloseAction(c.ZoomCloseAction),
		ZoomWidth:          c.ZoomWidth,
		ZoomHeight:         c.ZoomHeight,
	}
}

// NCCOptions derives template tracker options.
func (c *Config) NCCOptions() ncc.Options {
	o := ncc.DefaultOptions()
	o.Threshold = c.Threshold
	o.Stride = c.Stride
	o.Refine = c.Refine
	o.SearchMargin = c.SearchMargin
	o.MinScale = c.MinScale
	o.MaxScale = c.MaxScale
	o.ScaleStep = c.ScaleStep
	return o
}

// TrackerKind returns the configured tracker algorithm.
func (c *Config) TrackerKind() tracking.Kind {
	k, err := tracking.ParseKind(c.Tracker)
	if err != nil {
		return tracking.KindCSRT
	}
	return k
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Load attempts to read configuration from path. YAML is used for .yaml and
// .yml files, JSON otherwise. If the file does not exist it returns
// DefaultConfig(). On decode error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.NewDecoder(bytes.NewReader(data)).Decode(cfg)
	}
	if err != nil {
		return DefaultConfig(), fmt.Errorf("config %s: %w", path, err)
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to path, in YAML or JSON by extension.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	var data []byte
	var err error
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
