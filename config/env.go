package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment override, e.g. FRAMETRACK_TRACKER.
const EnvPrefix = "FRAMETRACK_"

// LoadDotEnv loads KEY=value pairs from path into the process environment
// without overriding variables that are already set. A missing file is not
// an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("dotenv %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from FRAMETRACK_* variables returned by lookup
// (usually os.LookupEnv). Values that fail to parse are reported together and
// leave the field untouched.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		return nil
	}
	var errs []error
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = strings.TrimSpace(v)
		}
	}
	boolean := func(key string, dst *bool) {
		if v, ok := lookup(EnvPrefix + key); ok {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
				return
			}
			*dst = b
		}
	}
	integer := func(key string, dst *int) {
		if v, ok := lookup(EnvPrefix + key); ok {
			i, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
				return
			}
			*dst = i
		}
	}
	float := func(key string, dst *float64) {
		if v, ok := lookup(EnvPrefix + key); ok {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
				return
			}
			*dst = f
		}
	}
	boolean("DEBUG", &c.Debug)
	boolean("DARK_MODE", &c.DarkMode)
	str("TRACKER", &c.Tracker)
	float("PLAYBACK_RATE", &c.PlaybackRate)
	boolean("REARM_ON_PLAY", &c.RearmOnPlay)
	boolean("PAUSE_ON_POINTER_DOWN", &c.PauseOnPointerDown)
	boolean("PREVIEW_ON_SEEK", &c.PreviewOnSeek)
	str("ZOOM_CLOSE_ACTION", &c.ZoomCloseAction)
	integer("ZOOM_WIDTH", &c.ZoomWidth)
	integer("ZOOM_HEIGHT", &c.ZoomHeight)
	integer("WINDOW_WIDTH", &c.WindowWidth)
	integer("WINDOW_HEIGHT", &c.WindowHeight)
	float("SCREEN_FPS", &c.ScreenFPS)
	float("THRESHOLD", &c.Threshold)
	integer("STRIDE", &c.Stride)
	boolean("REFINE", &c.Refine)
	float("SEARCH_MARGIN", &c.SearchMargin)
	float("MIN_SCALE", &c.MinScale)
	float("MAX_SCALE", &c.MaxScale)
	float("SCALE_STEP", &c.ScaleStep)
	str("LAST_DIR", &c.LastDir)
	_ = c.Validate()
	return errors.Join(errs...)
}
