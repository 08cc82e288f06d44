//go:build windows

package app

import (
	"log/slog"

	"golang.org/x/sys/windows"
)

var procSetProcessDPIAware = windows.NewLazySystemDLL("user32.dll").NewProc("SetProcessDPIAware")

// enableDPIAwareness stops Windows from bitmap-scaling the window, which
// would blur video frames and skew pointer coordinates on high-DPI displays.
func enableDPIAwareness(logger *slog.Logger) {
	if err := procSetProcessDPIAware.Find(); err != nil {
		if logger != nil {
			logger.Warn("dpi awareness unavailable", "error", err)
		}
		return
	}
	if r, _, err := procSetProcessDPIAware.Call(); r == 0 && logger != nil {
		logger.Warn("SetProcessDPIAware failed", "error", err)
	}
}
