//go:build !windows

package app

import "log/slog"

func enableDPIAwareness(*slog.Logger) {}
