package debug

// Memory/RSS periodic logger enabled when config.Debug is true.
// Logs process RSS next to Go heap stats so decoder (cgo) growth can be told
// apart from Go heap growth.

import (
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// RSSFunc reports the resident set size of the current process.
type RSSFunc func() (uint64, error)

// ProcessRSS queries the OS for the current process RSS.
func ProcessRSS() (uint64, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return 0, err
	}
	mi, err := p.MemoryInfo()
	if err != nil {
		return 0, err
	}
	return mi.RSS, nil
}

// StartMemLogger launches a goroutine that logs memory stats every interval
// until stop is closed. RSS failures are logged once and then suppressed.
func StartMemLogger(interval time.Duration, logger *slog.Logger, stop <-chan struct{}) {
	startMemLogger(interval, logger, ProcessRSS, stop)
}

func startMemLogger(interval time.Duration, logger *slog.Logger, rssFn RSSFunc, stop <-chan struct{}) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	if logger == nil {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		var rssErrLogged bool
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
			}
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			rss, err := rssFn()
			if err != nil && !rssErrLogged {
				logger.Warn("memlog: rss query failed", slog.String("err", err.Error()))
				rssErrLogged = true
			}
			logger.Info("memstats",
				slog.Int("goroutines", runtime.NumGoroutine()),
				slog.Uint64("heap_alloc", ms.HeapAlloc),
				slog.Uint64("heap_inuse", ms.HeapInuse),
				slog.Uint64("heap_idle", ms.HeapIdle),
				slog.Uint64("heap_sys", ms.HeapSys),
				slog.Uint64("next_gc", ms.NextGC),
				slog.Uint64("rss", rss),
				slog.Uint64("num_gc", uint64(ms.NumGC)),
			)
		}
	}()
}
