package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/soocke/frametrack/app"
	"github.com/soocke/frametrack/app/media"
	"github.com/soocke/frametrack/config"
	"github.com/soocke/frametrack/debug"
)

const defaultConfigPath = "frametrack.yaml"

// options are the command-line settings that sit on top of the config file.
type options struct {
	configPath string
	envPath    string
	debug      bool
	tracker    string
	args       []string
}

func parseFlags(fs *flag.FlagSet, argv []string) (options, error) {
	var o options
	fs.StringVar(&o.configPath, "config", defaultConfigPath, "config file (.yaml/.yml or .json)")
	fs.StringVar(&o.envPath, "env", ".env", "dotenv file with FRAMETRACK_* overrides")
	fs.BoolVar(&o.debug, "debug", false, "debug logging and runtime stats")
	fs.StringVar(&o.tracker, "tracker", "", "tracker algorithm: csrt, kcf, mil or ncc")
	if err := fs.Parse(argv); err != nil {
		return o, err
	}
	o.args = fs.Args()
	return o, nil
}

func main() {
	fs := flag.NewFlagSet("frametrack", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: frametrack [flags] [media | screen:[x,y,w,h]]\n       frametrack [flags] probe FILE...\n")
		fs.PrintDefaults()
	}
	o, _ := parseFlags(fs, os.Args[1:])

	level := slog.LevelInfo
	if o.debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	cfg, warnings := config.LoadLayered(o.configPath, o.envPath, os.LookupEnv, config.Overrides{Debug: o.debug, Tracker: o.tracker})
	for _, w := range warnings {
		logger.Warn("config layer ignored", "error", w)
	}
	if cfg.Debug && !o.debug {
		logger = NewLogger(slog.LevelDebug)
	}

	if len(o.args) > 0 && o.args[0] == "probe" {
		os.Exit(runProbe(cfg, o.args[1:], logger))
	}

	stop := make(chan struct{})
	if cfg.Debug {
		debug.StartGoroutineLogger(5*time.Second, logger, stop)
		debug.StartMemLogger(5*time.Second, logger, stop)
	}

	initial := ""
	if len(o.args) > 0 {
		initial = o.args[0]
	}
	application := app.NewApp("Frametrack", cfg, o.configPath, logger)
	application.Start(initial)
	close(stop)
}

func runProbe(cfg *config.Config, paths []string, logger *slog.Logger) int {
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "probe: no files given")
		return 2
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	failed, err := media.Probe(ctx, os.Stdout, media.Sources(cfg, logger), paths, logger)
	if err != nil {
		logger.Error("probe failed", "error", err)
		return 1
	}
	if failed > 0 {
		return 1
	}
	return 0
}
