package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"flightview/internal/app"
	"flightview/internal/config"
)

func init() {
	// glfw and gl calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	var (
		configPath  string
		writeConfig string
		snapshot    string
		frames      int
	)
	flag.StringVar(&configPath, "config", "", "TOML settings file (defaults are used when empty).")
	flag.StringVar(&writeConfig, "write-config", "", "Write the effective settings to this TOML file and exit.")
	flag.StringVar(&snapshot, "snapshot", "", "Render headless to this PNG file and exit.")
	flag.IntVar(&frames, "frames", 1, "Animation frames to run before the snapshot.")
	flag.Parse()

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	log, err := cfg.Logger(os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	slog.SetDefault(log)

	if writeConfig != "" {
		if err := config.Save(cfg, writeConfig); err != nil {
			log.Error("write config failed", "err", err)
			os.Exit(1)
		}
		log.Info("config written", "path", writeConfig)
		return
	}

	a, err := app.New(cfg, log)
	if err != nil {
		log.Error("setup failed", "err", err)
		os.Exit(1)
	}

	if snapshot != "" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := a.Snapshot(ctx, snapshot, frames); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			log.Error("snapshot failed", "err", err)
			os.Exit(1)
		}
		return
	}

	if err := runWindow(a); err != nil {
		log.Error("viewer failed", "err", err)
		os.Exit(1)
	}
}
