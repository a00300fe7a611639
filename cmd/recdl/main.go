package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ugparu/recdl/api"
	"github.com/ugparu/recdl/app"
	"github.com/ugparu/recdl/device"
	"github.com/ugparu/recdl/settings"
	"github.com/ugparu/recdl/utils/logger"
)

const closeTimeout = 10 * time.Second

var (
	settingsPath = flag.String("settings", defaultSettingsPath(), "YAML settings file")
	listenAddr   = flag.String("listen", "127.0.0.1:8080", "control API listen address")
	withPprof    = flag.Bool("pprof", false, "serve /debug/pprof routes")
	logLevel     = flag.String("log-level", "info", "log level (trace, debug, info, warning, error)")
	dryRun       = flag.Bool("dry-run", false, "print device, compatibility and resolved configuration, then exit")
)

func defaultSettingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "recdl.yaml"
	}
	return filepath.Join(dir, "recdl", "settings.yaml")
}

func main() {
	flag.Parse()
	logger.Init(logger.ParseLevel(*logLevel), nil)
	defer logger.Flush()

	a, err := app.New(settings.NewFileStore(*settingsPath), device.New())
	if err != nil {
		logger.Fatalf("main", "Failed to load settings: %v", err)
	}

	if *dryRun {
		printDryRun(a)
		return
	}

	srv := api.New(a, api.Config{Addr: *listenAddr, Pprof: *withPprof})
	if err = srv.Start(); err != nil {
		logger.Fatalf("main", "Failed to start control API: %v", err)
	}
	logger.Infof("main", "Control API listening on %s", srv.Addr())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("main", "Shutdown signal received: %s", sig)
	case <-a.Quit():
		logger.Info("main", "Recording finished, quitting")
	case <-srv.Dead():
		logger.Warning("main", "Control API stopped")
	}

	srv.Close()
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	if err = a.Close(ctx); err != nil {
		logger.Errorf("main", "Session teardown: %v", err)
	}
	logger.Info("main", "Shutdown complete")
}

func printDryRun(a *app.App) {
	d := a.Describe()
	compat := a.Compatibility()
	fmt.Printf("device:        %s\n", d.Device)
	fmt.Printf("display mode:  %s\n", d.DisplayMode)
	fmt.Printf("video style:   %s\n", d.VideoStyle)
	fmt.Printf("compatibility: style=%t clap=%t field=%t\n", compat.Style, compat.Clap, compat.Field)
	if cfg, ok := a.Resolve(); ok {
		fmt.Printf("config:        %s\n", cfg)
	} else {
		fmt.Println("config:        unresolvable, reset the video style for this device")
	}
}
