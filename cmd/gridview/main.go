// Command gridview shows a color grid in a pannable, zoomable window.
//
// Usage:
//
//	gridview [-config gridview.yaml] [-grid image.png]
//	gridview -headless -replay pinch.yaml -snapshot out.png
//
// In window mode, drag with one finger (or the left mouse button) to pan,
// pinch with two fingers or use the mouse wheel to zoom, +/- to change the
// scale, arrow keys to pan, R to reset and Esc to quit.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gogpu/gridview"
	"github.com/gogpu/gridview/internal/config"
	"github.com/gogpu/gridview/internal/host"
	"github.com/gogpu/gridview/internal/script"
)

func main() {
	if err := run(); err != nil {
		slog.Error("gridview failed", "err", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath = flag.String("config", "", "YAML configuration file")
		gridPath   = flag.String("grid", "", "image file to show, one cell per pixel")
		headless   = flag.Bool("headless", false, "run without a window")
		replayPath = flag.String("replay", "", "YAML touch script to replay in headless mode")
		snapshot   = flag.String("snapshot", "", "write the final frame to this .png or .bmp file")
		logLevel   = flag.String("log-level", "", "log level override: debug, info, warn, error")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadFile(*configPath); err != nil {
			return err
		}
	}
	if *gridPath != "" {
		cfg.Grid.Image = *gridPath
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	gridview.SetLogger(logger)

	grid, err := cfg.BuildGrid()
	if err != nil {
		return err
	}
	logger.Info("grid ready", "columns", grid.Columns(), "rows", grid.Rows(), "source", gridSource(cfg))

	toast := host.NewToast(nil)
	home := gridview.NewViewport(cfg.ViewportOptions()...)
	view, err := gridview.NewView(grid, cfg.Canvas.Width, cfg.Canvas.Height,
		gridview.WithViewport(home),
		gridview.WithInterpreter(gridview.NewInterpreter(
			gridview.WithNotifier(host.Notifiers(toast, gridview.LogNotifier(logger))),
		)),
	)
	if err != nil {
		return err
	}

	if *headless {
		err = runHeadless(view, *replayPath, cfg.Headless.Hz)
	} else {
		err = host.RunWindow(view, toast, host.WindowConfig{
			Title:       "gridview",
			PanStep:     cfg.Viewport.PanStep,
			ScaleStep:   cfg.Viewport.ScaleStep,
			WheelFactor: cfg.Viewport.WheelFactor,
			Home:        home,
		})
	}
	if err != nil {
		return err
	}

	if *snapshot != "" {
		if err := view.Frame().Save(*snapshot); err != nil {
			return err
		}
		logger.Info("snapshot written", "path", *snapshot)
	}
	return nil
}

func runHeadless(view *gridview.View, replayPath string, hz int) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var steps []script.Step
	if replayPath != "" {
		var err error
		if steps, err = script.Load(replayPath); err != nil {
			return err
		}
	}

	err := host.RunHeadless(ctx, view, steps, host.HeadlessConfig{Hz: hz})
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("replay interrupted: %w", err)
	}
	return err
}

func gridSource(cfg *config.Config) string {
	if cfg.Grid.Image != "" {
		return cfg.Grid.Image
	}
	return "random"
}
