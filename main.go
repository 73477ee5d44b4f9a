package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"depthlab/app"
	"depthlab/hal"
	"depthlab/internal/buildinfo"
	"depthlab/internal/config"
)

func main() {
	var (
		cfgPath  = flag.String("config", "", "YAML config file.")
		mode     = flag.String("mode", config.ModeZPlot, "zplot|showtri|zfight.")
		near     = flag.Float64("near", 1, "Near clip-plane distance.")
		far      = flag.Float64("far", 50, "Far clip-plane distance.")
		bits     = flag.Int("bits", 8, "Depth buffer precision in bits.")
		headless = flag.Bool("headless", false, "Write a PNG instead of opening a window.")
		out      = flag.String("out", "depthlab.png", "PNG output path in headless mode (- for stdout).")
		scale    = flag.Int("scale", 1, "Window scale factor.")
		verbose  = flag.Bool("v", false, "Debug logging.")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fatalf("%v", err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			cfg.Mode = *mode
		case "near":
			cfg.Near = *near
		case "far":
			cfg.Far = *far
		case "bits":
			cfg.Bits = *bits
		case "headless":
			cfg.Headless = *headless
		case "out":
			cfg.Out = *out
		case "scale":
			cfg.Scale = *scale
		}
	})
	if err := cfg.Validate(); err != nil {
		fatalf("%v", err)
	}

	w, h, err := app.FrameSize(cfg)
	if err != nil {
		fatalf("%v", err)
	}
	newApp := func(hh hal.HAL) hal.StepFunc {
		return app.New(hh, cfg, log).Step
	}
	log.Debug("starting", "version", buildinfo.Short(), "mode", cfg.Mode, "headless", cfg.Headless)

	if cfg.Headless {
		if err := runHeadless(newApp, cfg, w, h); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			log.Error("headless run failed", "err", err)
			os.Exit(1)
		}
		log.Info("wrote figure", "path", cfg.Out)
		return
	}

	if err := hal.RunWindow(newApp, hal.WindowConfig{
		Title:  "depthlab (" + buildinfo.Short() + ")",
		Width:  w,
		Height: h,
		Scale:  cfg.Scale,
	}); err != nil {
		log.Error("window failed", "err", err)
		os.Exit(1)
	}
}

func runHeadless(newApp func(hal.HAL) hal.StepFunc, cfg config.Config, w, h int) (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	f, err := hal.CreateFile(cfg.Out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return hal.RunHeadless(ctx, newApp, hal.HeadlessConfig{Width: w, Height: h, Out: f})
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
