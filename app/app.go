// Package app wires the figures to the host: it draws into the HAL
// framebuffer and lets the keyboard adjust the depth parameters.
package app

import (
	"image"
	"log/slog"

	"depthlab/depth"
	"depthlab/hal"
	"depthlab/internal/config"
	"depthlab/raster"
)

const maxFar = 1e6

// App keeps the current figure settings and redraws when they change.
type App struct {
	cfg    config.Config
	log    *slog.Logger
	fb     hal.Framebuffer
	canvas *raster.Canvas
	keys   <-chan hal.KeyEvent
	dirty  bool
}

// New binds an App to h. The first Step draws the initial frame.
func New(h hal.HAL, cfg config.Config, log *slog.Logger) *App {
	if log == nil {
		log = slog.Default()
	}
	a := &App{cfg: cfg, log: log, dirty: true}
	if fb := h.Display(); fb != nil {
		a.fb = fb
		a.canvas = raster.CanvasFrom(&image.RGBA{
			Pix:    fb.Buffer(),
			Stride: fb.StrideBytes(),
			Rect:   image.Rect(0, 0, fb.Width(), fb.Height()),
		})
	}
	if in := h.Input(); in != nil {
		a.keys = in.Events()
	}
	return a
}

// Config returns the settings the next frame is drawn with.
func (a *App) Config() config.Config { return a.cfg }

// Step drains pending key events and redraws if anything changed.
func (a *App) Step() error {
drain:
	for {
		select {
		case ev := <-a.keys:
			if err := a.handleKey(ev); err != nil {
				return err
			}
		default:
			break drain
		}
	}
	if !a.dirty || a.canvas == nil {
		return nil
	}
	a.dirty = false
	if err := Draw(a.canvas, a.cfg); err != nil {
		a.log.Error("render failed", "mode", a.cfg.Mode, "err", err)
		return err
	}
	a.log.Info("rendered",
		"mode", a.cfg.Mode,
		"near", a.cfg.Near,
		"far", a.cfg.Far,
		"bits", a.cfg.Bits,
		"size", [2]int{a.canvas.Width(), a.canvas.Height()},
	)
	return a.fb.Present()
}

func (a *App) handleKey(ev hal.KeyEvent) error {
	if !ev.Press {
		return nil
	}
	if ev.Code == hal.KeyEscape || ev.Rune == 'q' {
		return hal.ErrQuit
	}
	if a.cfg.Mode == config.ModeShowTri {
		return nil
	}

	next := a.cfg
	switch {
	case ev.Code == hal.KeyUp:
		next.Bits++
	case ev.Code == hal.KeyDown:
		next.Bits--
	case ev.Code == hal.KeyRight:
		next.Far *= 2
	case ev.Code == hal.KeyLeft:
		next.Far /= 2
	default:
		return nil
	}

	if next.Far > maxFar {
		a.log.Debug("far plane at limit", "far", a.cfg.Far)
		return nil
	}
	if _, err := depth.NewParams(next.Near, next.Far); err != nil {
		a.log.Debug("ignoring key", "err", err)
		return nil
	}
	if err := next.Validate(); err != nil {
		a.log.Debug("ignoring key", "err", err)
		return nil
	}
	a.cfg = next
	a.dirty = true
	return nil
}
