//go:build cgo

package hal

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	Scale  int
}

// RunWindow opens a desktop window that displays the framebuffer and
// forwards keyboard input. It blocks until the window closes or the step
// function returns ErrQuit.
func RunWindow(newApp func(HAL) StepFunc, cfg WindowConfig) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	h := newHost(cfg.Width, cfg.Height)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(h.fb.Width()*cfg.Scale, h.fb.Height()*cfg.Scale)
	ebiten.SetTPS(30)
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type hostGame struct {
	h       *hostHAL
	fbImg   *ebiten.Image
	scratch []byte
	shown   uint64
	step    StepFunc
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	if g.step == nil {
		return nil
	}
	if err := g.step(); err != nil {
		if errors.Is(err, ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(fb.Width(), fb.Height())
		g.scratch = make([]byte, len(fb.Buffer()))
	}
	if n := fb.snapshot(g.scratch); n != g.shown {
		g.fbImg.WritePixels(g.scratch)
		g.shown = n
	}
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.Width(), g.h.fb.Height()
}
