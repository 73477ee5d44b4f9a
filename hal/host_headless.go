package hal

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Width  int
	Height int
	// Steps is how many frames to run before writing the output (min 1).
	Steps int
	// Out receives the last presented frame as PNG.
	Out io.Writer
}

// RunHeadless runs the app without opening a window and writes the final
// frame to cfg.Out.
func RunHeadless(ctx context.Context, newApp func(HAL) StepFunc, cfg HeadlessConfig) error {
	if cfg.Steps <= 0 {
		cfg.Steps = 1
	}
	h := newHost(cfg.Width, cfg.Height)
	step := newApp(h)

	for i := 0; i < cfg.Steps && step != nil; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := step(); err != nil {
			if errors.Is(err, ErrQuit) {
				break
			}
			return err
		}
	}

	if cfg.Out == nil {
		return nil
	}
	if err := png.Encode(cfg.Out, h.fb.frontImage()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// CreateFile opens path for writing, truncating it. "-" means stdout.
func CreateFile(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
