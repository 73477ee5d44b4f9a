//go:build !cgo

package hal

import "errors"

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	Scale  int
}

func RunWindow(_ func(HAL) StepFunc, _ WindowConfig) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1), or use -headless")
}
