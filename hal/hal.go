// Package hal is the boundary between depthlab and the host: a pixel
// framebuffer, keyboard events, and runners that show the framebuffer in a
// window or write it to a file.
package hal

import "errors"

// ErrQuit is returned by a step function to end the run loop cleanly.
var ErrQuit = errors.New("quit")

// Framebuffer is an RGBA pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	// Buffer returns the backing pixels in image.RGBA layout.
	Buffer() []byte
	StrideBytes() int
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyTab
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// HAL provides the only contact point between depthlab and the host.
type HAL interface {
	Display() Framebuffer
	Input() Keyboard
}

// StepFunc is called once per frame. Return ErrQuit to stop.
type StepFunc func() error
