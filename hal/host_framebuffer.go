package hal

import (
	"image"
	"sync"
)

type hostFramebuffer struct {
	mu       sync.Mutex
	img      *image.RGBA
	front    []byte
	presents uint64
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &hostFramebuffer{img: img, front: make([]byte, len(img.Pix))}
}

func (f *hostFramebuffer) Width() int       { return f.img.Rect.Dx() }
func (f *hostFramebuffer) Height() int      { return f.img.Rect.Dy() }
func (f *hostFramebuffer) Buffer() []byte   { return f.img.Pix }
func (f *hostFramebuffer) StrideBytes() int { return f.img.Stride }

// Present publishes the back buffer so the window shows a complete frame.
func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.front, f.img.Pix)
	f.presents++
	return nil
}

func (f *hostFramebuffer) snapshot(dst []byte) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.front)
	return f.presents
}

// frontImage returns a copy of the last presented frame.
func (f *hostFramebuffer) frontImage() *image.RGBA {
	out := image.NewRGBA(f.img.Rect)
	f.snapshot(out.Pix)
	return out
}
