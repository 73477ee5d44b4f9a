package hal

type hostHAL struct {
	fb  *hostFramebuffer
	kbd *hostKeyboard
}

// New returns a host HAL with a w x h framebuffer.
func New(w, h int) HAL {
	return newHost(w, h)
}

func newHost(w, h int) *hostHAL {
	return &hostHAL{
		fb:  newHostFramebuffer(w, h),
		kbd: newHostKeyboard(),
	}
}

func (h *hostHAL) Display() Framebuffer { return h.fb }
func (h *hostHAL) Input() Keyboard      { return h.kbd }
