//go:build headless

// screen_headless.go - in-memory screen surface for CI and tests

package devices

// headlessBackend records pixel writes without any display dependency, the
// same role video_backend_headless.go's HeadlessVideoOutput plays for the
// teacher's own CPU cores.
type headlessBackend struct {
	w, h       int
	bg, fg     []uint8
	frameCount uint64
}

func NewEbitenBackend() *headlessBackend {
	b := &headlessBackend{}
	b.Resize(320, 240)
	return b
}

func (b *headlessBackend) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	b.w, b.h = w, h
	b.bg = make([]uint8, w*h)
	b.fg = make([]uint8, w*h)
}

func (b *headlessBackend) SetPixel(x, y, layer int, colorIdx uint8) {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return
	}
	i := y*b.w + x
	if layer == 0 {
		b.bg[i] = colorIdx
	} else {
		b.fg[i] = colorIdx
	}
}

func (b *headlessBackend) Present() {
	b.frameCount++
}

func (b *headlessBackend) FrameCount() uint64 { return b.frameCount }
