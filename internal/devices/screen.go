// screen.go - screen device, page 0x2_: two-layer indexed framebuffer

package devices

import "github.com/intuitionamiga/uxnengine/internal/uxn"

// Screen port offsets within page 0x2.
const (
	scrVector = 0x0 // short
	scrWidth  = 0x2 // short
	scrHeight = 0x4 // short
	scrAuto   = 0x6 // auto-advance x/y on pixel write
	scrX      = 0x8 // short
	scrY      = 0xa // short
	scrAddr   = 0xc // short, source address for sprite blits (unused here)
	scrPixel  = 0xe // low nibble: colour index; bit 4: layer (0=bg,1=fg); bit 5/6: reverse the
	// Auto x/y advance direction for this write (flip x/flip y)
)

// backend is the surface Screen draws into; screen_ebiten.go and
// screen_headless.go each provide one under their own build tag.
type backend interface {
	Resize(w, h int)
	SetPixel(x, y int, layer int, colorIdx uint8)
	Present() // called once per frame by the host loop
}

// Screen implements the two-layer indexed-colour framebuffer every Varvara
// program draws through: background and foreground planes, each addressed
// by an (x, y) cursor that optionally auto-increments after each pixel
// write, matching the conventional screen device's Auto byte.
type Screen struct {
	Width, Height int
	X, Y          uint16
	Auto          uint8

	back backend
}

func NewScreen(back backend) *Screen {
	s := &Screen{Width: 320, Height: 240, back: back}
	if back != nil {
		back.Resize(s.Width, s.Height)
	}
	return s
}

func (s *Screen) DEI(vm *uxn.VM, port uint8, wide bool) uint16 {
	switch port & 0xf {
	case scrWidth:
		return uint16(s.Width)
	case scrHeight:
		return uint16(s.Height)
	case scrX:
		return s.X
	case scrY:
		return s.Y
	default:
		return 0
	}
}

func (s *Screen) DEO(vm *uxn.VM, port uint8, value uint16, wide bool) bool {
	switch port & 0xf {
	case scrWidth:
		s.Width = int(value)
		if s.back != nil {
			s.back.Resize(s.Width, s.Height)
		}
	case scrHeight:
		s.Height = int(value)
		if s.back != nil {
			s.back.Resize(s.Width, s.Height)
		}
	case scrAuto:
		s.Auto = uint8(value)
	case scrX:
		s.X = value
	case scrY:
		s.Y = value
	case scrPixel:
		s.writePixel(uint8(value))
	}
	return true
}

func (s *Screen) writePixel(v uint8) {
	layer := 0
	if v&0x10 != 0 {
		layer = 1
	}
	colorIdx := v & 0x0f
	if s.back != nil {
		s.back.SetPixel(int(s.X), int(s.Y), layer, colorIdx)
	}
	if s.Auto&0x01 != 0 {
		if v&0x20 != 0 {
			s.X--
		} else {
			s.X++
		}
	}
	if s.Auto&0x02 != 0 {
		if v&0x40 != 0 {
			s.Y--
		} else {
			s.Y++
		}
	}
}

// Present flushes the current frame to the backend; cmd/uxnengine's game
// loop calls this once per vsync after triggering the screen vector.
func (s *Screen) Present() {
	if s.back != nil {
		s.back.Present()
	}
}
