// mouse.go - mouse device, page 0x9_: position, buttons, clipboard paste

package devices

import "github.com/intuitionamiga/uxnengine/internal/uxn"

const (
	mseVector  = 0x0 // short
	mseX       = 0x2 // short
	mseY       = 0x4 // short
	mseButton  = 0x6 // byte
	mseScroll  = 0x7 // signed byte
	mseClip    = 0x8 // DEI: next queued clipboard byte, 0 if none
)

// Mouse holds position state set by cmd/uxnengine's ebiten input polling,
// button and scroll state set through SetButtons/SetScroll, plus a paste buffer filled from the system clipboard on request
// (§4.4.1: clipboard paste lives on the mouse page on this class of
// machine, the same home video_backend_ebiten.go's own clipboard paste
// handler gives it).
type Mouse struct {
	x, y   uint16
	button uint8
	scroll int8
	paste  []byte
}

func NewMouse() *Mouse { return &Mouse{} }

func (m *Mouse) SetPosition(x, y uint16) { m.x, m.y = x, y }
func (m *Mouse) SetButtons(b uint8)      { m.button = b }
func (m *Mouse) SetScroll(s int8)        { m.scroll = s }

// SetPaste installs clipboard text to be drained byte-by-byte through
// mseClip reads, called by the host loop after a clipboard-paste key chord.
func (m *Mouse) SetPaste(text []byte) { m.paste = text }

func (m *Mouse) DEI(vm *uxn.VM, port uint8, wide bool) uint16 {
	switch port & 0xf {
	case mseX:
		return m.x
	case mseY:
		return m.y
	case mseButton:
		return uint16(m.button)
	case mseScroll:
		return uint16(uint8(m.scroll))
	case mseClip:
		if len(m.paste) == 0 {
			return 0
		}
		b := m.paste[0]
		m.paste = m.paste[1:]
		return uint16(b)
	default:
		return 0
	}
}

func (m *Mouse) DEO(vm *uxn.VM, port uint8, value uint16, wide bool) bool {
	return true
}
