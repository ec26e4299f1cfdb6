// controller.go - controller device, page 0x8_: buttons + key

package devices

import "github.com/intuitionamiga/uxnengine/internal/uxn"

const (
	ctlVector  = 0x0 // short
	ctlButton  = 0x2 // byte, one bit per button
	ctlKey     = 0x3 // byte, last ASCII key pressed
)

// Controller is a pure state holder: cmd/uxnengine's ebiten input polling
// calls SetButtons from the game loop and triggers the controller vector
// once per tick, keeping ebiten itself out of this package's import
// graph (the screen device is the one place ebiten genuinely belongs).
type Controller struct {
	buttons uint8
	key     uint8
}

func NewController() *Controller { return &Controller{} }

func (c *Controller) SetButtons(b uint8) { c.buttons = b }
func (c *Controller) SetKey(k uint8)     { c.key = k }

func (c *Controller) DEI(vm *uxn.VM, port uint8, wide bool) uint16 {
	switch port & 0xf {
	case ctlButton:
		return uint16(c.buttons)
	case ctlKey:
		return uint16(c.key)
	default:
		return 0
	}
}

func (c *Controller) DEO(vm *uxn.VM, port uint8, value uint16, wide bool) bool {
	return true
}
