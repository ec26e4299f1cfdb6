// system.go - system device, page 0x0_: stack depths, debug flag, exit state

package devices

import "github.com/intuitionamiga/uxnengine/internal/uxn"

// System port offsets within page 0x0.
const (
	sysVector = 0x0 // short
	sysWst    = 0x2 // working stack pointer, read-only
	sysRst    = 0x3 // return stack pointer, read-only
	sysDebug  = 0x4
	sysState  = 0xf // DEO: halt/exit request; low byte is the exit code
)

// SystemDevice implements the system page: stack-pointer introspection, a
// debug flag a ROM can poll, and an exit-code latch a host front end reads
// after Run returns to decide whether the program asked to terminate.
type SystemDevice struct {
	Debug    bool
	Exiting  bool
	ExitCode uint8
}

func NewSystemDevice() *SystemDevice { return &SystemDevice{} }

func (s *SystemDevice) DEI(vm *uxn.VM, port uint8, wide bool) uint16 {
	switch port & 0xf {
	case sysWst:
		return uint16(vm.WS.Len())
	case sysRst:
		return uint16(vm.RS.Len())
	case sysDebug:
		if s.Debug {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func (s *SystemDevice) DEO(vm *uxn.VM, port uint8, value uint16, wide bool) bool {
	switch port & 0xf {
	case sysDebug:
		s.Debug = value != 0
	case sysState:
		s.Exiting = true
		s.ExitCode = uint8(value)
	}
	return true
}
