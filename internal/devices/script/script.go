// script.go - debug/extension device, page 0xb_: a Lua trace hook over DEO

package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/intuitionamiga/uxnengine/internal/uxn"
)

const (
	scrLoadName = 0x0 // short: not acted on by DEO; scripts are installed with LoadString
	scrTrace    = 0x1 // byte: 0=off, 1=trace every DEO that reaches this device
)

// Device loads a small Lua script and calls its global "on_deo(port, value)"
// function once per DEO the host routes through it, giving the teacher's
// one unused real dependency (gopher-lua, required by go.mod but otherwise
// homeless in a Uxn core) a concrete job: host code or test fixtures can
// install a trace/assertion script with LoadString, and a ROM switches
// tracing on or off through the trace port.
type Device struct {
	state *lua.LState
	trace bool
}

func New() *Device {
	return &Device{state: lua.NewState()}
}

func (d *Device) Close() {
	d.state.Close()
}

// LoadString compiles and runs chunk, which is expected to define an
// on_deo(port, value) global the device calls on every traced write.
func (d *Device) LoadString(chunk string) error {
	return d.state.DoString(chunk)
}

func (d *Device) DEI(vm *uxn.VM, port uint8, wide bool) uint16 {
	return 0
}

func (d *Device) DEO(vm *uxn.VM, port uint8, value uint16, wide bool) bool {
	switch port & 0xf {
	case scrTrace:
		d.trace = value != 0
	}
	if d.trace {
		d.callOnDeo(port, value)
	}
	return true
}

func (d *Device) callOnDeo(port uint8, value uint16) {
	fn := d.state.GetGlobal("on_deo")
	if fn.Type() != lua.LTFunction {
		return
	}
	d.state.Push(fn)
	d.state.Push(lua.LNumber(port))
	d.state.Push(lua.LNumber(value))
	_ = d.state.PCall(2, 0, nil)
}
