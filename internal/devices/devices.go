// devices.go - page-dispatching device host, the Varvara-style bridge

package devices

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/intuitionamiga/uxnengine/internal/uxn"
)

// System owns a VM, its ROM image, and the sixteen 16-port device pages the
// core's DEI/DEO opcodes address. It implements uxn.Device itself, routing
// each call to the page selected by the port's high nibble, the same way
// the teacher's MapIO table routes a memory address to a region handler.
type System struct {
	VM   *uxn.VM
	pages [16]uxn.Device

	// Vectors holds each device page's 2-byte vector address, written by
	// DEO to the page's own vector port and read back when a host event
	// (a keystroke, a frame tick, a sample request) needs to re-enter the
	// VM. Index is the page number (port >> 4).
	Vectors [16]uint16
}

// nullDevice answers every DEI with 0 and ignores every DEO; it is the
// default for any page the caller does not install a device on.
type nullDevice struct{}

func (nullDevice) DEI(vm *uxn.VM, port uint8, wide bool) uint16          { return 0 }
func (nullDevice) DEO(vm *uxn.VM, port uint8, value uint16, wide bool) bool { return true }

// New builds a System with every page wired to nullDevice; callers install
// real devices with Install before Boot.
func New() *System {
	s := &System{}
	for i := range s.pages {
		s.pages[i] = nullDevice{}
	}
	s.VM = uxn.New(s)
	return s
}

// Install wires a device into the page at the given high nibble (0x0-0xf).
func (s *System) Install(page uint8, dev uxn.Device) {
	s.pages[page&0xf] = dev
}

// DEI implements uxn.Device by dispatching to the page selected by port>>4.
func (s *System) DEI(vm *uxn.VM, port uint8, wide bool) uint16 {
	return s.pages[port>>4].DEI(vm, port, wide)
}

// DEO implements uxn.Device. Writes to a page's own vector sub-port (offset
// 0-1 within the page) are intercepted here and recorded in Vectors, since
// every device shares the same vector convention and there is no reason to
// duplicate that bookkeeping in each device.
func (s *System) DEO(vm *uxn.VM, port uint8, value uint16, wide bool) bool {
	page := port >> 4
	if off := port & 0xf; off == 0 && wide {
		s.Vectors[page] = value
	}
	return s.pages[page].DEO(vm, port, value, wide)
}

// Boot copies rom into memory at 0x0100 and resets the VM's program counter
// and both stacks to a fresh run. It does not execute anything.
func (s *System) Boot(rom []byte) error {
	if len(rom) > len(s.VM.Mem)-0x0100 {
		return fmt.Errorf("devices: rom is %d bytes, exceeds %d available", len(rom), len(s.VM.Mem)-0x0100)
	}
	copy(s.VM.Mem[0x0100:], rom)
	s.VM.PC = 0x0100
	s.VM.WS = uxn.Stack{}
	s.VM.RS = uxn.Stack{}
	return nil
}

// Run starts execution at the reset vector (0x0100) and returns once BRK is
// reached, the same entry point cmd/uxnengine uses for the initial boot.
func (s *System) Run() uint16 {
	return uxn.Run(s.VM, 0x0100)
}

// Trigger re-enters the VM at a device's recorded vector, the mechanism by
// which an asynchronous host event (console input, a screen frame tick, a
// controller change) resumes ROM code. A zero vector means the ROM never
// asked to be notified on this page, so Trigger is a no-op.
func (s *System) Trigger(page uint8) uint16 {
	v := s.Vectors[page&0xf]
	if v == 0 {
		return 0
	}
	return uxn.Run(s.VM, v)
}

// Serve starts every device's background goroutines (the console stdin
// reader, audio playback) under a single errgroup so that a failure in one backend
// cancels the others and is reported through one error, mirroring the
// teacher's pattern of giving each peripheral its own goroutine alongside
// the single CPU-owning goroutine.
func Serve(ctx context.Context, servers ...func(context.Context) error) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, fn := range servers {
		fn := fn
		g.Go(func() error { return fn(ctx) })
	}
	return g.Wait()
}
