// file.go - file device, page 0xa_: sequential host-file access

package devices

import (
	"io"
	"os"

	"github.com/intuitionamiga/uxnengine/internal/uxn"
)

// Port offsets within page 0xa. The device addresses the host file through
// a name buffer (an address in VM memory the ROM has already filled with an
// ASCII path) and transfers bytes through a 2-byte-addressed window into
// VM memory, the conventional file device contract for this class of
// machine; there is no pack analog, so this is stdlib `os`/`io` throughout
// (see DESIGN.md).
const (
	filVector = 0x0 // short
	filName   = 0x8 // short, address of a NUL-terminated path
	filLength = 0xa // short, bytes to transfer
	filRead   = 0xc // short, DEO: destination address in VM memory to read into
	filWrite  = 0xe // short, DEO: source address in VM memory to write from
	filSuccess = 0x2 // short, DEI: bytes actually transferred by the last op
)

// File implements sequential read/write of one host file at a time,
// re-opened fresh for each read/write register write the way a ROM-driven
// single-shot file transfer expects.
type File struct {
	name    string
	length  uint16
	success uint16
}

func NewFile() *File { return &File{} }

func (f *File) DEI(vm *uxn.VM, port uint8, wide bool) uint16 {
	switch port & 0xf {
	case filSuccess:
		return f.success
	default:
		return 0
	}
}

func (f *File) DEO(vm *uxn.VM, port uint8, value uint16, wide bool) bool {
	switch port & 0xf {
	case filName:
		f.name = readCString(vm, value)
	case filLength:
		f.length = value
	case filRead:
		f.success = f.readInto(vm, value)
	case filWrite:
		f.success = f.writeFrom(vm, value)
	}
	return true
}

func readCString(vm *uxn.VM, addr uint16) string {
	var b []byte
	for i := 0; i < len(vm.Mem); i++ { // stop after one full lap with no terminator
		c := vm.Mem[addr+uint16(i)]
		if c == 0 {
			break
		}
		b = append(b, c)
	}
	return string(b)
}

func (f *File) readInto(vm *uxn.VM, destAddr uint16) uint16 {
	fh, err := os.Open(f.name)
	if err != nil {
		return 0
	}
	defer fh.Close()

	buf := make([]byte, f.length)
	n, err := io.ReadFull(fh, buf)
	if err != nil && err != io.ErrUnexpectedEOF {
		return uint16(n)
	}
	for i := 0; i < n; i++ {
		vm.Mem[destAddr+uint16(i)] = buf[i]
	}
	return uint16(n)
}

func (f *File) writeFrom(vm *uxn.VM, srcAddr uint16) uint16 {
	fh, err := os.OpenFile(f.name, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return 0
	}
	defer fh.Close()

	buf := make([]byte, f.length)
	for i := range buf {
		buf[i] = vm.Mem[srcAddr+uint16(i)]
	}
	n, err := fh.Write(buf)
	if err != nil {
		return uint16(n)
	}
	return uint16(n)
}
