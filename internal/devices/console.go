// console.go - console device, page 0x1_: stdin/stdout byte stream

package devices

import (
	"fmt"
	"os"
	"sync"

	"github.com/intuitionamiga/uxnengine/internal/uxn"
)

// Console port offsets within page 0x1, matching the conventional
// stdin/stdout byte-stream device this class of machine exposes.
const (
	conVector = 0x0 // short
	conRead   = 0x2 // DEI: next queued input byte, 0 if none
	conExec   = 0x3 // DEI: remaining argc, unused here
	conMode   = 0x4 // DEI: always 0 here; piped input is not detected
	conWrite  = 0x8 // DEO: one byte to stdout
	conError  = 0x9 // DEO: one byte to stderr
)

// Console implements the console page: an inbound ring buffer fed by a host
// reader goroutine, and outbound writes passed straight through to
// os.Stdout/os.Stderr the way the teacher's TerminalOutput prints
// immediately rather than batching (terminal_output.go).
type Console struct {
	mu    sync.Mutex
	inbuf []byte
}

func NewConsole() *Console { return &Console{} }

// Feed enqueues a byte of host input (typically from a raw-mode stdin
// reader); the caller is responsible for triggering the console vector
// afterward so the ROM observes it.
func (c *Console) Feed(b byte) {
	c.mu.Lock()
	c.inbuf = append(c.inbuf, b)
	c.mu.Unlock()
}

func (c *Console) DEI(vm *uxn.VM, port uint8, wide bool) uint16 {
	switch port & 0xf {
	case conRead:
		c.mu.Lock()
		defer c.mu.Unlock()
		if len(c.inbuf) == 0 {
			return 0
		}
		b := c.inbuf[0]
		c.inbuf = c.inbuf[1:]
		return uint16(b)
	default:
		return 0
	}
}

func (c *Console) DEO(vm *uxn.VM, port uint8, value uint16, wide bool) bool {
	switch port & 0xf {
	case conWrite:
		fmt.Fprintf(os.Stdout, "%c", byte(value))
	case conError:
		fmt.Fprintf(os.Stderr, "%c", byte(value))
	}
	return true
}
