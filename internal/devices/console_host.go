//go:build !headless

// console_host.go - raw-mode stdin reader feeding a Console device

package devices

import (
	"context"
	"fmt"
	"os"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"
)

// ConsoleHost puts stdin into raw mode and feeds every byte it reads into a
// Console device's input queue. Grounded on the teacher's TerminalHost
// (terminal_host.go), which drives the same raw-mode-plus-nonblocking-read
// loop against its own MMIO terminal device.
//
// The reader goroutine only enqueues bytes via Console.Feed - it never calls
// VM.Run itself. uxn.VM is not safe for concurrent Run calls (§5: "the VM is
// not shared across threads"), so the console vector is triggered from the
// host's single game-loop goroutine instead, the same place controller and
// mouse vectors are triggered each tick.
type ConsoleHost struct {
	console *Console
	fd      int
	old     *term.State
	stopCh  chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewConsoleHost(console *Console) *ConsoleHost {
	return &ConsoleHost{
		console: console,
		stopCh:  make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start puts stdin in raw mode and begins reading in a goroutine. Call Stop
// to restore the terminal.
func (h *ConsoleHost) Start() error {
	h.fd = int(os.Stdin.Fd())
	old, err := term.MakeRaw(h.fd)
	if err != nil {
		close(h.done)
		return fmt.Errorf("devices: console raw mode: %w", err)
	}
	h.old = old

	if err := syscall.SetNonblock(h.fd, true); err != nil {
		_ = term.Restore(h.fd, h.old)
		close(h.done)
		return fmt.Errorf("devices: console nonblocking stdin: %w", err)
	}

	go h.loop()
	return nil
}

func (h *ConsoleHost) loop() {
	defer close(h.done)
	buf := make([]byte, 1)
	for {
		select {
		case <-h.stopCh:
			return
		default:
		}

		n, err := syscall.Read(h.fd, buf)
		if n > 0 {
			b := buf[0]
			if b == '\r' {
				b = '\n'
			}
			h.console.Feed(b)
		}
		if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK {
			time.Sleep(5 * time.Millisecond)
			continue
		}
		if err != nil {
			return
		}
	}
}

// Stop restores the terminal and stops the reader goroutine.
func (h *ConsoleHost) Stop() {
	h.once.Do(func() {
		close(h.stopCh)
		if h.old != nil {
			_ = term.Restore(h.fd, h.old)
		}
	})
}

// Serve adapts Start/Stop to the func(context.Context) error shape
// devices.Serve expects, so the console reader can run under the same
// errgroup as the other host-facing device backends.
func (h *ConsoleHost) Serve(ctx context.Context) error {
	if err := h.Start(); err != nil {
		return err
	}
	<-ctx.Done()
	h.Stop()
	return nil
}
