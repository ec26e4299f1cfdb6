//go:build !headless

// game_ebiten.go - ebiten game loop driving the screen/controller/mouse devices

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/intuitionamiga/uxnengine/internal/devices"
)

// uxnGame adapts the device host to ebiten's Update/Draw/Layout contract,
// the same role video_backend_ebiten.go's EbitenOutput plays against the
// teacher's own CPU goroutine.
type uxnGame struct {
	b     built
	back  *devices.EbitenBackend
	ctrl  *devices.Controller
	mouse *devices.Mouse
}

func (g *uxnGame) Update() error {
	var buttons uint8
	for i, key := range []ebiten.Key{ebiten.KeyZ, ebiten.KeyX, ebiten.KeyUp, ebiten.KeyDown, ebiten.KeyLeft, ebiten.KeyRight} {
		if ebiten.IsKeyPressed(key) {
			buttons |= 1 << i
		}
	}
	g.ctrl.SetButtons(buttons)

	x, y := ebiten.CursorPosition()
	g.mouse.SetPosition(uint16(x), uint16(y))

	if inpututil.IsKeyJustPressed(ebiten.KeyV) && ebiten.IsKeyPressed(ebiten.KeyControl) {
		devices.PasteFromClipboard(g.mouse)
		g.b.sys.Trigger(0x9)
	}

	g.b.sys.Trigger(0x1) // console: deliver any bytes ConsoleHost queued since the last tick
	g.b.sys.Trigger(0x8)
	g.b.sys.Trigger(0x2) // screen vsync vector
	g.back.Present()

	if g.b.sysDev.Exiting {
		return fmt.Errorf("uxnengine: program exited with code %d", g.b.sysDev.ExitCode)
	}
	return nil
}

func (g *uxnGame) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.back.Image, nil)
}

func (g *uxnGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 320, 240
}

func runROM(rom []byte, sampleRate int) error {
	b := buildSystem(sampleRate)

	backend := devices.NewEbitenBackend()
	screen := devices.NewScreen(backend)
	b.sys.Install(0x2, screen)

	if err := b.sys.Boot(rom); err != nil {
		return err
	}
	b.sys.Run()
	if b.sysDev.Exiting {
		return nil
	}

	host := devices.NewConsoleHost(b.console)
	servers := []func(context.Context) error{host.Serve}
	if otoBackend, err := devices.NewOtoBackend(b.audio, sampleRate); err == nil {
		servers = append(servers, otoBackend.Serve)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		// Start failures (no TTY, no audio device) are reported here rather
		// than aborting the run: a ROM with no console/audio I/O still works.
		if err := devices.Serve(ctx, servers...); err != nil {
			fmt.Fprintln(os.Stderr, "uxnengine:", err)
		}
	}()

	ebiten.SetWindowSize(640, 480)
	ebiten.SetWindowTitle("uxnengine")

	game := &uxnGame{b: b, back: backend, ctrl: b.ctrl, mouse: b.mouse}
	if err := ebiten.RunGame(game); err != nil {
		return err
	}
	return nil
}
