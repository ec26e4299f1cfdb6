//go:build headless

// game_headless.go - non-interactive run loop for CI and console-only ROMs

package main

import "github.com/intuitionamiga/uxnengine/internal/devices"

func runROM(rom []byte, sampleRate int) error {
	b := buildSystem(sampleRate)
	b.sys.Install(0x2, devices.NewScreen(devices.NewEbitenBackend()))

	if err := b.sys.Boot(rom); err != nil {
		return err
	}
	b.sys.Run()
	if b.sysDev.Exiting && b.sysDev.ExitCode != 0 {
		fatalf("uxnengine: program exited with code %d", exitCode(b.sysDev))
	}
	return nil
}
