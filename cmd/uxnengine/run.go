// run.go - "uxnengine run" subcommand: boots a ROM and drives the VM

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/intuitionamiga/uxnengine/internal/devices"
	"github.com/intuitionamiga/uxnengine/internal/romload"
)

func newRunCmd() *cobra.Command {
	var sampleRate int

	cmd := &cobra.Command{
		Use:   "run <rom>",
		Short: "Boot a ROM and run it to completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rom, err := romload.Load(args[0])
			if err != nil {
				return err
			}
			return runROM(rom, sampleRate)
		},
	}

	cmd.Flags().IntVar(&sampleRate, "sample-rate", 44100, "audio sample rate in Hz")
	return cmd
}

// buildSystem wires every device page except the screen (installed by
// runROM together with its backend) and the script page into a fresh
// System, the way
// main.go's teacher equivalent wires CPU/SoundChip/VideoChip together
// before handing off to the front end.
type built struct {
	sys     *devices.System
	sysDev  *devices.SystemDevice
	console *devices.Console
	audio   *devices.Audio
	ctrl    *devices.Controller
	mouse   *devices.Mouse
}

func buildSystem(sampleRate int) built {
	sys := devices.New()

	sysDev := devices.NewSystemDevice()
	sys.Install(0x0, sysDev)

	console := devices.NewConsole()
	sys.Install(0x1, console)

	audio := devices.NewAudio(sampleRate)
	sys.Install(0x3, audio)

	ctrl := devices.NewController()
	sys.Install(0x8, ctrl)
	mouse := devices.NewMouse()
	sys.Install(0x9, mouse)
	sys.Install(0xa, devices.NewFile())
	sys.Install(0xc, devices.NewDatetime())

	return built{sys: sys, sysDev: sysDev, console: console, audio: audio, ctrl: ctrl, mouse: mouse}
}

func exitCode(sysDev *devices.SystemDevice) int {
	if sysDev.Exiting {
		return int(sysDev.ExitCode)
	}
	return 0
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
