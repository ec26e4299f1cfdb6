// asminfo.go - "uxnengine asm-info" subcommand

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/intuitionamiga/uxnengine/internal/romload"
)

func newAsmInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "asm-info <rom>",
		Short: "Print a ROM's size and entry point without executing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rom, err := romload.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("size:  %d bytes\n", len(rom))
			fmt.Printf("entry: 0x0100\n")
			if len(rom) > 0 {
				fmt.Printf("first opcode: 0x%02x\n", rom[0])
			}
			return nil
		},
	}
}
