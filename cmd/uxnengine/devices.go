// devices.go - "uxnengine devices" subcommand

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var devicePages = [16]string{
	0x0: "system",
	0x1: "console",
	0x2: "screen",
	0x3: "audio",
	0x8: "controller",
	0x9: "mouse",
	0xa: "file",
	0xb: "script (debug/extension, not installed by run)",
	0xc: "datetime",
}

func newDevicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List the host's device page map",
		RunE: func(cmd *cobra.Command, args []string) error {
			for page, name := range devicePages {
				if name == "" {
					continue
				}
				fmt.Printf("0x%x_  %s\n", page, name)
			}
			return nil
		},
	}
}
