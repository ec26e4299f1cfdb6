// main.go - uxnengine CLI entry point

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "uxnengine",
		Short: "Uxn virtual processor interpreter and device host",
	}

	rootCmd.AddCommand(newRunCmd(), newDevicesCmd(), newAsmInfoCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
