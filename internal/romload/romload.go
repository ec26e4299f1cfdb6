// romload.go - ROM loading, grounded on CPU6502Runner.LoadProgram

package romload

import (
	"fmt"
	"os"
)

// romOrigin is the address a loaded ROM is copied to, matching the Uxn
// convention that program code begins just past the zero page.
const romOrigin = 0x0100

// maxROMSize is the largest image that fits below the top of the 64 KiB
// address space once placed at romOrigin.
const maxROMSize = 0x10000 - romOrigin

// Load reads a ROM file from disk and validates it fits the address space,
// the same two steps CPU6502Runner.LoadProgram performs against its own
// 32-bit bus before any byte is written.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("romload: %w", err)
	}
	if len(data) > maxROMSize {
		return nil, fmt.Errorf("romload: %s is %d bytes, exceeds %d-byte limit", path, len(data), maxROMSize)
	}
	return data, nil
}
