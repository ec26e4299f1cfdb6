// datetime.go - datetime device, page 0xc_: wall clock fields

package devices

import (
	"time"

	"github.com/intuitionamiga/uxnengine/internal/uxn"
)

const (
	dtYear  = 0x0 // short
	dtMonth = 0x2
	dtDay   = 0x3
	dtHour  = 0x4
	dtMin   = 0x5
	dtSec   = 0x6
	dtDotw  = 0x7 // day of the week, 0=Sunday
	dtDoy   = 0x8 // short, day of the year
	dtIsDst = 0xa
)

// Datetime is read-only: every DEI answers with the current local time
// broken into fields, and DEO is ignored. stdlib time is sufficient — no
// pack member reaches for a third-party clock/calendar library.
type Datetime struct{}

func NewDatetime() *Datetime { return &Datetime{} }

func (d *Datetime) DEI(vm *uxn.VM, port uint8, wide bool) uint16 {
	now := time.Now()
	switch port & 0xf {
	case dtYear:
		return uint16(now.Year())
	case dtMonth:
		return uint16(now.Month() - 1)
	case dtDay:
		return uint16(now.Day())
	case dtHour:
		return uint16(now.Hour())
	case dtMin:
		return uint16(now.Minute())
	case dtSec:
		return uint16(now.Second())
	case dtDotw:
		return uint16(now.Weekday())
	case dtDoy:
		return uint16(now.YearDay() - 1)
	case dtIsDst:
		if now.IsDST() {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func (d *Datetime) DEO(vm *uxn.VM, port uint8, value uint16, wide bool) bool {
	return true
}
