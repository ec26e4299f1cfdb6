// audio.go - audio device, page 0x3_: two independent PCM voices

package devices

import (
	"sync"

	"github.com/intuitionamiga/uxnengine/internal/uxn"
)

// Each voice occupies a nibble-sized sub-range of page 0x3: voice 0 at
// offsets 0x0-0x7, voice 1 at 0x8-0xf.
const (
	audVector = 0x0 // short
	audPitch  = 0x2 // short, Hz
	audVolume = 0x4 // byte, 0-255
	audCtrl   = 0x5 // byte, bit 0: gate (note on/off)
)

// voice is one square-wave PCM generator; the waveform choice keeps the
// device simple while still exercising a real streaming audio backend.
type voice struct {
	pitch  uint16
	volume uint8
	gate   bool
	phase  float64
}

// Audio implements both of page 0x3's voices and generates samples on
// demand from Sample, called by the oto backend's Read loop.
type Audio struct {
	mu         sync.Mutex
	voices     [2]voice
	sampleRate int
}

func NewAudio(sampleRate int) *Audio {
	return &Audio{sampleRate: sampleRate}
}

func (a *Audio) voiceFor(port uint8) (*voice, uint8) {
	idx := 0
	if port&0xf >= 0x8 {
		idx = 1
	}
	return &a.voices[idx], (port & 0xf) % 0x8
}

func (a *Audio) DEI(vm *uxn.VM, port uint8, wide bool) uint16 {
	a.mu.Lock()
	defer a.mu.Unlock()
	v, off := a.voiceFor(port)
	switch off {
	case audPitch:
		return v.pitch
	case audVolume:
		return uint16(v.volume)
	default:
		return 0
	}
}

func (a *Audio) DEO(vm *uxn.VM, port uint8, value uint16, wide bool) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	v, off := a.voiceFor(port)
	switch off {
	case audPitch:
		v.pitch = value
	case audVolume:
		v.volume = uint8(value)
	case audCtrl:
		v.gate = value&0x01 != 0
		if v.gate {
			v.phase = 0
		}
	}
	return true
}

// Sample advances both voices by one sample period and returns the mixed,
// gain-normalised mono output in [-1, 1].
func (a *Audio) Sample() float32 {
	a.mu.Lock()
	defer a.mu.Unlock()

	var mix float32
	for i := range a.voices {
		v := &a.voices[i]
		if !v.gate || v.pitch == 0 {
			continue
		}
		period := float64(a.sampleRate) / float64(v.pitch)
		v.phase += 1
		if v.phase >= period {
			v.phase -= period
		}
		square := float32(-1)
		if v.phase < period/2 {
			square = 1
		}
		mix += square * (float32(v.volume) / 255)
	}
	return mix / 2
}
