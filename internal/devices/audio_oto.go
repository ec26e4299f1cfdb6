//go:build !headless

// audio_oto.go - oto v3 streaming backend for the audio device

package devices

import (
	"context"
	"fmt"
	"math"

	"github.com/ebitengine/oto/v3"
)

// OtoBackend pulls samples from an Audio device on demand, the same
// pull-based Read contract the teacher's OtoPlayer implements against its
// own SoundChip (audio_backend_oto.go).
type OtoBackend struct {
	ctx    *oto.Context
	player *oto.Player
	audio  *Audio
}

func NewOtoBackend(audio *Audio, sampleRate int) (*OtoBackend, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   4,
	})
	if err != nil {
		return nil, fmt.Errorf("devices: oto context: %w", err)
	}
	<-ready

	b := &OtoBackend{ctx: ctx, audio: audio}
	b.player = ctx.NewPlayer(b)
	return b, nil
}

// Read implements io.Reader, the interface oto.Player streams from.
func (b *OtoBackend) Read(p []byte) (int, error) {
	n := len(p) / 4
	for i := 0; i < n; i++ {
		s := b.audio.Sample()
		bits := float32ToLE(s)
		copy(p[i*4:i*4+4], bits[:])
	}
	return n * 4, nil
}

func float32ToLE(f float32) [4]byte {
	bits := math.Float32bits(f)
	return [4]byte{byte(bits), byte(bits >> 8), byte(bits >> 16), byte(bits >> 24)}
}

func (b *OtoBackend) Start() { b.player.Play() }
func (b *OtoBackend) Stop()  { b.player.Pause() }

// Serve adapts Start/Stop to the func(context.Context) error shape
// devices.Serve expects.
func (b *OtoBackend) Serve(ctx context.Context) error {
	b.Start()
	<-ctx.Done()
	b.Stop()
	return nil
}
