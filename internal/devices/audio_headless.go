//go:build headless

// audio_headless.go - no-op audio backend for CI and tests

package devices

import "context"

type OtoBackend struct {
	audio *Audio
}

func NewOtoBackend(audio *Audio, sampleRate int) (*OtoBackend, error) {
	return &OtoBackend{audio: audio}, nil
}

func (b *OtoBackend) Start() {}
func (b *OtoBackend) Stop()  {}

func (b *OtoBackend) Serve(ctx context.Context) error {
	<-ctx.Done()
	return nil
}
