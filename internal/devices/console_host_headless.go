//go:build headless

package devices

import "context"

// ConsoleHost is a no-op stand-in for CI and headless test runs, where
// there is no real stdin to put into raw mode.
type ConsoleHost struct{}

func NewConsoleHost(console *Console) *ConsoleHost { return &ConsoleHost{} }

func (h *ConsoleHost) Start() error { return nil }
func (h *ConsoleHost) Stop()        {}

func (h *ConsoleHost) Serve(ctx context.Context) error {
	<-ctx.Done()
	return nil
}
