//go:build headless

package devices

// PasteFromClipboard is a no-op in headless builds, where there is no
// display server to own a clipboard.
func PasteFromClipboard(m *Mouse) {}
