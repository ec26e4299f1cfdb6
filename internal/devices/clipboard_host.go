//go:build !headless

// clipboard_host.go - system clipboard paste support for the mouse device

package devices

import (
	"sync"

	"golang.design/x/clipboard"
)

var clipboardOnce sync.Once
var clipboardOK bool

// PasteFromClipboard reads the system clipboard's text contents into m,
// lazily initialising the clipboard backend on first use the same way
// video_backend_ebiten.go's handleClipboardPaste does with its own
// clipboardOnce/clipboardOK pair.
func PasteFromClipboard(m *Mouse) {
	clipboardOnce.Do(func() {
		clipboardOK = clipboard.Init() == nil
	})
	if !clipboardOK {
		return
	}
	m.SetPaste(clipboard.Read(clipboard.FmtText))
}
