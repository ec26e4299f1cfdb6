//go:build !headless

// screen_ebiten.go - ebiten-backed screen surface

package devices

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
)

// palette is the fixed 16-colour indexed palette every pixel write selects
// from; ports to set it at runtime are a natural extension this device does
// not yet expose.
var palette = [16]color.RGBA{
	{0, 0, 0, 255}, {170, 0, 0, 255}, {0, 170, 0, 255}, {170, 85, 0, 255},
	{0, 0, 170, 255}, {170, 0, 170, 255}, {0, 170, 170, 255}, {170, 170, 170, 255},
	{85, 85, 85, 255}, {255, 85, 85, 255}, {85, 255, 85, 255}, {255, 255, 85, 255},
	{85, 85, 255, 255}, {255, 85, 255, 255}, {85, 255, 255, 255}, {255, 255, 255, 255},
}

// EbitenBackend composites the background and foreground planes into a
// single RGBA image on Present, the way video_backend_ebiten.go's
// EbitenOutput maintains its own frameBuffer and hands it to ebiten on
// Draw. x/image/draw performs the final scale to the window surface.
type EbitenBackend struct {
	mu         sync.Mutex
	w, h       int
	bg, fg     []uint8 // one colour index per pixel
	composited *image.RGBA
	Image      *ebiten.Image
}

func NewEbitenBackend() *EbitenBackend {
	b := &EbitenBackend{}
	b.Resize(320, 240)
	return b
}

func (b *EbitenBackend) Resize(w, h int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if w <= 0 || h <= 0 {
		return
	}
	b.w, b.h = w, h
	b.bg = make([]uint8, w*h)
	b.fg = make([]uint8, w*h)
	b.composited = image.NewRGBA(image.Rect(0, 0, w, h))
	b.Image = ebiten.NewImage(w, h)
}

func (b *EbitenBackend) SetPixel(x, y, layer int, colorIdx uint8) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return
	}
	i := y*b.w + x
	if layer == 0 {
		b.bg[i] = colorIdx
	} else {
		b.fg[i] = colorIdx
	}
}

// Present composites foreground over background (index 0 on the foreground
// plane is transparent) and uploads the result to the ebiten.Image the host
// loop's Draw reads from.
func (b *EbitenBackend) Present() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.bg {
		idx := b.bg[i]
		if f := b.fg[i]; f != 0 {
			idx = f
		}
		b.composited.Pix[i*4+0] = palette[idx].R
		b.composited.Pix[i*4+1] = palette[idx].G
		b.composited.Pix[i*4+2] = palette[idx].B
		b.composited.Pix[i*4+3] = 255
	}
	b.Image.WritePixels(b.composited.Pix)
}

// ScaleTo draws the composited frame into dst at whatever size dst already
// is, using a bilinear scaler rather than ebiten's own nearest-neighbour
// draw, for front ends that want smooth upscaling.
func (b *EbitenBackend) ScaleTo(dst draw.Image) {
	b.mu.Lock()
	defer b.mu.Unlock()
	draw.BiLinear.Scale(dst, dst.Bounds(), b.composited, b.composited.Bounds(), draw.Over, nil)
}
