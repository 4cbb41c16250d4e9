package framebuffer

import (
	"image"

	"github.com/rook-computer/fbpge/internal/pixel"
)

// Buffer is a packed 32-bit surface held in memory. Drawing goes to a back
// buffer; Commit copies it into Pix, the visible buffer.
type Buffer struct {
	// Pix holds the visible pixels in Format order.
	Pix []byte

	// Stride is the distance in bytes between vertically adjacent pixels.
	Stride int

	// Rect is the surface geometry.
	Rect image.Rectangle

	// Format is the device channel layout.
	Format pixel.Format

	back   []byte
	closed bool
}

// NewBuffer returns a cleared w×h buffer using format f.
func NewBuffer(w, h int, f pixel.Format) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	stride := w * pixel.BytesPerPixel
	return &Buffer{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   image.Rect(0, 0, w, h),
		Format: f,
		back:   make([]byte, stride*h),
	}
}

func (b *Buffer) Bounds() image.Rectangle { return b.Rect }

// PixOffset is the index of the first byte of pixel (x, y).
func (b *Buffer) PixOffset(x, y int) int {
	return (y-b.Rect.Min.Y)*b.Stride + (x-b.Rect.Min.X)*pixel.BytesPerPixel
}

func (b *Buffer) Clear() {
	if b.closed {
		return
	}
	clear(b.back)
}

func (b *Buffer) SetPixel(x, y int, p pixel.Pixel) {
	if b.closed || !(image.Point{X: x, Y: y}).In(b.Rect) {
		return
	}
	b.Format.Encode(b.back[b.PixOffset(x, y):], p)
}

// At returns the committed pixel at (x, y).
func (b *Buffer) At(x, y int) pixel.Pixel {
	if b.closed || !(image.Point{X: x, Y: y}).In(b.Rect) {
		return pixel.Blank
	}
	return b.Format.Decode(b.Pix[b.PixOffset(x, y):])
}

// Drawn returns the not yet committed pixel at (x, y).
func (b *Buffer) Drawn(x, y int) pixel.Pixel {
	if b.closed || !(image.Point{X: x, Y: y}).In(b.Rect) {
		return pixel.Blank
	}
	return b.Format.Decode(b.back[b.PixOffset(x, y):])
}

func (b *Buffer) Commit() error {
	if b.closed {
		return nil
	}
	copy(b.Pix, b.back)
	return nil
}

func (b *Buffer) Close() error {
	b.closed = true
	return nil
}

var _ Surface = (*Buffer)(nil)
