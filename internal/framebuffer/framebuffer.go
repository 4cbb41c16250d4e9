// Package framebuffer provides the frame surface the renderer draws into: a
// packed in-memory buffer and the Linux framebuffer device (fbdev) backed by it.
//
// Every surface ignores calls made after Close, so a renderer that outlives its
// device cannot write into unmapped memory.
package framebuffer

import (
	"errors"
	"image"

	"github.com/rook-computer/fbpge/internal/pixel"
)

// DefaultDevice is the primary framebuffer node.
const DefaultDevice = "/dev/fb0"

var (
	// ErrNotSupported is returned by Open on platforms without fbdev.
	ErrNotSupported = errors.New("framebuffer: not supported")

	// ErrNoGeometry is returned by Open when the device reports a zero size.
	ErrNoGeometry = errors.New("framebuffer: device reports empty geometry")
)

// Surface is a drawable display surface.
type Surface interface {
	// Bounds is the surface geometry in pixels.
	Bounds() image.Rectangle

	// Clear resets the drawing buffer to blank.
	Clear()

	// SetPixel writes one pixel to the drawing buffer; writes outside Bounds
	// are dropped.
	SetPixel(x, y int, p pixel.Pixel)

	// Commit makes the drawing buffer visible.
	Commit() error

	// Close releases the device. Closing twice is not an error.
	Close() error
}
