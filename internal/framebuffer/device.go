package framebuffer

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/rook-computer/fbpge/internal/pixel"
)

// Device is a display device drawn through a packed back Buffer. Commit flips
// the buffer and writes every pixel to the device image.
type Device struct {
	back    *Buffer
	dst     draw.Image
	release func()
}

func newDevice(dst draw.Image, release func()) (*Device, error) {
	bounds := dst.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		if release != nil {
			release()
		}
		return nil, ErrNoGeometry
	}
	back := NewBuffer(bounds.Dx(), bounds.Dy(), pixel.FormatBGRA)
	return &Device{back: back, dst: dst, release: release}, nil
}

func (d *Device) Bounds() image.Rectangle { return d.back.Bounds() }

func (d *Device) Clear() {
	if d.dst == nil {
		return
	}
	d.back.Clear()
}

func (d *Device) SetPixel(x, y int, p pixel.Pixel) {
	if d.dst == nil {
		return
	}
	d.back.SetPixel(x, y, p)
}

func (d *Device) Commit() error {
	if d.dst == nil {
		return nil
	}
	if err := d.back.Commit(); err != nil {
		return err
	}
	origin := d.dst.Bounds().Min
	w, h := d.back.Rect.Dx(), d.back.Rect.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := d.back.At(x, y)
			d.dst.Set(origin.X+x, origin.Y+y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xff})
		}
	}
	return nil
}

// Close drops the back buffer and unmaps the device. Unmapping reports no
// error, so Close always returns nil.
func (d *Device) Close() error {
	if d.dst == nil {
		return nil
	}
	d.dst = nil
	_ = d.back.Close()
	if d.release != nil {
		d.release()
	}
	return nil
}

var _ Surface = (*Device)(nil)
