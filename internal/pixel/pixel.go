// Package pixel contains the engine's pixel value type, packed device pixel
// formats and the sprite grid used as draw target and decal source.
package pixel

import "image/color"

// Pixel is a non-premultiplied colour with channels in R, G, B, A order.
type Pixel struct {
	R, G, B, A uint8
}

// Named colours.
var (
	Blank   = Pixel{}
	Black   = RGB(0, 0, 0)
	White   = RGB(255, 255, 255)
	Grey    = RGB(192, 192, 192)
	Red     = RGB(255, 0, 0)
	Green   = RGB(0, 255, 0)
	Blue    = RGB(0, 0, 255)
	Yellow  = RGB(255, 255, 0)
	Cyan    = RGB(0, 255, 255)
	Magenta = RGB(255, 0, 255)
)

// Model converts any color.Color to a Pixel.
var Model color.Model = color.ModelFunc(pixelModel)

func RGBA(r, g, b, a uint8) Pixel { return Pixel{R: r, G: g, B: b, A: a} }

// RGB returns an opaque pixel.
func RGB(r, g, b uint8) Pixel { return Pixel{R: r, G: g, B: b, A: 0xff} }

// RGBA implements color.Color.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}.RGBA()
}

// Tint multiplies every channel by the matching channel of t divided by 255,
// truncating the result.
func (p Pixel) Tint(t Pixel) Pixel {
	return Pixel{
		R: uint8(uint32(p.R) * uint32(t.R) / 255),
		G: uint8(uint32(p.G) * uint32(t.G) / 255),
		B: uint8(uint32(p.B) * uint32(t.B) / 255),
		A: uint8(uint32(p.A) * uint32(t.A) / 255),
	}
}

func pixelModel(c color.Color) color.Color {
	if p, ok := c.(Pixel); ok {
		return p
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{R: n.R, G: n.G, B: n.B, A: n.A}
}

// FromColor converts c to a Pixel.
func FromColor(c color.Color) Pixel {
	return pixelModel(c).(Pixel)
}
