package pixel

import (
	"image"
	"image/color"
	"image/draw"
)

// Sprite is a grid of pixels stored row by row.
type Sprite struct {
	Width  int
	Height int
	Pix    []Pixel
}

func NewSprite(w, h int) *Sprite {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Sprite{Width: w, Height: h, Pix: make([]Pixel, w*h)}
}

// SpriteFromImage copies img into a new sprite with its origin at (0, 0).
func SpriteFromImage(img image.Image) *Sprite {
	b := img.Bounds()
	s := NewSprite(b.Dx(), b.Dy())
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			s.Pix[y*s.Width+x] = FromColor(img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return s
}

// in also rejects cells past the end of a short Pix.
func (s *Sprite) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.Width && y < s.Height && y*s.Width+x < len(s.Pix)
}

// GetPixel returns the pixel at (x, y), or Blank outside the sprite.
func (s *Sprite) GetPixel(x, y int) Pixel {
	if !s.in(x, y) {
		return Blank
	}
	return s.Pix[y*s.Width+x]
}

// SetPixel sets the pixel at (x, y) and reports whether it was inside the sprite.
func (s *Sprite) SetPixel(x, y int, p Pixel) bool {
	if !s.in(x, y) {
		return false
	}
	s.Pix[y*s.Width+x] = p
	return true
}

// Fill sets every pixel to p.
func (s *Sprite) Fill(p Pixel) {
	for i := range s.Pix {
		s.Pix[i] = p
	}
}

func (s *Sprite) ColorModel() color.Model { return Model }

func (s *Sprite) Bounds() image.Rectangle { return image.Rect(0, 0, s.Width, s.Height) }

func (s *Sprite) At(x, y int) color.Color { return s.GetPixel(x, y) }

func (s *Sprite) Set(x, y int, c color.Color) { s.SetPixel(x, y, FromColor(c)) }

var _ draw.Image = (*Sprite)(nil)
