package pixel

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTint(t *testing.T) {
	for i := 0; i < 256; i++ {
		c := testRandomPixel()
		assert.Equal(t, c, c.Tint(RGBA(255, 255, 255, 255)), "white tint keeps %v", c)
		assert.Equal(t, Blank, c.Tint(RGBA(0, 0, 0, 0)), "zero tint clears %v", c)
	}

	tests := []struct {
		name       string
		c, t, want Pixel
	}{
		{"half", RGBA(200, 100, 50, 255), RGBA(128, 128, 128, 128), RGBA(100, 50, 25, 128)},
		{"truncates", RGBA(1, 254, 3, 7), RGBA(254, 1, 100, 200), RGBA(0, 0, 1, 5)},
		{"per-channel", RGBA(255, 255, 255, 255), RGBA(10, 20, 30, 40), RGBA(10, 20, 30, 40)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, test.c.Tint(test.t))
		})
	}
}

func TestPixelColor(t *testing.T) {
	r, g, b, a := RGB(255, 0, 0).RGBA()
	assert.Equal(t, [4]uint32{0xffff, 0, 0, 0xffff}, [4]uint32{r, g, b, a})

	assert.Equal(t, Red, FromColor(color.RGBA{R: 0xff, A: 0xff}))
	assert.Equal(t, RGBA(1, 2, 3, 4), FromColor(RGBA(1, 2, 3, 4)))
	assert.Equal(t, Blank, FromColor(color.Transparent))
}

func TestFormat(t *testing.T) {
	buf := make([]byte, BytesPerPixel)

	FormatBGRA.Encode(buf, RGBA(1, 2, 3, 4))
	assert.Equal(t, []byte{3, 2, 1, 4}, buf)
	assert.Equal(t, RGBA(1, 2, 3, 4), FormatBGRA.Decode(buf))

	FormatRGBA.Encode(buf, RGBA(1, 2, 3, 4))
	assert.Equal(t, []byte{1, 2, 3, 4}, buf)
	assert.Equal(t, RGBA(1, 2, 3, 4), FormatRGBA.Decode(buf))

	for _, f := range []Format{FormatBGRA, FormatRGBA, {R: 3, G: 2, B: 1, A: 0}} {
		t.Run(f.String(), func(t *testing.T) {
			for i := 0; i < 64; i++ {
				c := testRandomPixel()
				f.Encode(buf, c)
				assert.Equal(t, c, f.Decode(buf))
			}
		})
	}
}

func TestSprite(t *testing.T) {
	testCases := []image.Point{
		{},
		image.Pt(1, 1),
		image.Pt(2, 2),
		image.Pt(256, 32),
	}
	for _, test := range testCases {
		t.Run(test.String(), func(t *testing.T) {
			s := NewSprite(test.X, test.Y)
			assert.Equal(t, test, s.Bounds().Size())
			assert.Len(t, s.Pix, test.X*test.Y)

			t.Run("in-bounds", func(t *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := testRandomPixel()
						require.True(t, s.SetPixel(x, y, c))
						require.Equal(t, c, s.GetPixel(x, y))
					}
				}
			})

			t.Run("out-bounds", func(t *testing.T) {
				for _, p := range []image.Point{{-1, 0}, {0, -1}, {test.X, 0}, {0, test.Y}} {
					assert.False(t, s.SetPixel(p.X, p.Y, White))
					assert.Equal(t, Blank, s.GetPixel(p.X, p.Y))
				}
			})

			t.Run("fill", func(t *testing.T) {
				c := testRandomPixel()
				s.Fill(c)
				for _, v := range s.Pix {
					require.Equal(t, c, v)
				}
			})
		})
	}
}

func TestSpriteFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 10, 13, 12))
	img.Set(10, 10, color.RGBA{R: 0xff, A: 0xff})
	img.Set(12, 11, color.RGBA{B: 0xff, A: 0xff})

	s := SpriteFromImage(img)
	assert.Equal(t, 3, s.Width)
	assert.Equal(t, 2, s.Height)
	assert.Equal(t, Red, s.GetPixel(0, 0))
	assert.Equal(t, Blue, s.GetPixel(2, 1))
	assert.Equal(t, Blank, s.GetPixel(1, 0))
}

func TestSpriteDrawImage(t *testing.T) {
	s := NewSprite(4, 4)
	s.Set(1, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	assert.Equal(t, RGB(10, 20, 30), s.GetPixel(1, 1))
	assert.Equal(t, Model, s.ColorModel())
	assert.Equal(t, RGB(10, 20, 30), s.At(1, 1))
}

func testRandomPixel() Pixel {
	return RGBA(
		uint8(rand.Intn(256)),
		uint8(rand.Intn(256)),
		uint8(rand.Intn(256)),
		uint8(rand.Intn(256)),
	)
}

func TestSpriteShortPix(t *testing.T) {
	s := &Sprite{Width: 4, Height: 4, Pix: make([]Pixel, 5)}
	assert.True(t, s.SetPixel(0, 1, Red))
	assert.Equal(t, Red, s.GetPixel(0, 1))
	assert.NotPanics(t, func() {
		assert.False(t, s.SetPixel(3, 3, Red))
		assert.Equal(t, Blank, s.GetPixel(3, 3))
	})
}
