package pixel

import "fmt"

// Format describes a 32-bit packed device pixel by the byte offset of each
// channel inside the 4 byte group.
type Format struct {
	Name       string
	R, G, B, A int
}

// Supported packed formats.
var (
	// FormatBGRA is the layout of a little-endian XRGB8888 framebuffer.
	FormatBGRA = Format{Name: "BGRA", R: 2, G: 1, B: 0, A: 3}
	FormatRGBA = Format{Name: "RGBA", R: 0, G: 1, B: 2, A: 3}
)

// BytesPerPixel of every Format.
const BytesPerPixel = 4

func (f Format) String() string {
	if f.Name != "" {
		return f.Name
	}
	return fmt.Sprintf("R%dG%dB%dA%d", f.R, f.G, f.B, f.A)
}

// Encode writes p into the first four bytes of dst in device order.
func (f Format) Encode(dst []byte, p Pixel) {
	_ = dst[3]
	dst[f.R] = p.R
	dst[f.G] = p.G
	dst[f.B] = p.B
	dst[f.A] = p.A
}

// Decode reads a device pixel from the first four bytes of src.
func (f Format) Decode(src []byte) Pixel {
	_ = src[3]
	return Pixel{R: src[f.R], G: src[f.G], B: src[f.B], A: src[f.A]}
}
