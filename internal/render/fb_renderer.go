// Package render presents engine frames on a framebuffer surface in software.
package render

import (
	"image"

	"github.com/rook-computer/fbpge/internal/framebuffer"
	"github.com/rook-computer/fbpge/internal/pixel"
)

// FBRenderer draws frames into the surface of the platform it was created
// with. Hardware texture and viewport calls are accepted and ignored; decals
// are always sampled from their sprite.
type FBRenderer struct {
	surface framebuffer.Surface
	width   int
	height  int
	Logger  interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
}

func NewFBRenderer() *FBRenderer { return &FBRenderer{} }

func (r *FBRenderer) CreateDevice(dev DeviceProvider, fullScreen, vsync bool) error {
	if dev == nil {
		return nil
	}
	r.surface = dev.Surface()
	r.width, r.height = dev.ScreenSize()
	if r.Logger != nil {
		r.Logger.Infof("render", "device bound, %dx%d fullscreen=%t vsync=%t", r.width, r.height, fullScreen, vsync)
	}
	return nil
}

// DestroyDevice unbinds the surface; the platform keeps ownership of it.
func (r *FBRenderer) DestroyDevice() error {
	r.surface = nil
	r.width, r.height = 0, 0
	return nil
}

// PrepareDevice clears the screen once after the device is created.
func (r *FBRenderer) PrepareDevice() {
	if r.surface != nil {
		r.surface.Clear()
	}
}

// PrepareDrawing clears the surface before a frame is drawn.
func (r *FBRenderer) PrepareDrawing() {
	if r.surface != nil {
		r.surface.Clear()
	}
}

// DrawTarget writes every pixel of target row by row, at the same
// coordinates on the surface.
func (r *FBRenderer) DrawTarget(target *pixel.Sprite) {
	if r.surface == nil || target == nil {
		return
	}
	for y := 0; y < target.Height; y++ {
		for x := 0; x < target.Width; x++ {
			r.surface.SetPixel(x, y, target.GetPixel(x, y))
		}
	}
}

func (r *FBRenderer) DisplayFrame() error {
	if r.surface == nil {
		return nil
	}
	return r.surface.Commit()
}

func (r *FBRenderer) Present(f Frame) error {
	r.PrepareDrawing()
	r.DrawTarget(f.Target)
	for _, l := range f.Layers {
		r.DrawLayerQuad(l.Offset, l.Scale, l.Tint)
	}
	for i := range f.Decals {
		r.DrawDecal(&f.Decals[i])
	}
	return r.DisplayFrame()
}

func (r *FBRenderer) SetDecalMode(DecalMode) {}

func (r *FBRenderer) UpdateViewport(pos, size image.Point) {}

// ClearBuffer blanks the surface; the colour is not used.
func (r *FBRenderer) ClearBuffer(p pixel.Pixel, depth bool) {
	if r.surface != nil {
		r.surface.Clear()
	}
}

func (r *FBRenderer) CreateTexture(width, height uint32, filtered, clamp bool) uint32 { return 0 }
func (r *FBRenderer) UpdateTexture(id uint32, s *pixel.Sprite)                        {}
func (r *FBRenderer) ReadTexture(id uint32, s *pixel.Sprite)                          {}
func (r *FBRenderer) DeleteTexture(id uint32) uint32                                  { return 0 }
func (r *FBRenderer) ApplyTexture(id uint32)                                          {}

// DrawLayerQuad fills a rectangle at offset, sized as a fraction of the
// device, with tint.
func (r *FBRenderer) DrawLayerQuad(offset, scale Vec2f, tint pixel.Pixel) {
	if r.surface == nil {
		return
	}
	x0, y0 := int(offset.X), int(offset.Y)
	w := int(scale.X * float32(r.width))
	h := int(scale.Y * float32(r.height))
	quad := image.Rect(x0, y0, x0+w, y0+h).Intersect(r.surface.Bounds())
	for y := quad.Min.Y; y < quad.Max.Y; y++ {
		for x := quad.Min.X; x < quad.Max.X; x++ {
			r.surface.SetPixel(x, y, tint)
		}
	}
}

// DrawDecal plots one pixel per vertex: the nearest texel at the vertex's
// texture coordinate, multiplied by the vertex tint. Destination pixels are
// overwritten; positions off the surface are dropped by the surface.
func (r *FBRenderer) DrawDecal(d *DecalInstance) {
	if r.surface == nil || d == nil || d.Decal == nil || d.Decal.Sprite == nil {
		return
	}
	if err := d.Validate(); err != nil {
		if r.Logger != nil {
			r.Logger.Errorf("render", "decal dropped: %v", err)
		}
		return
	}
	spr := d.Decal.Sprite
	for i := 0; i < d.Points(); i++ {
		sx := int(d.Pos[i].X)
		sy := int(d.Pos[i].Y)
		u := int(d.UV[i].X * float32(spr.Width))
		v := int(d.UV[i].Y * float32(spr.Height))
		r.surface.SetPixel(sx, sy, spr.GetPixel(u, v).Tint(d.Tint[i]))
	}
}
