package render

import (
	"errors"
	"fmt"
	"image"

	"github.com/rook-computer/fbpge/internal/framebuffer"
	"github.com/rook-computer/fbpge/internal/pixel"
)

// ErrDecalMismatch is returned by DecalInstance.Validate when the per-vertex
// lists differ in length.
var ErrDecalMismatch = errors.New("render: decal vertex lists differ in length")

// Renderer is the drawing side of the driver. The engine calls it from its
// own thread once per frame.
type Renderer interface {
	// CreateDevice binds the renderer to the surface owned by the platform.
	CreateDevice(dev DeviceProvider, fullScreen, vsync bool) error
	DestroyDevice() error

	PrepareDevice()
	PrepareDrawing()

	// DrawTarget writes the whole draw target to the surface.
	DrawTarget(target *pixel.Sprite)
	DrawLayerQuad(offset, scale Vec2f, tint pixel.Pixel)
	DrawDecal(decal *DecalInstance)

	// DisplayFrame commits the surface.
	DisplayFrame() error

	// Present runs a whole frame: clear, target, layers, decals, commit.
	Present(f Frame) error

	SetDecalMode(mode DecalMode)
	UpdateViewport(pos, size image.Point)
	ClearBuffer(p pixel.Pixel, depth bool)

	CreateTexture(width, height uint32, filtered, clamp bool) uint32
	UpdateTexture(id uint32, s *pixel.Sprite)
	ReadTexture(id uint32, s *pixel.Sprite)
	DeleteTexture(id uint32) uint32
	ApplyTexture(id uint32)
}

// DeviceProvider hands out the display surface and its geometry.
type DeviceProvider interface {
	Surface() framebuffer.Surface
	ScreenSize() (width, height int)
}

// Vec2f is a 2D float vector.
type Vec2f struct {
	X, Y float32
}

func (v Vec2f) String() string { return fmt.Sprintf("(%g,%g)", v.X, v.Y) }

type DecalMode int

const (
	DecalNormal DecalMode = iota
	DecalAdditive
	DecalMultiplicative
	DecalStencil
	DecalIlluminate
	DecalWireframe
)

// Decal is a sprite drawn through per-vertex positions and texture
// coordinates.
type Decal struct {
	Sprite *pixel.Sprite

	// Texture is the id handed out by Renderer.CreateTexture.
	Texture uint32
}

// DecalInstance is one decal draw request. Pos, UV and Tint hold one entry per
// vertex.
type DecalInstance struct {
	Decal *Decal
	Pos   []Vec2f
	UV    []Vec2f
	Tint  []pixel.Pixel
}

// Points is the number of vertices.
func (d *DecalInstance) Points() int { return len(d.Pos) }

// Validate reports whether the per-vertex lists have equal length.
func (d *DecalInstance) Validate() error {
	if len(d.UV) != len(d.Pos) || len(d.Tint) != len(d.Pos) {
		return fmt.Errorf("%w: pos=%d uv=%d tint=%d", ErrDecalMismatch, len(d.Pos), len(d.UV), len(d.Tint))
	}
	return nil
}

// LayerQuad is a tinted rectangle standing in for a compositing layer.
// Scale is a fraction of the device size.
type LayerQuad struct {
	Offset Vec2f
	Scale  Vec2f
	Tint   pixel.Pixel
}

// Frame is everything drawn in one presentation.
type Frame struct {
	Target *pixel.Sprite
	Layers []LayerQuad
	Decals []DecalInstance
}

// NoopRenderer accepts every call and draws nothing.
type NoopRenderer struct{}

func (NoopRenderer) CreateDevice(DeviceProvider, bool, bool) error { return nil }
func (NoopRenderer) DestroyDevice() error                          { return nil }
func (NoopRenderer) PrepareDevice()                                {}
func (NoopRenderer) PrepareDrawing()                               {}
func (NoopRenderer) DrawTarget(*pixel.Sprite)                      {}
func (NoopRenderer) DrawLayerQuad(Vec2f, Vec2f, pixel.Pixel)       {}
func (NoopRenderer) DrawDecal(*DecalInstance)                      {}
func (NoopRenderer) DisplayFrame() error                           { return nil }
func (NoopRenderer) Present(Frame) error                           { return nil }
func (NoopRenderer) SetDecalMode(DecalMode)                        {}
func (NoopRenderer) UpdateViewport(image.Point, image.Point)       {}
func (NoopRenderer) ClearBuffer(pixel.Pixel, bool)                 {}
func (NoopRenderer) CreateTexture(uint32, uint32, bool, bool) uint32 {
	return 0
}
func (NoopRenderer) UpdateTexture(uint32, *pixel.Sprite) {}
func (NoopRenderer) ReadTexture(uint32, *pixel.Sprite)   {}
func (NoopRenderer) DeleteTexture(uint32) uint32         { return 0 }
func (NoopRenderer) ApplyTexture(uint32)                 {}

var (
	_ Renderer = NoopRenderer{}
	_ Renderer = (*FBRenderer)(nil)
)
