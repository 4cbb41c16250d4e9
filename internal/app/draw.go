package app

import (
	"image"

	"github.com/golang/freetype/truetype"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/rook-computer/fbpge/internal/assets"
	"github.com/rook-computer/fbpge/internal/pixel"
	"github.com/rook-computer/fbpge/internal/render"
)

// Clear fills the draw target with p.
func (a *App) Clear(p pixel.Pixel) {
	if a.target != nil {
		a.target.Fill(p)
	}
}

// Draw sets one pixel of the draw target and reports whether it was on screen.
func (a *App) Draw(x, y int, p pixel.Pixel) bool {
	if a.target == nil {
		return false
	}
	return a.target.SetPixel(x, y, p)
}

func (a *App) FillRect(x, y, w, h int, p pixel.Pixel) {
	r := image.Rect(x, y, x+w, y+h).Intersect(a.ScreenSizeRect())
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			a.target.SetPixel(px, py, p)
		}
	}
}

// ScreenSizeRect is the draw target bounds.
func (a *App) ScreenSizeRect() image.Rectangle {
	return image.Rectangle{Max: a.ScreenSize()}
}

// DrawString draws text with the 7x13 bitmap font, (x, y) being the top left
// of the first glyph.
func (a *App) DrawString(x, y int, text string, p pixel.Pixel) {
	a.drawText(basicfont.Face7x13, x, y, text, p)
}

// DrawText draws text with the embedded TrueType font at size points.
func (a *App) DrawText(x, y int, text string, size float64, p pixel.Pixel) {
	face := a.text.face(size, a.Logger)
	if face == nil {
		face = basicfont.Face7x13
	}
	a.drawText(face, x, y, text, p)
}

func (a *App) drawText(face font.Face, x, y int, text string, p pixel.Pixel) {
	if a.target == nil {
		return
	}
	d := &font.Drawer{
		Dst:  a.target,
		Src:  image.NewUniform(p),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}

// DrawSprite copies spr to (x, y), scaled by an integer factor with nearest
// neighbour sampling. Blank pixels are transparent.
func (a *App) DrawSprite(x, y int, spr *pixel.Sprite, scale int) {
	if a.target == nil || spr == nil {
		return
	}
	if scale < 1 {
		scale = 1
	}
	dr := image.Rect(x, y, x+spr.Width*scale, y+spr.Height*scale)
	xdraw.NearestNeighbor.Scale(a.target, dr, spr, spr.Bounds(), xdraw.Over, nil)
}

// CreateDecal registers spr with the renderer.
func (a *App) CreateDecal(spr *pixel.Sprite) *render.Decal {
	d := &render.Decal{Sprite: spr}
	if a.Renderer != nil && spr != nil {
		d.Texture = a.Renderer.CreateTexture(uint32(spr.Width), uint32(spr.Height), false, true)
		a.Renderer.UpdateTexture(d.Texture, spr)
	}
	return d
}

// DrawDecal queues a decal quad for this frame with its top left corner at pos.
func (a *App) DrawDecal(pos render.Vec2f, d *render.Decal, scale render.Vec2f, tint pixel.Pixel) {
	if d == nil || d.Sprite == nil {
		return
	}
	w := float32(d.Sprite.Width) * scale.X
	h := float32(d.Sprite.Height) * scale.Y
	a.decals = append(a.decals, render.DecalInstance{
		Decal: d,
		Pos: []render.Vec2f{
			{X: pos.X, Y: pos.Y},
			{X: pos.X, Y: pos.Y + h},
			{X: pos.X + w, Y: pos.Y + h},
			{X: pos.X + w, Y: pos.Y},
		},
		UV:   []render.Vec2f{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}},
		Tint: []pixel.Pixel{tint, tint, tint, tint},
	})
}

// DrawLayerQuad queues a tinted quad for this frame.
func (a *App) DrawLayerQuad(offset, scale render.Vec2f, tint pixel.Pixel) {
	a.layers = append(a.layers, render.LayerQuad{Offset: offset, Scale: scale, Tint: tint})
}

// textFaces caches TrueType faces by point size.
type textFaces struct {
	font   *truetype.Font
	failed bool
	faces  map[float64]font.Face
}

func (t *textFaces) face(size float64, l Logger) font.Face {
	if t.failed {
		return nil
	}
	if t.font == nil {
		f, err := truetype.Parse(assets.FontTTF)
		if err != nil {
			t.failed = true
			if l != nil {
				l.Errorf("app", "truetype parse failed, using basicfont: %v", err)
			}
			return nil
		}
		t.font = f
		t.faces = map[float64]font.Face{}
	}
	if f, ok := t.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(t.font, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
	t.faces[size] = f
	return f
}
