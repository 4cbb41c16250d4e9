package main

import (
	"time"

	"github.com/rook-computer/fbpge/internal/app"
	"github.com/rook-computer/fbpge/internal/assets"
	"github.com/rook-computer/fbpge/internal/keys"
	"github.com/rook-computer/fbpge/internal/pixel"
)

// demo draws a test card and echoes the arrow keys, Space and Enter. Escape
// quits.
type demo struct {
	qr *pixel.Sprite
}

func (d *demo) OnUserCreate(a *app.App) error {
	qr, err := assets.QRCodeSprite("https://github.com/rook-computer/fbpge", 64)
	if err != nil {
		a.Logger.Warnf("demo", "qr code: %v", err)
		return nil
	}
	d.qr = qr
	return nil
}

func (d *demo) OnUserUpdate(a *app.App, elapsed time.Duration) bool {
	a.Clear(pixel.Cyan)

	a.Draw(1, 1, pixel.Red)
	a.Draw(10, 10, pixel.White)
	a.DrawString(20, 20, "Hello Framebuffer!", pixel.Yellow)

	a.DrawString(20, 50, "Keys Held:", pixel.White)
	held := []struct {
		key  keys.Key
		name string
	}{
		{keys.Up, "UP"},
		{keys.Down, "DOWN"},
		{keys.Left, "LEFT"},
		{keys.Right, "RIGHT"},
	}
	for i, h := range held {
		if a.GetKey(h.key).Held {
			a.DrawString(40, 60+i*10, h.name, pixel.White)
		}
	}

	if a.GetKey(keys.Space).Pressed {
		a.DrawString(20, 120, "SPACE Pressed", pixel.Green)
	}
	if a.GetKey(keys.Enter).Pressed {
		a.DrawString(20, 130, "ENTER Pressed", pixel.Green)
	}

	if d.qr != nil {
		size := a.ScreenSize()
		a.DrawSprite(size.X-d.qr.Width-4, size.Y-d.qr.Height-4, d.qr, 1)
	}

	return !a.GetKey(keys.Escape).Pressed
}
