// Package assets holds the data shipped with the engine.
package assets

import (
	"github.com/skip2/go-qrcode"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/rook-computer/fbpge/internal/pixel"
)

// FontTTF is the TrueType font used by App.DrawText.
var FontTTF = goregular.TTF

const defaultQRCodeSizePx = 128

// QRCodeSprite returns a QR code sprite for the given payload.
// If payload is empty, it returns (nil, nil).
func QRCodeSprite(payload string, sizePx int) (*pixel.Sprite, error) {
	if payload == "" {
		return nil, nil
	}
	if sizePx <= 0 {
		sizePx = defaultQRCodeSizePx
	}

	qrCode, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, err
	}

	return pixel.SpriteFromImage(qrCode.Image(sizePx)), nil
}
