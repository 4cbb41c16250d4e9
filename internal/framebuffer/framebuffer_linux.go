//go:build linux

package framebuffer

import (
	"github.com/go-errors/errors"
	fb "github.com/gonutz/framebuffer"
)

// Open maps the framebuffer device at path, typically /dev/fb[0..x].
func Open(path string) (Surface, error) {
	dev, err := fb.Open(path)
	if err != nil {
		return nil, errors.WrapPrefix(err, "framebuffer: open "+path, 0)
	}
	// fb.Device.Close has no result; a failed munmap is not observable here.
	d, err := newDevice(dev, func() { dev.Close() })
	if err != nil {
		return nil, errors.WrapPrefix(err, path, 0)
	}
	return d, nil
}
