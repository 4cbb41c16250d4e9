//go:build !linux

package framebuffer

func Open(_ string) (Surface, error) {
	return nil, ErrNotSupported
}
