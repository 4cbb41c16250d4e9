//go:build !linux

package input

const timevalSize = 16

func Open(path string, l Logger) *Poller {
	if l != nil {
		l.Warnf("input", "evdev is not available on this platform, keyboard disabled (%s)", path)
	}
	return NewPoller(nil)
}
