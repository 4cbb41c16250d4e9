//go:build linux

package input

import (
	"encoding/binary"

	"golang.org/x/sys/unix"
)

var timevalSize = binary.Size(unix.Timeval{})

// fdSource reads a non-blocking descriptor directly; an os.File would park
// the caller until data arrives.
type fdSource struct {
	fd int
}

func (s *fdSource) Read(b []byte) (int, error) {
	n, err := unix.Read(s.fd, b)
	if n < 0 {
		n = 0
	}
	return n, err
}

func (s *fdSource) Close() error {
	return unix.Close(s.fd)
}

// Open opens the evdev node at path in non-blocking mode. When the node
// cannot be opened a warning is logged and the returned poller never reports
// events.
func Open(path string, l Logger) *Poller {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		if l != nil {
			l.Warnf("input", "open %s failed, keyboard disabled: %v", path, err)
		}
		return NewPoller(nil)
	}
	if l != nil {
		l.Infof("input", "reading key events from %s", path)
	}
	return NewPoller(&fdSource{fd: fd})
}
