// Package input polls a raw Linux evdev keyboard stream and reports key
// transitions as engine key symbols.
package input

import (
	"encoding/binary"
	"io"

	"github.com/rook-computer/fbpge/internal/keys"
)

// DefaultDevice is the first enumerated input event node.
const DefaultDevice = "/dev/input/event0"

const (
	evKey = 0x01

	recordsPerRead  = 64
	maxReadsPerPoll = 64
)

// input_event = timeval + u16 type + u16 code + s32 value.
var eventSize = timevalSize + 2 + 2 + 4

// Event is a key transition.
type Event struct {
	Key     keys.Key
	Pressed bool
}

// Logger receives poller diagnostics.
type Logger interface {
	Infof(string, string, ...interface{})
	Warnf(string, string, ...interface{})
}

// Poller drains a non-blocking event source. A Poller without a source
// never reports events.
type Poller struct {
	src     io.Reader
	buf     []byte
	pending int
}

// NewPoller returns a poller reading input_event records from r. A read that
// returns no data, or any error, ends a poll. r must not block.
func NewPoller(r io.Reader) *Poller {
	return &Poller{src: r, buf: make([]byte, eventSize*recordsPerRead)}
}

// Degraded reports whether the poller has no event source.
func (p *Poller) Degraded() bool {
	return p == nil || p.src == nil
}

// Poll reads every available record and calls emit for each mapped key
// transition. It returns the number of emitted events.
func (p *Poller) Poll(emit func(Event)) int {
	if p.Degraded() {
		return 0
	}
	emitted := 0
	for reads := 0; reads < maxReadsPerPoll; reads++ {
		n, err := p.src.Read(p.buf[p.pending:])
		if n > 0 {
			emitted += p.decode(p.pending+n, emit)
		}
		if n <= 0 || err != nil {
			break
		}
	}
	return emitted
}

// decode parses the first size bytes of the buffer and keeps a trailing
// partial record for the next read.
func (p *Poller) decode(size int, emit func(Event)) int {
	emitted := 0
	off := 0
	for ; off+eventSize <= size; off += eventSize {
		rec := p.buf[off : off+eventSize]
		typ := binary.LittleEndian.Uint16(rec[timevalSize : timevalSize+2])
		if typ != evKey {
			continue
		}
		code := binary.LittleEndian.Uint16(rec[timevalSize+2 : timevalSize+4])
		value := int32(binary.LittleEndian.Uint32(rec[timevalSize+4 : timevalSize+8]))
		k := keys.Translate(code)
		if k == keys.None {
			continue
		}
		if emit != nil {
			emit(Event{Key: k, Pressed: value != 0})
		}
		emitted++
	}
	p.pending = copy(p.buf, p.buf[off:size])
	return emitted
}

// Close releases the event source. Later polls report nothing.
func (p *Poller) Close() error {
	if p.Degraded() {
		return nil
	}
	src := p.src
	p.src = nil
	if c, ok := src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
