package sim

import (
	"io"
	"sync"
	"time"

	"go.bug.st/serial"
)

// VisionPort emulates the vision co-processor on a serial link. A write of
// a known request queues its reply; reads return the reply one byte at a
// time. With nothing queued a read times out like a serial port: a
// positive timeout waits that long, a negative one blocks until a reply is
// queued or the port is closed.
type VisionPort struct {
	Replies map[string][]byte

	lock    sync.Mutex
	ready   *sync.Cond
	pending []byte
	timeout time.Duration
	closed  bool
}

// NewVisionPort creates a VisionPort with canned replies. Reads block
// until SetReadTimeout is called, as on a freshly opened port.
func NewVisionPort() *VisionPort {
	return &VisionPort{
		Replies: map[string][]byte{
			"matrix":         []byte("10\x0001\r"),
			"identification": []byte("3"),
		},
		timeout: serial.NoTimeout,
	}
}

// Write implements io.Writer.
func (p *VisionPort) Write(b []byte) (int, error) {
	p.lock.Lock()
	defer p.lock.Unlock()
	if reply, ok := p.Replies[string(b)]; ok {
		p.pending = append(p.pending, reply...)
		p.cond().Broadcast()
	}
	return len(b), nil
}

// Read implements io.Reader.
func (p *VisionPort) Read(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	if len(p.pending) == 0 && p.timeout > 0 {
		timeout := p.timeout
		p.lock.Unlock()
		time.Sleep(timeout)
		p.lock.Lock()
	}
	for len(p.pending) == 0 && p.timeout < 0 && !p.closed {
		p.cond().Wait()
	}
	if len(p.pending) == 0 {
		if p.closed {
			return 0, io.EOF
		}
		return 0, nil
	}
	n := copy(b[:1], p.pending)
	p.pending = p.pending[n:]
	return n, nil
}

// SetReadTimeout sets the read timeout, serial.NoTimeout blocks.
func (p *VisionPort) SetReadTimeout(t time.Duration) error {
	p.lock.Lock()
	p.timeout = t
	p.lock.Unlock()
	return nil
}

// Close implements io.Closer and wakes up blocked reads.
func (p *VisionPort) Close() error {
	p.lock.Lock()
	p.closed = true
	p.cond().Broadcast()
	p.lock.Unlock()
	return nil
}

// cond must be called with lock.
func (p *VisionPort) cond() *sync.Cond {
	if p.ready == nil {
		p.ready = sync.NewCond(&p.lock)
	}
	return p.ready
}
