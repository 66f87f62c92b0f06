// Package vision talks to the vision co-processor over a serial link.
//
// The link has no length field: a request is a bare command string, and
// after a settle time the co-processor answers either a CR-terminated frame
// (matrix) or a single byte (identification). Replies are forwarded to the
// radio link bracketed by a tag line and a terminator line.
package vision

import (
	"fmt"
	"io"
	"time"

	"github.com/golang/glog"
	"go.bug.st/serial"

	"github.com/robotalks/mazebot/pkg/telemetry"
)

// Requests and radio tags.
const (
	MatrixRequest         = "matrix"
	IdentificationRequest = "identification"

	MatrixTag         = "80662"
	IdentificationTag = "80661"
)

// Port is the serial link to the co-processor.
// A Read returning 0 bytes and no error means the read timed out.
type Port interface {
	io.ReadWriter
	SetReadTimeout(t time.Duration) error
}

// Client issues synchronous requests. Requests run as guarded sections of
// Status so telemetry stays silent for their whole extent.
type Client struct {
	Port   Port
	Status *telemetry.Status

	// Settle is the time given to the co-processor to prepare a reply.
	Settle time.Duration
	// ProbeTimeout bounds the readability check after Settle.
	ProbeTimeout time.Duration
	// FrameTimeout bounds each read inside a frame, 0 blocks forever.
	FrameTimeout time.Duration
	// Silent reports a missing reply as success.
	Silent bool

	parser Parser
}

// NewClient creates a Client with default timing.
func NewClient(port Port, status *telemetry.Status) *Client {
	return &Client{
		Port:         port,
		Status:       status,
		Settle:       DefaultSettle,
		ProbeTimeout: DefaultProbeTimeout,
	}
}

// Matrix requests the matrix frame and forwards its payload.
func (c *Client) Matrix() (payload []byte, err error) {
	err = c.Status.Guard(func() (err error) {
		var first byte
		if first, err = c.request(MatrixRequest); err != nil {
			return
		}
		parser := &c.parser
		parser.Reset()
		pr := parser.Parse(first)
		for !pr.Complete {
			var b byte
			if b, err = c.readByte(); err != nil {
				return
			}
			pr = parser.Parse(b)
		}
		if n := parser.Dropped(); n > 0 {
			glog.Warningf("vision: matrix payload overflow, %d bytes dropped", n)
		}
		payload = pr.Payload
		glog.V(2).Infof("vision: matrix %q", payload)
		return c.Status.Link.SendFrame(MatrixTag, payload)
	})
	return payload, c.result(MatrixRequest, err)
}

// Identification requests the one byte identification result and forwards it.
func (c *Client) Identification() (id byte, err error) {
	err = c.Status.Guard(func() (err error) {
		if id, err = c.request(IdentificationRequest); err != nil {
			return
		}
		glog.V(2).Infof("vision: identification %q", id)
		return c.Status.Link.SendFrame(IdentificationTag, []byte{id})
	})
	return id, c.result(IdentificationRequest, err)
}

// request sends the command, waits for Settle and returns the first byte
// of the reply.
func (c *Client) request(req string) (byte, error) {
	if _, err := io.WriteString(c.Port, req); err != nil {
		return 0, fmt.Errorf("send %s: %w", req, err)
	}
	time.Sleep(c.Settle)
	probe := c.ProbeTimeout
	if probe <= 0 {
		probe = DefaultProbeTimeout
	}
	if err := c.Port.SetReadTimeout(probe); err != nil {
		return 0, err
	}
	b, err := c.readByte()
	if err == ErrTimeout {
		return 0, ErrNoReply
	}
	if err != nil {
		return 0, err
	}
	timeout := c.FrameTimeout
	if timeout <= 0 {
		timeout = serial.NoTimeout
	}
	return b, c.Port.SetReadTimeout(timeout)
}

func (c *Client) readByte() (byte, error) {
	var buf [1]byte
	n, err := c.Port.Read(buf[:])
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, ErrTimeout
	}
	return buf[0], nil
}

func (c *Client) result(req string, err error) error {
	if err == ErrNoReply {
		glog.Warningf("vision: %s: no reply", req)
		if c.Silent {
			return nil
		}
	}
	return err
}
