// Package radio provides the host-facing text link of the robot.
//
// Every line on the link is terminated by CRLF. Writers from different
// goroutines (the mission path and the telemetry reporter) are serialized
// by Link so lines and frames never interleave.
package radio

import (
	"io"
	"sync"
)

// Terminator ends every line on the radio link.
const Terminator = "\r\n"

// Link serializes writes onto the radio transport.
type Link struct {
	w    io.Writer
	lock sync.Mutex
}

// New creates a Link over w.
func New(w io.Writer) *Link {
	return &Link{w: w}
}

// Do runs fn with exclusive access to the underlying writer.
func (l *Link) Do(fn func(io.Writer) error) error {
	l.lock.Lock()
	defer l.lock.Unlock()
	return fn(l.w)
}

// Println writes a single line.
func (l *Link) Println(line string) error {
	return l.Do(func(w io.Writer) error {
		_, err := io.WriteString(w, line+Terminator)
		return err
	})
}

// SendFrame writes a tag line, the raw payload and a terminator as one unit.
func (l *Link) SendFrame(tag string, payload []byte) error {
	return l.Do(func(w io.Writer) error {
		if _, err := io.WriteString(w, tag+Terminator); err != nil {
			return err
		}
		if len(payload) > 0 {
			if _, err := w.Write(payload); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, Terminator)
		return err
	})
}
