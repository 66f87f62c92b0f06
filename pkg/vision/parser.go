package vision

const (
	// FrameEnd terminates a reply frame. It's not part of the payload.
	FrameEnd byte = '\r'
	// Noise is discarded wherever it appears in the stream.
	Noise byte = 0

	// MaxPayload is the largest payload a frame carries, extra bytes are
	// dropped until FrameEnd.
	MaxPayload = 19
)

// ParseResult indicates the result after one parsing step.
type ParseResult struct {
	// Payload is set once the frame completes.
	Payload []byte
	// Complete indicates FrameEnd was received.
	Complete bool
	// Discarded indicates the byte didn't go into the payload.
	Discarded bool
}

// Parser assembles a reply frame from single bytes.
type Parser struct {
	buf     []byte
	dropped int
}

// Reset drops any partial frame.
func (p *Parser) Reset() {
	p.buf, p.dropped = nil, 0
}

// Dropped gets the number of bytes dropped for overflowing the payload.
func (p *Parser) Dropped() int {
	return p.dropped
}

// Parse consumes one byte.
func (p *Parser) Parse(b byte) (pr ParseResult) {
	switch {
	case b == Noise:
		pr.Discarded = true
	case b == FrameEnd:
		pr.Payload, pr.Complete, pr.Discarded = p.buf, true, true
		if pr.Payload == nil {
			pr.Payload = []byte{}
		}
		p.buf = nil
	case len(p.buf) >= MaxPayload:
		p.dropped++
		pr.Discarded = true
	default:
		p.buf = append(p.buf, b)
	}
	return
}
