package vision

import "errors"

var (
	// ErrNoReply indicates the link had nothing to read after the settle time.
	ErrNoReply = errors.New("no reply")
	// ErrTimeout indicates the reply stopped before its frame was terminated.
	ErrTimeout = errors.New("reply timeout")
)
