package grpcweb

import (
	"errors"
	"fmt"
	"io"
)

const readChunkSize = 32 * 1024

// Handler receives one complete message payload. Returning false stops the
// stream early; an early stop is still a successful completion.
type Handler func(message []byte) bool

// Assembler turns arbitrarily chunked deliveries into complete messages.
// It is not safe for concurrent use.
type Assembler struct {
	maxMessageSize int
	handler        Handler
	buf            []byte
	stopped        bool
}

// NewAssembler builds an assembler bounded by maxMessageSize. A non-positive
// maxMessageSize falls back to DefaultMaxMessageSize.
func NewAssembler(maxMessageSize int, handler Handler) *Assembler {
	if maxMessageSize <= 0 {
		maxMessageSize = DefaultMaxMessageSize
	}
	return &Assembler{
		maxMessageSize: maxMessageSize,
		handler:        handler,
	}
}

// Write appends a delivery and dispatches every complete message it holds.
// It reports whether the assembler wants more data.
func (a *Assembler) Write(chunk []byte) (bool, error) {
	if a.stopped {
		return false, nil
	}
	a.buf = append(a.buf, chunk...)

	for len(a.buf) >= HeaderSize {
		flag, size, _ := readHeader(a.buf)
		if flag != flagData && flag != flagTrailer {
			return false, fmt.Errorf("%w: flag 0x%02x", ErrCompressed, flag)
		}
		if uint64(size) > uint64(a.maxMessageSize) && flag == flagData {
			return false, fmt.Errorf("%w: %d > %d", ErrMessageTooLarge, size, a.maxMessageSize)
		}
		end := HeaderSize + int(size)
		if len(a.buf) < end {
			break
		}

		message := a.buf[HeaderSize:end]
		if flag == flagTrailer {
			a.stopped = true
			a.buf = nil
			return false, parseTrailer(message)
		}

		a.buf = a.buf[end:]
		if !a.handler(message) {
			a.stopped = true
			a.buf = nil
			return false, nil
		}
	}

	if len(a.buf) == 0 {
		a.buf = nil
	} else {
		a.buf = append([]byte(nil), a.buf...)
	}
	return true, nil
}

// Finish reports whether the stream ended on a frame boundary.
func (a *Assembler) Finish() error {
	if a.stopped {
		return nil
	}
	if len(a.buf) > 0 {
		return fmt.Errorf("%w: %d bytes pending", ErrTruncated, len(a.buf))
	}
	return nil
}

// Consume drives the assembler from r until the stream ends, the handler
// stops, or a malformed frame is seen. It returns exactly one outcome.
func (a *Assembler) Consume(r io.Reader) error {
	chunk := make([]byte, readChunkSize)
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			more, writeErr := a.Write(chunk[:n])
			if writeErr != nil {
				return writeErr
			}
			if !more {
				return nil
			}
		}
		if errors.Is(err, io.EOF) {
			return a.Finish()
		}
		if err != nil {
			return fmt.Errorf("read stream: %w", err)
		}
	}
}

// Remaining returns the number of buffered bytes not yet forming a message.
func (a *Assembler) Remaining() int {
	return len(a.buf)
}
