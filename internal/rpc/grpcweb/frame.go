// Package grpcweb implements the length-prefixed message framing used by
// gRPC-web responses and requests.
package grpcweb

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// HeaderSize is the size of the flag byte plus the big-endian length.
	HeaderSize = 5

	flagData    byte = 0x00
	flagTrailer byte = 0x80

	// DefaultMaxMessageSize bounds a single streamed message.
	DefaultMaxMessageSize = 10_000
	// BlockRangeMaxMessageSize bounds a single compact block message.
	BlockRangeMaxMessageSize = 2_000_000
)

var (
	// ErrShortFrame is returned when the buffer cannot hold a frame header.
	ErrShortFrame = errors.New("grpcweb: frame shorter than header")
	// ErrCompressed is returned for frames with an unsupported compression flag.
	ErrCompressed = errors.New("grpcweb: compressed frames are not supported")
	// ErrLengthMismatch is returned when the declared length disagrees with the buffer.
	ErrLengthMismatch = errors.New("grpcweb: frame length mismatch")
	// ErrMessageTooLarge is returned when a declared length exceeds the configured maximum.
	ErrMessageTooLarge = errors.New("grpcweb: message exceeds maximum size")
	// ErrTruncated is returned when a stream ends in the middle of a frame.
	ErrTruncated = errors.New("grpcweb: stream ended inside a frame")
)

// Frame prepends the uncompressed flag and the payload length to payload.
func Frame(payload []byte) []byte {
	framed := make([]byte, HeaderSize+len(payload))
	framed[0] = flagData
	binary.BigEndian.PutUint32(framed[1:HeaderSize], uint32(len(payload)))
	copy(framed[HeaderSize:], payload)
	return framed
}

// Resolve is the inverse of Frame. The buffer must hold exactly one
// uncompressed frame.
func Resolve(framed []byte) ([]byte, error) {
	flag, size, err := readHeader(framed)
	if err != nil {
		return nil, err
	}
	if flag != flagData {
		return nil, fmt.Errorf("%w: flag 0x%02x", ErrCompressed, flag)
	}
	if uint64(len(framed)-HeaderSize) != uint64(size) {
		return nil, fmt.Errorf("%w: declared %d, have %d", ErrLengthMismatch, size, len(framed)-HeaderSize)
	}
	return framed[HeaderSize:], nil
}

// ResolveUnary extracts the single data frame of a unary response body.
// A trailer frame may follow the data frame; a non-OK status in it is
// returned as an error.
func ResolveUnary(body []byte) ([]byte, error) {
	flag, size, err := readHeader(body)
	if err != nil {
		return nil, err
	}
	if flag == flagTrailer {
		if trailerErr := parseTrailer(body[HeaderSize:]); trailerErr != nil {
			return nil, trailerErr
		}
		return nil, fmt.Errorf("%w: trailer without message", ErrLengthMismatch)
	}
	end := uint64(HeaderSize) + uint64(size)
	if end > uint64(len(body)) {
		return nil, fmt.Errorf("%w: declared %d, have %d", ErrLengthMismatch, size, len(body)-HeaderSize)
	}

	rest := body[end:]
	if len(rest) > 0 {
		tflag, tsize, terr := readHeader(rest)
		if terr != nil {
			return nil, terr
		}
		if tflag != flagTrailer || uint64(len(rest)-HeaderSize) != uint64(tsize) {
			return nil, fmt.Errorf("%w: unexpected data after message", ErrLengthMismatch)
		}
		if trailerErr := parseTrailer(rest[HeaderSize:]); trailerErr != nil {
			return nil, trailerErr
		}
	}
	return Resolve(body[:end])
}

func readHeader(buf []byte) (byte, uint32, error) {
	if len(buf) < HeaderSize {
		return 0, 0, fmt.Errorf("%w: %d bytes", ErrShortFrame, len(buf))
	}
	return buf[0], binary.BigEndian.Uint32(buf[1:HeaderSize]), nil
}
