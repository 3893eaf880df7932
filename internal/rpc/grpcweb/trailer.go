package grpcweb

import (
	"bytes"
	"strconv"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// parseTrailer reads the grpc-status and grpc-message headers carried in a
// trailer frame. It returns nil for an OK status.
func parseTrailer(payload []byte) error {
	code := codes.Unknown
	message := ""
	found := false

	for _, line := range bytes.Split(payload, []byte("\r\n")) {
		name, value, ok := strings.Cut(string(line), ":")
		if !ok {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "grpc-status":
			n, err := strconv.ParseUint(strings.TrimSpace(value), 10, 32)
			if err != nil {
				return status.Errorf(codes.Internal, "grpcweb: bad grpc-status %q", value)
			}
			code = codes.Code(n)
			found = true
		case "grpc-message":
			message = strings.TrimSpace(value)
		}
	}

	if !found {
		return status.Error(codes.Internal, "grpcweb: trailer without grpc-status")
	}
	if code == codes.OK {
		return nil
	}
	return status.Error(code, message)
}
