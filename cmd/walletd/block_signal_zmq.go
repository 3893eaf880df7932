//go:build zmq

package main

import (
	"context"
	"fmt"
	"syscall"
	"time"

	"github.com/pebbe/zmq4"
	"go.uber.org/zap"
)

const blockSignalPoll = time.Second

// startBlockSignal subscribes to hashblock notifications of a full node.
// Each notification is coalesced into one pending tick.
func startBlockSignal(ctx context.Context, addr string, logger *zap.Logger) (<-chan struct{}, error) {
	if addr == "" {
		return nil, nil
	}

	sock, err := zmq4.NewSocket(zmq4.SUB)
	if err != nil {
		return nil, fmt.Errorf("zmq socket: %w", err)
	}
	if err := sock.SetRcvtimeo(blockSignalPoll); err != nil {
		sock.Close()
		return nil, fmt.Errorf("zmq receive timeout: %w", err)
	}
	if err := sock.SetSubscribe("hashblock"); err != nil {
		sock.Close()
		return nil, fmt.Errorf("zmq subscribe: %w", err)
	}
	if err := sock.Connect(addr); err != nil {
		sock.Close()
		return nil, fmt.Errorf("zmq connect %s: %w", addr, err)
	}

	logger = logger.With(zap.String("zmq", addr))
	notify := make(chan struct{}, 1)
	go func() {
		defer sock.Close()
		for ctx.Err() == nil {
			parts, err := sock.RecvMessageBytes(0)
			if err != nil {
				if zmq4.AsErrno(err) != zmq4.Errno(syscall.EAGAIN) {
					logger.Warn("zmq receive failed", zap.Error(err))
				}
				continue
			}
			if len(parts) < 2 {
				logger.Warn("skip malformed zmq message", zap.Int("parts", len(parts)))
				continue
			}
			select {
			case notify <- struct{}{}:
			default:
			}
		}
	}()
	return notify, nil
}
