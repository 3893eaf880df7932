package lightwalletd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/rpc/grpcweb"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
	"go.uber.org/zap"
)

const maxUnaryResponseSize = 8 << 20

// post issues a single gRPC-web request. Connection failures and 5xx
// responses are retryable, everything else is permanent.
func (c *Client) post(ctx context.Context, url string, framed []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(framed))
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", contentType)
	req.Header.Set("X-Grpc-Web", "1")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, backoff.Permanent(err)
		}
		return nil, fmt.Errorf("send request: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		statusErr := fmt.Errorf("unexpected http status %d", resp.StatusCode)
		if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
			return nil, statusErr
		}
		return nil, backoff.Permanent(statusErr)
	}
	if code := resp.Header.Get("Grpc-Status"); code != "" && code != "0" {
		_ = resp.Body.Close()
		return nil, backoff.Permanent(fmt.Errorf("grpc-status %s: %s", code, resp.Header.Get("Grpc-Message")))
	}
	return resp, nil
}

func (c *Client) retryPolicy(ctx context.Context, retries uint64) backoff.BackOff {
	return backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), retries), ctx)
}

func (c *Client) notifyRetry(method string, chain model.ChainID) backoff.Notify {
	return func(err error, next time.Duration) {
		c.logger.Warn("request failed, retrying",
			zap.String("method", method),
			zap.String("chain", string(chain)),
			zap.Duration("next", next),
			zap.Error(err),
		)
	}
}

// unary performs a request/response call and returns the single response
// message.
func (c *Client) unary(ctx context.Context, chain model.ChainID, method string, request []byte) (message []byte, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(method, chain, err, started)
	}()

	url, err := c.methodURL(chain, method)
	if err != nil {
		return nil, internalError(method, err)
	}
	ctx, release, err := c.track(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	framed := grpcweb.Frame(request)
	op := func() ([]byte, error) {
		resp, postErr := c.post(ctx, url, framed)
		if postErr != nil {
			return nil, postErr
		}
		defer func() {
			_ = resp.Body.Close()
		}()

		body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxUnaryResponseSize))
		if readErr != nil {
			return nil, fmt.Errorf("read response: %w", readErr)
		}
		msg, resolveErr := grpcweb.ResolveUnary(body)
		if resolveErr != nil {
			return nil, backoff.Permanent(resolveErr)
		}
		return msg, nil
	}

	message, err = backoff.RetryNotifyWithData(op, c.retryPolicy(ctx, c.unaryRetries), c.notifyRetry(method, chain))
	if err != nil {
		return nil, internalError(method, err)
	}
	return message, nil
}

// stream performs a server-streaming call. When stopAfterFirst is set the
// stream is abandoned after the first message.
func (c *Client) stream(
	ctx context.Context,
	chain model.ChainID,
	method string,
	request []byte,
	maxMessageSize int,
	stopAfterFirst bool,
) (messages [][]byte, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(method, chain, err, started)
	}()

	url, err := c.methodURL(chain, method)
	if err != nil {
		return nil, internalError(method, err)
	}
	ctx, release, err := c.track(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	framed := grpcweb.Frame(request)
	op := func() ([][]byte, error) {
		resp, postErr := c.post(ctx, url, framed)
		if postErr != nil {
			return nil, postErr
		}
		defer func() {
			_ = resp.Body.Close()
		}()

		var received [][]byte
		assembler := grpcweb.NewAssembler(maxMessageSize, func(m []byte) bool {
			received = append(received, bytes.Clone(m))
			return !stopAfterFirst
		})
		if consumeErr := assembler.Consume(resp.Body); consumeErr != nil {
			return nil, backoff.Permanent(consumeErr)
		}
		return received, nil
	}

	messages, err = backoff.RetryNotifyWithData(op, c.retryPolicy(ctx, c.streamRetries), c.notifyRetry(method, chain))
	if err != nil {
		return nil, internalError(method, err)
	}
	return messages, nil
}
