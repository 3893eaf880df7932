// Package lightwalletd is a gRPC-web client for the CompactTxStreamer service.
package lightwalletd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/model"
	"go.uber.org/zap"
)

const (
	servicePath = "cash.z.wallet.sdk.rpc.CompactTxStreamer/"

	contentType = "application/grpc-web+proto"

	defaultUnaryRetries  = 3
	defaultStreamRetries = 5
)

var (
	// ErrInternal covers every transport and protocol failure.
	ErrInternal = errors.New("lightwalletd: internal error")
	// ErrClosed is returned for calls made after Close.
	ErrClosed = errors.New("lightwalletd: client closed")
)

// Client issues CompactTxStreamer calls against per-chain endpoints.
type Client struct {
	httpClient    *http.Client
	endpoints     map[model.ChainID]string
	metrics       Metrics
	logger        *zap.Logger
	unaryRetries  uint64
	streamRetries uint64
	newBackOff    func() backoff.BackOff

	mu       sync.Mutex
	nextID   uint64
	inflight map[uint64]context.CancelFunc
	closed   bool
}

// NewClient builds a Client. Every endpoint must end with a path separator.
func NewClient(
	endpoints map[model.ChainID]string,
	httpClient *http.Client,
	metrics Metrics,
	logger *zap.Logger,
) (*Client, error) {
	if metrics == nil {
		return nil, errors.New("lightwalletd metrics is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: time.Minute}
	}
	return &Client{
		httpClient:    httpClient,
		endpoints:     endpoints,
		metrics:       metrics,
		logger:        logger.Named("lightwalletd"),
		unaryRetries:  defaultUnaryRetries,
		streamRetries: defaultStreamRetries,
		newBackOff:    defaultBackOff,
		inflight:      make(map[uint64]context.CancelFunc),
	}, nil
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 250 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = 0
	return b
}

// Close cancels every outstanding request. Later calls fail with ErrClosed.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	for id, cancel := range c.inflight {
		cancel()
		delete(c.inflight, id)
	}
}

// Outstanding reports the number of requests currently in flight.
func (c *Client) Outstanding() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.inflight)
}

// track registers a request in the in-flight arena. The returned release
// func removes exactly that entry.
func (c *Client) track(ctx context.Context) (context.Context, func(), error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, nil, ErrClosed
	}
	ctx, cancel := context.WithCancel(ctx)
	id := c.nextID
	c.nextID++
	c.inflight[id] = cancel

	release := func() {
		c.mu.Lock()
		delete(c.inflight, id)
		c.mu.Unlock()
		cancel()
	}
	return ctx, release, nil
}

func (c *Client) methodURL(chain model.ChainID, method string) (string, error) {
	base, ok := c.endpoints[chain]
	if !ok || base == "" {
		return "", fmt.Errorf("no endpoint configured for chain %q", chain)
	}
	if !strings.HasSuffix(base, "/") {
		return "", fmt.Errorf("endpoint %q for chain %q must end with /", base, chain)
	}
	return base + servicePath + method, nil
}

func internalError(method string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrClosed) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", ErrInternal, method, err)
}
