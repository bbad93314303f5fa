package leakradar

import (
	"sync"

	"github.com/leakradar/client-go/internal/api"
)

// Client is the LeakRadar API client. Every method performs exactly one
// request/response cycle against the remote API; nothing is retried,
// cached or reshaped.
//
// A Client is safe for concurrent use. Close releases the underlying
// connection pool; a closed client rejects further calls with
// ErrClientClosed.
type Client struct {
	api *api.Client

	mu     sync.RWMutex
	closed bool
}

// New creates a LeakRadar client with the given bearer token. No network
// connection is opened until the first request.
func New(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	cfg := &clientConfig{
		baseURL:   defaultBaseURL,
		userAgent: defaultUserAgent,
		timeout:   defaultTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient := api.New(api.Config{
		BaseURL:    cfg.baseURL,
		Token:      token,
		UserAgent:  cfg.userAgent,
		Timeout:    cfg.timeout,
		HTTPClient: cfg.httpClient,
	})

	return &Client{api: apiClient}, nil
}

// checkClosed returns ErrClientClosed if the client has been closed.
func (c *Client) checkClosed() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClientClosed
	}
	return nil
}

// Close releases the underlying connection pool. It is idempotent; once
// closed, the client must not be reused.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	c.api.Close()
	return nil
}
