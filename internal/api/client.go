package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Config holds settings for the transport client.
type Config struct {
	// BaseURL is the API root, without a trailing slash.
	BaseURL string
	// Token is the bearer token attached to every request.
	Token string
	// UserAgent identifies the caller to the remote API.
	UserAgent string
	// Timeout applies to the transport owned by this package. Ignored when
	// HTTPClient is set, so a caller-provided transport keeps its own
	// timeout behavior.
	Timeout time.Duration
	// HTTPClient, when non-nil, replaces the default transport.
	HTTPClient *http.Client
}

// Client is the HTTP transport for the LeakRadar API.
//
// It performs exactly one request per call: there is no retry policy, by
// upstream design. Transport-level failures (DNS, connection refused,
// timeout) are returned as-is; only HTTP-level failures are translated
// into *Error.
type Client struct {
	rc *resty.Client
}

// New creates a transport client. No connection is opened until the first
// request.
func New(cfg Config) *Client {
	var rc *resty.Client
	if cfg.HTTPClient != nil {
		rc = resty.NewWithClient(cfg.HTTPClient)
	} else {
		rc = resty.New()
		if cfg.Timeout > 0 {
			rc.SetTimeout(cfg.Timeout)
		}
	}

	rc.SetBaseURL(strings.TrimRight(cfg.BaseURL, "/"))
	rc.SetAuthToken(cfg.Token)
	rc.SetHeader("User-Agent", cfg.UserAgent)
	rc.SetHeader("Accept", "application/json")

	return &Client{rc: rc}
}

// Close releases idle connections held by the underlying pool.
func (c *Client) Close() {
	c.rc.GetClient().CloseIdleConnections()
}

// do performs a single request and decodes a JSON response into result.
// A nil result discards the body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, result any) error {
	resp, err := c.send(ctx, method, path, query, body)
	if err != nil {
		return err
	}

	if result != nil {
		if err := json.Unmarshal(resp.Body(), result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// doRaw performs a single request and returns the response body verbatim.
// Used for CSV export endpoints, where the exact bytes are the contract.
func (c *Client) doRaw(ctx context.Context, method, path string, query url.Values) ([]byte, error) {
	resp, err := c.send(ctx, method, path, query, nil)
	if err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body any) (*resty.Response, error) {
	req := c.rc.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, parseError(resp)
	}
	return resp, nil
}
