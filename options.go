package leakradar

import (
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	defaultBaseURL   = "https://api.leakradar.io"
	defaultUserAgent = "leakradar-go/1.0"
	defaultTimeout   = 30 * time.Second
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	userAgent  string
	timeout    time.Duration
	httpClient *http.Client
}

// requestConfig holds per-call parameters shared by the search, domain and
// unlock endpoints. Defaults match the remote API's own defaults.
type requestConfig struct {
	page             int
	pageSize         int
	searchTerm       string
	showOnlyUnlocked bool
	showOnlyLocked   bool
	maxLeaks         int
}

// Option configures the client.
type Option func(*clientConfig)

// RequestOption configures a single API call.
type RequestOption func(*requestConfig)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}

// WithTimeout sets the request timeout. Ignored when WithHTTPClient is
// used; a caller-provided client keeps its own timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithPage sets the result page to fetch. Default: 1.
func WithPage(page int) RequestOption {
	return func(c *requestConfig) {
		c.page = page
	}
}

// WithPageSize sets the number of results per page. Default: 100.
func WithPageSize(size int) RequestOption {
	return func(c *requestConfig) {
		c.pageSize = size
	}
}

// WithSearchTerm narrows domain and unlock listings to entries matching
// the term.
func WithSearchTerm(term string) RequestOption {
	return func(c *requestConfig) {
		c.searchTerm = term
	}
}

// ShowOnlyUnlocked limits results to leaks already unlocked.
func ShowOnlyUnlocked() RequestOption {
	return func(c *requestConfig) {
		c.showOnlyUnlocked = true
	}
}

// ShowOnlyLocked limits results to leaks not yet unlocked.
func ShowOnlyLocked() RequestOption {
	return func(c *requestConfig) {
		c.showOnlyLocked = true
	}
}

// WithMaxLeaks caps how many leaks an unlock operation may consume. When
// not set, all matched leaks are unlocked.
func WithMaxLeaks(count int) RequestOption {
	return func(c *requestConfig) {
		c.maxLeaks = count
	}
}

// newRequestConfig applies opts over the remote API's defaults.
func newRequestConfig(opts []RequestOption) *requestConfig {
	cfg := &requestConfig{
		page:     1,
		pageSize: 100,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// pageQuery builds the pagination parameters shared by the paginated
// listing endpoints. The optional search term is only sent when set.
func pageQuery(cfg *requestConfig) url.Values {
	query := url.Values{}
	query.Set("page", strconv.Itoa(cfg.page))
	query.Set("page_size", strconv.Itoa(cfg.pageSize))
	if cfg.searchTerm != "" {
		query.Set("search", cfg.searchTerm)
	}
	return query
}

// lockFlags adds the locked/unlocked visibility flags to a query. The
// remote always expects both flags on endpoints that support them.
func lockFlags(query url.Values, cfg *requestConfig) url.Values {
	query.Set("show_only_unlocked", strconv.FormatBool(cfg.showOnlyUnlocked))
	query.Set("show_only_locked", strconv.FormatBool(cfg.showOnlyLocked))
	return query
}

// maxLeaksQuery builds the unlock cap parameter, sent only when set.
func maxLeaksQuery(cfg *requestConfig) url.Values {
	query := url.Values{}
	if cfg.maxLeaks > 0 {
		query.Set("max", strconv.Itoa(cfg.maxLeaks))
	}
	return query
}
