package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Endpoint paths are an external contract owned by the remote service and
// must match it exactly.

// GetProfile retrieves the authenticated account's profile.
func (c *Client) GetProfile(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := c.do(ctx, http.MethodGet, "/profile", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchAdvanced performs an advanced leak search with the given query
// parameters.
func (c *Client) SearchAdvanced(ctx context.Context, query url.Values) (map[string]any, error) {
	var out map[string]any
	if err := c.do(ctx, http.MethodGet, "/search/advanced", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UnlockAllAdvanced unlocks leaks matching the advanced search filters sent
// as the request body.
func (c *Client) UnlockAllAdvanced(ctx context.Context, query url.Values, filters any) ([]map[string]any, error) {
	var out []map[string]any
	if err := c.do(ctx, http.MethodPost, "/search/advanced/unlock", query, filters, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ExportAdvanced exports unlocked leaks matching the filters as CSV.
func (c *Client) ExportAdvanced(ctx context.Context, query url.Values) ([]byte, error) {
	return c.doRaw(ctx, http.MethodGet, "/search/advanced/export", query)
}

// UnlockLeaks unlocks an explicit list of leaks by ID.
func (c *Client) UnlockLeaks(ctx context.Context, leakIDs []int64) ([]map[string]any, error) {
	if leakIDs == nil {
		// Keep the wire shape deterministic: [] rather than null.
		leakIDs = []int64{}
	}
	body := map[string]any{"leak_ids": leakIDs}
	var out []map[string]any
	if err := c.do(ctx, http.MethodPost, "/unlock", nil, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDomainReport retrieves the leak report for a domain.
func (c *Client) GetDomainReport(ctx context.Context, domain string) (map[string]any, error) {
	path := fmt.Sprintf("/search/domain/%s", url.PathEscape(domain))
	var out map[string]any
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDomainSection retrieves a paginated section (customers, employees,
// third_parties, subdomains, urls) of a domain report.
func (c *Client) GetDomainSection(ctx context.Context, domain, section string, query url.Values) (map[string]any, error) {
	path := fmt.Sprintf("/search/domain/%s/%s", url.PathEscape(domain), section)
	var out map[string]any
	if err := c.do(ctx, http.MethodGet, path, query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ExportDomainSection exports a domain section (subdomains, urls, or a
// leak type such as employees) as CSV.
func (c *Client) ExportDomainSection(ctx context.Context, domain, section string, query url.Values) ([]byte, error) {
	path := fmt.Sprintf("/search/domain/%s/%s/export", url.PathEscape(domain), section)
	return c.doRaw(ctx, http.MethodGet, path, query)
}

// UnlockDomainLeaks unlocks leaks of one leak type for a domain.
func (c *Client) UnlockDomainLeaks(ctx context.Context, domain, leakType string, query url.Values) ([]map[string]any, error) {
	path := fmt.Sprintf("/search/domain/%s/%s/unlock", url.PathEscape(domain), leakType)
	var out []map[string]any
	if err := c.do(ctx, http.MethodPost, path, query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchEmail searches leaks by email or username.
func (c *Client) SearchEmail(ctx context.Context, body any) (map[string]any, error) {
	var out map[string]any
	if err := c.do(ctx, http.MethodPost, "/search/email", nil, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ExportEmailLeaks exports unlocked leaks for an email as CSV.
func (c *Client) ExportEmailLeaks(ctx context.Context, email string) ([]byte, error) {
	query := url.Values{}
	query.Set("email", email)
	return c.doRaw(ctx, http.MethodGet, "/search/email/export", query)
}

// UnlockEmailLeaks unlocks leaks associated with an email.
func (c *Client) UnlockEmailLeaks(ctx context.Context, query url.Values, body any) ([]map[string]any, error) {
	var out []map[string]any
	if err := c.do(ctx, http.MethodPost, "/search/email/unlock", query, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}
