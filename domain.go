package leakradar

import (
	"context"
	"net/url"
	"strconv"
)

// LeakType selects which slice of a domain's leaks an operation targets.
// The values are path segments owned by the remote API.
type LeakType string

const (
	// LeakTypeEmployees targets leaks of accounts on the domain itself.
	LeakTypeEmployees LeakType = "employees"
	// LeakTypeCustomers targets leaks of accounts registered on the
	// domain's services.
	LeakTypeCustomers LeakType = "customers"
	// LeakTypeThirdParties targets leaks of third-party access to the
	// domain.
	LeakTypeThirdParties LeakType = "third_parties"
)

// GetDomainReport retrieves the aggregate leak report for a domain.
func (c *Client) GetDomainReport(ctx context.Context, domain string) (map[string]any, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	report, err := c.api.GetDomainReport(ctx, domain)
	if err != nil {
		return nil, wrapError(err)
	}
	return report, nil
}

// GetDomainCustomers returns paginated leaks for a domain's customers.
func (c *Client) GetDomainCustomers(ctx context.Context, domain string, opts ...RequestOption) (map[string]any, error) {
	return c.getDomainLeaks(ctx, domain, LeakTypeCustomers, opts)
}

// GetDomainEmployees returns paginated leaks for a domain's employees.
func (c *Client) GetDomainEmployees(ctx context.Context, domain string, opts ...RequestOption) (map[string]any, error) {
	return c.getDomainLeaks(ctx, domain, LeakTypeEmployees, opts)
}

// GetDomainThirdParties returns paginated leaks for third-party access to
// a domain.
func (c *Client) GetDomainThirdParties(ctx context.Context, domain string, opts ...RequestOption) (map[string]any, error) {
	return c.getDomainLeaks(ctx, domain, LeakTypeThirdParties, opts)
}

func (c *Client) getDomainLeaks(ctx context.Context, domain string, leakType LeakType, opts []RequestOption) (map[string]any, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	cfg := newRequestConfig(opts)
	query := lockFlags(pageQuery(cfg), cfg)

	result, err := c.api.GetDomainSection(ctx, domain, string(leakType), query)
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// GetDomainSubdomains returns paginated subdomains observed for a domain.
func (c *Client) GetDomainSubdomains(ctx context.Context, domain string, opts ...RequestOption) (map[string]any, error) {
	return c.getDomainSection(ctx, domain, "subdomains", opts)
}

// GetDomainURLs returns paginated URLs observed for a domain.
func (c *Client) GetDomainURLs(ctx context.Context, domain string, opts ...RequestOption) (map[string]any, error) {
	return c.getDomainSection(ctx, domain, "urls", opts)
}

func (c *Client) getDomainSection(ctx context.Context, domain, section string, opts []RequestOption) (map[string]any, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	cfg := newRequestConfig(opts)

	result, err := c.api.GetDomainSection(ctx, domain, section, pageQuery(cfg))
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// ExportDomainSubdomains exports all unique subdomains for a domain as a
// CSV file, returned as raw bytes.
func (c *Client) ExportDomainSubdomains(ctx context.Context, domain string) ([]byte, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	data, err := c.api.ExportDomainSection(ctx, domain, "subdomains", nil)
	if err != nil {
		return nil, wrapError(err)
	}
	return data, nil
}

// ExportDomainURLs exports all unique URLs for a domain as a CSV file,
// returned as raw bytes.
func (c *Client) ExportDomainURLs(ctx context.Context, domain string) ([]byte, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	data, err := c.api.ExportDomainSection(ctx, domain, "urls", nil)
	if err != nil {
		return nil, wrapError(err)
	}
	return data, nil
}

// ExportDomainLeaks exports a domain's unlocked leaks of one leak type as
// a CSV file. With onlyUsernames, the export is reduced to the username
// column.
func (c *Client) ExportDomainLeaks(ctx context.Context, domain string, leakType LeakType, onlyUsernames bool) ([]byte, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("only_usernames", strconv.FormatBool(onlyUsernames))

	data, err := c.api.ExportDomainSection(ctx, domain, string(leakType), query)
	if err != nil {
		return nil, wrapError(err)
	}
	return data, nil
}

// UnlockDomainLeaks unlocks leaks of one leak type for a domain, optionally
// narrowed by WithSearchTerm and capped by WithMaxLeaks. Unlocking consumes
// credits on the remote side.
func (c *Client) UnlockDomainLeaks(ctx context.Context, domain string, leakType LeakType, opts ...RequestOption) ([]map[string]any, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	cfg := newRequestConfig(opts)
	query := maxLeaksQuery(cfg)
	if cfg.searchTerm != "" {
		query.Set("search", cfg.searchTerm)
	}

	result, err := c.api.UnlockDomainLeaks(ctx, domain, string(leakType), query)
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}
