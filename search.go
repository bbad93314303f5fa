package leakradar

import (
	"context"
	"strconv"
)

// SearchAdvanced performs an advanced search across leaks using the given
// filter mapping. Pagination and locked/unlocked visibility are controlled
// through options. The decoded JSON result, a mapping of leak records and
// metadata, is returned unchanged.
func (c *Client) SearchAdvanced(ctx context.Context, filters Filters, opts ...RequestOption) (map[string]any, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	cfg := newRequestConfig(opts)
	query := filters.queryValues()
	query.Set("page", strconv.Itoa(cfg.page))
	query.Set("page_size", strconv.Itoa(cfg.pageSize))
	query.Set("show_only_unlocked", strconv.FormatBool(cfg.showOnlyUnlocked))
	query.Set("show_only_locked", strconv.FormatBool(cfg.showOnlyLocked))

	result, err := c.api.SearchAdvanced(ctx, query)
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// UnlockAllAdvanced unlocks every leak matching the advanced search
// filters, up to WithMaxLeaks when given. Unlocking consumes credits on
// the remote side; the client keeps no local unlock state.
func (c *Client) UnlockAllAdvanced(ctx context.Context, filters Filters, opts ...RequestOption) ([]map[string]any, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	cfg := newRequestConfig(opts)
	query := maxLeaksQuery(cfg)
	if filters == nil {
		filters = Filters{}
	}

	result, err := c.api.UnlockAllAdvanced(ctx, query, filters)
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// ExportAdvanced exports all unlocked leaks matching the filters as a CSV
// file. The raw response bytes are returned without any decoding; use
// WriteExport to persist them.
func (c *Client) ExportAdvanced(ctx context.Context, filters Filters) ([]byte, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	data, err := c.api.ExportAdvanced(ctx, filters.queryValues())
	if err != nil {
		return nil, wrapError(err)
	}
	return data, nil
}
