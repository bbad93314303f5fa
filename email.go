package leakradar

import "context"

// emailSearchBody is the request body shared by the email search and
// unlock endpoints.
type emailSearchBody struct {
	Email            string `json:"email"`
	ShowOnlyUnlocked bool   `json:"show_only_unlocked"`
	ShowOnlyLocked   bool   `json:"show_only_locked"`
}

// SearchEmail searches leaks by email or username. The result contains a
// summary and the matching leak records, returned as decoded.
func (c *Client) SearchEmail(ctx context.Context, email string, opts ...RequestOption) (map[string]any, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	cfg := newRequestConfig(opts)
	body := emailSearchBody{
		Email:            email,
		ShowOnlyUnlocked: cfg.showOnlyUnlocked,
		ShowOnlyLocked:   cfg.showOnlyLocked,
	}

	result, err := c.api.SearchEmail(ctx, body)
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// ExportEmailLeaks exports all unlocked leaks for an email as a CSV file,
// returned as raw bytes. Requires a plan that allows email export.
func (c *Client) ExportEmailLeaks(ctx context.Context, email string) ([]byte, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	data, err := c.api.ExportEmailLeaks(ctx, email)
	if err != nil {
		return nil, wrapError(err)
	}
	return data, nil
}

// UnlockEmailLeaks unlocks leaks associated with an email, capped by
// WithMaxLeaks when given. Unlocking consumes credits on the remote side.
func (c *Client) UnlockEmailLeaks(ctx context.Context, email string, opts ...RequestOption) ([]map[string]any, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	cfg := newRequestConfig(opts)
	body := emailSearchBody{
		Email:            email,
		ShowOnlyUnlocked: cfg.showOnlyUnlocked,
		ShowOnlyLocked:   cfg.showOnlyLocked,
	}

	result, err := c.api.UnlockEmailLeaks(ctx, maxLeaksQuery(cfg), body)
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}
