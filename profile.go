package leakradar

import "context"

// GetProfile retrieves the authenticated account's profile: identity,
// plan and remaining credits. The decoded JSON body is returned as-is.
func (c *Client) GetProfile(ctx context.Context) (map[string]any, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	profile, err := c.api.GetProfile(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	return profile, nil
}
