package leakradar

import "context"

// UnlockLeaks unlocks an explicit list of leaks by their IDs. The ID list
// is sent as-is: an empty or malformed list is rejected by the remote API,
// surfacing as *BadRequestError.
func (c *Client) UnlockLeaks(ctx context.Context, leakIDs []int64) ([]map[string]any, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	result, err := c.api.UnlockLeaks(ctx, leakIDs)
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}
