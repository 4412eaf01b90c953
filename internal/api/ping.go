package api

import "context"

// Ping verifies the backend answers at all. It fetches the public donation
// needs list, the cheapest unauthenticated route the backend serves, and
// discards the body.
func (c *Client) Ping(ctx context.Context) error {
	var out []Campaign
	return c.get(ctx, "/api/help-posts", "", nil, &out)
}
