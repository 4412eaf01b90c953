package api

import (
	"context"
	"fmt"
	"net/url"
)

// NearbyRequests lists open help requests in the volunteer's city.
func (c *Client) NearbyRequests(ctx context.Context, token, city string) ([]HelpRequest, error) {
	q := url.Values{"city": {city}}
	var out []HelpRequest
	err := c.get(ctx, "/api/requests/nearby", token, q, &out)
	return out, err
}

// VolunteerTasks lists the requests assigned to or accepted by a volunteer.
func (c *Client) VolunteerTasks(ctx context.Context, token string, volunteerID int64) ([]HelpRequest, error) {
	var out []HelpRequest
	err := c.get(ctx, fmt.Sprintf("/api/requests/volunteer/%d", volunteerID), token, nil, &out)
	return out, err
}

// ClaimRequest lets a volunteer claim an open request from the pool.
// The claim still needs a follow-up AcceptAssignment before work starts.
func (c *Client) ClaimRequest(ctx context.Context, token string, requestID, volunteerID int64) error {
	return c.post(ctx, fmt.Sprintf("/api/requests/%d/accept/%d", requestID, volunteerID), token, nil, nil, nil)
}

// AcceptAssignment confirms an NGO-initiated (or claimed) assignment.
func (c *Client) AcceptAssignment(ctx context.Context, token string, requestID int64) error {
	return c.post(ctx, fmt.Sprintf("/api/requests/%d/volunteer-accept", requestID), token, nil, nil, nil)
}

// RejectAssignment returns an assigned request to the pool.
func (c *Client) RejectAssignment(ctx context.Context, token string, requestID int64) error {
	return c.post(ctx, fmt.Sprintf("/api/requests/%d/reject", requestID), token, nil, nil, nil)
}

// CompleteRequest marks an accepted request as done.
func (c *Client) CompleteRequest(ctx context.Context, token string, requestID int64) error {
	return c.post(ctx, fmt.Sprintf("/api/requests/%d/complete", requestID), token, nil, nil, nil)
}
