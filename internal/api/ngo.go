package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// RequestFilter selects a slice of the help-request list by lifecycle stage.
type RequestFilter string

const (
	FilterAll       RequestFilter = "all"
	FilterPending   RequestFilter = "pending"
	FilterOngoing   RequestFilter = "ongoing"
	FilterCompleted RequestFilter = "completed"
)

// AllRequests lists help requests, scoped to one NGO when ngoID is non-zero.
func (c *Client) AllRequests(ctx context.Context, token string, ngoID int64) ([]HelpRequest, error) {
	var q url.Values
	if ngoID != 0 {
		q = url.Values{"ngoId": {strconv.FormatInt(ngoID, 10)}}
	}
	var out []HelpRequest
	err := c.get(ctx, "/api/requests/all", token, q, &out)
	return out, err
}

// FilterRequests reduces a request list to one lifecycle slice using the
// canonical statuses. The backend's "all" endpoint is the only list it
// offers, so filtering happens here, never in view code.
func FilterRequests(requests []HelpRequest, filter RequestFilter) []HelpRequest {
	if filter == FilterAll || filter == "" {
		return requests
	}
	out := make([]HelpRequest, 0, len(requests))
	for _, r := range requests {
		switch filter {
		case FilterPending:
			if r.Status == StatusPending {
				out = append(out, r)
			}
		case FilterOngoing:
			if r.Status.IsOngoing() {
				out = append(out, r)
			}
		case FilterCompleted:
			if r.Status == StatusCompleted {
				out = append(out, r)
			}
		}
	}
	return out
}

// AcceptRequest takes NGO responsibility for a pending request.
func (c *Client) AcceptRequest(ctx context.Context, token string, requestID, ngoID int64) error {
	q := url.Values{"ngoId": {strconv.FormatInt(ngoID, 10)}}
	return c.post(ctx, fmt.Sprintf("/api/requests/%d/accept", requestID), token, q, nil, nil)
}

// AssignVolunteer assigns a volunteer to an accepted request.
func (c *Client) AssignVolunteer(ctx context.Context, token string, requestID, volunteerID, ngoID int64) error {
	q := url.Values{"ngoId": {strconv.FormatInt(ngoID, 10)}}
	return c.post(ctx, fmt.Sprintf("/api/requests/%d/assign/%d", requestID, volunteerID), token, q, nil, nil)
}

// AllocateFunds earmarks funds for a request. The backend expects the bare
// amount as the JSON body.
func (c *Client) AllocateFunds(ctx context.Context, token string, requestID int64, amount float64) error {
	return c.post(ctx, fmt.Sprintf("/api/requests/%d/funds", requestID), token, nil, amount, nil)
}

// DeleteRequest removes a help request.
func (c *Client) DeleteRequest(ctx context.Context, token string, requestID int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/requests/%d", requestID), token, nil)
}

// VolunteersByCity lists volunteers, optionally narrowed by city. The
// backend only exposes this through the admin users endpoint; when it denies
// the NGO access the denial is swallowed and an empty list returned, so the
// dashboard still renders.
func (c *Client) VolunteersByCity(ctx context.Context, token, city string) ([]UserRecord, error) {
	volunteers, err := c.UsersByRole(ctx, token, "Volunteer", city)
	if err != nil {
		if IsForbidden(err) {
			return nil, nil
		}
		return nil, err
	}
	return volunteers, nil
}

// MyCampaigns lists the donation campaigns posted by one NGO.
func (c *Client) MyCampaigns(ctx context.Context, token string, ngoID int64) ([]Campaign, error) {
	var out []Campaign
	err := c.get(ctx, fmt.Sprintf("/api/help-posts/ngo/%d", ngoID), token, nil, &out)
	return out, err
}

// NewCampaign is the payload for posting a donation need.
type NewCampaign struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Category     string  `json:"category,omitempty"`
	City         string  `json:"city,omitempty"`
	TargetAmount float64 `json:"targetAmount"`
}

// CreateCampaign posts a new donation need for the NGO.
func (c *Client) CreateCampaign(ctx context.Context, token string, ngoID int64, campaign NewCampaign) error {
	return c.post(ctx, fmt.Sprintf("/api/help-posts/%d", ngoID), token, nil, campaign, nil)
}

// CompleteCampaign closes out a fulfilled help post.
func (c *Client) CompleteCampaign(ctx context.Context, token string, postID int64) error {
	return c.post(ctx, fmt.Sprintf("/api/help-posts/%d/complete", postID), token, nil, nil, nil)
}

// NGODashboardStats reduces the NGO dashboard aggregates client-side from
// the full request and volunteer lists. The backend has no NGO-scoped
// summary endpoint (the admin summary is admin-only), so this is the
// contract: fetch and count over canonical statuses.
func (c *Client) NGODashboardStats(ctx context.Context, token string, ngoID int64) (NGOStats, error) {
	requests, err := c.AllRequests(ctx, token, ngoID)
	if err != nil {
		return NGOStats{}, err
	}
	volunteers, err := c.VolunteersByCity(ctx, token, "")
	if err != nil {
		return NGOStats{}, err
	}

	var stats NGOStats
	stats.ActiveVolunteers = len(volunteers)
	for _, r := range requests {
		switch {
		case r.Status == StatusPending:
			stats.PendingRequests++
		case r.Status.IsOngoing():
			stats.OngoingRequests++
		case r.Status == StatusCompleted:
			stats.CompletedRequests++
		}
		stats.FundsAllocated += r.FundsAllocated
	}
	return stats, nil
}
