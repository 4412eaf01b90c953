package api

import (
	"context"
	"fmt"
	"net/url"
)

// DashboardSummary fetches the backend-computed per-role account counts.
func (c *Client) DashboardSummary(ctx context.Context, token string) (AdminSummary, error) {
	var out AdminSummary
	err := c.get(ctx, "/api/admin/dashboard-summary", token, nil, &out)
	return out, err
}

// RecentActivities fetches the admin activity feed, newest first.
func (c *Client) RecentActivities(ctx context.Context, token string) ([]Activity, error) {
	var out []Activity
	err := c.get(ctx, "/api/admin/recent-activities", token, nil, &out)
	return out, err
}

// UsersByRole lists accounts for one role. The role segment is sent the way
// the backend route expects it ("Student", "Volunteer", "NGO", "Donor").
// An optional city narrows the result (used by NGOs browsing volunteers).
func (c *Client) UsersByRole(ctx context.Context, token, role, city string) ([]UserRecord, error) {
	var q url.Values
	if city != "" {
		q = url.Values{"city": {city}}
	}
	var out []UserRecord
	err := c.get(ctx, "/api/admin/users/"+url.PathEscape(role), token, q, &out)
	return out, err
}

// ApproveUser asks the backend to approve a pending account.
func (c *Client) ApproveUser(ctx context.Context, token string, userID int64) error {
	return c.post(ctx, fmt.Sprintf("/api/admin/approve/%d", userID), token, nil, nil, nil)
}

// RejectUser asks the backend to reject a pending account.
func (c *Client) RejectUser(ctx context.Context, token string, userID int64) error {
	return c.post(ctx, fmt.Sprintf("/api/admin/reject/%d", userID), token, nil, nil, nil)
}

// SuspendUser asks the backend to suspend an active account.
func (c *Client) SuspendUser(ctx context.Context, token string, userID int64) error {
	return c.post(ctx, fmt.Sprintf("/api/admin/suspend/%d", userID), token, nil, nil, nil)
}

// DeleteUser asks the backend to delete an account.
func (c *Client) DeleteUser(ctx context.Context, token string, userID int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/admin/delete/%d", userID), token, nil)
}

// DebugInfo fetches the backend's plain-text diagnostic dump (total user
// count plus one line per account with role and status). The dashboard
// treats it as best-effort.
func (c *Client) DebugInfo(ctx context.Context, token string) (string, error) {
	return c.getText(ctx, "/api/admin/debug", token)
}

// SeedDemoData asks the backend to populate demo records. Operator
// affordance shown on the admin dashboard when every count is zero.
func (c *Client) SeedDemoData(ctx context.Context, token string) error {
	return c.post(ctx, "/api/admin/seed", token, nil, nil, nil)
}
