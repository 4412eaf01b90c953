package api

import (
	"context"
	"fmt"
)

// StudentRequests lists the requests created by one student.
func (c *Client) StudentRequests(ctx context.Context, token string, studentID int64) ([]HelpRequest, error) {
	var out []HelpRequest
	err := c.get(ctx, fmt.Sprintf("/api/requests/student/%d", studentID), token, nil, &out)
	return out, err
}

// NewRequest is the payload for creating a help request. The assistance
// category is folded into the description text; the backend has no
// structured field for it.
type NewRequest struct {
	Description string `json:"description"`
	City        string `json:"city"`
	Location    string `json:"location"`
	RequestDate string `json:"requestDate"` // "2006-01-02"
	RequestTime string `json:"requestTime"` // "15:04:05"
	Student     struct {
		ID int64 `json:"id"`
	} `json:"student"`
}

// CreateRequest submits a new help request for the student.
func (c *Client) CreateRequest(ctx context.Context, token string, req NewRequest) error {
	return c.post(ctx, "/api/requests", token, nil, req, nil)
}
