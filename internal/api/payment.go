package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// DonationNeeds lists all open donation campaigns for donors.
func (c *Client) DonationNeeds(ctx context.Context, token string) ([]Campaign, error) {
	var out []Campaign
	err := c.get(ctx, "/api/help-posts", token, nil, &out)
	return out, err
}

// CreateOrder opens a gateway order for a donation attempt. When gateway
// keys are not configured on the backend, the returned order carries
// Mock=true and an "order_mock_" id; the caller then simulates the payment
// instead of opening the real checkout.
func (c *Client) CreateOrder(ctx context.Context, token string, campaignID int64, amount float64) (PaymentOrder, error) {
	var out PaymentOrder
	body := map[string]float64{"amount": amount}
	err := c.post(ctx, fmt.Sprintf("/api/payment/create-order/%d", campaignID), token, nil, body, &out)
	return out, err
}

// PaymentVerification forwards the gateway's completion identifiers to the
// backend, which validates the signature and credits the campaign.
type PaymentVerification struct {
	OrderID    string  `json:"razorpay_order_id"`
	PaymentID  string  `json:"razorpay_payment_id"`
	Signature  string  `json:"razorpay_signature"`
	CampaignID int64   `json:"campaign_id"`
	Amount     float64 `json:"amount"`
}

// VerifyPayment confirms a completed (or mock) payment with the backend.
// userID, when non-zero, attributes the donation to that donor.
func (c *Client) VerifyPayment(ctx context.Context, token string, v PaymentVerification, userID int64) error {
	var q url.Values
	if userID != 0 {
		q = url.Values{"userId": {strconv.FormatInt(userID, 10)}}
	}
	return c.post(ctx, "/api/payment/verify", token, q, v, nil)
}

// GatewayKey returns the payment gateway's public key id for the checkout
// overlay.
func (c *Client) GatewayKey(ctx context.Context, token string) (string, error) {
	var out struct {
		Key string `json:"key"`
	}
	if err := c.get(ctx, "/api/payment/key", token, nil, &out); err != nil {
		return "", err
	}
	return out.Key, nil
}
