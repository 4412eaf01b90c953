package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
)

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates against the backend and returns a normalized Session.
// Backend rejections (wrong password, unapproved account) come back as
// *APIError so the caller can surface the server's message.
func (c *Client) Login(ctx context.Context, email, password string) (Session, error) {
	var env loginEnvelope
	err := c.post(ctx, "/api/account/login", "", nil, Credentials{Email: email, Password: password}, &env)
	if err != nil {
		return Session{}, err
	}
	return env.session(), nil
}

// Registration is the multipart payload for the register endpoint. Field
// names match what the backend's binder expects.
type Registration struct {
	FullName    string
	Email       string
	Password    string
	Role        string
	CityID      int
	City        string // free-text city name for text-based filtering
	PhoneNumber string
	Latitude    float64
	Longitude   float64

	// Role-specific verification document, optional.
	DocumentName string
	Document     io.Reader
}

// Register submits a new account. It does not authenticate the user:
// donors may log in immediately, every other role waits for admin approval.
func (c *Client) Register(ctx context.Context, reg Registration) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := map[string]string{
		"FullName": reg.FullName,
		"Email":    reg.Email,
		"Password": reg.Password,
		"Role":     reg.Role,
	}
	if reg.CityID > 0 {
		fields["CityId"] = strconv.Itoa(reg.CityID)
	} else {
		fields["CityId"] = "1"
	}
	if reg.City != "" {
		fields["City"] = reg.City
	}
	if reg.PhoneNumber != "" {
		fields["PhoneNumber"] = reg.PhoneNumber
	}
	if reg.Latitude != 0 || reg.Longitude != 0 {
		fields["Latitude"] = strconv.FormatFloat(reg.Latitude, 'f', -1, 64)
		fields["Longitude"] = strconv.FormatFloat(reg.Longitude, 'f', -1, 64)
	}
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return fmt.Errorf("write multipart field %s: %w", name, err)
		}
	}

	if reg.Document != nil {
		part, err := mw.CreateFormFile("Document", reg.DocumentName)
		if err != nil {
			return fmt.Errorf("create document part: %w", err)
		}
		if _, err := io.Copy(part, reg.Document); err != nil {
			return fmt.Errorf("copy document: %w", err)
		}
	}

	if err := mw.Close(); err != nil {
		return fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/account/register", &buf)
	if err != nil {
		return fmt.Errorf("build register request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call backend register: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read register response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp, raw)
	}
	return nil
}

// ContactMessage is the public contact-form payload.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// SendContact delivers a contact-form message. No authentication required.
func (c *Client) SendContact(ctx context.Context, msg ContactMessage) error {
	return c.post(ctx, "/api/contact/send", "", nil, msg, nil)
}
