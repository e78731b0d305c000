// Package payload is a minimal client for the external Payload CMS users
// API. All calls carry the admin bearer token; non-2xx responses surface
// as errors with the status and a body snippet.
package payload

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
}

type listResponse struct {
	Docs []User `json:"docs"`
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FindUserByEmail returns the first user matching the email, or nil when
// none exists.
func (c *Client) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	q := url.Values{}
	q.Set("where[email][equals]", email)
	q.Set("limit", "1")

	var out listResponse
	if err := c.do(ctx, http.MethodGet, "/users?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	if len(out.Docs) == 0 {
		return nil, nil
	}
	return &out.Docs[0], nil
}

func (c *Client) CreateUser(ctx context.Context, user *User, password string) (*User, error) {
	body := map[string]string{
		"email":    user.Email,
		"name":     user.Name,
		"role":     user.Role,
		"password": password,
	}
	var out struct {
		Doc User `json:"doc"`
	}
	if err := c.do(ctx, http.MethodPost, "/users", body, &out); err != nil {
		return nil, err
	}
	return &out.Doc, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, fields map[string]string) (*User, error) {
	var out struct {
		Doc User `json:"doc"`
	}
	if err := c.do(ctx, http.MethodPatch, "/users/"+url.PathEscape(id), fields, &out); err != nil {
		return nil, err
	}
	return &out.Doc, nil
}

// DeleteUser removes a user. A 404 is treated as success: deletes are
// idempotent under at-least-once webhook delivery.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	err := c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(id), nil, nil)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		return nil
	}
	return err
}

func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/users/forgot-password", map[string]string{"email": email}, nil)
}

// APIError is a non-2xx response from the Payload API.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("payload api returned status %d: %s", e.Status, e.Body)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("payload api request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode payload api response: %w", err)
	}
	return nil
}
