// Package client is the Go consumer of the Harsh Enterprise REST API: CRUD
// record clients for customers and visits plus the dashboard aggregator.
// The server is the source of truth; callers re-fetch after every mutation
// instead of patching local state.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

// APIError carries the server's {"error": ...} envelope alongside the
// HTTP status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

type errorEnvelope struct {
	Error string `json:"error"`
}

// Client talks to the Harsh Enterprise backend.
type Client struct {
	http *resty.Client
}

// New builds a client for the given base URL. An empty baseURL falls back
// to the BACKEND_URL environment variable.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = os.Getenv("BACKEND_URL")
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{http: httpClient}
}

// SetToken installs a Bearer token for the /api group.
func (c *Client) SetToken(token string) {
	c.http.SetAuthToken(token)
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login authenticates against /auth/login and installs the returned token.
func (c *Client) Login(ctx context.Context, identifier, password string) error {
	var out loginResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(loginRequest{Identifier: identifier, Password: password}).
		SetResult(&out).
		Post("/auth/login")
	if err != nil {
		return fmt.Errorf("login request failed: %w", err)
	}
	if resp.IsError() {
		return apiError(resp)
	}

	c.SetToken(out.Token)
	return nil
}

// Customers returns the customer record client.
func (c *Client) Customers() *CustomerClient {
	return &CustomerClient{c: c}
}

// Visits returns the visit record client.
func (c *Client) Visits() *VisitClient {
	return &VisitClient{c: c}
}

func apiError(resp *resty.Response) error {
	var env errorEnvelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil || env.Error == "" {
		env.Error = resp.Status()
	}
	return &APIError{StatusCode: resp.StatusCode(), Message: env.Error}
}
