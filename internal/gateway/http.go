package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/types"
)

// Client is a Gateway backed by the REST API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithToken sets the bearer token sent with every request.
func WithToken(token string) ClientOption {
	return func(c *Client) {
		c.token = token
	}
}

// NewClient creates a REST gateway for the API at baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Login exchanges credentials for a token and stores it on the client.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var resp types.LoginResponse
	body := types.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, "login", "", http.MethodPost, "/auth/login", body, &resp); err != nil {
		return err
	}
	c.token = resp.Token
	return nil
}

// ListResumes returns the authenticated user's résumés.
func (c *Client) ListResumes(ctx context.Context) ([]types.ResumeSummary, error) {
	var list []types.ResumeSummary
	if err := c.do(ctx, "list resumes", "", http.MethodGet, "/resumes", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// LoadResume implements Gateway.
func (c *Client) LoadResume(ctx context.Context, id string) (*types.Document, error) {
	var doc types.Document
	if err := c.do(ctx, "load resume", id, http.MethodGet, "/resumes/"+url.PathEscape(id), nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// SaveResume implements Gateway.
func (c *Client) SaveResume(ctx context.Context, doc *types.Document) (*types.Document, error) {
	if doc == nil {
		return nil, Validation("save resume", "", "document is required", nil)
	}
	method, path := http.MethodPost, "/resumes"
	if doc.ID != "" {
		method, path = http.MethodPut, "/resumes/"+url.PathEscape(doc.ID)
	}
	var saved types.Document
	if err := c.do(ctx, "save resume", doc.ID, method, path, doc, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// DeleteResume implements Gateway.
func (c *Client) DeleteResume(ctx context.Context, id string) error {
	return c.do(ctx, "delete resume", id, http.MethodDelete, "/resumes/"+url.PathEscape(id), nil, nil)
}

func (c *Client) do(ctx context.Context, op, id, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return Validation(op, id, "failed to encode request", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return Network(op, id, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Network(op, id, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 {
		return statusError(op, id, resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return Network(op, id, fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}

func statusError(op, id string, resp *http.Response) error {
	msg := readErrorMessage(resp.Body)
	switch resp.StatusCode {
	case http.StatusNotFound:
		return &Error{Kind: KindNotFound, Op: op, ID: id, Message: msg}
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return &Error{Kind: KindValidation, Op: op, ID: id, Message: msg}
	default:
		return Network(op, id, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, msg))
	}
}

// readErrorMessage extracts {"error": "..."} bodies and falls back to plain text.
func readErrorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 64<<10))
	if err != nil || len(data) == 0 {
		return ""
	}
	var body struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(data, &body) == nil && body.Error != "" {
		return body.Error
	}
	return strings.TrimSpace(string(data))
}
