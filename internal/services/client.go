package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/Memetgms/kitapinceleme/internal/shared"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://localhost:7153/api"

// TokenSource supplies the current bearer token, or "" when anonymous.
type TokenSource func() string

// Client is a typed HTTP client for the kitapinceleme REST API.
//
// All request methods take a [context.Context] and return errors from the
// shared taxonomy: [shared.ErrAuth] for 401, [shared.ErrNotFound] for 404 and
// [shared.ErrFetch] for transport failures and any other non-2xx status.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	token      TokenSource
}

// NewClient creates a Client for the API at baseURL.
// A nil httpClient falls back to [http.DefaultClient].
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// SetTokenSource installs the bearer token provider used on authenticated calls.
func (c *Client) SetTokenSource(src TokenSource) {
	c.token = src
}

// SetRateLimit caps outbound requests at rps requests per second.
// A non-positive rps removes the limit.
func (c *Client) SetRateLimit(rps float64) {
	if rps <= 0 {
		c.limiter = nil
		return
	}
	c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get performs a GET against an arbitrary API path, decoding the JSON
// response into result. Used by the raw passthrough commands.
func (c *Client) Get(ctx context.Context, path string, result any) error {
	return c.doRequest(ctx, http.MethodGet, path, nil, result)
}

// Post performs a POST against an arbitrary API path with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any, result any) error {
	return c.doRequest(ctx, http.MethodPost, path, body, result)
}

// doRequest performs an HTTP request against the API.
//
// body (when non-nil) is JSON-encoded; result (when non-nil) receives the
// decoded JSON response. The bearer token is attached whenever the token
// source yields one.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, body any, result any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%w: %v", shared.ErrFetch, err)
		}
	}

	apiURL := c.baseURL + endpoint

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, apiURL, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", shared.GenerateID())
	if c.token != nil {
		if token := c.token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// statusError maps a non-2xx response onto the shared error taxonomy,
// surfacing the server's message when one is decodable.
func statusError(resp *http.Response) error {
	var base error
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		base = shared.ErrAuth
	case http.StatusNotFound:
		base = shared.ErrNotFound
	default:
		base = shared.ErrFetch
	}

	if msg := decodeAPIMessage(resp.Body); msg != "" {
		return fmt.Errorf("%w: %s", base, msg)
	}
	return fmt.Errorf("%w: status %d", base, resp.StatusCode)
}

// decodeAPIMessage extracts a human-readable message from an API error body.
//
// The backend answers either {"message": "..."} or an ASP.NET validation
// shape {"errors": {"Field": ["msg", ...]}}; field messages are joined in
// field order so output is deterministic.
func decodeAPIMessage(r io.Reader) string {
	var payload struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return ""
	}

	if payload.Message != "" {
		return payload.Message
	}

	if len(payload.Errors) > 0 {
		fields := make([]string, 0, len(payload.Errors))
		for field := range payload.Errors {
			fields = append(fields, field)
		}
		sort.Strings(fields)

		var messages []string
		for _, field := range fields {
			messages = append(messages, payload.Errors[field]...)
		}
		return strings.Join(messages, ", ")
	}

	return ""
}
