// Package client is the HTTP façade for the Buildrs API. Every public
// method validates its arguments, sanitizes the payload, checks the rate
// limiter and normalizes the outcome into a Response value. The façade
// never returns a Go error: transport failures, rate limiting and
// validation problems all surface through the discriminated Response.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/buildrs/match-engine/pkg/ratelimit"
	"github.com/buildrs/match-engine/pkg/sanitize"
)

const (
	errRateLimited     = "Rate limit exceeded. Please try again later."
	errInvalidRequest  = "Invalid request data"
	errInvalidResponse = "Invalid response format"
)

// Response is the normalized result of any façade call. Status carries the
// HTTP status, 429 for a local rate-limit rejection, 400 for local
// validation failures and 0 for transport-level failures.
type Response[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Status  int    `json:"status,omitempty"`
}

// raw is the untyped pipeline result; typed methods decode Data afterwards.
type raw struct {
	success bool
	data    json.RawMessage
	err     string
	status  int
}

type Client struct {
	baseURL    string
	clientID   string
	authToken  string
	httpClient *http.Client
	limiter    *ratelimit.Limiter
}

// New builds a façade against baseURL. A nil httpClient gets a 10s-timeout
// default; a nil limiter gets the default 100-per-15-minutes window. An
// empty clientID rate-limits under "anonymous".
func New(baseURL, clientID string, httpClient *http.Client, limiter *ratelimit.Limiter) *Client {
	if clientID == "" {
		clientID = "anonymous"
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if limiter == nil {
		limiter = ratelimit.NewLimiter(ratelimit.DefaultMaxRequests, ratelimit.DefaultWindow)
	}
	return &Client{
		baseURL:    baseURL,
		clientID:   clientID,
		httpClient: httpClient,
		limiter:    limiter,
	}
}

// SetAuthToken attaches a bearer token to subsequent requests. Guarded
// endpoints reject calls made without one.
func (c *Client) SetAuthToken(token string) {
	c.authToken = token
}

// request runs the shared pipeline: rate limit, sanitize, dispatch, decode.
// allowedKeys restricts which top-level body fields survive sanitization;
// nil keeps them all.
func (c *Client) request(ctx context.Context, method, endpoint string, body any, allowedKeys []string) raw {
	if !c.limiter.IsAllowed(c.clientID) {
		return raw{err: errRateLimited, status: http.StatusTooManyRequests}
	}

	var payload io.Reader
	if body != nil {
		sanitized, ok := sanitizeBody(body, allowedKeys)
		if !ok {
			return raw{err: errInvalidRequest, status: http.StatusBadRequest}
		}
		payload = bytes.NewReader(sanitized)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, payload)
	if err != nil {
		return raw{err: errInvalidRequest, status: http.StatusBadRequest}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// A canceled or expired context maps to a timeout, not a network
		// error, so callers can tell the two apart.
		if ctx.Err() != nil {
			return raw{err: "timeout", status: 0}
		}
		return raw{err: networkErrorMessage(err), status: 0}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return raw{err: networkErrorMessage(err), status: 0}
	}

	if !json.Valid(respBody) {
		return raw{err: errInvalidResponse, status: resp.StatusCode}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return raw{err: serverErrorMessage(respBody, resp.StatusCode), status: resp.StatusCode}
	}

	return raw{success: true, data: respBody, status: resp.StatusCode}
}

// sanitizeBody round-trips the body through JSON so every string field goes
// through text sanitization before transmission.
func sanitizeBody(body any, allowedKeys []string) ([]byte, bool) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, false
	}

	var fields map[string]any
	if err := json.Unmarshal(encoded, &fields); err != nil {
		return nil, false
	}

	sanitized, err := json.Marshal(sanitize.Object(fields, allowedKeys))
	if err != nil {
		return nil, false
	}
	return sanitized, true
}

func serverErrorMessage(body []byte, status int) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return fmt.Sprintf("HTTP %d", status)
}

func networkErrorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return "Network error"
	}
	return err.Error()
}

// into decodes a raw pipeline result into a typed Response.
func into[T any](r raw) Response[T] {
	resp := Response[T]{Success: r.success, Error: r.err, Status: r.status}
	if !r.success || len(r.data) == 0 {
		return resp
	}
	if err := json.Unmarshal(r.data, &resp.Data); err != nil {
		return Response[T]{Error: errInvalidResponse, Status: r.status}
	}
	return resp
}

// invalid is the short-circuit for argument validation failures: a 400-style
// response produced before the pipeline runs.
func invalid[T any](message string) Response[T] {
	return Response[T]{Error: message, Status: http.StatusBadRequest}
}
