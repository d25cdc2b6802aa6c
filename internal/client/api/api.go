// Package api is the HTTP client for the pregnancy-companion REST API.
// One file per resource family; every call validates its inputs locally
// before issuing a request, reads the response body exactly once, and
// returns either a typed value or an *Error with a user-facing message.
package api

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

	"github.com/google/uuid"

	"github.com/bemgestar/bemgestar/internal/logging"
)

const defaultPlanTimeout = 10 * time.Second

// Client talks to the API at a fixed base URL (".../api"). It is safe for
// concurrent use; the bearer token travels per call, not in the client.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     logging.Logger

	// planTimeout caps every childbirth-plan call (PDF generation is slow
	// server-side). Overridable in tests.
	planTimeout time.Duration
}

func New(baseURL string, timeout time.Duration, log logging.Logger) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpc:       &http.Client{Timeout: timeout},
		log:         log.With("component", "api"),
		planTimeout: defaultPlanTimeout,
	}
}

func requireToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return validationError(MsgNoToken)
	}
	return nil
}

// do issues one request and returns the raw response body. Transport faults
// become KindNetwork (or KindTimeout when the context deadline fired),
// non-2xx statuses become KindHTTP with the message extracted from the body
// or the given fallback. The body is read exactly once.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, body any, fallback string) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Kind: KindDecode, Message: fallback, Err: err}
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: MsgConnection, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpc.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			c.log.Warn(ctx, "request timed out", "method", method, "path", path)
			return nil, &Error{Kind: KindTimeout, Message: MsgTimeout, Err: err}
		}
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return nil, &Error{Kind: KindNetwork, Message: MsgConnection, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: MsgConnection, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := extractMessage(raw, fallback)
		c.log.Warn(ctx, "request rejected", "method", method, "path", path, "status", resp.StatusCode)
		return nil, &Error{Kind: KindHTTP, Status: resp.StatusCode, Message: msg}
	}

	return raw, nil
}

// extractMessage pulls the server's message out of an error body. JSON is
// attempted first ("message", then "error.message"); a non-JSON body is used
// verbatim as the message. Anything else yields the module fallback.
func extractMessage(raw []byte, fallback string) string {
	var body struct {
		Message string `json:"message"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error.Message != "" {
			return body.Error.Message
		}
		return fallback
	}
	if text := strings.TrimSpace(string(raw)); text != "" {
		return text
	}
	return fallback
}

// textMessage interprets a success body that may be either JSON with a
// "message" field or plain text (the delete endpoints answer both ways).
func textMessage(raw []byte, fallback string) string {
	return extractMessage(raw, fallback)
}

// decodeList normalizes list responses: a bare JSON array, an object with a
// "data" array, or anything else (which becomes an empty slice, so callers
// never branch on response shape).
func decodeList[T any](raw []byte) []T {
	var items []T
	if err := json.Unmarshal(raw, &items); err == nil {
		if items == nil {
			items = []T{}
		}
		return items
	}

	var wrapper struct {
		Data []T `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapper); err == nil && wrapper.Data != nil {
		return wrapper.Data
	}

	return []T{}
}

// decodeObject decodes a single entity, accepting both a bare object and a
// {"data": {...}} wrapper.
func decodeObject[T any](raw []byte, fallback string) (*T, error) {
	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapper); err == nil && len(wrapper.Data) > 0 && wrapper.Data[0] == '{' {
		raw = wrapper.Data
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, &Error{Kind: KindDecode, Message: fallback, Err: fmt.Errorf("decode response: %w", err)}
	}
	return &v, nil
}
