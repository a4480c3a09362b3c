package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/sporttogether/internal/common"
	"github.com/dmitrijs2005/sporttogether/internal/logging"
	"github.com/google/uuid"
)

const maxErrorBody = 4 << 10

// Transport is the request helper used by the API client.
type Transport interface {
	// Send encodes payload as JSON, issues the request and, on HTTP 200,
	// decodes the response into out (out may be nil). A nil payload sends no
	// body.
	Send(ctx context.Context, method, path string, payload, out any) error
}

// TokenSource yields the session token to attach to a request, or "".
type TokenSource func(ctx context.Context) string

type HTTPTransport struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	logger     logging.Logger
	token      TokenSource
}

type Option func(*HTTPTransport)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(t *HTTPTransport) { t.httpClient = c }
}

// WithTimeout bounds every request. It applies to a copy of the client, so
// a client passed with WithHTTPClient is left untouched.
func WithTimeout(d time.Duration) Option {
	return func(t *HTTPTransport) { t.timeout = d }
}

// WithTokenSource attaches the session token header when the source returns
// a non-empty token.
func WithTokenSource(src TokenSource) Option {
	return func(t *HTTPTransport) { t.token = src }
}

func NewHTTPTransport(baseURL string, logger logging.Logger, opts ...Option) *HTTPTransport {
	t := &HTTPTransport{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     logger.With("module", "transport"),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.timeout > 0 {
		c := *t.httpClient
		c.Timeout = t.timeout
		t.httpClient = &c
	}
	return t
}

func (t *HTTPTransport) Send(ctx context.Context, method, path string, payload, out any) error {
	url := t.baseURL + path

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode %s payload: %w", path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json;charset=UTF-8")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if t.token != nil {
		if token := t.token(ctx); token != "" {
			req.Header.Set(common.SessionTokenHeaderName, token)
		}
	}

	started := time.Now()
	resp, err := t.httpClient.Do(req)
	if err != nil {
		t.logger.Warn(ctx, "request failed", "request_id", requestID, "method", method, "path", path, "error", err)
		return &NetworkError{Method: method, URL: url, Err: err}
	}
	defer resp.Body.Close()

	t.logger.Debug(ctx, "request done",
		"request_id", requestID, "method", method, "path", path,
		"status", resp.StatusCode, "duration", time.Since(started))

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Method: method, URL: url, Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
