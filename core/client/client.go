package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/macgcloud/adminkit/core/logger"
)

// TokenSource reads the persisted bearer token. An empty string with nil
// error means no session is stored and the request goes out anonymous;
// a non-nil error aborts the request before dispatch.
type TokenSource interface {
	ReadToken(ctx context.Context) (string, error)
}

// SessionInvalidator clears the persisted session. Wired to the same
// store the session manager writes, so a 401 anywhere invalidates the
// session for every consumer at once.
type SessionInvalidator interface {
	Clear(ctx context.Context) error
}

// Client is the single choke point for all outbound admin API calls.
type Client struct {
	baseURL          string
	httpClient       *http.Client
	log              *slog.Logger
	tokens           TokenSource
	invalidator      SessionInvalidator
	onSessionExpired func()
}

// New creates a transport client for the given configuration.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	c := &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Get issues a GET request and decodes the enveloped response.
func Get[T any](ctx context.Context, c *Client, path string) (*Envelope[T], error) {
	return call[T](ctx, c, http.MethodGet, path, nil)
}

// Post issues a POST request with a JSON body and decodes the enveloped response.
func Post[T any](ctx context.Context, c *Client, path string, body any) (*Envelope[T], error) {
	return call[T](ctx, c, http.MethodPost, path, body)
}

// Put issues a PUT request with a JSON body and decodes the enveloped response.
func Put[T any](ctx context.Context, c *Client, path string, body any) (*Envelope[T], error) {
	return call[T](ctx, c, http.MethodPut, path, body)
}

// Delete issues a DELETE request and decodes the enveloped response.
func Delete[T any](ctx context.Context, c *Client, path string) (*Envelope[T], error) {
	return call[T](ctx, c, http.MethodDelete, path, nil)
}

func call[T any](ctx context.Context, c *Client, method, path string, body any) (*Envelope[T], error) {
	start := time.Now()

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		// Local configuration errors fail fast instead of being
		// swallowed; there is no response to interpret.
		c.log.Warn("request setup failed",
			logger.Component("client"),
			slog.String("method", method),
			slog.String("path", path),
			logger.Error(err))
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = classifyTransportError(err)
		c.log.Warn("request transport failed",
			logger.Component("client"),
			slog.String("method", method),
			slog.String("path", path),
			logger.Duration(time.Since(start)),
			logger.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportError(err)
	}

	c.log.Debug("request completed",
		logger.Component("client"),
		slog.String("method", method),
		slog.String("path", path),
		logger.Status(resp.StatusCode),
		logger.Duration(time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.httpStatusError(ctx, resp.StatusCode, raw)
	}

	var env Envelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode response envelope: %w", err)
	}

	if !env.Success() {
		return nil, &APIError{Code: env.Code, Message: env.Message}
	}

	return &env, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	if c.tokens != nil {
		token, err := c.tokens.ReadToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("read session token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	return req, nil
}

// httpStatusError maps non-2xx responses onto the error taxonomy. The
// 401 branch clears the persisted session and fires the expiry hook
// before returning; it is the only error path with side effects.
func (c *Client) httpStatusError(ctx context.Context, status int, raw []byte) error {
	switch status {
	case http.StatusUnauthorized:
		c.invalidateSession(ctx)
		return ErrSessionExpired
	case http.StatusForbidden:
		return ErrPermissionDenied
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusInternalServerError:
		return ErrServerError
	}

	var env Envelope[json.RawMessage]
	if err := json.Unmarshal(raw, &env); err == nil && env.Message != "" {
		return &HTTPError{Status: status, Message: env.Message}
	}
	return &HTTPError{Status: status}
}

func (c *Client) invalidateSession(ctx context.Context) {
	if c.invalidator != nil {
		if err := c.invalidator.Clear(ctx); err != nil {
			c.log.Error("failed to clear session after 401",
				logger.Component("client"),
				logger.Error(err))
		}
	}
	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
}

// classifyTransportError maps failures that produced no HTTP response.
// Timeouts are checked before generic connectivity failures;
// unrecognized errors pass through unchanged.
func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrRequestTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return ErrRequestTimeout
	}

	var dnsErr *net.DNSError
	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.As(err, &dnsErr) {
		return ErrNetworkFailure
	}

	return err
}
