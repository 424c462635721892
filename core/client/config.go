package client

import (
	"log/slog"
	"net/http"
	"time"
)

// Config holds transport configuration loaded from the environment.
type Config struct {
	// BaseURL is the admin API host. The default matches the local
	// development server.
	BaseURL string `env:"ADMIN_API_BASE_URL" envDefault:"http://localhost:8080"`
	// Timeout bounds each request end to end.
	Timeout time.Duration `env:"ADMIN_API_TIMEOUT" envDefault:"10s"`
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. The configured
// timeout is not applied to a caller-provided client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for request-level debug logging.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithTokenSource sets the store the bearer token is read from on every
// request. Reading from the persisted store (rather than any in-memory
// session copy) lets requests issued before session hydration still
// carry credentials.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithSessionInvalidator sets the store cleared when a request comes
// back 401.
func WithSessionInvalidator(si SessionInvalidator) Option {
	return func(c *Client) {
		c.invalidator = si
	}
}

// WithOnSessionExpired sets the hook fired after a 401 has invalidated
// the session, typically to navigate to the login entry point.
func WithOnSessionExpired(fn func()) Option {
	return func(c *Client) {
		c.onSessionExpired = fn
	}
}
