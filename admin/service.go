package admin

import (
	"context"

	"github.com/macgcloud/adminkit/core/auth"
	"github.com/macgcloud/adminkit/core/client"
)

// Service exposes the admin API endpoints over a shared transport
// client. Methods return the full response envelope; unwrap Data as
// needed.
type Service struct {
	client *client.Client
}

// NewService binds the API surface to a transport client.
func NewService(c *client.Client) *Service {
	return &Service{client: c}
}

// Login exchanges credentials for a bearer token.
func (s *Service) Login(ctx context.Context, creds auth.Credentials) (*client.Envelope[LoginResponse], error) {
	return client.Post[LoginResponse](ctx, s.client, "/api/login", creds)
}

// Authenticate implements auth.Authenticator. It returns the issued
// token, or "" when the server answered success without one; the
// session manager turns that into a failed login.
func (s *Service) Authenticate(ctx context.Context, creds auth.Credentials) (string, error) {
	env, err := s.Login(ctx, creds)
	if err != nil {
		return "", err
	}
	if env.Data == nil {
		return "", nil
	}
	return env.Data.Token, nil
}

// Health calls the API health check endpoint.
func (s *Service) Health(ctx context.Context) (*client.Envelope[string], error) {
	return client.Get[string](ctx, s.client, "/api/test")
}
