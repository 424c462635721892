package admin

import (
	"context"
	"fmt"

	"github.com/macgcloud/adminkit/core/client"
)

// Users lists all platform accounts.
func (s *Service) Users(ctx context.Context) (*client.Envelope[UsersPage], error) {
	return client.Get[UsersPage](ctx, s.client, "/api/users")
}

// UserByID fetches a single account.
func (s *Service) UserByID(ctx context.Context, id int) (*client.Envelope[User], error) {
	return client.Get[User](ctx, s.client, fmt.Sprintf("/api/users/%d", id))
}

// CreateUser creates an account.
func (s *Service) CreateUser(ctx context.Context, req UserRequest) (*client.Envelope[User], error) {
	return client.Post[User](ctx, s.client, "/api/users", req)
}

// UpdateUser updates an account.
func (s *Service) UpdateUser(ctx context.Context, id int, req UserRequest) (*client.Envelope[User], error) {
	return client.Put[User](ctx, s.client, fmt.Sprintf("/api/users/%d", id), req)
}

// DeleteUser removes an account.
func (s *Service) DeleteUser(ctx context.Context, id int) (*client.Envelope[struct{}], error) {
	return client.Delete[struct{}](ctx, s.client, fmt.Sprintf("/api/users/%d", id))
}
