package admin

import (
	"context"

	"github.com/macgcloud/adminkit/core/client"
)

// Services lists the resold API services.
func (s *Service) Services(ctx context.Context) (*client.Envelope[ServicesPage], error) {
	return client.Get[ServicesPage](ctx, s.client, "/api/services")
}

// CreateService registers a new resold service.
func (s *Service) CreateService(ctx context.Context, req ServiceRequest) (*client.Envelope[ServiceInfo], error) {
	return client.Post[ServiceInfo](ctx, s.client, "/api/services", req)
}
