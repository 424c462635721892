package admin

import (
	"context"

	"github.com/macgcloud/adminkit/core/client"
)

// Dashboard fetches the summary cards, trend chart, and model usage
// shares shown on the console landing page.
func (s *Service) Dashboard(ctx context.Context) (*client.Envelope[DashboardData], error) {
	return client.Get[DashboardData](ctx, s.client, "/api/dashboard")
}

// TokenUsage fetches the per-model token usage breakdown.
func (s *Service) TokenUsage(ctx context.Context) (*client.Envelope[TokenUsageData], error) {
	return client.Get[TokenUsageData](ctx, s.client, "/api/token-usage")
}
