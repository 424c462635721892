package admin

import (
	"context"

	"github.com/macgcloud/adminkit/core/client"
)

// Announcements lists platform announcements.
func (s *Service) Announcements(ctx context.Context) (*client.Envelope[AnnouncementsPage], error) {
	return client.Get[AnnouncementsPage](ctx, s.client, "/api/announcements")
}

// CreateAnnouncement publishes or drafts an announcement.
func (s *Service) CreateAnnouncement(ctx context.Context, req AnnouncementRequest) (*client.Envelope[Announcement], error) {
	return client.Post[Announcement](ctx, s.client, "/api/announcements", req)
}
