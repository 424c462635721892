package admin

import (
	"context"
	"fmt"

	"github.com/macgcloud/adminkit/core/client"
)

// Tickets lists support tickets.
func (s *Service) Tickets(ctx context.Context) (*client.Envelope[TicketsPage], error) {
	return client.Get[TicketsPage](ctx, s.client, "/api/tickets")
}

// CreateTicket opens a support ticket.
func (s *Service) CreateTicket(ctx context.Context, req TicketRequest) (*client.Envelope[Ticket], error) {
	return client.Post[Ticket](ctx, s.client, "/api/tickets", req)
}

// ReplyTicket adds a reply to a ticket thread.
func (s *Service) ReplyTicket(ctx context.Context, id string, req TicketReplyRequest) (*client.Envelope[TicketReply], error) {
	return client.Post[TicketReply](ctx, s.client, fmt.Sprintf("/api/tickets/%s/reply", id), req)
}
