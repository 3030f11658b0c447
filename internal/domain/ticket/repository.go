package ticket

import (
	"context"

	vo "jellyfix/internal/domain/ticket/valueobjects"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	FindByID(ctx context.Context, ticketID uint) (*Ticket, error)
	// FindLatestOpenByItem returns the highest-id non-resolved ticket
	// for the given media item, or nil when no such ticket exists.
	FindLatestOpenByItem(ctx context.Context, jellyfinItemID string) (*Ticket, error)
	// UpdateStatus overwrites the status unconditionally. A missing
	// ticket ID is a no-op.
	UpdateStatus(ctx context.Context, ticketID uint, status vo.TicketStatus) error
	// ListAll returns every ticket in triage order: new first, then
	// in_progress, then everything else; newest first within a group.
	ListAll(ctx context.Context) ([]*Ticket, error)
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	// FindByTicketID returns the ticket's comments in chronological
	// order (ascending by id).
	FindByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
}
