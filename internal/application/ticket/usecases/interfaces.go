package usecases

import (
	"context"

	"jellyfix/internal/application/ticket/dto"
)

// NotificationService is the outbound notification side effect invoked
// after a ticket is created. Implementations must never block the
// caller on delivery problems.
type NotificationService interface {
	NotifyTicketCreated(ticketID uint, itemName, issueType, message, user string)
}

type ReportIssueExecutor interface {
	Execute(ctx context.Context, cmd ReportIssueCommand) (*ReportIssueResult, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error)
}

type GetItemStatusExecutor interface {
	Execute(ctx context.Context, query GetItemStatusQuery) (*dto.TicketDTO, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*GetTicketResult, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context) ([]dto.TicketDTO, error)
}
