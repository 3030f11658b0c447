package usecases

import (
	"context"

	"jellyfix/internal/application/ticket/dto"
	"jellyfix/internal/domain/ticket"
	"jellyfix/internal/shared/errors"
	"jellyfix/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
}

type GetTicketResult struct {
	Ticket   dto.TicketDTO
	Comments []dto.CommentDTO
}

type GetTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*GetTicketResult, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket_id is required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, query.TicketID)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to load ticket", "ticket_id", query.TicketID, "error", err)
		}
		return nil, err
	}

	comments, err := uc.commentRepo.FindByTicketID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load comments", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	return &GetTicketResult{
		Ticket:   dto.NewTicketDTO(t),
		Comments: dto.NewCommentDTOList(comments),
	}, nil
}
