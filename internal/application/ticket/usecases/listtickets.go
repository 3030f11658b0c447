package usecases

import (
	"context"

	"jellyfix/internal/application/ticket/dto"
	"jellyfix/internal/domain/ticket"
	"jellyfix/internal/shared/logger"
)

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute returns every ticket in triage order for the dashboard.
func (uc *ListTicketsUseCase) Execute(ctx context.Context) ([]dto.TicketDTO, error) {
	tickets, err := uc.ticketRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}
	return dto.NewTicketDTOList(tickets), nil
}
