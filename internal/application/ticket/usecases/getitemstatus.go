package usecases

import (
	"context"

	"jellyfix/internal/application/ticket/dto"
	"jellyfix/internal/domain/ticket"
	"jellyfix/internal/shared/errors"
	"jellyfix/internal/shared/logger"
)

type GetItemStatusQuery struct {
	JellyfinItemID string
}

type GetItemStatusUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetItemStatusUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *GetItemStatusUseCase {
	return &GetItemStatusUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute returns the latest open ticket for the item, or nil when the
// item has no open ticket. A nil result is not an error.
func (uc *GetItemStatusUseCase) Execute(ctx context.Context, query GetItemStatusQuery) (*dto.TicketDTO, error) {
	if len(query.JellyfinItemID) == 0 {
		return nil, errors.NewValidationError("jellyfin_item_id is required")
	}

	t, err := uc.ticketRepo.FindLatestOpenByItem(ctx, query.JellyfinItemID)
	if err != nil {
		uc.logger.Errorw("failed to look up open ticket", "jellyfin_item_id", query.JellyfinItemID, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, nil
	}

	result := dto.NewTicketDTO(t)
	return &result, nil
}
