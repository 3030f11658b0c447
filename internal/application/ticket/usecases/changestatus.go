package usecases

import (
	"context"

	"jellyfix/internal/domain/ticket"
	vo "jellyfix/internal/domain/ticket/valueobjects"
	"jellyfix/internal/shared/errors"
	"jellyfix/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID uint
	Status   string
}

type ChangeStatusResult struct {
	TicketID uint
	Status   string
}

type ChangeStatusUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket_id is required")
	}

	// Unknown status values are rejected here; inside the enum there is
	// no transition graph and any value may replace any other.
	status, err := vo.NewTicketStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.UpdateStatus(ctx, cmd.TicketID, status); err != nil {
		uc.logger.Errorw("failed to update ticket status",
			"ticket_id", cmd.TicketID,
			"status", cmd.Status,
			"error", err,
		)
		return nil, err
	}

	uc.logger.Infow("ticket status updated", "ticket_id", cmd.TicketID, "status", status.String())

	return &ChangeStatusResult{
		TicketID: cmd.TicketID,
		Status:   status.String(),
	}, nil
}
