package usecases

import (
	"context"

	"jellyfix/internal/domain/ticket"
	"jellyfix/internal/shared/errors"
	"jellyfix/internal/shared/goroutine"
	"jellyfix/internal/shared/logger"
)

type ReportIssueCommand struct {
	JellyfinItemID string
	ItemName       string
	IssueType      string
	InitialComment string
	User           string
}

type ReportIssueResult struct {
	TicketID uint
	Status   string
}

// ReportIssueUseCase creates a ticket together with its initial comment
// and schedules the email notification once both are committed.
type ReportIssueUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	notifier    NotificationService
	logger      logger.Interface
}

func NewReportIssueUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	notifier NotificationService,
	logger logger.Interface,
) *ReportIssueUseCase {
	return &ReportIssueUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *ReportIssueUseCase) Execute(ctx context.Context, cmd ReportIssueCommand) (*ReportIssueResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Warnw("invalid report issue command", "error", err)
		return nil, err
	}

	newTicket, err := ticket.NewTicket(cmd.JellyfinItemID, cmd.ItemName, cmd.IssueType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	initialComment, err := ticket.NewInitialComment(newTicket, cmd.User, cmd.InitialComment)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// A failure here leaves a ticket without its opening comment. The
	// pair is treated as effectively atomic; this gap is accepted.
	if err := uc.commentRepo.Save(ctx, initialComment); err != nil {
		uc.logger.Errorw("failed to save initial comment",
			"ticket_id", newTicket.ID(),
			"error", err,
		)
		return nil, err
	}

	uc.logger.Infow("ticket created",
		"ticket_id", newTicket.ID(),
		"jellyfin_item_id", cmd.JellyfinItemID,
		"issue_type", cmd.IssueType,
	)

	// Fire-and-forget: the HTTP response never waits on SMTP.
	ticketID := newTicket.ID()
	goroutine.SafeGo(uc.logger, "ticket-notification", func() {
		uc.notifier.NotifyTicketCreated(ticketID, cmd.ItemName, cmd.IssueType, cmd.InitialComment, cmd.User)
	})

	return &ReportIssueResult{
		TicketID: newTicket.ID(),
		Status:   newTicket.Status().String(),
	}, nil
}

func (uc *ReportIssueUseCase) validateCommand(cmd ReportIssueCommand) error {
	if len(cmd.JellyfinItemID) == 0 {
		return errors.NewValidationError("jellyfin_item_id is required")
	}
	if len(cmd.ItemName) == 0 {
		return errors.NewValidationError("item_name is required")
	}
	if len(cmd.IssueType) == 0 {
		return errors.NewValidationError("issue_type is required")
	}
	if len(cmd.InitialComment) == 0 {
		return errors.NewValidationError("initial_comment is required")
	}
	if len(cmd.User) == 0 {
		return errors.NewValidationError("user is required")
	}
	return nil
}
