package usecases

import (
	"context"

	"jellyfix/internal/domain/ticket"
	"jellyfix/internal/shared/errors"
	"jellyfix/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID uint
	User     string
	Message  string
}

type AddCommentResult struct {
	CommentID uint
}

type AddCommentUseCase struct {
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewAddCommentUseCase(
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket_id is required")
	}

	// Admin standing is a naming convention, not authenticated identity.
	isAdmin := ticket.IsAdminUser(cmd.User)

	comment, err := ticket.NewComment(cmd.TicketID, cmd.User, cmd.Message, isAdmin)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("comment added",
		"ticket_id", cmd.TicketID,
		"comment_id", comment.ID(),
		"is_admin", isAdmin,
	)

	return &AddCommentResult{CommentID: comment.ID()}, nil
}
