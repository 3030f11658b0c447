package ticket

import (
	"jellyfix/internal/application/ticket/usecases"
)

type CreateTicketRequest struct {
	JellyfinItemID string `json:"jellyfin_item_id" binding:"required"`
	ItemName       string `json:"item_name" binding:"required"`
	IssueType      string `json:"issue_type" binding:"required"`
	InitialComment string `json:"initial_comment" binding:"required"`
	User           string `json:"user" binding:"required"`
}

func (r *CreateTicketRequest) ToCommand() usecases.ReportIssueCommand {
	return usecases.ReportIssueCommand{
		JellyfinItemID: r.JellyfinItemID,
		ItemName:       r.ItemName,
		IssueType:      r.IssueType,
		InitialComment: r.InitialComment,
		User:           r.User,
	}
}

type AddCommentRequest struct {
	TicketID uint   `json:"ticket_id" binding:"required"`
	User     string `json:"user" binding:"required"`
	Message  string `json:"message" binding:"required"`
}

func (r *AddCommentRequest) ToCommand() usecases.AddCommentCommand {
	return usecases.AddCommentCommand{
		TicketID: r.TicketID,
		User:     r.User,
		Message:  r.Message,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
