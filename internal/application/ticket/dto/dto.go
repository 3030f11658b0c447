// Package dto defines the wire representations of tickets and comments.
// Field names follow the JSON contract consumed by the Jellyfin-side
// injector script and the admin dashboard.
package dto

import (
	"jellyfix/internal/domain/ticket"
	"jellyfix/internal/shared/biztime"
)

type TicketDTO struct {
	ID             uint   `json:"id"`
	JellyfinItemID string `json:"jellyfin_item_id"`
	ItemName       string `json:"item_name"`
	IssueType      string `json:"issue_type"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
}

type CommentDTO struct {
	ID        uint   `json:"id"`
	TicketID  uint   `json:"ticket_id"`
	User      string `json:"user"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
	IsAdmin   bool   `json:"is_admin"`
}

func NewTicketDTO(t *ticket.Ticket) TicketDTO {
	return TicketDTO{
		ID:             t.ID(),
		JellyfinItemID: t.JellyfinItemID(),
		ItemName:       t.ItemName(),
		IssueType:      t.IssueType(),
		Status:         t.Status().String(),
		CreatedAt:      biztime.FormatTimestamp(t.CreatedAt()),
	}
}

func NewTicketDTOList(tickets []*ticket.Ticket) []TicketDTO {
	list := make([]TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		list = append(list, NewTicketDTO(t))
	}
	return list
}

func NewCommentDTO(c *ticket.Comment) CommentDTO {
	return CommentDTO{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		User:      c.User(),
		Message:   c.Message(),
		CreatedAt: biztime.FormatTimestamp(c.CreatedAt()),
		IsAdmin:   c.IsAdmin(),
	}
}

func NewCommentDTOList(comments []*ticket.Comment) []CommentDTO {
	list := make([]CommentDTO, 0, len(comments))
	for _, c := range comments {
		list = append(list, NewCommentDTO(c))
	}
	return list
}
