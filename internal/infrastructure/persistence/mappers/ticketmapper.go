package mappers

import (
	"time"

	"jellyfix/internal/domain/ticket"
	vo "jellyfix/internal/domain/ticket/valueobjects"
	"jellyfix/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	// CommentToModel converts a comment domain entity to a persistence model.
	CommentToModel(c *ticket.Comment) *models.CommentModel

	// CommentToDomain converts a comment persistence model to a domain entity.
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)
}

type ticketMapper struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &ticketMapper{}
}

func (m *ticketMapper) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:             t.ID(),
		JellyfinItemID: t.JellyfinItemID(),
		ItemName:       t.ItemName(),
		IssueType:      t.IssueType(),
		Status:         t.Status().String(),
		CreatedAt:      t.CreatedAt().UnixMilli(),
	}
}

// ToDomain only converts the ticket fields. Comments are loaded
// separately by the repository.
func (m *ticketMapper) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, err
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.JellyfinItemID,
		model.ItemName,
		model.IssueType,
		status,
		millisToTime(model.CreatedAt),
	)
}

func (m *ticketMapper) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		User:      c.User(),
		Message:   c.Message(),
		IsAdmin:   c.IsAdmin(),
		CreatedAt: c.CreatedAt().UnixMilli(),
	}
}

func (m *ticketMapper) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.User,
		model.Message,
		model.IsAdmin,
		millisToTime(model.CreatedAt),
	)
}

func millisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond)).UTC()
}
