package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"jellyfix/internal/domain/ticket"
	"jellyfix/internal/infrastructure/persistence/mappers"
	"jellyfix/internal/infrastructure/persistence/models"
)

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *CommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(c)

	// The referenced ticket is not checked for existence; comments are
	// always created through the service layer which holds a live ticket.
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *CommentRepository) FindByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	var modelList []models.CommentModel

	err := r.db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("id ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}

	comments := make([]*ticket.Comment, 0, len(modelList))
	for i := range modelList {
		c, err := r.mapper.CommentToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	return comments, nil
}
