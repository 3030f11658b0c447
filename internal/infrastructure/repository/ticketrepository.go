package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"jellyfix/internal/domain/ticket"
	vo "jellyfix/internal/domain/ticket/valueobjects"
	"jellyfix/internal/infrastructure/persistence/mappers"
	"jellyfix/internal/infrastructure/persistence/models"
	apperrors "jellyfix/internal/shared/errors"
)

// triageOrder sorts tickets for the dashboard: new first, then
// in_progress, then everything else; newest first within a group.
const triageOrder = "CASE status WHEN 'new' THEN 1 WHEN 'in_progress' THEN 2 ELSE 3 END, id DESC"

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) FindLatestOpenByItem(ctx context.Context, jellyfinItemID string) (*ticket.Ticket, error) {
	var model models.TicketModel

	err := r.db.WithContext(ctx).
		Where("jellyfin_item_id = ? AND status != ?", jellyfinItemID, vo.StatusResolved.String()).
		Order("id DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No open ticket is a normal outcome, not an error.
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find open ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) UpdateStatus(ctx context.Context, id uint, status vo.TicketStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Where("id = ?", id).
		Update("status", status.String())

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket status: %w", result.Error)
	}

	// RowsAffected == 0 means the id does not exist; overwriting a
	// missing ticket is defined as a no-op.
	return nil
}

func (r *TicketRepository) ListAll(ctx context.Context) ([]*ticket.Ticket, error) {
	var modelList []models.TicketModel

	if err := r.db.WithContext(ctx).Order(triageOrder).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(modelList))
	for i := range modelList {
		t, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}

	return tickets, nil
}
