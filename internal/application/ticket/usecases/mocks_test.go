package usecases

import (
	"context"

	"jellyfix/internal/domain/ticket"
	vo "jellyfix/internal/domain/ticket/valueobjects"
	"jellyfix/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc                 func(ctx context.Context, t *ticket.Ticket) error
	FindByIDFunc             func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	FindLatestOpenByItemFunc func(ctx context.Context, jellyfinItemID string) (*ticket.Ticket, error)
	UpdateStatusFunc         func(ctx context.Context, ticketID uint, status vo.TicketStatus) error
	ListAllFunc              func(ctx context.Context) ([]*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindLatestOpenByItem(ctx context.Context, jellyfinItemID string) (*ticket.Ticket, error) {
	if m.FindLatestOpenByItemFunc != nil {
		return m.FindLatestOpenByItemFunc(ctx, jellyfinItemID)
	}
	return nil, nil
}

func (m *mockTicketRepository) UpdateStatus(ctx context.Context, ticketID uint, status vo.TicketStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, ticketID, status)
	}
	return nil
}

func (m *mockTicketRepository) ListAll(ctx context.Context) ([]*ticket.Ticket, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

type mockCommentRepository struct {
	SaveFunc           func(ctx context.Context, comment *ticket.Comment) error
	FindByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, comment *ticket.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) FindByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.FindByTicketIDFunc != nil {
		return m.FindByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockNotificationService struct {
	NotifyTicketCreatedFunc func(ticketID uint, itemName, issueType, message, user string)
}

func (m *mockNotificationService) NotifyTicketCreated(ticketID uint, itemName, issueType, message, user string) {
	if m.NotifyTicketCreatedFunc != nil {
		m.NotifyTicketCreatedFunc(ticketID, itemName, issueType, message, user)
	}
}

type mockLogger struct {
	DebugFunc  func(msg string, args ...any)
	InfoFunc   func(msg string, args ...any)
	WarnFunc   func(msg string, args ...any)
	ErrorFunc  func(msg string, args ...any)
	InfowFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	DebugwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {
	if m.DebugFunc != nil {
		m.DebugFunc(msg, args...)
	}
}

func (m *mockLogger) Info(msg string, args ...any) {
	if m.InfoFunc != nil {
		m.InfoFunc(msg, args...)
	}
}

func (m *mockLogger) Warn(msg string, args ...any) {
	if m.WarnFunc != nil {
		m.WarnFunc(msg, args...)
	}
}

func (m *mockLogger) Error(msg string, args ...any) {
	if m.ErrorFunc != nil {
		m.ErrorFunc(msg, args...)
	}
}

func (m *mockLogger) With(args ...any) logger.Interface {
	return m
}

func (m *mockLogger) Named(name string) logger.Interface {
	return m
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}
