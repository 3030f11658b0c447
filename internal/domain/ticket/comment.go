package ticket

import (
	"fmt"
	"time"

	"jellyfix/internal/shared/biztime"
)

// AdminUserName is the display name that marks a comment as coming from
// an administrator. This is a trust-by-name convention carried over from
// the media server side, not real authorization.
const AdminUserName = "Admin"

// IsAdminUser reports whether a commenter name matches the privileged
// identity. The match is exact and case-sensitive.
func IsAdminUser(user string) bool {
	return user == AdminUserName
}

// Comment is a timestamped free-text entry attached to a ticket.
// Comments are never updated or deleted.
type Comment struct {
	id        uint
	ticketID  uint
	user      string
	message   string
	isAdmin   bool
	createdAt time.Time
}

func NewComment(ticketID uint, user, message string, isAdmin bool) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(user) == 0 {
		return nil, fmt.Errorf("user is required")
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("message cannot be empty")
	}

	return &Comment{
		ticketID:  ticketID,
		user:      user,
		message:   message,
		isAdmin:   isAdmin,
		createdAt: biztime.NowUTC(),
	}, nil
}

// NewInitialComment builds the comment that opens a ticket. It shares
// the ticket's creation timestamp so the pair reads as one event.
// The ticket must already have its ID assigned.
func NewInitialComment(t *Ticket, user, message string) (*Comment, error) {
	if t == nil || t.ID() == 0 {
		return nil, fmt.Errorf("ticket must be persisted before its initial comment")
	}

	c, err := NewComment(t.ID(), user, message, IsAdminUser(user))
	if err != nil {
		return nil, err
	}
	c.createdAt = t.CreatedAt()
	return c, nil
}

func ReconstructComment(
	id uint,
	ticketID uint,
	user string,
	message string,
	isAdmin bool,
	createdAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Comment{
		id:        id,
		ticketID:  ticketID,
		user:      user,
		message:   message,
		isAdmin:   isAdmin,
		createdAt: createdAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) TicketID() uint {
	return c.ticketID
}

func (c *Comment) User() string {
	return c.user
}

func (c *Comment) Message() string {
	return c.message
}

func (c *Comment) IsAdmin() bool {
	return c.isAdmin
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
