package ticket

import (
	"fmt"
	"time"

	vo "jellyfix/internal/domain/ticket/valueobjects"
	"jellyfix/internal/shared/biztime"
)

// Ticket is a reported issue against a media item. Tickets are
// append-only: after creation only the status field changes, and a
// ticket is never deleted.
type Ticket struct {
	id             uint
	jellyfinItemID string
	itemName       string
	issueType      string
	status         vo.TicketStatus
	createdAt      time.Time
	comments       []*Comment
}

func NewTicket(jellyfinItemID, itemName, issueType string) (*Ticket, error) {
	if len(jellyfinItemID) == 0 {
		return nil, fmt.Errorf("jellyfin item ID is required")
	}
	if len(itemName) == 0 {
		return nil, fmt.Errorf("item name is required")
	}
	if len(issueType) == 0 {
		return nil, fmt.Errorf("issue type is required")
	}

	return &Ticket{
		jellyfinItemID: jellyfinItemID,
		itemName:       itemName,
		issueType:      issueType,
		status:         vo.StatusNew,
		createdAt:      biztime.NowUTC(),
		comments:       []*Comment{},
	}, nil
}

func ReconstructTicket(
	id uint,
	jellyfinItemID string,
	itemName string,
	issueType string,
	status vo.TicketStatus,
	createdAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(jellyfinItemID) == 0 {
		return nil, fmt.Errorf("jellyfin item ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Ticket{
		id:             id,
		jellyfinItemID: jellyfinItemID,
		itemName:       itemName,
		issueType:      issueType,
		status:         status,
		createdAt:      createdAt,
		comments:       []*Comment{},
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) JellyfinItemID() string {
	return t.jellyfinItemID
}

func (t *Ticket) ItemName() string {
	return t.itemName
}

func (t *Ticket) IssueType() string {
	return t.issueType
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) Comments() []*Comment {
	commentsCopy := make([]*Comment, len(t.comments))
	copy(commentsCopy, t.comments)
	return commentsCopy
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// ChangeStatus overwrites the status with any valid value. Setting the
// current status again is a no-op, which keeps repeated identical
// updates idempotent.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	t.status = newStatus
	return nil
}

// IsOpen reports whether the ticket still needs triage.
func (t *Ticket) IsOpen() bool {
	return t.status.IsOpen()
}

func (t *Ticket) AttachComment(comment *Comment) error {
	if comment == nil {
		return fmt.Errorf("comment cannot be nil")
	}
	if comment.TicketID() != t.id {
		return fmt.Errorf("comment ticket ID mismatch")
	}
	t.comments = append(t.comments, comment)
	return nil
}
