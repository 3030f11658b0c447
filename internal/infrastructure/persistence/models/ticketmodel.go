package models

type TicketModel struct {
	ID             uint   `gorm:"primaryKey"`
	JellyfinItemID string `gorm:"size:64;not null;index"`
	ItemName       string `gorm:"size:255;not null"`
	IssueType      string `gorm:"size:100;not null"`
	Status         string `gorm:"size:20;not null;index;default:new"`
	CreatedAt      int64  `gorm:"not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type CommentModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	User      string `gorm:"size:255;not null"`
	Message   string `gorm:"type:text;not null"`
	IsAdmin   bool   `gorm:"not null;default:false"`
	CreatedAt int64  `gorm:"not null"`
}

func (CommentModel) TableName() string {
	return "comments"
}
