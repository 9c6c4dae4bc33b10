package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MessageModel is the GORM-specific struct for the 'messages' table.
// Rows are never hard-deleted; the sender may only flip is_deleted.
type MessageModel struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ConversationID uuid.UUID      `gorm:"type:uuid;not null;index"`
	SenderID       uuid.UUID      `gorm:"type:uuid;not null;index"`
	ReceiverID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Body           string         `gorm:"type:text;not null"`
	Type           string         `gorm:"type:varchar(50);not null;default:'text'"`
	Attachments    datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	IsRead         bool           `gorm:"not null;default:false;index"`
	ReadAt         *time.Time
	IsDeleted      bool `gorm:"not null;default:false;index"`
	DeletedAt      *time.Time
	CreatedAt      time.Time `gorm:"index"`
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
