package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ConversationModel is the GORM-specific struct for the 'conversations' table.
// One row per job application thread between a teacher and a school.
type ConversationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	JobID     uuid.UUID `gorm:"type:uuid;not null;index"`
	SchoolID  uuid.UUID `gorm:"type:uuid;not null;index"`
	TeacherID uuid.UUID `gorm:"type:uuid;not null;index"`
	JobTitle  string    `gorm:"type:text;not null"`
	// Rolling mirror of recent messages, bounded in the repository.
	Log       datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConversationModel) TableName() string {
	return "conversations"
}
