package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
type NotificationModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Type      string         `gorm:"type:varchar(50);not null;index"`
	Title     string         `gorm:"type:text;not null"`
	Message   string         `gorm:"type:text;not null"`
	Data      datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'"`
	IsRead    bool           `gorm:"not null;default:false;index"`
	ReadAt    *time.Time
	CreatedAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
