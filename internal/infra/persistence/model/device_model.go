package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel is the GORM-specific struct for the 'devices' table.
// One row per distinct push token; rows are deactivated, never deleted.
type DeviceModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Token      string    `gorm:"type:varchar(512);not null;uniqueIndex"`
	DeviceID   string    `gorm:"type:varchar(255);index"`
	Platform   string    `gorm:"type:varchar(50);not null"`
	AppVersion string    `gorm:"type:varchar(50)"`
	IsActive   bool      `gorm:"not null;default:true;index"`
	LastActive time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}
