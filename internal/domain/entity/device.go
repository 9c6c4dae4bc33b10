// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device represents one push-capable app installation. There is one row per
// distinct push token; a token belongs to at most one active registration.
// Devices are deactivated, never deleted, on logout or permanent push failure.
type Device struct {
	ID         uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the registration row.
	UserID     uuid.UUID `json:"user_id"`     // The ID of the user who owns this device.
	Token      string    `json:"token"`       // Push provider token, unique across the table.
	DeviceID   string    `json:"device_id"`   // Client-reported physical device identifier, may be empty.
	Platform   string    `json:"platform"`    // Device platform (ios, android).
	AppVersion string    `json:"app_version"` // App version reported at registration.
	IsActive   bool      `json:"is_active"`   // Inactive devices are skipped during fan-out.
	LastActive time.Time `json:"last_active"` // Timestamp of the most recent registration refresh.
	CreatedAt  time.Time `json:"created_at"`  // Timestamp of when this device was first registered.
	UpdatedAt  time.Time `json:"updated_at"`  // Timestamp of the last modification.
}
