// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"teachmatch/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
)

// DeviceRepository defines the interface for device-related database
// operations. Rows are keyed by the unique push token; concurrent
// registrations of the same token resolve last-write-wins on the upsert.
type DeviceRepository interface {
	// UpsertDeviceByToken inserts the device or, when the token already
	// exists, overwrites owner, platform, device id, app version and
	// reactivates the row.
	UpsertDeviceByToken(ctx context.Context, device *entity.Device) error

	// DeactivateOthersForDevice deactivates every active token of the
	// (user, deviceID) pair other than keepToken. Used when a physical device
	// re-registers with a fresh token.
	DeactivateOthersForDevice(ctx context.Context, userID uuid.UUID, deviceID, keepToken string) (int64, error)

	// DeactivateByToken deactivates the single registration for a token.
	DeactivateByToken(ctx context.Context, token string) error

	// DeactivateByTokens bulk-deactivates registrations; used exclusively as
	// feedback from push-delivery failures.
	DeactivateByTokens(ctx context.Context, tokens []string) (int64, error)

	// FindActiveDevicesByUser retrieves all active devices for a user.
	FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error)

	// FindDevicesByUser retrieves all devices for a user, including inactive.
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error)
}
