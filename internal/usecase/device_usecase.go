package usecase

import (
	"context"

	"teachmatch/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo carries the client-reported fields of a push registration.
type DeviceInfo struct {
	Token      string `json:"token"`
	DeviceID   string `json:"device_id,omitempty"`
	Platform   string `json:"platform"`
	AppVersion string `json:"app_version,omitempty"`
}

// DeviceUsecase defines the interface for push device registry use cases
type DeviceUsecase interface {
	// RegisterDevice records or refreshes a push token for the user. The token
	// is the identity: re-registering an existing token updates it in place,
	// and stale tokens of the same physical device are deactivated.
	RegisterDevice(ctx context.Context, userID uuid.UUID, info DeviceInfo) (*entity.Device, error)

	// UnregisterDevice deactivates the user's registration for a token,
	// typically on logout. Tokens owned by other users are left untouched.
	UnregisterDevice(ctx context.Context, userID uuid.UUID, token string) error

	// ListDevices returns every registration of the user, active first.
	ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error)
}
