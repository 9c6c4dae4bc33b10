package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "teachmatch/internal/delivery/context"
	"teachmatch/internal/domain/constants"
	"teachmatch/internal/domain/entity"
	domainerrors "teachmatch/internal/domain/errors"
	"teachmatch/internal/domain/repository"
	"teachmatch/internal/errors"
	"teachmatch/internal/usecase"

	"github.com/google/uuid"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(
	deviceRepo repository.DeviceRepository,
	logger *slog.Logger,
) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		logger:     logger,
	}
}

func (srv *deviceService) loggerFrom(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterDevice records or refreshes a push registration. The token row is
// upserted in place, then any stale tokens the same physical device registered
// earlier are deactivated so one handset never receives duplicate pushes.
func (srv *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, info usecase.DeviceInfo) (*entity.Device, error) {
	token := strings.TrimSpace(info.Token)
	if token == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("push token is required")
	}

	platform := strings.ToLower(strings.TrimSpace(info.Platform))
	if platform != constants.PlatformIOS && platform != constants.PlatformAndroid {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("platform must be ios or android")
	}

	now := time.Now()
	device := &entity.Device{
		ID:         uuid.New(),
		UserID:     userID,
		Token:      token,
		DeviceID:   strings.TrimSpace(info.DeviceID),
		Platform:   platform,
		AppVersion: strings.TrimSpace(info.AppVersion),
		IsActive:   true,
		LastActive: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := srv.deviceRepo.UpsertDeviceByToken(ctx, device); err != nil {
		return nil, err
	}

	if device.DeviceID != "" {
		deactivated, err := srv.deviceRepo.DeactivateOthersForDevice(ctx, userID, device.DeviceID, token)
		if err != nil {
			// The fresh token is already registered; a failed cleanup only
			// risks duplicate pushes until the stale tokens age out.
			srv.loggerFrom(ctx).Warn("failed to deactivate stale tokens for device",
				slog.String("user_id", userID.String()),
				slog.String("device_id", device.DeviceID),
				slog.String("error", err.Error()),
			)
		} else if deactivated > 0 {
			srv.loggerFrom(ctx).Info("deactivated stale tokens for device",
				slog.String("user_id", userID.String()),
				slog.String("device_id", device.DeviceID),
				slog.Int64("deactivated", deactivated),
			)
		}
	}

	return device, nil
}

// UnregisterDevice deactivates the user's registration for a token. The
// ownership check keeps one user from silencing another user's device.
func (srv *deviceService) UnregisterDevice(ctx context.Context, userID uuid.UUID, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("push token is required")
	}

	devices, err := srv.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return err
	}

	owned := false
	for _, device := range devices {
		if device.Token == token {
			owned = true

			break
		}
	}
	if !owned {
		return domainerrors.ErrDeviceNotFound
	}

	if err := srv.deviceRepo.DeactivateByToken(ctx, token); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return err
	}

	return nil
}

// ListDevices returns every registration of the user, active first.
func (srv *deviceService) ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error) {
	return srv.deviceRepo.FindDevicesByUser(ctx, userID)
}
