package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"teachmatch/internal/domain/entity"
	domainerrors "teachmatch/internal/domain/errors"
	mockRepo "teachmatch/internal/mocks/repository"
	"teachmatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return deviceServiceFixtures{
		service:    NewDeviceService(deviceRepo, logger),
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		UpsertDeviceByToken(ctx, mock.MatchedBy(func(d *entity.Device) bool {
			return d.UserID == userID && d.Token == "fcm-token" && d.Platform == "ios" && d.IsActive
		})).
		Return(nil)

	fx.deviceRepo.EXPECT().
		DeactivateOthersForDevice(ctx, userID, "iphone-15", "fcm-token").
		Return(int64(1), nil)

	device, err := fx.service.RegisterDevice(ctx, userID, usecase.DeviceInfo{
		Token:      "fcm-token",
		DeviceID:   "iphone-15",
		Platform:   "iOS",
		AppVersion: "2.4.1",
	})
	require.NoError(t, err)
	require.NotNil(t, device)
	assert.Equal(t, "ios", device.Platform)
	assert.Equal(t, "2.4.1", device.AppVersion)
}

func TestDeviceService_RegisterDevice_NoDeviceIDSkipsCleanup(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		UpsertDeviceByToken(ctx, mock.AnythingOfType("*entity.Device")).
		Return(nil)

	// No DeactivateOthersForDevice call without a device identifier.
	device, err := fx.service.RegisterDevice(ctx, userID, usecase.DeviceInfo{
		Token:    "fcm-token",
		Platform: "android",
	})
	require.NoError(t, err)
	assert.Empty(t, device.DeviceID)
}

func TestDeviceService_RegisterDevice_CleanupFailureOnlyWarns(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		UpsertDeviceByToken(ctx, mock.AnythingOfType("*entity.Device")).
		Return(nil)

	fx.deviceRepo.EXPECT().
		DeactivateOthersForDevice(ctx, userID, "pixel-8", "fcm-token").
		Return(int64(0), errors.New("lock timeout"))

	device, err := fx.service.RegisterDevice(ctx, userID, usecase.DeviceInfo{
		Token:    "fcm-token",
		DeviceID: "pixel-8",
		Platform: "android",
	})
	require.NoError(t, err)
	assert.NotNil(t, device)
}

func TestDeviceService_RegisterDevice_Validation(t *testing.T) {
	tests := []struct {
		name string
		info usecase.DeviceInfo
	}{
		{
			name: "empty token",
			info: usecase.DeviceInfo{Token: "   ", Platform: "ios"},
		},
		{
			name: "missing platform",
			info: usecase.DeviceInfo{Token: "fcm-token"},
		},
		{
			name: "web is not a push platform",
			info: usecase.DeviceInfo{Token: "fcm-token", Platform: "web"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)

			device, err := fx.service.RegisterDevice(context.Background(), uuid.New(), tt.info)
			assert.Nil(t, device)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestDeviceService_RegisterDevice_UpsertFailure(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	dbErr := errors.New("connection refused")

	fx.deviceRepo.EXPECT().
		UpsertDeviceByToken(ctx, mock.AnythingOfType("*entity.Device")).
		Return(dbErr)

	device, err := fx.service.RegisterDevice(ctx, uuid.New(), usecase.DeviceInfo{
		Token:    "fcm-token",
		Platform: "ios",
	})
	assert.Nil(t, device)
	assert.ErrorIs(t, err, dbErr)
}

func TestDeviceService_UnregisterDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.Device{
			{ID: uuid.New(), UserID: userID, Token: "other-token"},
			{ID: uuid.New(), UserID: userID, Token: "fcm-token"},
		}, nil)

	fx.deviceRepo.EXPECT().
		DeactivateByToken(ctx, "fcm-token").
		Return(nil)

	err := fx.service.UnregisterDevice(ctx, userID, "fcm-token")
	require.NoError(t, err)
}

func TestDeviceService_UnregisterDevice_NotOwned(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.Device{
			{ID: uuid.New(), UserID: userID, Token: "other-token"},
		}, nil)

	err := fx.service.UnregisterDevice(ctx, userID, "somebody-elses-token")
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestDeviceService_UnregisterDevice_EmptyToken(t *testing.T) {
	fx := createTestDeviceService(t)

	err := fx.service.UnregisterDevice(context.Background(), uuid.New(), "  ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDeviceService_ListDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	devices := []*entity.Device{
		{ID: uuid.New(), UserID: userID, Token: "active", IsActive: true},
		{ID: uuid.New(), UserID: userID, Token: "retired", IsActive: false},
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return(devices, nil)

	got, err := fx.service.ListDevices(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, devices, got)
}
