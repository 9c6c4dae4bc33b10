package postgres

import (
	"context"

	"teachmatch/internal/domain/entity"
	domainerrors "teachmatch/internal/domain/errors"
	"teachmatch/internal/domain/repository"
	"teachmatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// UpsertDeviceByToken inserts the device or overwrites the existing row keyed
// by the token. Re-registering another user's token transfers ownership, which
// matches how a shared tablet changes hands between accounts.
func (repo *deviceRepository) UpsertDeviceByToken(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"user_id", "device_id", "platform", "app_version",
				"is_active", "last_active", "updated_at",
			}),
		}).
		Create(deviceM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required device fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// DeactivateOthersForDevice deactivates every active token of the
// (user, deviceID) pair other than keepToken.
func (repo *deviceRepository) DeactivateOthersForDevice(ctx context.Context, userID uuid.UUID, deviceID, keepToken string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("user_id = ? AND device_id = ? AND token <> ? AND is_active = ?",
			userID, deviceID, keepToken, true).
		Update("is_active", false)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate stale device tokens")
	}

	return result.RowsAffected, nil
}

// DeactivateByToken deactivates the single registration for a token.
func (repo *deviceRepository) DeactivateByToken(ctx context.Context, token string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("token = ?", token).
		Update("is_active", false)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate device by token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeactivateByTokens bulk-deactivates registrations. Missing tokens are not an
// error; the push provider may report a token we already dropped.
func (repo *deviceRepository) DeactivateByTokens(ctx context.Context, tokens []string) (int64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("token IN ?", tokens).
		Update("is_active", false)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate devices by tokens")
	}

	return result.RowsAffected, nil
}

// FindActiveDevicesByUser retrieves all active devices for a user.
func (repo *deviceRepository) FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error) {
	return repo.findDevices(ctx, repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true))
}

// FindDevicesByUser retrieves all devices for a user, including inactive.
func (repo *deviceRepository) FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error) {
	return repo.findDevices(ctx, repo.db.WithContext(ctx).
		Where("user_id = ?", userID))
}

func (repo *deviceRepository) findDevices(ctx context.Context, query *gorm.DB) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	if err := query.
		Order("is_active DESC, last_active DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices")
	}

	devices := make([]*entity.Device, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// --- Mapper Functions ---

func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		ID:         data.ID,
		UserID:     data.UserID,
		Token:      data.Token,
		DeviceID:   data.DeviceID,
		Platform:   data.Platform,
		AppVersion: data.AppVersion,
		IsActive:   data.IsActive,
		LastActive: data.LastActive,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	if data == nil {
		return nil
	}

	return &model.DeviceModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Token:      data.Token,
		DeviceID:   data.DeviceID,
		Platform:   data.Platform,
		AppVersion: data.AppVersion,
		IsActive:   data.IsActive,
		LastActive: data.LastActive,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
