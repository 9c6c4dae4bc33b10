package postgres

import (
	"context"
	"encoding/json"
	"time"

	"teachmatch/internal/domain/entity"
	domainerrors "teachmatch/internal/domain/errors"
	"teachmatch/internal/domain/repository"
	"teachmatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// messageRepository implements the repository.MessageRepository interface.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// CreateMessage persists a new message.
func (repo *messageRepository) CreateMessage(ctx context.Context, message *entity.Message) error {
	messageM, err := fromMessageDomain(message)
	if err != nil {
		return errors.Wrap(err, "failed to map message")
	}

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrConversationNotFound.WrapMessage("invalid conversation reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required message fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt
	message.UpdatedAt = messageM.UpdatedAt

	return nil
}

// FindMessageByID retrieves a message by its unique ID, including soft-deleted rows.
func (repo *messageRepository) FindMessageByID(ctx context.Context, id uuid.UUID) (*entity.Message, error) {
	var messageM model.MessageModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&messageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMessageNotFound
		}

		return nil, errors.Wrap(err, "failed to find message by ID")
	}

	return toMessageDomain(&messageM)
}

// FindMessagesByConversation retrieves visible messages newest first, paginated.
func (repo *messageRepository) FindMessagesByConversation(ctx context.Context, conversationID uuid.UUID, limit, offset int) ([]*entity.Message, error) {
	var messageModels []*model.MessageModel

	if err := repo.db.WithContext(ctx).
		Where("conversation_id = ? AND is_deleted = ?", conversationID, false).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find messages by conversation")
	}

	messages := make([]*entity.Message, 0, len(messageModels))
	for _, messageM := range messageModels {
		message, err := toMessageDomain(messageM)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}

	return messages, nil
}

// MarkConversationRead flips every unread visible message addressed to the receiver.
func (repo *messageRepository) MarkConversationRead(ctx context.Context, conversationID, receiverID uuid.UUID, readAt time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("conversation_id = ? AND receiver_id = ? AND is_read = ? AND is_deleted = ?",
			conversationID, receiverID, false, false).
		Updates(map[string]any{
			"is_read": true,
			"read_at": readAt,
		})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to mark conversation read")
	}

	return result.RowsAffected, nil
}

// SoftDeleteMessage sets is_deleted and deleted_at on a message.
func (repo *messageRepository) SoftDeleteMessage(ctx context.Context, id uuid.UUID, deletedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]any{
			"is_deleted": true,
			"deleted_at": deletedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to soft delete message")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMessageNotFound
	}

	return nil
}

// FindLastMessages resolves per-conversation summaries for a user. Two grouped
// queries instead of a per-conversation loop: one window query for the most
// recent visible message, one aggregate for unread counts.
func (repo *messageRepository) FindLastMessages(ctx context.Context, conversationIDs []uuid.UUID, userID uuid.UUID) (map[uuid.UUID]*repository.ConversationLastMessage, error) {
	result := make(map[uuid.UUID]*repository.ConversationLastMessage, len(conversationIDs))
	if len(conversationIDs) == 0 {
		return result, nil
	}

	var lastModels []*model.MessageModel
	// Most recent visible message per conversation; ties broken by insertion order.
	if err := repo.db.WithContext(ctx).
		Raw(`SELECT DISTINCT ON (conversation_id) *
		     FROM messages
		     WHERE conversation_id IN ? AND is_deleted = false
		     ORDER BY conversation_id, created_at DESC, id DESC`, conversationIDs).
		Scan(&lastModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find last messages")
	}

	for _, messageM := range lastModels {
		message, err := toMessageDomain(messageM)
		if err != nil {
			return nil, err
		}
		result[message.ConversationID] = &repository.ConversationLastMessage{
			ConversationID: message.ConversationID,
			Message:        message,
		}
	}

	type unreadRow struct {
		ConversationID uuid.UUID
		Count          int64
	}
	var unreadRows []unreadRow
	if err := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Select("conversation_id, COUNT(*) AS count").
		Where("conversation_id IN ? AND receiver_id = ? AND is_read = ? AND is_deleted = ?",
			conversationIDs, userID, false, false).
		Group("conversation_id").
		Scan(&unreadRows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count unread messages")
	}

	for _, row := range unreadRows {
		if summary, ok := result[row.ConversationID]; ok {
			summary.UnreadCount = row.Count
		} else {
			result[row.ConversationID] = &repository.ConversationLastMessage{
				ConversationID: row.ConversationID,
				UnreadCount:    row.Count,
			}
		}
	}

	return result, nil
}

// --- Mapper Functions ---

func toMessageDomain(data *model.MessageModel) (*entity.Message, error) {
	if data == nil {
		return nil, nil
	}

	var attachments []string
	if len(data.Attachments) > 0 {
		if err := json.Unmarshal(data.Attachments, &attachments); err != nil {
			return nil, errors.Wrap(err, "failed to decode message attachments")
		}
	}

	return &entity.Message{
		ID:             data.ID,
		ConversationID: data.ConversationID,
		SenderID:       data.SenderID,
		ReceiverID:     data.ReceiverID,
		Body:           data.Body,
		Type:           entity.MessageType(data.Type),
		Attachments:    attachments,
		IsRead:         data.IsRead,
		ReadAt:         data.ReadAt,
		IsDeleted:      data.IsDeleted,
		DeletedAt:      data.DeletedAt,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}, nil
}

func fromMessageDomain(data *entity.Message) (*model.MessageModel, error) {
	if data == nil {
		return nil, nil
	}

	attachments := data.Attachments
	if attachments == nil {
		attachments = []string{}
	}
	encoded, err := json.Marshal(attachments)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode message attachments")
	}

	return &model.MessageModel{
		ID:             data.ID,
		ConversationID: data.ConversationID,
		SenderID:       data.SenderID,
		ReceiverID:     data.ReceiverID,
		Body:           data.Body,
		Type:           data.Type.String(),
		Attachments:    datatypes.JSON(encoded),
		IsRead:         data.IsRead,
		ReadAt:         data.ReadAt,
		IsDeleted:      data.IsDeleted,
		DeletedAt:      data.DeletedAt,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}, nil
}
