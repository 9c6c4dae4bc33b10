package postgres

import (
	"context"
	"encoding/json"

	"teachmatch/internal/domain/entity"
	domainerrors "teachmatch/internal/domain/errors"
	"teachmatch/internal/domain/repository"
	"teachmatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// conversationRepository implements the repository.ConversationRepository interface.
type conversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository is the constructor for conversationRepository.
func NewConversationRepository(db *gorm.DB) repository.ConversationRepository {
	return &conversationRepository{
		db: db,
	}
}

// CreateConversation persists a new application thread.
func (repo *conversationRepository) CreateConversation(ctx context.Context, conversation *entity.Conversation) error {
	conversationM, err := fromConversationDomain(conversation)
	if err != nil {
		return errors.Wrap(err, "failed to map conversation")
	}

	if err := repo.db.WithContext(ctx).Create(conversationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrConversationNotFound.WrapMessage("invalid job or user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create conversation")
	}

	conversation.ID = conversationM.ID
	conversation.CreatedAt = conversationM.CreatedAt
	conversation.UpdatedAt = conversationM.UpdatedAt

	return nil
}

// FindConversationByID retrieves a conversation by its unique ID.
func (repo *conversationRepository) FindConversationByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error) {
	var conversationM model.ConversationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&conversationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation by ID")
	}

	return toConversationDomain(&conversationM)
}

// FindConversationsByParty retrieves every conversation the user takes part in.
func (repo *conversationRepository) FindConversationsByParty(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error) {
	var conversationModels []*model.ConversationModel

	if err := repo.db.WithContext(ctx).
		Where("school_id = ? OR teacher_id = ?", userID, userID).
		Order("updated_at DESC, created_at DESC").
		Find(&conversationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find conversations by party")
	}

	conversations := make([]*entity.Conversation, 0, len(conversationModels))
	for _, conversationM := range conversationModels {
		conversation, err := toConversationDomain(conversationM)
		if err != nil {
			return nil, err
		}
		conversations = append(conversations, conversation)
	}

	return conversations, nil
}

// AppendCommunicationEntry appends a mirror entry to the conversation's
// rolling log, trimming the oldest entries beyond the bound. The load takes a
// row lock so concurrent sends to one conversation serialize instead of
// overwriting each other's entries; callers wrap it in the transaction manager
// together with the message insert.
func (repo *conversationRepository) AppendCommunicationEntry(ctx context.Context, conversationID uuid.UUID, entry entity.CommunicationEntry) error {
	var conversationM model.ConversationModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", conversationID).
		First(&conversationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrConversationNotFound
		}

		return errors.Wrap(err, "failed to load conversation log")
	}

	var log []entity.CommunicationEntry
	if len(conversationM.Log) > 0 {
		if err := json.Unmarshal(conversationM.Log, &log); err != nil {
			return errors.Wrap(err, "failed to decode conversation log")
		}
	}

	log = append(log, entry)
	if len(log) > entity.MaxCommunicationLogEntries {
		log = log[len(log)-entity.MaxCommunicationLogEntries:]
	}

	encoded, err := json.Marshal(log)
	if err != nil {
		return errors.Wrap(err, "failed to encode conversation log")
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.ConversationModel{}).
		Where("id = ?", conversationID).
		Update("log", datatypes.JSON(encoded)).Error; err != nil {
		return errors.Wrap(err, "failed to append communication entry")
	}

	return nil
}

// --- Mapper Functions ---

func toConversationDomain(data *model.ConversationModel) (*entity.Conversation, error) {
	if data == nil {
		return nil, nil
	}

	var log []entity.CommunicationEntry
	if len(data.Log) > 0 {
		if err := json.Unmarshal(data.Log, &log); err != nil {
			return nil, errors.Wrap(err, "failed to decode conversation log")
		}
	}

	return &entity.Conversation{
		ID:        data.ID,
		JobID:     data.JobID,
		SchoolID:  data.SchoolID,
		TeacherID: data.TeacherID,
		JobTitle:  data.JobTitle,
		Log:       log,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}

func fromConversationDomain(data *entity.Conversation) (*model.ConversationModel, error) {
	if data == nil {
		return nil, nil
	}

	log := data.Log
	if log == nil {
		log = []entity.CommunicationEntry{}
	}
	encoded, err := json.Marshal(log)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode conversation log")
	}

	return &model.ConversationModel{
		ID:        data.ID,
		JobID:     data.JobID,
		SchoolID:  data.SchoolID,
		TeacherID: data.TeacherID,
		JobTitle:  data.JobTitle,
		Log:       datatypes.JSON(encoded),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}
