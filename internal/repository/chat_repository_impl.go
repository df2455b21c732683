package repository

import (
	"errors"

	"mindcare-backend/internal/domain/entity"
	domainRepo "mindcare-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type chatRepository struct{}

func NewChatRepository() domainRepo.ChatRepository {
	return &chatRepository{}
}

func (r *chatRepository) UpsertConversation(db *gorm.DB, conversation *entity.ChatConversation) error {
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"last_message", "last_message_at", "last_seq", "updated_at",
		}),
	}).Create(conversation).Error
}

func (r *chatRepository) FindConversation(db *gorm.DB, id string) (*entity.ChatConversation, error) {
	var conversation entity.ChatConversation
	err := db.Where("id = ?", id).First(&conversation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conversation, nil
}

func (r *chatRepository) FindConversationsByParticipant(db *gorm.DB, userID uuid.UUID) ([]entity.ChatConversation, error) {
	var conversations []entity.ChatConversation
	err := db.Where("participant_a = ? OR participant_b = ?", userID, userID).
		Order("last_message_at DESC").
		Find(&conversations).Error
	if err != nil {
		return nil, err
	}
	return conversations, nil
}

func (r *chatRepository) CreateMessage(db *gorm.DB, message *entity.ChatMessage) error {
	return db.Create(message).Error
}

func (r *chatRepository) FindMessagesAfter(db *gorm.DB, conversationID string, afterSeq int64) ([]entity.ChatMessage, error) {
	var messages []entity.ChatMessage
	err := db.Where("conversation_id = ? AND seq > ?", conversationID, afterSeq).
		Order("seq ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *chatRepository) MarkMessagesRead(db *gorm.DB, conversationID string, userID uuid.UUID) (int64, error) {
	result := db.Model(&entity.ChatMessage{}).
		Where("conversation_id = ? AND receiver_id = ? AND read = ?", conversationID, userID, false).
		Update("read", true)
	return result.RowsAffected, result.Error
}

func (r *chatRepository) CountUnread(db *gorm.DB, conversationID string, userID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.ChatMessage{}).
		Where("conversation_id = ? AND receiver_id = ? AND read = ?", conversationID, userID, false).
		Count(&count).Error
	return count, err
}

func (r *chatRepository) MaxSeqPerConversation(db *gorm.DB) (map[string]int64, error) {
	type row struct {
		ConversationID string
		MaxSeq         int64
	}
	var rows []row
	err := db.Model(&entity.ChatMessage{}).
		Select("conversation_id, MAX(seq) AS max_seq").
		Group("conversation_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[string]int64, len(rows))
	for _, r := range rows {
		result[r.ConversationID] = r.MaxSeq
	}
	return result, nil
}

func (r *chatRepository) DeleteConversation(db *gorm.DB, id string) error {
	if err := db.Where("conversation_id = ?", id).Delete(&entity.ChatMessage{}).Error; err != nil {
		return err
	}
	return db.Where("id = ?", id).Delete(&entity.ChatConversation{}).Error
}
