package repository

import (
	"mindcare-backend/internal/domain/entity"
	domainRepo "mindcare-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type botMessageRepository struct{}

func NewBotMessageRepository() domainRepo.BotMessageRepository {
	return &botMessageRepository{}
}

func (r *botMessageRepository) Create(db *gorm.DB, message *entity.BotMessage) error {
	return db.Create(message).Error
}

func (r *botMessageRepository) FindByConversationID(db *gorm.DB, conversationID string) ([]entity.BotMessage, error) {
	var messages []entity.BotMessage
	err := db.Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
