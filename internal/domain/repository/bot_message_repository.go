package repository

import (
	"mindcare-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type BotMessageRepository interface {
	Create(db *gorm.DB, message *entity.BotMessage) error
	FindByConversationID(db *gorm.DB, conversationID string) ([]entity.BotMessage, error)
}
