package entity

import (
	"time"

	"github.com/google/uuid"
)

// BotMessage is one prompt/reply exchange with the meditative chatbot.
// Exchanges are grouped by a client-visible conversation ID.
type BotMessage struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ConversationID string    `gorm:"type:varchar(40);not null;index" json:"conversation_id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	UserMessage    string    `gorm:"type:text;not null" json:"user_message"`
	AIMessage      string    `gorm:"type:text;not null" json:"ai_message"`
	CreatedAt      time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (BotMessage) TableName() string {
	return "bot_messages"
}
