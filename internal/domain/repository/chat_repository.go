package repository

import (
	"mindcare-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatRepository interface {
	// UpsertConversation creates the conversation row or refreshes its
	// last-message preview and sequence high-water mark.
	UpsertConversation(db *gorm.DB, conversation *entity.ChatConversation) error
	FindConversation(db *gorm.DB, id string) (*entity.ChatConversation, error)
	FindConversationsByParticipant(db *gorm.DB, userID uuid.UUID) ([]entity.ChatConversation, error)
	CreateMessage(db *gorm.DB, message *entity.ChatMessage) error
	// FindMessagesAfter returns messages with seq > afterSeq, ascending.
	FindMessagesAfter(db *gorm.DB, conversationID string, afterSeq int64) ([]entity.ChatMessage, error)
	// MarkMessagesRead flags unread messages addressed to userID and
	// returns the number updated.
	MarkMessagesRead(db *gorm.DB, conversationID string, userID uuid.UUID) (int64, error)
	CountUnread(db *gorm.DB, conversationID string, userID uuid.UUID) (int64, error)
	// MaxSeqPerConversation returns the highest stored seq for every
	// conversation, used to rebuild Redis counters at startup.
	MaxSeqPerConversation(db *gorm.DB) (map[string]int64, error)
	DeleteConversation(db *gorm.DB, id string) error
}
