package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type SendMessageRequest struct {
	ReceiverID uuid.UUID `json:"receiver_id" validate:"required"`
	Content    string    `json:"content" validate:"required,min=1"`
}

// Response DTOs

type ChatMessageResponse struct {
	ID             uuid.UUID `json:"id"`
	ConversationID string    `json:"conversation_id"`
	Seq            int64     `json:"seq"`
	SenderID       uuid.UUID `json:"sender_id"`
	ReceiverID     uuid.UUID `json:"receiver_id"`
	SenderName     string    `json:"sender_name"`
	Content        string    `json:"content"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"created_at"`
}

// ChatMessageListResponse is the poll contract: messages with seq greater
// than the requested cursor, ascending, plus the new cursor position.
type ChatMessageListResponse struct {
	ConversationID string                `json:"conversation_id"`
	Messages       []ChatMessageResponse `json:"messages"`
	LastSeq        int64                 `json:"last_seq"`
}

type ChatSessionResponse struct {
	ConversationID string    `json:"conversation_id"`
	PeerID         uuid.UUID `json:"peer_id"`
	LastMessage    string    `json:"last_message"`
	LastMessageAt  time.Time `json:"last_message_at"`
	LastSeq        int64     `json:"last_seq"`
	UnreadCount    int64     `json:"unread_count"`
}

type ChatSessionListResponse struct {
	Sessions []ChatSessionResponse `json:"sessions"`
	Total    int                   `json:"total"`
}
