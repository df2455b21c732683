package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ChatConversation is the session record for a patient/doctor pair. The ID
// is the sorted participant pair joined with "_" so both sides derive the
// same conversation regardless of who opens it.
type ChatConversation struct {
	ID            string    `gorm:"type:varchar(80);primaryKey" json:"id"`
	ParticipantA  uuid.UUID `gorm:"type:uuid;not null;index" json:"participant_a"`
	ParticipantB  uuid.UUID `gorm:"type:uuid;not null;index" json:"participant_b"`
	LastMessage   string    `gorm:"type:text" json:"last_message"`
	LastMessageAt time.Time `json:"last_message_at"`
	LastSeq       int64     `gorm:"not null;default:0" json:"last_seq"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ChatConversation) TableName() string {
	return "chat_conversations"
}

// ChatMessage is one entry in a conversation's append-only log. Seq is a
// server-assigned per-conversation monotonic sequence number; clients poll
// with their last seen seq rather than relying on client clocks.
type ChatMessage struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ConversationID string    `gorm:"type:varchar(80);not null;index;uniqueIndex:idx_chat_conversation_seq" json:"conversation_id"`
	Seq            int64     `gorm:"not null;uniqueIndex:idx_chat_conversation_seq" json:"seq"`
	SenderID       uuid.UUID `gorm:"type:uuid;not null;index" json:"sender_id"`
	ReceiverID     uuid.UUID `gorm:"type:uuid;not null;index" json:"receiver_id"`
	SenderName     string    `gorm:"type:varchar(255);not null" json:"sender_name"`
	Content        string    `gorm:"type:text;not null" json:"content"`
	Read           bool      `gorm:"not null;default:false" json:"read"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}

// ConversationID derives the canonical conversation ID for a user pair.
func ConversationID(a, b uuid.UUID) string {
	first, second := a.String(), b.String()
	if second < first {
		first, second = second, first
	}
	return first + "_" + second
}

// ConversationParticipants recovers the participant pair from a canonical
// conversation ID.
func ConversationParticipants(id string) (uuid.UUID, uuid.UUID, error) {
	parts := strings.Split(id, "_")
	if len(parts) != 2 {
		return uuid.Nil, uuid.Nil, fmt.Errorf("malformed conversation ID: %s", id)
	}
	a, err := uuid.Parse(parts[0])
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("malformed conversation ID: %s", id)
	}
	b, err := uuid.Parse(parts[1])
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("malformed conversation ID: %s", id)
	}
	return a, b, nil
}

// Peer returns the other participant of the conversation.
func (c *ChatConversation) Peer(userID uuid.UUID) uuid.UUID {
	if c.ParticipantA == userID {
		return c.ParticipantB
	}
	return c.ParticipantA
}

// HasParticipant reports whether userID is part of the conversation.
func (c *ChatConversation) HasParticipant(userID uuid.UUID) bool {
	return c.ParticipantA == userID || c.ParticipantB == userID
}
