package dto

import "time"

// Request DTOs

type ChatbotRequest struct {
	Query          string `json:"query" validate:"required,min=1"`
	ConversationID string `json:"conversation_id" validate:"omitempty"`
}

// Response DTOs

type ChatbotResponse struct {
	ConversationID string `json:"conversation_id"`
	Query          string `json:"query"`
	Response       string `json:"response"`
}

type BotMessageResponse struct {
	UserMessage string    `json:"user_message"`
	AIMessage   string    `json:"ai_message"`
	CreatedAt   time.Time `json:"created_at"`
}

type BotConversationResponse struct {
	ConversationID string               `json:"conversation_id"`
	Messages       []BotMessageResponse `json:"messages"`
}
