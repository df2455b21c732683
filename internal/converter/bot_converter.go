package converter

import (
	"mindcare-backend/internal/delivery/dto"
	"mindcare-backend/internal/domain/entity"
)

func BotConversationToResponse(conversationID string, messages []entity.BotMessage) *dto.BotConversationResponse {
	responses := make([]dto.BotMessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, dto.BotMessageResponse{
			UserMessage: messages[i].UserMessage,
			AIMessage:   messages[i].AIMessage,
			CreatedAt:   messages[i].CreatedAt,
		})
	}

	return &dto.BotConversationResponse{
		ConversationID: conversationID,
		Messages:       responses,
	}
}
