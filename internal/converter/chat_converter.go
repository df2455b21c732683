package converter

import (
	"mindcare-backend/internal/delivery/dto"
	"mindcare-backend/internal/domain/entity"
)

func ChatMessageToResponse(message *entity.ChatMessage) *dto.ChatMessageResponse {
	return &dto.ChatMessageResponse{
		ID:             message.ID,
		ConversationID: message.ConversationID,
		Seq:            message.Seq,
		SenderID:       message.SenderID,
		ReceiverID:     message.ReceiverID,
		SenderName:     message.SenderName,
		Content:        message.Content,
		Read:           message.Read,
		CreatedAt:      message.CreatedAt,
	}
}
