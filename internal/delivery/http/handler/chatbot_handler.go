package handler

import (
	"encoding/json"
	"net/http"

	"mindcare-backend/internal/delivery/dto"
	"mindcare-backend/internal/delivery/http/middleware"
	"mindcare-backend/internal/usecase"
	"mindcare-backend/pkg/response"
	"mindcare-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type ChatbotHandler struct {
	chatbotUsecase usecase.ChatbotUsecase
	validator      *validator.CustomValidator
}

func NewChatbotHandler(chatbotUsecase usecase.ChatbotUsecase, validator *validator.CustomValidator) *ChatbotHandler {
	return &ChatbotHandler{
		chatbotUsecase: chatbotUsecase,
		validator:      validator,
	}
}

// Ask sends a query to the meditative chatbot. Omitting conversation_id
// starts a new conversation.
func (h *ChatbotHandler) Ask(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.ChatbotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.chatbotUsecase.Ask(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrBotUnavailable:
			response.BadGateway(w, err.Error())
		case usecase.ErrBotConversationOwner:
			response.Forbidden(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to get chatbot response")
		}
		return
	}

	response.Success(w, http.StatusOK, "Chatbot response retrieved successfully", result)
}

// GetConversation returns the history of one chatbot conversation.
func (h *ChatbotHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	conversationID := mux.Vars(r)["id"]

	conversation, err := h.chatbotUsecase.GetConversation(r.Context(), userID, conversationID)
	if err != nil {
		switch err {
		case usecase.ErrBotConversationNotFound:
			response.NotFound(w, err.Error())
		case usecase.ErrBotConversationOwner:
			response.Forbidden(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to get conversation")
		}
		return
	}

	response.Success(w, http.StatusOK, "Conversation retrieved successfully", conversation)
}
