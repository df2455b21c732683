package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"mindcare-backend/internal/delivery/dto"
	"mindcare-backend/internal/delivery/http/middleware"
	"mindcare-backend/internal/usecase"
	"mindcare-backend/pkg/response"
	"mindcare-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ChatHandler struct {
	chatUsecase usecase.ChatUsecase
	validator   *validator.CustomValidator
}

func NewChatHandler(chatUsecase usecase.ChatUsecase, validator *validator.CustomValidator) *ChatHandler {
	return &ChatHandler{
		chatUsecase: chatUsecase,
		validator:   validator,
	}
}

// Send appends a message to the sender/receiver conversation log.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	senderName, _ := middleware.GetDisplayNameFromContext(r.Context())

	var req dto.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	message, err := h.chatUsecase.SendMessage(r.Context(), userID, senderName, &req)
	if err != nil {
		switch err {
		case usecase.ErrSelfMessage:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case usecase.ErrReceiverNotFound:
			response.NotFound(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to send message")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Message sent successfully", message)
}

// Messages polls the conversation with a peer for messages after the
// after_seq cursor (0 returns the full history).
func (h *ChatHandler) Messages(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	peerID, err := uuid.Parse(mux.Vars(r)["peerId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid peer ID", nil)
		return
	}

	afterSeq := int64(0)
	if raw := r.URL.Query().Get("after_seq"); raw != "" {
		afterSeq, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || afterSeq < 0 {
			response.Error(w, http.StatusBadRequest, "Invalid after_seq", nil)
			return
		}
	}

	messages, err := h.chatUsecase.ListMessages(r.Context(), userID, peerID, afterSeq)
	if err != nil {
		switch err {
		case usecase.ErrNotParticipant:
			response.Forbidden(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to list messages")
		}
		return
	}

	response.Success(w, http.StatusOK, "Messages retrieved successfully", messages)
}

// Sessions lists the user's conversations with unread counts.
func (h *ChatHandler) Sessions(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	sessions, err := h.chatUsecase.ListSessions(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list sessions")
		return
	}

	response.Success(w, http.StatusOK, "Sessions retrieved successfully", sessions)
}

// MarkRead flags the peer's messages to the user as read.
func (h *ChatHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	peerID, err := uuid.Parse(mux.Vars(r)["peerId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid peer ID", nil)
		return
	}

	if err := h.chatUsecase.MarkRead(r.Context(), userID, peerID); err != nil {
		switch err {
		case usecase.ErrConversationNotFound:
			response.NotFound(w, err.Error())
		case usecase.ErrNotParticipant:
			response.Forbidden(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to mark messages read")
		}
		return
	}

	response.Success(w, http.StatusOK, "Messages marked as read", nil)
}

// DeleteConversation removes the conversation with a peer.
func (h *ChatHandler) DeleteConversation(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	peerID, err := uuid.Parse(mux.Vars(r)["peerId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid peer ID", nil)
		return
	}

	if err := h.chatUsecase.DeleteConversation(r.Context(), userID, peerID); err != nil {
		switch err {
		case usecase.ErrConversationNotFound:
			response.NotFound(w, err.Error())
		case usecase.ErrNotParticipant:
			response.Forbidden(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to delete conversation")
		}
		return
	}

	response.Success(w, http.StatusOK, "Conversation deleted successfully", nil)
}
