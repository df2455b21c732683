package usecase

import (
	"context"
	"errors"
	"strings"

	"mindcare-backend/internal/converter"
	"mindcare-backend/internal/delivery/dto"
	"mindcare-backend/internal/domain/entity"
	"mindcare-backend/internal/domain/repository"
	"mindcare-backend/internal/infrastructure/ai"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrBotConversationNotFound = errors.New("bot conversation not found")
	ErrBotUnavailable          = errors.New("chatbot service unavailable")
	ErrBotConversationOwner    = errors.New("bot conversation belongs to another user")
)

const botSystemPrompt = "You are a calm, supportive meditation and mindfulness guide. " +
	"Help the user relax, breathe, and reflect. Offer short guided exercises, grounding " +
	"techniques, and gentle encouragement. If the user appears to be in crisis, advise " +
	"them to contact a mental health professional or local emergency services. " +
	"Never provide medical diagnoses or prescribe treatment."

// Recent exchanges fed back to the model as conversational context.
const botHistoryWindow = 10

type ChatbotUsecase interface {
	Ask(ctx context.Context, userID uuid.UUID, req *dto.ChatbotRequest) (*dto.ChatbotResponse, error)
	GetConversation(ctx context.Context, userID uuid.UUID, conversationID string) (*dto.BotConversationResponse, error)
}

type chatbotUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	botMessageRepo repository.BotMessageRepository
	ai             ai.CompletionClient
}

func NewChatbotUsecase(db *gorm.DB, log *logrus.Logger, botMessageRepo repository.BotMessageRepository, aiClient ai.CompletionClient) ChatbotUsecase {
	return &chatbotUsecase{
		db:             db,
		log:            log,
		botMessageRepo: botMessageRepo,
		ai:             aiClient,
	}
}

func (u *chatbotUsecase) Ask(ctx context.Context, userID uuid.UUID, req *dto.ChatbotRequest) (*dto.ChatbotResponse, error) {
	conversationID := req.ConversationID
	var history []entity.BotMessage

	if conversationID == "" {
		conversationID = uuid.New().String()
	} else {
		var err error
		history, err = u.botMessageRepo.FindByConversationID(u.db.WithContext(ctx), conversationID)
		if err != nil {
			u.log.Warnf("Failed to load bot conversation: %+v", err)
			return nil, err
		}
		for i := range history {
			if history[i].UserID != userID {
				return nil, ErrBotConversationOwner
			}
		}
	}

	reply, err := u.ai.Complete(ctx, botSystemPrompt, buildBotPrompt(history, req.Query))
	if err != nil {
		u.log.Warnf("Failed to get chatbot reply: %+v", err)
		return nil, ErrBotUnavailable
	}

	message := &entity.BotMessage{
		ConversationID: conversationID,
		UserID:         userID,
		UserMessage:    req.Query,
		AIMessage:      reply,
	}

	if err := u.botMessageRepo.Create(u.db.WithContext(ctx), message); err != nil {
		u.log.Warnf("Failed to store bot message: %+v", err)
		return nil, err
	}

	return &dto.ChatbotResponse{
		ConversationID: conversationID,
		Query:          req.Query,
		Response:       reply,
	}, nil
}

func (u *chatbotUsecase) GetConversation(ctx context.Context, userID uuid.UUID, conversationID string) (*dto.BotConversationResponse, error) {
	messages, err := u.botMessageRepo.FindByConversationID(u.db.WithContext(ctx), conversationID)
	if err != nil {
		u.log.Warnf("Failed to load bot conversation: %+v", err)
		return nil, err
	}
	if len(messages) == 0 {
		return nil, ErrBotConversationNotFound
	}
	for i := range messages {
		if messages[i].UserID != userID {
			return nil, ErrBotConversationOwner
		}
	}

	return converter.BotConversationToResponse(conversationID, messages), nil
}

// buildBotPrompt folds the tail of the conversation history into the user
// message so the model keeps context across stateless completion calls.
func buildBotPrompt(history []entity.BotMessage, query string) string {
	if len(history) == 0 {
		return query
	}

	start := 0
	if len(history) > botHistoryWindow {
		start = len(history) - botHistoryWindow
	}

	var b strings.Builder
	b.WriteString("Conversation so far:\n")
	for _, m := range history[start:] {
		b.WriteString("User: ")
		b.WriteString(m.UserMessage)
		b.WriteString("\nAssistant: ")
		b.WriteString(m.AIMessage)
		b.WriteString("\n")
	}
	b.WriteString("\nUser: ")
	b.WriteString(query)
	return b.String()
}
