package usecase

import (
	"context"
	"errors"
	"time"

	"mindcare-backend/internal/converter"
	"mindcare-backend/internal/delivery/dto"
	"mindcare-backend/internal/domain/entity"
	"mindcare-backend/internal/domain/repository"
	"mindcare-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrNotParticipant       = errors.New("user is not a participant of this conversation")
	ErrSelfMessage          = errors.New("cannot send a message to yourself")
	ErrReceiverNotFound     = errors.New("receiver not found")
)

type ChatUsecase interface {
	SendMessage(ctx context.Context, senderID uuid.UUID, senderName string, req *dto.SendMessageRequest) (*dto.ChatMessageResponse, error)
	ListMessages(ctx context.Context, userID, peerID uuid.UUID, afterSeq int64) (*dto.ChatMessageListResponse, error)
	ListSessions(ctx context.Context, userID uuid.UUID) (*dto.ChatSessionListResponse, error)
	MarkRead(ctx context.Context, userID, peerID uuid.UUID) error
	DeleteConversation(ctx context.Context, userID, peerID uuid.UUID) error
}

type chatUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	chatRepo    repository.ChatRepository
	userRepo    repository.UserRepository
	sequenceSvc *service.ChatSequenceService
}

func NewChatUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	chatRepo repository.ChatRepository,
	userRepo repository.UserRepository,
	sequenceSvc *service.ChatSequenceService,
) ChatUsecase {
	return &chatUsecase{
		db:          db,
		log:         log,
		chatRepo:    chatRepo,
		userRepo:    userRepo,
		sequenceSvc: sequenceSvc,
	}
}

func (u *chatUsecase) SendMessage(ctx context.Context, senderID uuid.UUID, senderName string, req *dto.SendMessageRequest) (*dto.ChatMessageResponse, error) {
	if req.ReceiverID == senderID {
		return nil, ErrSelfMessage
	}

	receiver, err := u.userRepo.FindByID(u.db.WithContext(ctx), req.ReceiverID)
	if err != nil {
		u.log.Warnf("Failed to find receiver: %+v", err)
		return nil, err
	}
	if receiver == nil || !receiver.IsActive {
		return nil, ErrReceiverNotFound
	}

	conversationID := entity.ConversationID(senderID, req.ReceiverID)

	seq, err := u.sequenceSvc.NextSeq(ctx, conversationID, req.ReceiverID)
	if err != nil {
		u.log.Warnf("Failed to allocate sequence number: %+v", err)
		return nil, err
	}

	message := &entity.ChatMessage{
		ConversationID: conversationID,
		Seq:            seq,
		SenderID:       senderID,
		ReceiverID:     req.ReceiverID,
		SenderName:     senderName,
		Content:        req.Content,
	}

	participantA, participantB := senderID, req.ReceiverID
	if participantB.String() < participantA.String() {
		participantA, participantB = participantB, participantA
	}

	conversation := &entity.ChatConversation{
		ID:            conversationID,
		ParticipantA:  participantA,
		ParticipantB:  participantB,
		LastMessage:   req.Content,
		LastMessageAt: time.Now(),
		LastSeq:       seq,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.persistMessage(tx, conversation, message); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ChatMessageToResponse(message), nil
}

// persistMessage writes the conversation row before the message row. The
// message carries a foreign key to the conversation, so on the first
// message of a pair the parent must be inserted first.
func (u *chatUsecase) persistMessage(tx *gorm.DB, conversation *entity.ChatConversation, message *entity.ChatMessage) error {
	if err := u.chatRepo.UpsertConversation(tx, conversation); err != nil {
		u.log.Warnf("Failed to upsert conversation: %+v", err)
		return err
	}

	if err := u.chatRepo.CreateMessage(tx, message); err != nil {
		u.log.Warnf("Failed to create chat message: %+v", err)
		return err
	}

	return nil
}

func (u *chatUsecase) ListMessages(ctx context.Context, userID, peerID uuid.UUID, afterSeq int64) (*dto.ChatMessageListResponse, error) {
	conversationID := entity.ConversationID(userID, peerID)

	conversation, err := u.chatRepo.FindConversation(u.db.WithContext(ctx), conversationID)
	if err != nil {
		u.log.Warnf("Failed to find conversation: %+v", err)
		return nil, err
	}

	// A pair with no history yet polls into an empty log, not an error.
	if conversation == nil {
		return &dto.ChatMessageListResponse{
			ConversationID: conversationID,
			Messages:       []dto.ChatMessageResponse{},
			LastSeq:        afterSeq,
		}, nil
	}

	if !conversation.HasParticipant(userID) {
		return nil, ErrNotParticipant
	}

	messages, err := u.chatRepo.FindMessagesAfter(u.db.WithContext(ctx), conversationID, afterSeq)
	if err != nil {
		u.log.Warnf("Failed to list messages: %+v", err)
		return nil, err
	}

	responses := make([]dto.ChatMessageResponse, 0, len(messages))
	lastSeq := afterSeq
	for i := range messages {
		responses = append(responses, *converter.ChatMessageToResponse(&messages[i]))
		if messages[i].Seq > lastSeq {
			lastSeq = messages[i].Seq
		}
	}

	return &dto.ChatMessageListResponse{
		ConversationID: conversationID,
		Messages:       responses,
		LastSeq:        lastSeq,
	}, nil
}

func (u *chatUsecase) ListSessions(ctx context.Context, userID uuid.UUID) (*dto.ChatSessionListResponse, error) {
	conversations, err := u.chatRepo.FindConversationsByParticipant(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list conversations: %+v", err)
		return nil, err
	}

	sessions := make([]dto.ChatSessionResponse, 0, len(conversations))
	for i := range conversations {
		conversation := &conversations[i]

		unread, err := u.sequenceSvc.UnreadCount(ctx, conversation.ID, userID)
		if err != nil {
			u.log.Warnf("Failed to read unread counter for %s: %+v", conversation.ID, err)
			unread = 0
		}

		sessions = append(sessions, dto.ChatSessionResponse{
			ConversationID: conversation.ID,
			PeerID:         conversation.Peer(userID),
			LastMessage:    conversation.LastMessage,
			LastMessageAt:  conversation.LastMessageAt,
			LastSeq:        conversation.LastSeq,
			UnreadCount:    unread,
		})
	}

	return &dto.ChatSessionListResponse{
		Sessions: sessions,
		Total:    len(sessions),
	}, nil
}

func (u *chatUsecase) MarkRead(ctx context.Context, userID, peerID uuid.UUID) error {
	conversationID := entity.ConversationID(userID, peerID)

	conversation, err := u.chatRepo.FindConversation(u.db.WithContext(ctx), conversationID)
	if err != nil {
		u.log.Warnf("Failed to find conversation: %+v", err)
		return err
	}
	if conversation == nil {
		return ErrConversationNotFound
	}
	if !conversation.HasParticipant(userID) {
		return ErrNotParticipant
	}

	if _, err := u.chatRepo.MarkMessagesRead(u.db.WithContext(ctx), conversationID, userID); err != nil {
		u.log.Warnf("Failed to mark messages read: %+v", err)
		return err
	}

	if err := u.sequenceSvc.ResetUnread(ctx, conversationID, userID); err != nil {
		u.log.Warnf("Failed to reset unread counter: %+v", err)
		return err
	}

	return nil
}

func (u *chatUsecase) DeleteConversation(ctx context.Context, userID, peerID uuid.UUID) error {
	conversationID := entity.ConversationID(userID, peerID)

	conversation, err := u.chatRepo.FindConversation(u.db.WithContext(ctx), conversationID)
	if err != nil {
		u.log.Warnf("Failed to find conversation: %+v", err)
		return err
	}
	if conversation == nil {
		return ErrConversationNotFound
	}
	if !conversation.HasParticipant(userID) {
		return ErrNotParticipant
	}

	if err := u.chatRepo.DeleteConversation(u.db.WithContext(ctx), conversationID); err != nil {
		u.log.Warnf("Failed to delete conversation: %+v", err)
		return err
	}

	if err := u.sequenceSvc.DropConversation(ctx, conversationID, conversation.ParticipantA, conversation.ParticipantB); err != nil {
		u.log.Warnf("Failed to drop conversation counters: %+v", err)
	}

	return nil
}
