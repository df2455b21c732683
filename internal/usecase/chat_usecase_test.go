package usecase

import (
	"testing"
	"time"

	"mindcare-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type recordingChatRepository struct {
	calls []string
}

func (r *recordingChatRepository) UpsertConversation(db *gorm.DB, conversation *entity.ChatConversation) error {
	r.calls = append(r.calls, "upsert_conversation")
	return nil
}

func (r *recordingChatRepository) FindConversation(db *gorm.DB, id string) (*entity.ChatConversation, error) {
	return nil, nil
}

func (r *recordingChatRepository) FindConversationsByParticipant(db *gorm.DB, userID uuid.UUID) ([]entity.ChatConversation, error) {
	return nil, nil
}

func (r *recordingChatRepository) CreateMessage(db *gorm.DB, message *entity.ChatMessage) error {
	r.calls = append(r.calls, "create_message")
	return nil
}

func (r *recordingChatRepository) FindMessagesAfter(db *gorm.DB, conversationID string, afterSeq int64) ([]entity.ChatMessage, error) {
	return nil, nil
}

func (r *recordingChatRepository) MarkMessagesRead(db *gorm.DB, conversationID string, userID uuid.UUID) (int64, error) {
	return 0, nil
}

func (r *recordingChatRepository) CountUnread(db *gorm.DB, conversationID string, userID uuid.UUID) (int64, error) {
	return 0, nil
}

func (r *recordingChatRepository) MaxSeqPerConversation(db *gorm.DB) (map[string]int64, error) {
	return nil, nil
}

func (r *recordingChatRepository) DeleteConversation(db *gorm.DB, id string) error {
	return nil
}

func TestPersistMessageWritesConversationBeforeMessage(t *testing.T) {
	// chat_messages carries a foreign key to chat_conversations. For the
	// first message of a pair the parent row does not exist yet, so the
	// conversation upsert has to come first or the insert is rejected.
	repo := &recordingChatRepository{}
	u := &chatUsecase{
		log:      logrus.New(),
		chatRepo: repo,
	}

	sender := uuid.New()
	receiver := uuid.New()
	conversationID := entity.ConversationID(sender, receiver)

	conversation := &entity.ChatConversation{
		ID:            conversationID,
		ParticipantA:  sender,
		ParticipantB:  receiver,
		LastMessage:   "hello",
		LastMessageAt: time.Now(),
		LastSeq:       1,
	}
	message := &entity.ChatMessage{
		ConversationID: conversationID,
		Seq:            1,
		SenderID:       sender,
		ReceiverID:     receiver,
		SenderName:     "Sender",
		Content:        "hello",
	}

	if err := u.persistMessage(nil, conversation, message); err != nil {
		t.Fatalf("persistMessage returned error: %v", err)
	}

	if len(repo.calls) != 2 {
		t.Fatalf("expected 2 repository calls, got %v", repo.calls)
	}
	if repo.calls[0] != "upsert_conversation" || repo.calls[1] != "create_message" {
		t.Errorf("call order = %v, want [upsert_conversation create_message]", repo.calls)
	}
}
