package service

import (
	"context"
	"fmt"
	"time"

	"mindcare-backend/internal/domain/entity"
	"mindcare-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// allocSeqScript allocates the next sequence number for a conversation and
// bumps the receiver's unread counter in one round trip. The Go client
// switches to EVALSHA automatically after the first call.
var allocSeqScript = redis.NewScript(`
	local seq = redis.call('INCR', KEYS[1])
	redis.call('INCR', KEYS[2])
	return seq
`)

const (
	// Redis key prefixes for the chat log
	redisSeqKeyPrefix    = "chat:seq:"
	redisUnreadKeyPrefix = "chat:unread:"

	// Timeout for individual Redis operations during startup sync
	redisSyncTimeout = 5 * time.Second
)

// ChatSequenceService assigns server-side monotonic sequence numbers to chat
// messages and tracks unread counters in Redis. Sequence counters are
// rebuilt from the database at startup so a Redis flush cannot hand out
// numbers the log has already used.
type ChatSequenceService struct {
	db          *gorm.DB
	redisClient *redis.Client
	log         *logrus.Logger
	chatRepo    repository.ChatRepository
}

func NewChatSequenceService(db *gorm.DB, redisClient *redis.Client, log *logrus.Logger, chatRepo repository.ChatRepository) *ChatSequenceService {
	return &ChatSequenceService{
		db:          db,
		redisClient: redisClient,
		log:         log,
		chatRepo:    chatRepo,
	}
}

func seqKey(conversationID string) string {
	return redisSeqKeyPrefix + conversationID
}

func unreadKey(conversationID string, userID uuid.UUID) string {
	return fmt.Sprintf("%s%s:%s", redisUnreadKeyPrefix, conversationID, userID.String())
}

// NextSeq allocates the next sequence number for the conversation and
// increments the receiver's unread counter atomically.
func (s *ChatSequenceService) NextSeq(ctx context.Context, conversationID string, receiverID uuid.UUID) (int64, error) {
	keys := []string{seqKey(conversationID), unreadKey(conversationID, receiverID)}
	seq, err := allocSeqScript.Run(ctx, s.redisClient, keys).Int64()
	if err != nil {
		return 0, fmt.Errorf("failed to allocate chat sequence: %w", err)
	}
	return seq, nil
}

// UnreadCount reads a user's unread counter for a conversation. A missing
// key counts as zero.
func (s *ChatSequenceService) UnreadCount(ctx context.Context, conversationID string, userID uuid.UUID) (int64, error) {
	count, err := s.redisClient.Get(ctx, unreadKey(conversationID, userID)).Int64()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, err
	}
	return count, nil
}

// ResetUnread clears a user's unread counter for a conversation.
func (s *ChatSequenceService) ResetUnread(ctx context.Context, conversationID string, userID uuid.UUID) error {
	return s.redisClient.Del(ctx, unreadKey(conversationID, userID)).Err()
}

// DropConversation removes all Redis state for a deleted conversation.
func (s *ChatSequenceService) DropConversation(ctx context.Context, conversationID string, a, b uuid.UUID) error {
	keys := []string{
		seqKey(conversationID),
		unreadKey(conversationID, a),
		unreadKey(conversationID, b),
	}
	return s.redisClient.Del(ctx, keys...).Err()
}

// SyncOnStartup raises each conversation's Redis sequence counter to the
// highest seq stored in the database. Counters that are already ahead are
// left untouched; unread counters are rebuilt from the unread rows.
func (s *ChatSequenceService) SyncOnStartup(ctx context.Context) error {
	maxSeqs, err := s.chatRepo.MaxSeqPerConversation(s.db.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to load conversation sequence high-water marks: %w", err)
	}

	synced := 0
	for conversationID, maxSeq := range maxSeqs {
		opCtx, cancel := context.WithTimeout(ctx, redisSyncTimeout)
		current, err := s.redisClient.Get(opCtx, seqKey(conversationID)).Int64()
		if err != nil && err != redis.Nil {
			cancel()
			return fmt.Errorf("failed to read sequence counter for %s: %w", conversationID, err)
		}

		if current < maxSeq {
			if err := s.redisClient.Set(opCtx, seqKey(conversationID), maxSeq, 0).Err(); err != nil {
				cancel()
				return fmt.Errorf("failed to sync sequence counter for %s: %w", conversationID, err)
			}
			synced++
		}

		// chat_messages.read is the ground truth for unread counts, so a
		// flushed Redis recovers them here too.
		a, b, err := entity.ConversationParticipants(conversationID)
		if err != nil {
			cancel()
			s.log.Warnf("Skipping unread sync for %s: %+v", conversationID, err)
			continue
		}
		for _, participant := range []uuid.UUID{a, b} {
			if err := s.SyncUnreadCounters(opCtx, conversationID, participant); err != nil {
				cancel()
				return fmt.Errorf("failed to sync unread counter for %s: %w", conversationID, err)
			}
		}
		cancel()
	}

	s.log.Infof("Chat sequence sync complete: %d conversations checked, %d counters raised", len(maxSeqs), synced)
	return nil
}

// SyncUnreadCounters rebuilds the unread counter for one conversation
// participant from the unread message rows.
func (s *ChatSequenceService) SyncUnreadCounters(ctx context.Context, conversationID string, userID uuid.UUID) error {
	count, err := s.chatRepo.CountUnread(s.db.WithContext(ctx), conversationID, userID)
	if err != nil {
		return err
	}
	if count == 0 {
		return s.redisClient.Del(ctx, unreadKey(conversationID, userID)).Err()
	}
	return s.redisClient.Set(ctx, unreadKey(conversationID, userID), count, 0).Err()
}
