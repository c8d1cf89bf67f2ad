package service

import (
	"strconv"
	"time"

	cache "github.com/patrickmn/go-cache"

	"tg_ledger/internal/domain/entity"
)

// Conversations auto-expire: an operator who walks away mid-flow is not
// stuck with a stale prompt forever.
const defaultConversationTTL = 30 * time.Minute

// ConversationStore keeps at most one open flow per operator. Starting
// a new flow silently replaces the previous one.
type ConversationStore struct {
	cache *cache.Cache
}

func NewConversationStore(ttl time.Duration) *ConversationStore {
	return &ConversationStore{
		cache: cache.New(ttl, ttl),
	}
}

func (s *ConversationStore) Start(operatorID int64, conv entity.Conversation) {
	s.cache.SetDefault(conversationKey(operatorID), conv)
}

func (s *ConversationStore) Get(operatorID int64) (entity.Conversation, bool) {
	value, found := s.cache.Get(conversationKey(operatorID))
	if !found {
		return entity.Conversation{}, false
	}

	conv, ok := value.(entity.Conversation)
	return conv, ok
}

func (s *ConversationStore) Clear(operatorID int64) {
	s.cache.Delete(conversationKey(operatorID))
}

func conversationKey(operatorID int64) string {
	return strconv.FormatInt(operatorID, 10)
}
