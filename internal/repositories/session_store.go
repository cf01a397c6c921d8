package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"tripscout/internal/models/request_models"
	"tripscout/pkg/utils"
)

// ConversationSession is one user's in-flight planning dialogue: the question
// currently being asked plus everything collected so far. Sessions expire
// instead of persisting; completed state is handed off and discarded.
type ConversationSession struct {
	ID              string                   `json:"id"`
	CurrentQuestion string                   `json:"current_question"`
	TripState       request_models.TripState `json:"trip_state"`
	CreatedAt       time.Time                `json:"created_at"`
}

type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*ConversationSession, error)
	Save(ctx context.Context, session *ConversationSession) error
	Delete(ctx context.Context, sessionID string) error
}

// --- in-memory implementation ---

type memSessionEntry struct {
	session   ConversationSession
	expiresAt time.Time
}

type MemorySessionStore struct {
	mu   sync.RWMutex
	data map[string]memSessionEntry
	ttl  time.Duration
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		data: make(map[string]memSessionEntry),
		ttl:  ttl,
	}
}

func (s *MemorySessionStore) Get(ctx context.Context, sessionID string) (*ConversationSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[sessionID]
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, sessionID) // cleanup expired
		return nil, utils.ErrSessionNotFound
	}

	session := e.session
	return &session, nil
}

func (s *MemorySessionStore) Save(ctx context.Context, session *ConversationSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[session.ID] = memSessionEntry{
		session:   *session,
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
	return nil
}

// --- redis implementation (for multi-replica deployments) ---

type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func sessionKey(id string) string { return "conversation:session:" + id }

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*ConversationSession, error) {
	raw, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, utils.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var session ConversationSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, session *ConversationSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(session.ID), raw, s.ttl).Err()
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKey(sessionID)).Err()
}
