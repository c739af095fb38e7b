package redisstore

import (
	"context"
	"encoding/json"
	"time"

	"lira-support-be/internal/pkg/logger"
	"lira-support-be/pkg/store"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "chat_session:"

type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
	log    logger.ILogger
}

func NewSessionRepository(client *redis.Client, ttl time.Duration, log logger.ILogger) *SessionRepository {
	return &SessionRepository{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

func (r *SessionRepository) Get(sessionID string) (*store.SessionState, bool) {
	data, err := r.client.Get(context.Background(), keyPrefix+sessionID).Bytes()
	if err != nil {
		return nil, false
	}

	var session store.SessionState
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, false
	}
	return &session, true
}

func (r *SessionRepository) Save(session *store.SessionState) {
	data, err := json.Marshal(session)
	if err != nil {
		r.log.Warn("session", "Failed to encode session", map[string]interface{}{
			"session_id": session.ID,
			"error":      err.Error(),
		})
		return
	}

	// TTL is refreshed on every save
	if err := r.client.Set(context.Background(), keyPrefix+session.ID, data, r.ttl).Err(); err != nil {
		r.log.Warn("session", "Failed to store session in redis", map[string]interface{}{
			"session_id": session.ID,
			"error":      err.Error(),
		})
	}
}

func (r *SessionRepository) Delete(sessionID string) {
	r.client.Del(context.Background(), keyPrefix+sessionID)
}
