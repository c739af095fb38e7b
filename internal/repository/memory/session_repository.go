package memory

import (
	"time"

	"lira-support-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

const purgeInterval = 10 * time.Minute

type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	// Expired sessions are purged every 10 minutes
	c := cache.New(ttl, purgeInterval)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *store.SessionState) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.SessionState, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.SessionState), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
