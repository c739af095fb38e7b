package contract

import "lira-support-be/pkg/store"

// SessionRepository persists per-session conversational state. Stores are
// best-effort caches: a failed save degrades to a shorter memory, never to
// a request failure, so the interface carries no errors and implementations
// log their own failures.
type SessionRepository interface {
	Get(sessionID string) (*store.SessionState, bool)
	Save(session *store.SessionState)
	Delete(sessionID string)
}
