// Package file stores one JSON file per session in a local directory,
// mirroring filesystem-backed server-side sessions.
package file

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"lira-support-be/internal/pkg/logger"
	"lira-support-be/pkg/store"
)

const (
	filePermissions = 0o600
	dirPermissions  = 0o750
)

type SessionRepository struct {
	dir string
	ttl time.Duration
	log logger.ILogger
}

func NewSessionRepository(dir string, ttl time.Duration, log logger.ILogger) *SessionRepository {
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		log.Warn("session", "Failed to create session directory", map[string]interface{}{
			"dir":   dir,
			"error": err.Error(),
		})
	}
	return &SessionRepository{
		dir: dir,
		ttl: ttl,
		log: log,
	}
}

func (r *SessionRepository) Get(sessionID string) (*store.SessionState, bool) {
	path := r.path(sessionID)

	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}
	// Expiry is tracked through the file mtime, refreshed on every save
	if r.ttl > 0 && time.Since(info.ModTime()) > r.ttl {
		os.Remove(path)
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var session store.SessionState
	if err := json.Unmarshal(data, &session); err != nil {
		// A corrupt session file is treated as absent
		os.Remove(path)
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

	if err := os.WriteFile(r.path(session.ID), data, filePermissions); err != nil {
		r.log.Warn("session", "Failed to write session file", map[string]interface{}{
			"session_id": session.ID,
			"error":      err.Error(),
		})
	}
}

func (r *SessionRepository) Delete(sessionID string) {
	os.Remove(r.path(sessionID))
}

func (r *SessionRepository) path(sessionID string) string {
	return filepath.Join(r.dir, sessionID+".json")
}
