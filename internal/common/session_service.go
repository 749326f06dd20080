package common

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"fuji-trip/tripmap/internal/auth"
	"fuji-trip/tripmap/internal/logging"
)

// sessionTTL bounds storage for abandoned sessions. The session itself has
// no expiry; the browser drops the cookie when it closes.
const sessionTTL = 7 * 24 * time.Hour

var ErrSessionNotFound = errors.New("session not found")

// SessionService keeps sessions in a cache (Redis or in-memory)
type SessionService struct {
	store CacheInterface
	now   func() time.Time
}

// NewSessionService creates a new session service
func NewSessionService(store CacheInterface) *SessionService {
	return &SessionService{
		store: store,
		now:   time.Now,
	}
}

func sessionKey(id string) string {
	return "session:" + id
}

// CreateSession starts a new anonymous session
func (s *SessionService) CreateSession(ctx context.Context) (*auth.Session, error) {
	session := auth.NewSession(uuid.New().String(), s.now())

	if err := s.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	logging.Debug("Session created", "session_id", session.ID)
	return session, nil
}

// GetSession retrieves a session and refreshes its storage TTL
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*auth.Session, error) {
	if sessionID == "" {
		return nil, ErrSessionNotFound
	}

	session, found := GetAs[auth.Session](s.store, sessionKey(sessionID))
	if !found {
		return nil, ErrSessionNotFound
	}

	s.store.Set(sessionKey(sessionID), session, sessionTTL)
	return &session, nil
}

// SaveSession writes the session back after a transition
func (s *SessionService) SaveSession(ctx context.Context, session *auth.Session) error {
	if session == nil || session.ID == "" {
		return errors.New("session without id")
	}
	s.store.Set(sessionKey(session.ID), *session, sessionTTL)
	return nil
}

// RotateSession moves the session to a fresh id and drops the old record.
// On failure the session keeps its old id.
func (s *SessionService) RotateSession(ctx context.Context, session *auth.Session) error {
	oldID := session.ID
	session.ID = uuid.New().String()
	if err := s.SaveSession(ctx, session); err != nil {
		session.ID = oldID
		return err
	}
	s.DeleteSession(ctx, oldID)

	logging.Debug("Session rotated", "old_session_id", oldID, "session_id", session.ID)
	return nil
}

// DeleteSession deletes a session
func (s *SessionService) DeleteSession(ctx context.Context, sessionID string) {
	s.store.Delete(sessionKey(sessionID))
}
