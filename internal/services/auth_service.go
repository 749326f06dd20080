package services

import (
	"context"
	"fmt"

	"fuji-trip/tripmap/internal/auth"
	"fuji-trip/tripmap/internal/common"
	"fuji-trip/tripmap/internal/logging"
)

// LoginRecorder receives one call per login attempt.
type LoginRecorder interface {
	LoginAttempted(outcome string)
}

type nopLoginRecorder struct{}

func (nopLoginRecorder) LoginAttempted(string) {}

// AuthService moves a session between anonymous and logged in.
type AuthService struct {
	sessions *common.SessionService
	recorder LoginRecorder
}

func NewAuthService(sessions *common.SessionService, recorder LoginRecorder) *AuthService {
	if recorder == nil {
		recorder = nopLoginRecorder{}
	}
	return &AuthService{
		sessions: sessions,
		recorder: recorder,
	}
}

// Login signs the session in under a new session id; the caller must hand
// the client a token for session.ID. A failed attempt leaves the session
// untouched.
func (svc *AuthService) Login(ctx context.Context, session *auth.Session, username, password string) error {
	name, err := auth.Authenticate(username, password)
	if err != nil {
		svc.recorder.LoginAttempted("failure")
		logging.Info("Login rejected", "session_id", session.ID)
		return err
	}

	session.SignIn(name)
	if err := svc.sessions.RotateSession(ctx, session); err != nil {
		session.SignOut()
		return fmt.Errorf("save session: %w", err)
	}

	svc.recorder.LoginAttempted("success")
	logging.Info("User logged in", "username", name, "session_id", session.ID)
	return nil
}

// Logout clears the user from the session and keeps its view state.
func (svc *AuthService) Logout(ctx context.Context, session *auth.Session) error {
	user := session.Username
	session.SignOut()
	if err := svc.sessions.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	logging.Info("User logged out", "username", user, "session_id", session.ID)
	return nil
}
