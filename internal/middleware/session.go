package middleware

import (
	"net/http"

	"fuji-trip/tripmap/internal/auth"
	"fuji-trip/tripmap/internal/common"
	"fuji-trip/tripmap/internal/constants"
	"fuji-trip/tripmap/internal/logging"
)

// SessionRecorder is told about every session the middleware creates.
type SessionRecorder interface {
	SessionCreated()
}

// SessionMiddleware resolves the caller's session from the signed cookie or
// the X-Session-Token header and creates an anonymous one when neither
// names a live session. The session is placed in the request context.
func SessionMiddleware(
	sessions *common.SessionService,
	signer *common.SessionTokenSigner,
	recorder SessionRecorder,
	secureCookie bool,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			var session *auth.Session
			if token := sessionToken(r); token != "" {
				if id, err := signer.Parse(token); err == nil {
					session, _ = sessions.GetSession(ctx, id)
				} else {
					logging.Debug("Session token rejected", "error", err.Error())
				}
			}

			if session == nil {
				created, err := sessions.CreateSession(ctx)
				if err != nil {
					logging.Error("Failed to create session", "error", err.Error())
					common.RespondError(w, http.StatusInternalServerError, constants.MsgStorageFailed, false)
					return
				}
				token, err := signer.Sign(created.ID)
				if err != nil {
					logging.Error("Failed to sign session token", "error", err.Error())
					common.RespondError(w, http.StatusInternalServerError, constants.MsgStorageFailed, false)
					return
				}
				if recorder != nil {
					recorder.SessionCreated()
				}

				WriteSessionToken(w, token, secureCookie)
				session = created
			}

			next.ServeHTTP(w, r.WithContext(auth.SetSession(ctx, session)))
		})
	}
}

// WriteSessionToken hands the client a session token as a cookie and as the
// X-Session-Token response header.
func WriteSessionToken(w http.ResponseWriter, token string, secure bool) {
	// No MaxAge: the browser drops it when it closes.
	http.SetCookie(w, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set(constants.SessionTokenHeader, token)
}

func sessionToken(r *http.Request) string {
	if c, err := r.Cookie(constants.SessionCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	return r.Header.Get(constants.SessionTokenHeader)
}
