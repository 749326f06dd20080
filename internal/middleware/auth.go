package middleware

import (
	"net/http"

	"fuji-trip/tripmap/internal/auth"
	"fuji-trip/tripmap/internal/common"
	"fuji-trip/tripmap/internal/constants"
)

// RequireLogin rejects anonymous sessions with 401 and login_required set,
// so the client can open its login prompt. It must run after SessionMiddleware.
func RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !auth.GetSession(r.Context()).IsLoggedIn() {
			common.RespondError(w, http.StatusUnauthorized, constants.MsgLoginRequired, true)
			return
		}
		next.ServeHTTP(w, r)
	})
}
