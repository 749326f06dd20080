package api

import (
	"net/http"

	"fuji-trip/tripmap/internal/constants"
	"fuji-trip/tripmap/internal/logging"
	"fuji-trip/tripmap/internal/middleware"
	"fuji-trip/tripmap/internal/models/dtos/requests"
	"fuji-trip/tripmap/internal/models/dtos/responses"
)

// Login handles POST /api/v1/auth/login
func (h *Handlers) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.LoginRequest
		if !decodeBody(w, r, &req) {
			return
		}

		s := h.session(r)
		if err := h.deps.Services.Auth.Login(r.Context(), s, req.Username, req.Password); err != nil {
			respondWithServiceError(w, r, err)
			return
		}

		// Login moved the session to a new id.
		token, err := h.deps.Services.Signer.Sign(s.ID)
		if err != nil {
			logging.Error("Failed to sign session token", "error", err.Error())
			respondWithError(w, http.StatusInternalServerError, constants.MsgStorageFailed)
			return
		}
		middleware.WriteSessionToken(w, token, h.deps.Config.IsProduction())

		respondWithSuccess(w, http.StatusOK, &responses.SessionResponse{
			LoggedIn: true,
			Username: s.Username,
		})
	}
}

// Logout handles POST /api/v1/auth/logout
func (h *Handlers) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.deps.Services.Auth.Logout(r.Context(), h.session(r)); err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &responses.SessionResponse{})
	}
}

// CurrentSession handles GET /api/v1/auth/session
func (h *Handlers) CurrentSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := h.session(r)
		respondWithSuccess(w, http.StatusOK, &responses.SessionResponse{
			LoggedIn: s.IsLoggedIn(),
			Username: s.Username,
		})
	}
}
