package api

import (
	"encoding/json"
	"net/http"

	"fuji-trip/tripmap/internal/auth"
	"fuji-trip/tripmap/internal/constants"
)

type Handlers struct {
	deps *Dependencies
}

// NewHandlers creates a new handlers instance with injected dependencies
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		deps: deps,
	}
}

// session returns the request's session. The session middleware guarantees
// one exists on every route that reaches a handler.
func (h *Handlers) session(r *http.Request) *auth.Session {
	return auth.GetSession(r.Context())
}

// saveSession persists a view or login transition. It writes the error
// response itself and reports whether the caller may continue.
func (h *Handlers) saveSession(w http.ResponseWriter, r *http.Request, s *auth.Session) bool {
	if err := h.deps.Services.Sessions.SaveSession(r.Context(), s); err != nil {
		respondWithServiceError(w, r, err)
		return false
	}
	return true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, constants.MsgInvalidBody)
		return false
	}
	return true
}
