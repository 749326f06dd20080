package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"fuji-trip/tripmap/internal/auth"
	"fuji-trip/tripmap/internal/constants"
	"fuji-trip/tripmap/internal/models/dtos/requests"
)

// respondWithView saves the session and returns its view state.
func (h *Handlers) respondWithView(w http.ResponseWriter, r *http.Request, s *auth.Session) {
	if !h.saveSession(w, r, s) {
		return
	}
	state := s.View
	respondWithSuccess(w, http.StatusOK, &state)
}

// GetView handles GET /api/v1/view
func (h *Handlers) GetView() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := h.session(r).View
		respondWithSuccess(w, http.StatusOK, &state)
	}
}

// SelectTab handles POST /api/v1/view/tab
func (h *Handlers) SelectTab() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.SelectTabRequest
		if !decodeBody(w, r, &req) {
			return
		}

		s := h.session(r)
		if err := h.deps.Services.View.SelectTab(s, req.Tab); err != nil {
			respondWithError(w, http.StatusBadRequest, constants.MsgInvalidTab)
			return
		}
		h.respondWithView(w, r, s)
	}
}

// SelectDay handles POST /api/v1/view/day
func (h *Handlers) SelectDay() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.SelectDayRequest
		if !decodeBody(w, r, &req) {
			return
		}

		s := h.session(r)
		if err := h.deps.Services.View.SelectDay(r.Context(), s, req.Day); err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		h.respondWithView(w, r, s)
	}
}

// FilterItinerary handles POST /api/v1/view/filter
func (h *Handlers) FilterItinerary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.SelectDayRequest
		if !decodeBody(w, r, &req) {
			return
		}

		s := h.session(r)
		if err := h.deps.Services.View.FilterItinerary(s, req.Day); err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		h.respondWithView(w, r, s)
	}
}

// FocusEvent handles POST /api/v1/view/focus/{eventID}
func (h *Handlers) FocusEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := h.session(r)
		if err := h.deps.Services.View.FocusEvent(r.Context(), s, chi.URLParam(r, "eventID")); err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		h.respondWithView(w, r, s)
	}
}

// ToggleExpandedEvent handles POST /api/v1/view/events/{eventID}/toggle
func (h *Handlers) ToggleExpandedEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := h.session(r)
		if err := h.deps.Services.View.ToggleExpandedEvent(s, chi.URLParam(r, "eventID")); err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		h.respondWithView(w, r, s)
	}
}

// ToggleFlag handles POST /api/v1/view/toggle/{flag}
func (h *Handlers) ToggleFlag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := h.session(r)
		if err := h.deps.Services.View.ToggleFlag(s, chi.URLParam(r, "flag")); err != nil {
			respondWithError(w, http.StatusBadRequest, constants.MsgInvalidFlag)
			return
		}
		h.respondWithView(w, r, s)
	}
}

// ToggleCategory handles POST /api/v1/view/categories/{categoryID}/toggle
func (h *Handlers) ToggleCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := h.session(r)
		if err := h.deps.Services.View.ToggleCategory(s, chi.URLParam(r, "categoryID")); err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		h.respondWithView(w, r, s)
	}
}

// ExpandAllCategories handles POST /api/v1/view/categories/expand-all
func (h *Handlers) ExpandAllCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := h.session(r)
		h.deps.Services.View.ExpandAll(s)
		h.respondWithView(w, r, s)
	}
}

// CollapseAllCategories handles POST /api/v1/view/categories/collapse-all
func (h *Handlers) CollapseAllCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := h.session(r)
		h.deps.Services.View.CollapseAll(s)
		h.respondWithView(w, r, s)
	}
}
