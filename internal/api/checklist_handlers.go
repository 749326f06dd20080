package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"fuji-trip/tripmap/internal/models/dtos/requests"
	"fuji-trip/tripmap/internal/models/dtos/responses"
)

// GetChecklist handles GET /api/v1/checklist. Anonymous sessions get the
// catalog with nothing checked.
func (h *Handlers) GetChecklist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := h.deps.Services.Checklist.View(r.Context(), h.session(r))
		respondWithSuccess(w, http.StatusOK, &view)
	}
}

// ToggleChecklistItem handles POST /api/v1/checklist/items/{itemID}/toggle
func (h *Handlers) ToggleChecklistItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID := chi.URLParam(r, "itemID")

		checked, err := h.deps.Services.Checklist.Toggle(r.Context(), h.session(r), itemID)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &responses.ToggleResponse{ItemID: itemID, Checked: checked})
	}
}

// AddChecklistItem handles POST /api/v1/checklist/categories/{categoryID}/items
func (h *Handlers) AddChecklistItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.AddChecklistItemRequest
		if !decodeBody(w, r, &req) {
			return
		}

		item, err := h.deps.Services.Checklist.AddCustomItem(r.Context(), h.session(r),
			chi.URLParam(r, "categoryID"), req.Name, req.Note)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, &item)
	}
}

// DeleteChecklistItem handles DELETE /api/v1/checklist/items/{itemID}
func (h *Handlers) DeleteChecklistItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID := chi.URLParam(r, "itemID")

		if err := h.deps.Services.Checklist.DeleteCustomItem(r.Context(), h.session(r), itemID); err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &responses.DeleteResponse{ItemID: itemID, Deleted: true})
	}
}

// ResetChecklist handles POST /api/v1/checklist/reset
func (h *Handlers) ResetChecklist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := h.session(r)
		if err := h.deps.Services.Checklist.ResetAll(r.Context(), s); err != nil {
			respondWithServiceError(w, r, err)
			return
		}

		view := h.deps.Services.Checklist.View(r.Context(), s)
		respondWithSuccess(w, http.StatusOK, &view)
	}
}
