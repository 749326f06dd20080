package api

import (
	"net/http"
)

// ExportMarkdown handles GET /api/v1/export/markdown
func (h *Handlers) ExportMarkdown() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		_, _ = w.Write([]byte(h.deps.Services.Export.Markdown(r.Context())))
	}
}

// DownloadMarkdown handles GET /export/itinerary.md
func (h *Handlers) DownloadMarkdown() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="itinerary.md"`)
		h.ExportMarkdown()(w, r)
	}
}
