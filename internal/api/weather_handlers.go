package api

import (
	"net/http"
)

// GetWeather handles GET /api/v1/weather
func (h *Handlers) GetWeather() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := h.deps.Services.Weather.Forecast(r.Context())
		respondWithSuccess(w, http.StatusOK, &data)
	}
}

// RefreshWeather handles POST /api/v1/weather/refresh
func (h *Handlers) RefreshWeather() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := h.deps.Services.Weather.Refresh(r.Context())
		respondWithSuccess(w, http.StatusOK, &data)
	}
}
