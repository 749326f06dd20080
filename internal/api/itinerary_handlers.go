package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"fuji-trip/tripmap/internal/constants"
	"fuji-trip/tripmap/internal/models/dtos"
	"fuji-trip/tripmap/internal/models/dtos/requests"
	"fuji-trip/tripmap/internal/models/dtos/responses"
)

// GetItinerary handles GET /api/v1/itinerary
func (h *Handlers) GetItinerary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days := h.deps.Services.Itinerary.Itinerary(r.Context())
		respondWithSuccess(w, http.StatusOK, &days)
	}
}

// GetDay handles GET /api/v1/itinerary/days/{day}
func (h *Handlers) GetDay() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := strconv.Atoi(chi.URLParam(r, "day"))
		if err != nil {
			respondWithError(w, http.StatusNotFound, constants.MsgDayNotFound)
			return
		}

		day, err := h.deps.Services.Itinerary.Day(r.Context(), n)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &day)
	}
}

// GetEvent handles GET /api/v1/events/{eventID}
func (h *Handlers) GetEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		event, err := h.deps.Services.Itinerary.Event(r.Context(), chi.URLParam(r, "eventID"))
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &event)
	}
}

// SaveEventDetails handles PUT /api/v1/events/{eventID}/details
func (h *Handlers) SaveEventDetails() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID := chi.URLParam(r, "eventID")

		var req requests.SaveDetailsRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := h.deps.Services.Itinerary.SaveDetails(r.Context(), eventID, req.Details); err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &responses.SaveResponse{EventID: eventID, Saved: true})
	}
}

// SaveEventLocation handles PUT /api/v1/events/{eventID}/location.
// Unparseable coordinates are answered with saved=false and no error.
func (h *Handlers) SaveEventLocation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID := chi.URLParam(r, "eventID")

		var req requests.SaveLocationRequest
		if !decodeBody(w, r, &req) {
			return
		}

		saved, err := h.deps.Services.Itinerary.SaveLocation(r.Context(), eventID, req.Lat, req.Lng)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &responses.SaveResponse{EventID: eventID, Saved: saved})
	}
}

// GetMapLink handles GET /api/v1/events/{eventID}/map-link
func (h *Handlers) GetMapLink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID := chi.URLParam(r, "eventID")

		link, err := h.deps.Services.Itinerary.MapLinkFor(r.Context(), eventID)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &responses.MapLinkResponse{EventID: eventID, URL: link})
	}
}

// GetBookings handles GET /api/v1/bookings
func (h *Handlers) GetBookings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookings := h.deps.Services.Itinerary.Bookings()
		if bookings == nil {
			bookings = []dtos.BookingEntry{}
		}
		respondWithSuccess(w, http.StatusOK, &bookings)
	}
}

// GetFlights handles GET /api/v1/flights
func (h *Handlers) GetFlights() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flights := h.deps.Services.Itinerary.Flights()
		if flights == nil {
			flights = []dtos.FlightEntry{}
		}
		respondWithSuccess(w, http.StatusOK, &flights)
	}
}
