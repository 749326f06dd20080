package dtos

import "fuji-trip/tripmap/internal/models/entities"

// EventView is a trip event with the note and location overrides applied.
type EventView struct {
	entities.TripEvent
	EffectiveDetails   string          `json:"effectiveDetails"`
	EffectiveLocation  entities.LatLng `json:"effectiveLocation"`
	DetailsOverridden  bool            `json:"detailsOverridden"`
	LocationOverridden bool            `json:"locationOverridden"`
	LegDistanceKm      *float64        `json:"legDistanceKm,omitempty"`
	MapLink            string          `json:"mapLink"`
}

type DayView struct {
	Day             int         `json:"day"`
	Date            string      `json:"date"`
	Title           string      `json:"title"`
	Color           string      `json:"color"`
	TotalDistanceKm float64     `json:"totalDistanceKm"`
	Events          []EventView `json:"events"`
}

type BookingEntry struct {
	EventID  string           `json:"eventId"`
	Day      int              `json:"day"`
	Location string           `json:"location"`
	Booking  entities.Booking `json:"booking"`
}

type FlightEntry struct {
	EventID string              `json:"eventId"`
	Day     int                 `json:"day"`
	Flight  entities.FlightInfo `json:"flight"`
}
