package services

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/golang/geo/s2"

	"fuji-trip/tripmap/internal/itinerary"
	"fuji-trip/tripmap/internal/logging"
	"fuji-trip/tripmap/internal/models/dtos"
	"fuji-trip/tripmap/internal/models/entities"
	"fuji-trip/tripmap/internal/store"
)

const (
	earthRadiusKm = 6371.0088
	mapsSearchURL = "https://www.google.com/maps/search/?api=1&query="
)

// ItineraryService serves the built-in schedule with note and location
// overrides applied.
type ItineraryService struct {
	catalog   *itinerary.Catalog
	notes     *store.OverrideStore[string]
	locations *store.OverrideStore[entities.LatLng]
}

func NewItineraryService(
	catalog *itinerary.Catalog,
	notes *store.OverrideStore[string],
	locations *store.OverrideStore[entities.LatLng],
) *ItineraryService {
	return &ItineraryService{
		catalog:   catalog,
		notes:     notes,
		locations: locations,
	}
}

// Catalog exposes the built-in schedule.
func (svc *ItineraryService) Catalog() *itinerary.Catalog {
	return svc.catalog
}

type overlay struct {
	notes     store.Overrides[string]
	locations store.Overrides[entities.LatLng]
}

func (svc *ItineraryService) overlay(ctx context.Context) overlay {
	return overlay{
		notes:     svc.notes.Snapshot(ctx),
		locations: svc.locations.Snapshot(ctx),
	}
}

func (o overlay) event(e entities.TripEvent) dtos.EventView {
	_, hasNote := o.notes[e.ID]
	_, hasLocation := o.locations[e.ID]
	pos := o.locations.Resolve(e.ID, e.Position())

	return dtos.EventView{
		TripEvent:          e,
		EffectiveDetails:   o.notes.Resolve(e.ID, e.Details),
		EffectiveLocation:  pos,
		DetailsOverridden:  hasNote,
		LocationOverridden: hasLocation,
		MapLink:            MapLink(e.Location, pos),
	}
}

func (o overlay) day(d entities.DayPlan) dtos.DayView {
	view := dtos.DayView{
		Day:    d.Day,
		Date:   d.Date,
		Title:  d.Title,
		Color:  d.Color,
		Events: make([]dtos.EventView, 0, len(d.Events)),
	}

	for i, e := range d.Events {
		ev := o.event(e)
		if i > 0 {
			km := LegDistanceKm(view.Events[i-1].EffectiveLocation, ev.EffectiveLocation)
			ev.LegDistanceKm = &km
			view.TotalDistanceKm += km
		}
		view.Events = append(view.Events, ev)
	}
	view.TotalDistanceKm = math.Round(view.TotalDistanceKm*10) / 10
	return view
}

// Itinerary returns every day with effective values.
func (svc *ItineraryService) Itinerary(ctx context.Context) []dtos.DayView {
	o := svc.overlay(ctx)
	days := svc.catalog.Days()

	out := make([]dtos.DayView, 0, len(days))
	for _, d := range days {
		out = append(out, o.day(d))
	}
	return out
}

// Day returns one day with effective values.
func (svc *ItineraryService) Day(ctx context.Context, day int) (dtos.DayView, error) {
	d, ok := svc.catalog.Day(day)
	if !ok {
		return dtos.DayView{}, fmt.Errorf("day %d: %w", day, ErrUnknownDay)
	}
	return svc.overlay(ctx).day(d), nil
}

// Event returns one event with effective values.
func (svc *ItineraryService) Event(ctx context.Context, eventID string) (dtos.EventView, error) {
	e, ok := svc.catalog.Event(eventID)
	if !ok {
		return dtos.EventView{}, fmt.Errorf("event %s: %w", eventID, ErrUnknownEvent)
	}
	return svc.overlay(ctx).event(e), nil
}

// EffectiveLocation returns the overridden or built-in position of an event.
func (svc *ItineraryService) EffectiveLocation(ctx context.Context, eventID string) (entities.LatLng, error) {
	e, ok := svc.catalog.Event(eventID)
	if !ok {
		return entities.LatLng{}, fmt.Errorf("event %s: %w", eventID, ErrUnknownEvent)
	}
	return svc.locations.Snapshot(ctx).Resolve(eventID, e.Position()), nil
}

// SaveDetails stores a note override. Any string, including empty, is a
// valid note.
func (svc *ItineraryService) SaveDetails(ctx context.Context, eventID, details string) error {
	if !svc.catalog.HasEvent(eventID) {
		return fmt.Errorf("event %s: %w", eventID, ErrUnknownEvent)
	}
	if err := svc.notes.Set(ctx, eventID, details); err != nil {
		return fmt.Errorf("save note %s: %w", eventID, err)
	}
	logging.Info("Note saved", "event_id", eventID)
	return nil
}

// SaveLocation stores a coordinate override. Input that does not parse as
// a coordinate is skipped silently: saved is false and err is nil.
func (svc *ItineraryService) SaveLocation(ctx context.Context, eventID string, lat, lng interface{}) (bool, error) {
	if !svc.catalog.HasEvent(eventID) {
		return false, fmt.Errorf("event %s: %w", eventID, ErrUnknownEvent)
	}

	pos, ok := ParseLatLng(lat, lng)
	if !ok {
		logging.Debug("Location input ignored", "event_id", eventID)
		return false, nil
	}

	if err := svc.locations.Set(ctx, eventID, pos); err != nil {
		return false, fmt.Errorf("save location %s: %w", eventID, err)
	}
	logging.Info("Location saved", "event_id", eventID, "lat", pos.Lat, "lng", pos.Lng)
	return true, nil
}

// MapLinkFor returns the external map link of an event at its effective location.
func (svc *ItineraryService) MapLinkFor(ctx context.Context, eventID string) (string, error) {
	e, ok := svc.catalog.Event(eventID)
	if !ok {
		return "", fmt.Errorf("event %s: %w", eventID, ErrUnknownEvent)
	}
	pos := svc.locations.Snapshot(ctx).Resolve(eventID, e.Position())
	return MapLink(e.Location, pos), nil
}

// Bookings lists events carrying reservation details, in schedule order.
func (svc *ItineraryService) Bookings() []dtos.BookingEntry {
	var out []dtos.BookingEntry
	for _, e := range svc.catalog.Events() {
		if e.Booking == nil {
			continue
		}
		out = append(out, dtos.BookingEntry{
			EventID:  e.ID,
			Day:      e.Day,
			Location: e.Location,
			Booking:  *e.Booking,
		})
	}
	return out
}

// Flights lists events carrying flight details, in schedule order.
func (svc *ItineraryService) Flights() []dtos.FlightEntry {
	var out []dtos.FlightEntry
	for _, e := range svc.catalog.Events() {
		if e.Flight == nil {
			continue
		}
		out = append(out, dtos.FlightEntry{
			EventID: e.ID,
			Day:     e.Day,
			Flight:  *e.Flight,
		})
	}
	return out
}

// MapLink builds a map search deep link for a place name and coordinate.
func MapLink(location string, pos entities.LatLng) string {
	query := fmt.Sprintf("%s %s,%s", location, formatCoord(pos.Lat), formatCoord(pos.Lng))
	return mapsSearchURL + strings.ReplaceAll(url.QueryEscape(query), "+", "%20")
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// LegDistanceKm is the great-circle distance between two points, rounded
// to 0.1 km.
func LegDistanceKm(from, to entities.LatLng) float64 {
	a := s2.LatLngFromDegrees(from.Lat, from.Lng)
	b := s2.LatLngFromDegrees(to.Lat, to.Lng)
	km := a.Distance(b).Radians() * earthRadiusKm
	return math.Round(km*10) / 10
}

// ParseLatLng accepts numbers or numeric strings and rejects anything that
// is not a finite coordinate in range.
func ParseLatLng(lat, lng interface{}) (entities.LatLng, bool) {
	la, ok := parseCoord(lat)
	if !ok || la < -90 || la > 90 {
		return entities.LatLng{}, false
	}
	lo, ok := parseCoord(lng)
	if !ok || lo < -180 || lo > 180 {
		return entities.LatLng{}, false
	}
	return entities.LatLng{Lat: la, Lng: lo}, true
}

func parseCoord(v interface{}) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
