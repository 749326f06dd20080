// Package itinerary serves the built-in trip schedule. Callers always get
// copies; the base records are never mutated.
package itinerary

import (
	"fmt"
	"sort"

	"fuji-trip/tripmap/internal/models/entities"
)

// Catalog indexes a fixed set of day plans.
type Catalog struct {
	days   []entities.DayPlan
	events map[string]entities.TripEvent
}

// Default returns the catalog built from the in-source schedule.
func Default() *Catalog {
	c, err := New(tripDays)
	if err != nil {
		panic(err)
	}
	return c
}

// New builds a catalog, ordering days by their number and rejecting
// duplicate event ids.
func New(days []entities.DayPlan) (*Catalog, error) {
	sorted := cloneDays(days)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Day < sorted[j].Day })

	events := make(map[string]entities.TripEvent)
	for _, d := range sorted {
		for _, e := range d.Events {
			if _, dup := events[e.ID]; dup {
				return nil, fmt.Errorf("duplicate event id %q", e.ID)
			}
			events[e.ID] = e
		}
	}

	return &Catalog{days: sorted, events: events}, nil
}

// Days returns every day plan in day order.
func (c *Catalog) Days() []entities.DayPlan {
	return cloneDays(c.days)
}

// Day returns the plan for one day number.
func (c *Catalog) Day(day int) (entities.DayPlan, bool) {
	for _, d := range c.days {
		if d.Day == day {
			return cloneDays([]entities.DayPlan{d})[0], true
		}
	}
	return entities.DayPlan{}, false
}

// Opening returns the first day number and the position of its first
// event, or nil when that day is empty.
func (c *Catalog) Opening() (int, *entities.LatLng) {
	if len(c.days) == 0 {
		return 0, nil
	}
	first := c.days[0]
	if len(first.Events) == 0 {
		return first.Day, nil
	}
	e := first.Events[0]
	return first.Day, &entities.LatLng{Lat: e.Lat, Lng: e.Lng}
}

// Event looks up an event by id.
func (c *Catalog) Event(id string) (entities.TripEvent, bool) {
	e, ok := c.events[id]
	return e, ok
}

// HasEvent reports whether id names a built-in event.
func (c *Catalog) HasEvent(id string) bool {
	_, ok := c.events[id]
	return ok
}

// Events returns all events in schedule order.
func (c *Catalog) Events() []entities.TripEvent {
	var out []entities.TripEvent
	for _, d := range c.days {
		out = append(out, d.Events...)
	}
	return out
}

func cloneDays(days []entities.DayPlan) []entities.DayPlan {
	out := make([]entities.DayPlan, len(days))
	for i, d := range days {
		out[i] = d
		out[i].Events = append([]entities.TripEvent(nil), d.Events...)
	}
	return out
}
