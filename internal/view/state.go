// Package view holds the per-session presentation state: which tab is
// showing, which day is selected and where the map is pointed.
package view

import (
	"fmt"
	"sort"

	"fuji-trip/tripmap/internal/models/entities"
)

// Tab is one of the top-level views.
type Tab string

const (
	TabMap       Tab = "map"
	TabItinerary Tab = "itinerary"
	TabBooking   Tab = "booking"
	TabFlight    Tab = "flight"
	TabChecklist Tab = "checklist"
	TabExport    Tab = "export"
)

// AllDays is the SelectedDay and ItineraryFilter value meaning "no day filter".
const AllDays = 0

// Toggle names accepted by ToggleFlag.
const (
	FlagSidebar = "sidebar"
	FlagWeather = "weather"
)

const (
	zoomOverview = 8
	zoomInitial  = 10
	zoomDay      = 11
	zoomFocus    = 15
)

var (
	initialCenter  = entities.LatLng{Lat: 35.6895, Lng: 139.6917}
	overviewCenter = entities.LatLng{Lat: 35.5, Lng: 139.2}
)

var tabs = map[Tab]bool{
	TabMap: true, TabItinerary: true, TabBooking: true,
	TabFlight: true, TabChecklist: true, TabExport: true,
}

// ParseTab validates a tab name.
func ParseTab(s string) (Tab, error) {
	t := Tab(s)
	if !tabs[t] {
		return "", fmt.Errorf("unknown tab %q", s)
	}
	return t, nil
}

// Viewport is the map centre and zoom level.
type Viewport struct {
	Center entities.LatLng `json:"center"`
	Zoom   int             `json:"zoom"`
}

// State is a plain value; every transition is synchronous.
type State struct {
	Tab                Tab      `json:"tab"`
	SidebarOpen        bool     `json:"sidebarOpen"`
	WeatherOpen        bool     `json:"weatherOpen"`
	SelectedDay        int      `json:"selectedDay"`
	ItineraryFilter    int      `json:"itineraryFilter"`
	ExpandedEvent      string   `json:"expandedEvent,omitempty"`
	ExpandedCategories []string `json:"expandedCategories"`
	Viewport           Viewport `json:"viewport"`
}

// Initial returns the state a new session starts with: the map on day,
// centred on that day's first stop when there is one, and the itinerary
// table unfiltered.
func Initial(defaultCategory string, day int, firstStop *entities.LatLng) State {
	s := State{
		Tab:             TabMap,
		SidebarOpen:     true,
		SelectedDay:     day,
		ItineraryFilter: AllDays,
		Viewport:        Viewport{Center: initialCenter, Zoom: zoomInitial},
	}
	if firstStop != nil {
		s.Viewport = Viewport{Center: *firstStop, Zoom: zoomDay}
	}
	if defaultCategory != "" {
		s.ExpandedCategories = []string{defaultCategory}
	}
	return s
}

func (s *State) SelectTab(t Tab) {
	s.Tab = t
}

// SelectAllDays clears the day filter and zooms out over the whole trip.
func (s *State) SelectAllDays() {
	s.SelectedDay = AllDays
	s.Viewport = Viewport{Center: overviewCenter, Zoom: zoomOverview}
}

// SelectDay filters to one day and centres on its first event. A day
// without events keeps the current viewport.
func (s *State) SelectDay(day int, firstEvent *entities.LatLng) {
	s.SelectedDay = day
	if firstEvent != nil {
		s.Viewport = Viewport{Center: *firstEvent, Zoom: zoomDay}
	}
}

// FilterItinerary narrows the itinerary table to one day (AllDays for
// none). The map selection and viewport are untouched.
func (s *State) FilterItinerary(day int) {
	s.ItineraryFilter = day
}

// FocusEvent selects the event's day, zooms in on pos and switches to the map.
func (s *State) FocusEvent(day int, pos entities.LatLng) {
	s.SelectedDay = day
	s.Viewport = Viewport{Center: pos, Zoom: zoomFocus}
	s.Tab = TabMap
}

// ToggleFlag flips one of the boolean panels.
func (s *State) ToggleFlag(name string) error {
	switch name {
	case FlagSidebar:
		s.SidebarOpen = !s.SidebarOpen
	case FlagWeather:
		s.WeatherOpen = !s.WeatherOpen
	default:
		return fmt.Errorf("unknown flag %q", name)
	}
	return nil
}

// ToggleExpandedEvent expands id, or collapses it when already expanded.
func (s *State) ToggleExpandedEvent(id string) {
	if s.ExpandedEvent == id {
		s.ExpandedEvent = ""
		return
	}
	s.ExpandedEvent = id
}

// ToggleCategory opens or closes one checklist category.
func (s *State) ToggleCategory(id string) {
	for i, c := range s.ExpandedCategories {
		if c == id {
			s.ExpandedCategories = append(s.ExpandedCategories[:i:i], s.ExpandedCategories[i+1:]...)
			return
		}
	}
	s.ExpandedCategories = append(s.ExpandedCategories, id)
	sort.Strings(s.ExpandedCategories)
}

// ExpandAll opens every listed category.
func (s *State) ExpandAll(ids []string) {
	s.ExpandedCategories = append([]string(nil), ids...)
	sort.Strings(s.ExpandedCategories)
}

func (s *State) CollapseAll() {
	s.ExpandedCategories = []string{}
}

// IsExpanded reports whether a checklist category is open.
func (s State) IsExpanded(id string) bool {
	for _, c := range s.ExpandedCategories {
		if c == id {
			return true
		}
	}
	return false
}
