package entities

// EventType classifies an itinerary event.
type EventType string

const (
	EventFlight      EventType = "flight"
	EventTransport   EventType = "transport"
	EventFood        EventType = "food"
	EventStay        EventType = "stay"
	EventSightseeing EventType = "sightseeing"
	EventShopping    EventType = "shopping"
)

// LatLng is a coordinate pair in degrees.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Booking holds accommodation reservation details.
type Booking struct {
	Provider string `json:"provider,omitempty"`
	Number   string `json:"number,omitempty"`
	Price    string `json:"price,omitempty"`
	Payment  string `json:"payment,omitempty"`
	Status   string `json:"status,omitempty"`
	People   int    `json:"people,omitempty"`
	Period   string `json:"period,omitempty"`
}

// FlightInfo holds a flight leg reference.
type FlightInfo struct {
	Airline          string `json:"airline"`
	FlightNumber     string `json:"flightNumber"`
	DepartureTime    string `json:"departureTime"`
	ArrivalTime      string `json:"arrivalTime"`
	DepartureAirport string `json:"departureAirport"`
	ArrivalAirport   string `json:"arrivalAirport"`
	Terminal         string `json:"terminal,omitempty"`
	Class            string `json:"class,omitempty"`
	Baggage          string `json:"baggage,omitempty"`
	Status           string `json:"status,omitempty"`
	Duration         string `json:"duration,omitempty"`
}

// TripEvent is one scheduled itinerary item. Base records are never mutated;
// user edits live in the override stores.
type TripEvent struct {
	ID             string      `json:"id"`
	Day            int         `json:"day"`
	Time           string      `json:"time"`
	Location       string      `json:"location"`
	Activity       string      `json:"activity"`
	Notes          string      `json:"notes"`
	Details        string      `json:"details,omitempty"`
	ImportantNotes string      `json:"importantNotes,omitempty"`
	TravelTime     string      `json:"travelTime,omitempty"`
	Lat            float64     `json:"lat"`
	Lng            float64     `json:"lng"`
	Type           EventType   `json:"type"`
	Booking        *Booking    `json:"booking,omitempty"`
	Flight         *FlightInfo `json:"flight,omitempty"`
}

// Position returns the built-in coordinates of the event.
func (e TripEvent) Position() LatLng {
	return LatLng{Lat: e.Lat, Lng: e.Lng}
}

// DayPlan groups the events of one calendar day.
type DayPlan struct {
	Day    int         `json:"day"`
	Date   string      `json:"date"`
	Title  string      `json:"title"`
	Color  string      `json:"color"`
	Events []TripEvent `json:"events"`
}
