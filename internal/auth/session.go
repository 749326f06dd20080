package auth

import (
	"time"

	"fuji-trip/tripmap/internal/checklist"
	"fuji-trip/tripmap/internal/itinerary"
	"fuji-trip/tripmap/internal/view"
)

var openingDay, openingStop = itinerary.Default().Opening()

// Session is the per-browser context object. It is created on first
// contact, upgraded on login and downgraded on logout; handlers receive it
// through the request context and pass it explicitly to services.
type Session struct {
	ID            string     `json:"id"`
	Authenticated bool       `json:"authenticated"`
	Username      string     `json:"username,omitempty"`
	View          view.State `json:"view"`
	CreatedAt     time.Time  `json:"created_at"`
}

// NewSession returns an anonymous session with the initial view.
func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		View:      view.Initial(checklist.DefaultExpanded, openingDay, openingStop),
		CreatedAt: now,
	}
}

// IsLoggedIn reports whether the session may mutate the checklist.
func (s *Session) IsLoggedIn() bool {
	return s != nil && s.Authenticated && s.Username != ""
}

// SignIn records a successful login.
func (s *Session) SignIn(username string) {
	s.Authenticated = true
	s.Username = username
}

// SignOut clears the identity. The view state is kept.
func (s *Session) SignOut() {
	s.Authenticated = false
	s.Username = ""
}
