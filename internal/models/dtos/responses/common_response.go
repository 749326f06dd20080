package responses

import "time"

type APIResponse[T any] struct {
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
	Error         string    `json:"error,omitempty"`
	LoginRequired bool      `json:"login_required,omitempty"`
	Data          *T        `json:"data,omitempty"`
}

type SessionResponse struct {
	LoggedIn bool   `json:"loggedIn"`
	Username string `json:"username,omitempty"`
}

type SaveResponse struct {
	EventID string `json:"eventId"`
	Saved   bool   `json:"saved"`
}

type MapLinkResponse struct {
	EventID string `json:"eventId"`
	URL     string `json:"url"`
}

type ToggleResponse struct {
	ItemID  string `json:"itemId"`
	Checked bool   `json:"checked"`
}

type DeleteResponse struct {
	ItemID  string `json:"itemId"`
	Deleted bool   `json:"deleted"`
}
