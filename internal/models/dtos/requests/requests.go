package requests

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SaveDetailsRequest struct {
	Details string `json:"details"`
}

// SaveLocationRequest accepts numbers or numeric strings; the form posts
// whatever the user typed.
type SaveLocationRequest struct {
	Lat interface{} `json:"lat"`
	Lng interface{} `json:"lng"`
}

type AddChecklistItemRequest struct {
	Name string `json:"name"`
	Note string `json:"note"`
}

type SelectTabRequest struct {
	Tab string `json:"tab"`
}

// SelectDayRequest selects one day, or all days when Day is 0.
type SelectDayRequest struct {
	Day int `json:"day"`
}
