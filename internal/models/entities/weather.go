package entities

// WeatherData is the per-day weather annotation shown next to the itinerary.
type WeatherData struct {
	Day            int    `json:"day"`
	Date           string `json:"date"`
	Temp           string `json:"temp"`
	Icon           string `json:"icon"`
	Desc           string `json:"desc"`
	FujiVisibility string `json:"fujiVisibility"`
	IsHistorical   bool   `json:"isHistorical"`
}
