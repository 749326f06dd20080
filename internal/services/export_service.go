package services

import (
	"context"
	"fmt"
	"strings"

	"fuji-trip/tripmap/internal/models/entities"
)

const (
	markdownHeader    = "| Day | 序號 | 時間 | 地點/活動 | Google Map | 備註/天氣預測 |\n"
	markdownSeparator = "| --- | --- | --- | --- | --- | --- |\n"
)

// ExportService renders the itinerary as a markdown table.
type ExportService struct {
	itinerary *ItineraryService
	weather   *WeatherService
}

// NewExportService creates an exporter. weather may be nil, in which case
// every row carries the placeholder forecast.
func NewExportService(itinerary *ItineraryService, weather *WeatherService) *ExportService {
	return &ExportService{
		itinerary: itinerary,
		weather:   weather,
	}
}

// Markdown renders one row per event in schedule order.
func (svc *ExportService) Markdown(ctx context.Context) string {
	byDay := make(map[int]entities.WeatherData)
	if svc.weather != nil {
		for _, w := range svc.weather.Forecast(ctx) {
			byDay[w.Day] = w
		}
	}

	var b strings.Builder
	b.WriteString(markdownHeader)
	b.WriteString(markdownSeparator)

	for _, day := range svc.itinerary.Itinerary(ctx) {
		w, ok := byDay[day.Day]
		if !ok {
			w = placeholder(entities.WeatherData{Day: day.Day})
		}

		for idx, e := range day.Events {
			fmt.Fprintf(&b, "| Day %d | %d | %s | %s (%s) | [開啟地圖](%s) | %s %s - %s |\n",
				day.Day,
				idx+1,
				cell(e.Time),
				cell(e.Location),
				cell(e.Activity),
				e.MapLink,
				w.Temp,
				w.Desc,
				cell(e.Notes),
			)
		}
	}

	return b.String()
}

// cell keeps free text from breaking the table layout.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}
