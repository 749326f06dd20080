package providers

import (
	"context"
	"fmt"
)

// WeatherProvider defines the interface for daily weather sources
type WeatherProvider interface {
	// DailyWeather fetches one day of weather at a coordinate
	DailyWeather(ctx context.Context, query DailyQuery) (*DailyWeather, error)

	// GetProviderType returns the provider type identifier
	GetProviderType() string
}

// DailyQuery selects one day at one place. Historical queries go to the
// archive endpoint; Date is already shifted by the caller.
type DailyQuery struct {
	Lat        float64
	Lng        float64
	Date       string // YYYY-MM-DD
	Historical bool
}

// Source names the endpoint used for the query.
func (q DailyQuery) Source() string {
	if q.Historical {
		return "archive"
	}
	return "forecast"
}

// DailyWeather is the subset of daily fields the trip views need
type DailyWeather struct {
	WeatherCode int
	TempMax     float64
	TempMin     float64
	CloudCover  *float64 // nil when the source has no cloud data for the day
}

// ProviderError carries a provider error code alongside the cause
type ProviderError struct {
	Code       string
	Message    string
	Details    string
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
