package jobs

import (
	"context"
	"time"

	"fuji-trip/tripmap/internal/logging"
	"fuji-trip/tripmap/internal/models/entities"
	"fuji-trip/tripmap/internal/services"
)

// WeatherSource is the part of the weather service the warm-up needs.
type WeatherSource interface {
	Refresh(ctx context.Context) []entities.WeatherData
}

// WeatherWarmupJob fills the weather cache once at startup so the first
// page load does not wait on the provider.
type WeatherWarmupJob struct {
	weather WeatherSource
}

func NewWeatherWarmupJob(weather WeatherSource) *WeatherWarmupJob {
	return &WeatherWarmupJob{weather: weather}
}

// Run fetches every day and returns how many came back as placeholders.
func (j *WeatherWarmupJob) Run(ctx context.Context) int {
	start := time.Now()
	data := j.weather.Refresh(ctx)

	missing := 0
	for _, w := range data {
		if services.IsPlaceholder(w) {
			missing++
		}
	}

	logging.Info("Weather warm-up finished",
		"days", len(data),
		"missing", missing,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return missing
}
