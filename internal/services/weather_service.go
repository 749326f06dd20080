package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"fuji-trip/tripmap/internal/common"
	"fuji-trip/tripmap/internal/constants"
	"fuji-trip/tripmap/internal/itinerary"
	"fuji-trip/tripmap/internal/logging"
	"fuji-trip/tripmap/internal/models/entities"
	"fuji-trip/tripmap/internal/providers"
)

const (
	defaultLat = 35.6895
	defaultLng = 139.6917

	weatherCacheKey    = string(constants.CachePrefixWeather) + "days"
	maxConcurrentDays  = 3
	placeholderTemp    = "--°C / --°C"
	placeholderIcon    = "sun-muted"
	placeholderDesc    = "無資料"
	placeholderVisible = "-"
)

// WeatherRecorder receives one call per day lookup.
type WeatherRecorder interface {
	WeatherFetched(source, outcome string)
}

type nopWeatherRecorder struct{}

func (nopWeatherRecorder) WeatherFetched(string, string) {}

// WeatherService annotates each itinerary day with a forecast, or with
// last year's observations when the date is outside the forecast horizon.
type WeatherService struct {
	provider    providers.WeatherProvider
	catalog     *itinerary.Catalog
	cache       common.CacheInterface
	horizonDays int
	cacheTTL    time.Duration
	recorder    WeatherRecorder
	now         func() time.Time
}

func NewWeatherService(
	provider providers.WeatherProvider,
	catalog *itinerary.Catalog,
	cache common.CacheInterface,
	horizonDays int,
	cacheTTL time.Duration,
	recorder WeatherRecorder,
) *WeatherService {
	if recorder == nil {
		recorder = nopWeatherRecorder{}
	}
	return &WeatherService{
		provider:    provider,
		catalog:     catalog,
		cache:       cache,
		horizonDays: horizonDays,
		cacheTTL:    cacheTTL,
		recorder:    recorder,
		now:         time.Now,
	}
}

// Forecast returns the cached annotations, fetching them on a miss.
func (svc *WeatherService) Forecast(ctx context.Context) []entities.WeatherData {
	raw, err := svc.cache.GetOrSet(weatherCacheKey, svc.cacheTTL, func() (any, error) {
		return svc.fetchAll(ctx), nil
	})
	if err == nil {
		if data, ok := common.As[[]entities.WeatherData](raw); ok {
			return data
		}
	}
	logging.Warn("Weather cache entry unreadable, refetching", "key", weatherCacheKey)
	return svc.Refresh(ctx)
}

// Refresh fetches every day again and replaces the cached result.
func (svc *WeatherService) Refresh(ctx context.Context) []entities.WeatherData {
	data := svc.fetchAll(ctx)
	svc.cache.Set(weatherCacheKey, data, svc.cacheTTL)
	return data
}

// ForDay returns the annotation for one day from the cached set.
func (svc *WeatherService) ForDay(ctx context.Context, day int) (entities.WeatherData, bool) {
	for _, w := range svc.Forecast(ctx) {
		if w.Day == day {
			return w, true
		}
	}
	return entities.WeatherData{}, false
}

// fetchAll looks up every day concurrently. Each day fails on its own into
// a placeholder; results keep the itinerary's day order.
func (svc *WeatherService) fetchAll(ctx context.Context) []entities.WeatherData {
	days := svc.catalog.Days()
	results := make([]entities.WeatherData, len(days))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentDays)

	for i, day := range days {
		g.Go(func() error {
			results[i] = svc.fetchDay(gctx, day)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (svc *WeatherService) fetchDay(ctx context.Context, day entities.DayPlan) entities.WeatherData {
	out := entities.WeatherData{Day: day.Day, Date: day.Date}

	date, err := parsePlanDate(day.Date)
	if err != nil {
		logging.Warn("Weather skipped, unreadable date", "day", day.Day, "date", day.Date)
		return placeholder(out)
	}

	diffDays := int(math.Ceil(date.Sub(svc.now()).Hours() / 24))
	out.IsHistorical = diffDays > svc.horizonDays || diffDays < 0

	query := providers.DailyQuery{
		Lat:        defaultLat,
		Lng:        defaultLng,
		Date:       date.Format("2006-01-02"),
		Historical: out.IsHistorical,
	}
	if len(day.Events) > 0 {
		query.Lat = day.Events[0].Lat
		query.Lng = day.Events[0].Lng
	}
	if out.IsHistorical {
		query.Date = date.AddDate(-1, 0, 0).Format("2006-01-02")
	}

	daily, err := svc.provider.DailyWeather(ctx, query)
	if err != nil {
		svc.recorder.WeatherFetched(query.Source(), "error")
		logging.Warn("Weather fetch failed",
			"day", day.Day,
			"provider", svc.provider.GetProviderType(),
			"source", query.Source(),
			"error", err.Error(),
		)
		return placeholder(out)
	}
	svc.recorder.WeatherFetched(query.Source(), "ok")

	out.Temp = fmt.Sprintf("%d°C / %d°C", roundHalfUp(daily.TempMin), roundHalfUp(daily.TempMax))
	out.Icon = WeatherIcon(daily.WeatherCode)
	out.Desc = WeatherDescription(daily.WeatherCode)
	out.FujiVisibility = FujiVisibility(daily.CloudCover)
	return out
}

func placeholder(w entities.WeatherData) entities.WeatherData {
	w.Temp = placeholderTemp
	w.Icon = placeholderIcon
	w.Desc = placeholderDesc
	w.FujiVisibility = placeholderVisible
	return w
}

// IsPlaceholder reports whether w stands in for a failed lookup.
func IsPlaceholder(w entities.WeatherData) bool {
	return w.Temp == placeholderTemp && w.Desc == placeholderDesc
}

// parsePlanDate reads the leading date of "2026/01/20 (二)" as UTC midnight.
func parsePlanDate(s string) (time.Time, error) {
	first := strings.Fields(s)
	if len(first) == 0 {
		return time.Time{}, fmt.Errorf("empty date")
	}
	return time.Parse("2006-01-02", strings.ReplaceAll(first[0], "/", "-"))
}

// roundHalfUp rounds .5 towards positive infinity, so -2.5 becomes -2.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// WeatherDescription maps a WMO weather code to a short label.
func WeatherDescription(code int) string {
	switch {
	case code == 0:
		return "晴朗"
	case code == 1:
		return "大致晴朗"
	case code == 2:
		return "多雲"
	case code == 3:
		return "陰天"
	case code >= 45 && code <= 48:
		return "有霧"
	case code >= 51 && code <= 55:
		return "毛毛雨"
	case code >= 61 && code <= 65:
		return "下雨"
	case code >= 71 && code <= 75:
		return "下雪"
	case code >= 80 && code <= 82:
		return "陣雨"
	case code >= 85 && code <= 86:
		return "陣雪"
	case code >= 95:
		return "雷雨"
	}
	return "晴朗"
}

// WeatherIcon maps a WMO weather code to an icon name.
func WeatherIcon(code int) string {
	switch {
	case code == 0 || code == 1:
		return "sun"
	case code == 2 || code == 3:
		return "cloud"
	case code >= 45 && code <= 48:
		return "cloud-fog"
	case code >= 51 && code <= 67:
		return "cloud-rain"
	case code >= 71 && code <= 77:
		return "cloud-snow"
	case code >= 80 && code <= 82:
		return "cloud-rain"
	case code >= 85 && code <= 86:
		return "cloud-snow"
	}
	return "sun"
}

// FujiVisibility maps mean cloud cover (percent) to a visibility tier.
func FujiVisibility(cloudCover *float64) string {
	if cloudCover == nil {
		return placeholderVisible
	}
	switch c := *cloudCover; {
	case c < 30:
		return "極高"
	case c < 50:
		return "高"
	case c < 70:
		return "中"
	case c < 90:
		return "低"
	}
	return "極低"
}
