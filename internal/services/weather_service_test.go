package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"fuji-trip/tripmap/internal/common"
	"fuji-trip/tripmap/internal/itinerary"
	"fuji-trip/tripmap/internal/logging"
	"fuji-trip/tripmap/internal/models/entities"
	"fuji-trip/tripmap/internal/providers"
)

type fakeWeatherProvider struct {
	mu      sync.Mutex
	queries []providers.DailyQuery
	failOn  map[string]bool
	result  providers.DailyWeather
}

func newFakeWeatherProvider() *fakeWeatherProvider {
	cloud := 20.0
	return &fakeWeatherProvider{
		failOn: make(map[string]bool),
		result: providers.DailyWeather{WeatherCode: 0, TempMax: 8.5, TempMin: -2.5, CloudCover: &cloud},
	}
}

func (p *fakeWeatherProvider) DailyWeather(ctx context.Context, q providers.DailyQuery) (*providers.DailyWeather, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queries = append(p.queries, q)
	if p.failOn[q.Date] {
		return nil, errors.New("upstream down")
	}
	out := p.result
	return &out, nil
}

func (p *fakeWeatherProvider) GetProviderType() string { return "fake" }

func (p *fakeWeatherProvider) recorded() []providers.DailyQuery {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := append([]providers.DailyQuery(nil), p.queries...)
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

type countingWeatherRecorder struct {
	mu    sync.Mutex
	calls map[string]int
}

func (r *countingWeatherRecorder) WeatherFetched(source, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.calls == nil {
		r.calls = make(map[string]int)
	}
	r.calls[source+"/"+outcome]++
}

func newWeatherFixture(provider providers.WeatherProvider, catalog *itinerary.Catalog, now time.Time) *WeatherService {
	svc := NewWeatherService(provider, catalog, common.NewDurableCacheService(), 14, 30*time.Minute, nil)
	svc.now = func() time.Time { return now }
	return svc
}

func TestForecastWithinHorizon(t *testing.T) {
	defer goleak.VerifyNone(t)

	provider := newFakeWeatherProvider()
	svc := newWeatherFixture(provider, itinerary.Default(), time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC))

	data := svc.Forecast(context.Background())
	require.Len(t, data, 5)

	for i, w := range data {
		assert.Equal(t, i+1, w.Day, "results keep day order")
		assert.False(t, w.IsHistorical)
		assert.Equal(t, "-2°C / 9°C", w.Temp)
		assert.Equal(t, "sun", w.Icon)
		assert.Equal(t, "晴朗", w.Desc)
		assert.Equal(t, "極高", w.FujiVisibility)
	}
	assert.Equal(t, "2026/01/20 (二)", data[0].Date)

	queries := provider.recorded()
	require.Len(t, queries, 5)
	assert.Equal(t, "2026-01-20", queries[0].Date)
	assert.Equal(t, "forecast", queries[0].Source())
	assert.Equal(t, 35.772, queries[0].Lat, "first event of the day")
	assert.Equal(t, 140.392, queries[0].Lng)
}

func TestFarDatesUseLastYearsObservations(t *testing.T) {
	defer goleak.VerifyNone(t)

	provider := newFakeWeatherProvider()
	recorder := &countingWeatherRecorder{}
	svc := NewWeatherService(provider, itinerary.Default(), common.NewDurableCacheService(), 14, time.Minute, recorder)
	svc.now = func() time.Time { return time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC) }

	data := svc.Forecast(context.Background())
	for _, w := range data {
		assert.True(t, w.IsHistorical, "day %d", w.Day)
	}

	queries := provider.recorded()
	require.Len(t, queries, 5)
	assert.Equal(t, "2025-01-20", queries[0].Date)
	assert.Equal(t, "2025-01-24", queries[4].Date)
	for _, q := range queries {
		assert.True(t, q.Historical)
		assert.Equal(t, "archive", q.Source())
	}
	assert.Equal(t, 5, recorder.calls["archive/ok"])
}

func TestPastDatesAreHistorical(t *testing.T) {
	provider := newFakeWeatherProvider()
	svc := newWeatherFixture(provider, itinerary.Default(), time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))

	for _, w := range svc.Forecast(context.Background()) {
		assert.True(t, w.IsHistorical, "day %d", w.Day)
	}
}

func TestHorizonBoundary(t *testing.T) {
	// Day 1 is 2026-01-20. Exactly 14 days out is still a forecast.
	provider := newFakeWeatherProvider()
	svc := newWeatherFixture(provider, itinerary.Default(), time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC))

	data := svc.Forecast(context.Background())
	assert.False(t, data[0].IsHistorical)
	assert.True(t, data[1].IsHistorical)
}

func TestFailedDayGetsPlaceholder(t *testing.T) {
	defer goleak.VerifyNone(t)

	provider := newFakeWeatherProvider()
	provider.failOn["2026-01-22"] = true
	svc := newWeatherFixture(provider, itinerary.Default(), time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC))

	data := svc.Forecast(context.Background())
	require.Len(t, data, 5)

	assert.Equal(t, entities.WeatherData{
		Day:            3,
		Date:           "2026/01/22 (四)",
		Temp:           "--°C / --°C",
		Icon:           "sun-muted",
		Desc:           "無資料",
		FujiVisibility: "-",
	}, data[2])

	for _, i := range []int{0, 1, 3, 4} {
		assert.Equal(t, "-2°C / 9°C", data[i].Temp, "day %d unaffected", data[i].Day)
	}
}

func TestEmptyDayUsesTokyo(t *testing.T) {
	catalog, err := itinerary.New([]entities.DayPlan{
		{Day: 1, Date: "2026/01/20 (二)", Title: "休息日"},
	})
	require.NoError(t, err)

	provider := newFakeWeatherProvider()
	svc := newWeatherFixture(provider, catalog, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC))
	svc.Forecast(context.Background())

	queries := provider.recorded()
	require.Len(t, queries, 1)
	assert.Equal(t, 35.6895, queries[0].Lat)
	assert.Equal(t, 139.6917, queries[0].Lng)
}

func TestForecastIsCachedUntilRefresh(t *testing.T) {
	provider := newFakeWeatherProvider()
	svc := newWeatherFixture(provider, itinerary.Default(), time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	svc.Forecast(ctx)
	svc.Forecast(ctx)
	assert.Len(t, provider.recorded(), 5)

	provider.mu.Lock()
	provider.result.WeatherCode = 71
	provider.mu.Unlock()

	data := svc.Refresh(ctx)
	assert.Len(t, provider.recorded(), 10)
	assert.Equal(t, "下雪", data[0].Desc)

	w, ok := svc.ForDay(ctx, 2)
	require.True(t, ok)
	assert.Equal(t, "cloud-snow", w.Icon)

	_, ok = svc.ForDay(ctx, 9)
	assert.False(t, ok)
}

func TestForecastReadsJSONDecodedCacheEntries(t *testing.T) {
	provider := newFakeWeatherProvider()
	cache := common.NewDurableCacheService()
	svc := NewWeatherService(provider, itinerary.Default(), cache, 14, time.Minute, nil)

	// The Redis cache returns decoded JSON instead of the stored slice.
	cache.Set(weatherCacheKey, []interface{}{
		map[string]interface{}{"day": 1.0, "date": "2026/01/20 (二)", "temp": "0°C / 5°C", "desc": "陰天"},
	}, time.Minute)

	data := svc.Forecast(context.Background())
	require.Len(t, data, 1)
	assert.Equal(t, "0°C / 5°C", data[0].Temp)
	assert.Empty(t, provider.recorded(), "served from cache")
}

func TestForecastRefetchesUnreadableCacheEntry(t *testing.T) {
	provider := newFakeWeatherProvider()
	cache := common.NewDurableCacheService()
	svc := newWeatherFixture(provider, itinerary.Default(), time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC))
	svc.cache = cache

	cache.Set(weatherCacheKey, "garbage", time.Minute)

	data := svc.Forecast(context.Background())
	require.Len(t, data, 5)
	assert.Len(t, provider.recorded(), 5)
}

func TestFailedFetchLogsProvider(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	logging.SetLogger(zap.New(core).Sugar())
	t.Cleanup(func() { logging.SetLogger(zap.NewNop().Sugar()) })

	provider := newFakeWeatherProvider()
	provider.failOn["2026-01-21"] = true
	svc := newWeatherFixture(provider, itinerary.Default(), time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC))
	svc.Forecast(context.Background())

	failures := logs.FilterMessage("Weather fetch failed").All()
	require.Len(t, failures, 1)
	fields := failures[0].ContextMap()
	assert.Equal(t, "fake", fields["provider"])
	assert.Equal(t, "forecast", fields["source"])
	assert.EqualValues(t, 2, fields["day"])
}

func TestMissingCloudCover(t *testing.T) {
	provider := newFakeWeatherProvider()
	provider.result.CloudCover = nil
	svc := newWeatherFixture(provider, itinerary.Default(), time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC))

	data := svc.Forecast(context.Background())
	assert.Equal(t, "-", data[0].FujiVisibility)
	assert.Equal(t, "晴朗", data[0].Desc)
}

func TestWeatherCodeMappings(t *testing.T) {
	tests := []struct {
		code int
		desc string
		icon string
	}{
		{0, "晴朗", "sun"},
		{1, "大致晴朗", "sun"},
		{2, "多雲", "cloud"},
		{3, "陰天", "cloud"},
		{45, "有霧", "cloud-fog"},
		{53, "毛毛雨", "cloud-rain"},
		{63, "下雨", "cloud-rain"},
		{66, "晴朗", "cloud-rain"},
		{73, "下雪", "cloud-snow"},
		{77, "晴朗", "cloud-snow"},
		{81, "陣雨", "cloud-rain"},
		{86, "陣雪", "cloud-snow"},
		{95, "雷雨", "sun"},
		{99, "雷雨", "sun"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.desc, WeatherDescription(tt.code), "desc %d", tt.code)
		assert.Equal(t, tt.icon, WeatherIcon(tt.code), "icon %d", tt.code)
	}
}

func TestFujiVisibilityTiers(t *testing.T) {
	tiers := map[float64]string{
		0:    "極高",
		29.9: "極高",
		30:   "高",
		49:   "高",
		50:   "中",
		69:   "中",
		70:   "低",
		89:   "低",
		90:   "極低",
		100:  "極低",
	}
	for cover, want := range tiers {
		c := cover
		assert.Equal(t, want, FujiVisibility(&c), "cloud cover %v", cover)
	}
	assert.Equal(t, "-", FujiVisibility(nil))
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 3, roundHalfUp(2.5))
	assert.Equal(t, -2, roundHalfUp(-2.5))
	assert.Equal(t, -3, roundHalfUp(-2.51))
	assert.Equal(t, 0, roundHalfUp(-0.4))
}
