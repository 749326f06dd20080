package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fuji-trip/tripmap/internal/config"
	"fuji-trip/tripmap/internal/constants"
)

func newTestProvider(forecast, archive string) *OpenMeteoProvider {
	p := NewOpenMeteoProvider(config.WeatherConfig{
		ForecastURL: forecast,
		ArchiveURL:  archive,
		Timezone:    "Asia/Tokyo",
	})
	p.Client = &http.Client{}
	return p
}

func TestOpenMeteoProvider_DailyWeather_Forecast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/v1/forecast", r.URL.Path)
		assert.Equal(t, "2026-01-21", q.Get("start_date"))
		assert.Equal(t, "2026-01-21", q.Get("end_date"))
		assert.Equal(t, "Asia/Tokyo", q.Get("timezone"))
		assert.Equal(t, dailyFields, q.Get("daily"))
		assert.Equal(t, "35.3606", q.Get("latitude"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"daily":{"time":["2026-01-21"],"weather_code":[3],"temperature_2m_max":[6.6],"temperature_2m_min":[-2.4],"cloud_cover_mean":[42]}}`))
	}))
	defer server.Close()

	p := newTestProvider(server.URL+"/v1/forecast", server.URL+"/v1/archive")
	got, err := p.DailyWeather(context.Background(), DailyQuery{Lat: 35.3606, Lng: 138.7274, Date: "2026-01-21"})
	require.NoError(t, err)

	assert.Equal(t, 3, got.WeatherCode)
	assert.Equal(t, 6.6, got.TempMax)
	assert.Equal(t, -2.4, got.TempMin)
	require.NotNil(t, got.CloudCover)
	assert.Equal(t, 42.0, *got.CloudCover)
}

func TestOpenMeteoProvider_DailyWeather_ArchiveEndpoint(t *testing.T) {
	var hitPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hitPath = r.URL.Path
		w.Write([]byte(`{"daily":{"weather_code":[0],"temperature_2m_max":[9],"temperature_2m_min":[1],"cloud_cover_mean":[null]}}`))
	}))
	defer server.Close()

	p := newTestProvider(server.URL+"/forecast", server.URL+"/archive")
	got, err := p.DailyWeather(context.Background(), DailyQuery{Date: "2025-01-20", Historical: true})
	require.NoError(t, err)

	assert.Equal(t, "/archive", hitPath)
	assert.Nil(t, got.CloudCover)
}

func TestOpenMeteoProvider_DailyWeather_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantCode string
	}{
		{name: "upstream error", status: http.StatusBadRequest, body: `{"error":true}`, wantCode: constants.ErrCodeUpstreamStatus},
		{name: "missing daily", status: http.StatusOK, body: `{}`, wantCode: constants.ErrCodeMissingData},
		{name: "empty arrays", status: http.StatusOK, body: `{"daily":{"weather_code":[],"temperature_2m_max":[],"temperature_2m_min":[]}}`, wantCode: constants.ErrCodeMissingData},
		{name: "malformed", status: http.StatusOK, body: `not json`, wantCode: constants.ErrCodeInvalidDataFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			p := newTestProvider(server.URL, server.URL)
			_, err := p.DailyWeather(context.Background(), DailyQuery{Date: "2026-01-20"})
			require.Error(t, err)

			var provErr *ProviderError
			require.True(t, errors.As(err, &provErr))
			assert.Equal(t, tt.wantCode, provErr.Code)
		})
	}
}

func TestOpenMeteoProvider_DailyWeather_InvalidDate(t *testing.T) {
	p := newTestProvider("http://unused", "http://unused")
	_, err := p.DailyWeather(context.Background(), DailyQuery{Date: "2026/01/20"})

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, constants.ErrCodeInvalidDataFormat, provErr.Code)
}
