package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"fuji-trip/tripmap/internal/config"
	"fuji-trip/tripmap/internal/constants"
)

const dailyFields = "weather_code,temperature_2m_max,temperature_2m_min,cloud_cover_mean"

// OpenMeteoProvider implements WeatherProvider against the Open-Meteo
// forecast and archive APIs
type OpenMeteoProvider struct {
	ForecastURL string
	ArchiveURL  string
	Timezone    string
	Client      *http.Client
	limiter     *rate.Limiter
}

// NewOpenMeteoProvider creates a provider from the weather configuration
func NewOpenMeteoProvider(cfg config.WeatherConfig) *OpenMeteoProvider {
	return &OpenMeteoProvider{
		ForecastURL: cfg.ForecastURL,
		ArchiveURL:  cfg.ArchiveURL,
		Timezone:    cfg.Timezone,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
		// Open-Meteo asks free clients to stay well under 10 req/s.
		limiter: rate.NewLimiter(5, 5),
	}
}

// GetProviderType returns the provider type identifier
func (p *OpenMeteoProvider) GetProviderType() string {
	return "open_meteo"
}

type openMeteoResponse struct {
	Daily *struct {
		Time           []string   `json:"time"`
		WeatherCode    []*int     `json:"weather_code"`
		TempMax        []*float64 `json:"temperature_2m_max"`
		TempMin        []*float64 `json:"temperature_2m_min"`
		CloudCoverMean []*float64 `json:"cloud_cover_mean"`
	} `json:"daily"`
}

// DailyWeather fetches weather for query.Date at the query coordinate
func (p *OpenMeteoProvider) DailyWeather(ctx context.Context, query DailyQuery) (*DailyWeather, error) {
	if _, err := time.Parse("2006-01-02", query.Date); err != nil {
		return nil, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: fmt.Sprintf("invalid date %q", query.Date),
			Err:     err,
		}
	}

	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, &ProviderError{
				Code:    constants.ErrCodeRateLimited,
				Message: constants.GetErrorMessage(constants.ErrCodeRateLimited),
				Err:     err,
			}
		}
	}

	base := p.ForecastURL
	if query.Historical {
		base = p.ArchiveURL
	}

	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(query.Lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(query.Lng, 'f', -1, 64))
	params.Set("start_date", query.Date)
	params.Set("end_date", query.Date)
	params.Set("daily", dailyFields)
	params.Set("timezone", p.Timezone)

	var result openMeteoResponse
	if err := p.doGET(ctx, base+"?"+params.Encode(), &result); err != nil {
		return nil, err
	}

	return parseDaily(&result)
}

func parseDaily(resp *openMeteoResponse) (*DailyWeather, error) {
	d := resp.Daily
	if d == nil ||
		len(d.WeatherCode) == 0 || d.WeatherCode[0] == nil ||
		len(d.TempMax) == 0 || d.TempMax[0] == nil ||
		len(d.TempMin) == 0 || d.TempMin[0] == nil {
		return nil, &ProviderError{
			Code:    constants.ErrCodeMissingData,
			Message: constants.GetErrorMessage(constants.ErrCodeMissingData),
		}
	}

	out := &DailyWeather{
		WeatherCode: *d.WeatherCode[0],
		TempMax:     *d.TempMax[0],
		TempMin:     *d.TempMin[0],
	}
	if len(d.CloudCoverMean) > 0 {
		out.CloudCover = d.CloudCoverMean[0]
	}
	return out, nil
}

// doGET performs a GET request and decodes the JSON body into result
func (p *OpenMeteoProvider) doGET(ctx context.Context, endpoint string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to create request",
			Err:     err,
		}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: constants.GetErrorMessage(constants.ErrCodeNetworkError),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to read response body",
			Err:     err,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ProviderError{
			Code:       constants.ErrCodeUpstreamStatus,
			Message:    fmt.Sprintf("weather service returned %d", resp.StatusCode),
			Details:    string(bodyBytes),
			StatusCode: resp.StatusCode,
		}
	}

	if err := json.Unmarshal(bodyBytes, result); err != nil {
		return &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "Failed to decode response",
			Details: string(bodyBytes),
			Err:     err,
		}
	}

	return nil
}
