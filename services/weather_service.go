// File: /services/weather_service.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

var ErrForecastUnavailable = errors.New("no forecast available for the event date")

// WeatherSummary is the slice of an OpenWeather response the event detail
// screen shows.
type WeatherSummary struct {
	Temp        int     `json:"temp"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}

// WeatherService fetches current conditions or the 5-day/3-hour forecast
// from OpenWeather, depending on how far away the event is.
type WeatherService struct {
	logger  *zap.Logger
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewWeatherService(logger *zap.Logger, apiKey string) *WeatherService {
	return &WeatherService{
		logger:  logger,
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org/data/2.5",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Configured reports whether an API key is available; without one every
// lookup fails fast.
func (ws *WeatherService) Configured() bool {
	return ws.apiKey != ""
}

type openWeatherCondition struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type openWeatherReading struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []openWeatherCondition `json:"weather"`
	Wind    struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

type forecastResponse struct {
	List []openWeatherReading `json:"list"`
}

// ForecastFor returns the weather for an event at the given position and
// time: current conditions for today-or-past events, the closest forecast
// slot for events within 5 days, an error beyond that.
func (ws *WeatherService) ForecastFor(ctx context.Context, lat, lon float64, at time.Time) (*WeatherSummary, error) {
	if !ws.Configured() {
		return nil, errors.New("weather lookup is not configured")
	}

	daysUntil := int(math.Floor(time.Until(at).Hours() / 24))

	switch {
	case daysUntil <= 0:
		return ws.fetchCurrent(ctx, lat, lon)
	case daysUntil <= 5:
		return ws.fetchForecast(ctx, lat, lon, at)
	}

	return nil, ErrForecastUnavailable
}

func (ws *WeatherService) fetchCurrent(ctx context.Context, lat, lon float64) (*WeatherSummary, error) {
	var reading openWeatherReading
	if err := ws.get(ctx, "/weather", lat, lon, &reading); err != nil {
		return nil, err
	}
	return summarize(reading), nil
}

func (ws *WeatherService) fetchForecast(ctx context.Context, lat, lon float64, at time.Time) (*WeatherSummary, error) {
	var forecast forecastResponse
	if err := ws.get(ctx, "/forecast", lat, lon, &forecast); err != nil {
		return nil, err
	}
	if len(forecast.List) == 0 {
		return nil, ErrForecastUnavailable
	}

	// Pick the 3-hour slot closest to the event time.
	best := forecast.List[0]
	bestDiff := absDuration(time.Unix(best.Dt, 0).Sub(at))
	for _, reading := range forecast.List[1:] {
		diff := absDuration(time.Unix(reading.Dt, 0).Sub(at))
		if diff < bestDiff {
			best = reading
			bestDiff = diff
		}
	}

	return summarize(best), nil
}

func (ws *WeatherService) get(ctx context.Context, path string, lat, lon float64, out interface{}) error {
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", lat))
	params.Set("lon", fmt.Sprintf("%f", lon))
	params.Set("appid", ws.apiKey)
	params.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ws.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("building weather request: %w", err)
	}

	resp, err := ws.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetching weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		ws.logger.Warn("weather request failed", zap.String("path", path), zap.Int("status", resp.StatusCode))
		return fmt.Errorf("weather request returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding weather response: %w", err)
	}
	return nil
}

func summarize(reading openWeatherReading) *WeatherSummary {
	summary := &WeatherSummary{
		Temp:      int(math.Round(reading.Main.Temp)),
		Humidity:  reading.Main.Humidity,
		WindSpeed: reading.Wind.Speed,
	}
	if len(reading.Weather) > 0 {
		summary.Description = reading.Weather[0].Description
		summary.Icon = reading.Weather[0].Icon
	}
	return summary
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
