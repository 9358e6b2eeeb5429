package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"energyai/internal/models"
)

const openWeatherURL = "https://api.openweathermap.org/data/2.5/weather"

// WeatherService fetches current conditions from OpenWeatherMap. Any failure,
// including a missing API key, yields a fixed fallback snapshot so analytics
// always has a usable (if marked) weather input.
type WeatherService struct {
	apiKey     string
	lat, lon   float64
	baseURL    string
	httpClient *http.Client
}

func NewWeatherService(apiKey string, lat, lon float64) *WeatherService {
	return &WeatherService{
		apiKey:  apiKey,
		lat:     lat,
		lon:     lon,
		baseURL: openWeatherURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// openWeatherResponse mirrors the subset of the OpenWeatherMap payload we use.
type openWeatherResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
		Pressure int     `json:"pressure"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Current returns the current weather snapshot, or the fallback when the
// provider is unreachable. It never returns an error; weather is optional
// input everywhere it is consumed.
func (s *WeatherService) Current(ctx context.Context) models.Weather {
	if s.apiKey == "" {
		return fallbackWeather()
	}

	url := fmt.Sprintf("%s?lat=%f&lon=%f&appid=%s&units=metric", s.baseURL, s.lat, s.lon, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fallbackWeather()
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fallbackWeather()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fallbackWeather()
	}

	var ow openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&ow); err != nil {
		return fallbackWeather()
	}

	w := models.Weather{
		Temperature: ow.Main.Temp,
		Humidity:    ow.Main.Humidity,
		WindSpeed:   ow.Wind.Speed,
		Pressure:    ow.Main.Pressure,
	}
	if len(ow.Weather) > 0 {
		w.Description = ow.Weather[0].Description
	}
	return w
}

// fallbackWeather is the deterministic snapshot used when the provider is
// unreachable.
func fallbackWeather() models.Weather {
	return models.Weather{
		Temperature: 25,
		Humidity:    60,
		WindSpeed:   5,
		Description: "clear sky",
		Pressure:    1013,
		IsFallback:  true,
	}
}
