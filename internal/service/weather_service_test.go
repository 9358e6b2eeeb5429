package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWeatherService_FallbackWithoutAPIKey(t *testing.T) {
	svc := NewWeatherService("", 40.7128, -74.0060)

	w := svc.Current(context.Background())
	if !w.IsFallback {
		t.Fatal("expected fallback snapshot when API key is empty")
	}
	if w.Temperature != 25 || w.Humidity != 60 || w.Pressure != 1013 || w.Description != "clear sky" {
		t.Fatalf("fallback values changed: %+v", w)
	}

	// Fallback must be deterministic.
	if svc.Current(context.Background()) != w {
		t.Fatal("fallback snapshot is not deterministic")
	}
}

func TestWeatherService_ParsesProviderResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("appid") != "k" {
			t.Errorf("missing api key in query: %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{
			"main": {"temp": 31.5, "humidity": 70, "pressure": 1008},
			"weather": [{"description": "scattered clouds"}],
			"wind": {"speed": 3.4}
		}`))
	}))
	defer srv.Close()

	svc := NewWeatherService("k", 40.7128, -74.0060)
	svc.baseURL = srv.URL

	w := svc.Current(context.Background())
	if w.IsFallback {
		t.Fatal("got fallback for a healthy provider")
	}
	if w.Temperature != 31.5 || w.Humidity != 70 || w.WindSpeed != 3.4 || w.Description != "scattered clouds" {
		t.Fatalf("unexpected snapshot %+v", w)
	}
}

func TestWeatherService_FallbackOnProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	svc := NewWeatherService("k", 0, 0)
	svc.baseURL = srv.URL

	if w := svc.Current(context.Background()); !w.IsFallback {
		t.Fatal("expected fallback when provider returns 503")
	}
}
