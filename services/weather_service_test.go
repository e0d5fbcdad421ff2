// File: /services/weather_service_test.go
package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestForecastForRequiresAPIKey(t *testing.T) {
	ws := NewWeatherService(zap.NewNop(), "")
	if _, err := ws.ForecastFor(context.Background(), 48.85, 2.35, time.Now()); err == nil {
		t.Fatal("an unconfigured service should fail fast")
	}
}

func TestForecastForTooFarInTheFuture(t *testing.T) {
	ws := NewWeatherService(zap.NewNop(), "test-key")
	// No HTTP server involved: the cutoff fires before any request.
	_, err := ws.ForecastFor(context.Background(), 48.85, 2.35, time.Now().AddDate(0, 0, 10))
	if !errors.Is(err, ErrForecastUnavailable) {
		t.Fatalf("want ErrForecastUnavailable, got %v", err)
	}
}

func TestForecastForPicksClosestSlot(t *testing.T) {
	eventTime := time.Now().Add(48 * time.Hour).Truncate(time.Hour)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/forecast" {
			t.Errorf("expected a forecast request, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("appid") != "test-key" {
			t.Error("api key missing from request")
		}
		// Two slots: 6 hours off and 1 hour off the event time.
		fmt.Fprintf(w, `{"list":[
			{"dt":%d,"main":{"temp":9.6,"humidity":70},"weather":[{"description":"light rain","icon":"10d"}],"wind":{"speed":3.1}},
			{"dt":%d,"main":{"temp":17.4,"humidity":55},"weather":[{"description":"clear sky","icon":"01d"}],"wind":{"speed":1.2}}
		]}`, eventTime.Add(-6*time.Hour).Unix(), eventTime.Add(time.Hour).Unix())
	}))
	defer server.Close()

	ws := NewWeatherService(zap.NewNop(), "test-key")
	ws.baseURL = server.URL

	summary, err := ws.ForecastFor(context.Background(), 48.85, 2.35, eventTime)
	if err != nil {
		t.Fatalf("ForecastFor returned error: %v", err)
	}
	if summary.Description != "clear sky" {
		t.Errorf("expected the closest slot, got %q", summary.Description)
	}
	if summary.Temp != 17 {
		t.Errorf("temperature should be rounded, got %d", summary.Temp)
	}
}

func TestForecastForCurrentConditionsToday(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/weather" {
			t.Errorf("today's event should use current conditions, got %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"dt":0,"main":{"temp":21.2,"humidity":40},"weather":[{"description":"few clouds","icon":"02d"}],"wind":{"speed":2.5}}`)
	}))
	defer server.Close()

	ws := NewWeatherService(zap.NewNop(), "test-key")
	ws.baseURL = server.URL

	summary, err := ws.ForecastFor(context.Background(), 48.85, 2.35, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("ForecastFor returned error: %v", err)
	}
	if summary.Description != "few clouds" || summary.Humidity != 40 {
		t.Errorf("unexpected summary: %+v", summary)
	}
}
