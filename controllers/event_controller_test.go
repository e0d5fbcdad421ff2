// File: /controllers/event_controller_test.go
package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eventease-api/models"
	"eventease-api/repositories"
	"eventease-api/services"
)

type stubEventStore struct {
	events []models.Event
}

func (s *stubEventStore) GetEvents(ctx context.Context) []models.Event {
	out := make([]models.Event, len(s.events))
	copy(out, s.events)
	return out
}

func (s *stubEventStore) SaveEvents(ctx context.Context, events []models.Event) error {
	s.events = events
	return nil
}

func newTestEventRouter() (*gin.Engine, *repositories.EventRepository) {
	gin.SetMode(gin.TestMode)

	repo := repositories.NewEventRepository(&stubEventStore{}, zap.NewNop())
	repo.Load(context.Background())
	ec := NewEventController(repo, services.NewWeatherService(zap.NewNop(), ""))

	r := gin.New()
	r.POST("/events", ec.CreateEvent)
	r.GET("/events/:id", ec.GetEvent)
	r.DELETE("/events/:id", ec.DeleteEvent)
	r.POST("/events/:id/toggle-participation", ec.ToggleParticipation)
	return r, repo
}

func TestCreateEventReturnsEnvelope(t *testing.T) {
	r, _ := newTestEventRouter()

	body := `{"title":"Team dinner","description":"Dinner with the whole team","date":"2026-09-10T18:00:00Z"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("create returned %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Message string       `json:"message"`
		Data    models.Event `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Message != "Event created successfully" {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.Data.ID == "" || resp.Data.Title != "Team dinner" {
		t.Errorf("data envelope missing the created event: %+v", resp.Data)
	}
}

func TestCreateEventRejectsShortTitle(t *testing.T) {
	r, repo := newTestEventRouter()

	body := `{"title":"ab","description":"Long enough description","date":"2026-09-10T18:00:00Z"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("short title should be rejected, got %d", w.Code)
	}

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Error != "Validation failed" {
		t.Errorf("error = %q", resp.Error)
	}
	if got := len(repo.Events()); got != 0 {
		t.Fatalf("rejected create must not store anything, got %d events", got)
	}
}

func TestDeleteThenGetUsesEnvelopes(t *testing.T) {
	r, repo := newTestEventRouter()

	created, err := repo.Add(context.Background(), repositories.EventInput{
		Title:       "Dentist",
		Description: "Yearly checkup appointment",
		Date:        time.Now().Add(48 * time.Hour),
	})
	if err != nil {
		t.Fatalf("seeding event: %v", err)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/events/"+created.ID, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("delete returned %d", w.Code)
	}

	var deleted struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &deleted); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if deleted.Message != "Event deleted successfully" {
		t.Errorf("message = %q", deleted.Message)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/events/"+created.ID, nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("deleted event should be gone, got %d", w.Code)
	}

	var missing struct {
		Error string `json:"error"`
		Code  int    `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &missing); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if missing.Error != "Event not found" || missing.Code != http.StatusNotFound {
		t.Errorf("unexpected error envelope: %+v", missing)
	}
}

func TestToggleParticipationReturnsUpdatedEvent(t *testing.T) {
	r, repo := newTestEventRouter()

	created, err := repo.Add(context.Background(), repositories.EventInput{
		Title:       "Concert",
		Description: "Open air show downtown",
		Date:        time.Now().Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("seeding event: %v", err)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/events/"+created.ID+"/toggle-participation", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("toggle returned %d", w.Code)
	}

	var resp struct {
		Message string       `json:"message"`
		Data    models.Event `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp.Data.Participated {
		t.Error("toggle response should carry the flipped record")
	}
}
