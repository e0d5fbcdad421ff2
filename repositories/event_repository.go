// File: /repositories/event_repository.go
package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"eventease-api/models"
)

// EventStore is the slice of the durable store the repository depends on.
// Tests substitute an in-memory implementation.
type EventStore interface {
	GetEvents(ctx context.Context) []models.Event
	SaveEvents(ctx context.Context, events []models.Event) error
}

// EventInput carries the caller-supplied fields for a new event. Validation
// of titles, descriptions and dates happens in the caller; the repository
// stores what it is given.
type EventInput struct {
	Title       string
	Description string
	Date        time.Time
	Location    string
	Latitude    *float64
	Longitude   *float64
}

// EventPatch merges only the fields that are set over an existing record.
type EventPatch struct {
	Title       *string
	Description *string
	Date        *time.Time
	Location    *string
	Latitude    *float64
	Longitude   *float64
}

// EventRepository owns the canonical in-memory event list and mediates all
// mutations through the durable store. Every mutation computes the new full
// list, persists it, and only swaps the in-memory list once the write
// succeeded, so a failed write leaves memory exactly where it was.
//
// The mutex protects the list itself; storage I/O runs outside the lock.
// Overlapping mutations therefore keep last-write-wins semantics, which is
// acceptable because the UI issues mutations serially.
type EventRepository struct {
	store  EventStore
	logger *zap.Logger

	mu      sync.Mutex
	events  []models.Event
	loading bool
}

func NewEventRepository(store EventStore, logger *zap.Logger) *EventRepository {
	return &EventRepository{
		store:   store,
		logger:  logger,
		events:  []models.Event{},
		loading: true,
	}
}

// Load replaces the in-memory list with the durable store contents. It never
// fails visibly: storage problems already degraded to an empty list inside
// the store, and the loading flag drops regardless. An empty event list is
// always a safe default.
func (r *EventRepository) Load(ctx context.Context) {
	events := r.store.GetEvents(ctx)

	r.mu.Lock()
	r.events = events
	r.loading = false
	r.mu.Unlock()

	r.logger.Info("events loaded", zap.Int("count", len(events)))
}

// Refresh is Load under the name the pull-to-refresh gesture uses.
func (r *EventRepository) Refresh(ctx context.Context) {
	r.Load(ctx)
}

// Loading reports whether the initial load has completed yet.
func (r *EventRepository) Loading() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loading
}

// Events returns a copy of the canonical list. Callers may reorder or
// annotate the copy freely.
func (r *EventRepository) Events() []models.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Event, len(r.events))
	copy(out, r.events)
	return out
}

// GetByID looks the record up in memory only; it never touches storage.
func (r *EventRepository) GetByID(id string) (models.Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, event := range r.events {
		if event.ID == id {
			return event, true
		}
	}
	return models.Event{}, false
}

// Add constructs the full event record, persists the extended list and
// appends it to memory on success. A failed write leaves no trace of the
// attempted record.
func (r *EventRepository) Add(ctx context.Context, input EventInput) (models.Event, error) {
	event := models.Event{
		ID:           uuid.New().String(),
		Title:        input.Title,
		Description:  input.Description,
		Date:         input.Date,
		Location:     input.Location,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		Participated: false,
		CreatedAt:    time.Now(),
	}

	next := append(r.Events(), event)
	if err := r.store.SaveEvents(ctx, next); err != nil {
		return models.Event{}, fmt.Errorf("saving events: %w", err)
	}

	r.swap(next)
	return event, nil
}

// Update merges the patch over the record with the matching id and stamps
// UpdatedAt. An unknown id leaves the list unchanged but still succeeds.
func (r *EventRepository) Update(ctx context.Context, id string, patch EventPatch) error {
	next := r.Events()
	for i := range next {
		if next[i].ID != id {
			continue
		}
		applyPatch(&next[i], patch)
		now := time.Now()
		next[i].UpdatedAt = &now
	}

	if err := r.store.SaveEvents(ctx, next); err != nil {
		return fmt.Errorf("saving events: %w", err)
	}

	r.swap(next)
	return nil
}

// Delete removes the record with the matching id. Deleting an unknown id is
// a no-op that still succeeds.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	current := r.Events()
	next := make([]models.Event, 0, len(current))
	for _, event := range current {
		if event.ID != id {
			next = append(next, event)
		}
	}

	if err := r.store.SaveEvents(ctx, next); err != nil {
		return fmt.Errorf("saving events: %w", err)
	}

	r.swap(next)
	return nil
}

// ToggleParticipation flips the participated flag on the matching record.
// No-op on an unknown id.
func (r *EventRepository) ToggleParticipation(ctx context.Context, id string) error {
	next := r.Events()
	for i := range next {
		if next[i].ID == id {
			next[i].Participated = !next[i].Participated
		}
	}

	if err := r.store.SaveEvents(ctx, next); err != nil {
		return fmt.Errorf("saving events: %w", err)
	}

	r.swap(next)
	return nil
}

func (r *EventRepository) swap(events []models.Event) {
	r.mu.Lock()
	r.events = events
	r.mu.Unlock()
}

func applyPatch(event *models.Event, patch EventPatch) {
	if patch.Title != nil {
		event.Title = *patch.Title
	}
	if patch.Description != nil {
		event.Description = *patch.Description
	}
	if patch.Date != nil {
		event.Date = *patch.Date
	}
	if patch.Location != nil {
		event.Location = *patch.Location
	}
	if patch.Latitude != nil {
		event.Latitude = patch.Latitude
	}
	if patch.Longitude != nil {
		event.Longitude = patch.Longitude
	}
}
