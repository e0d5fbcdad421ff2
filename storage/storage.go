// File: /storage/storage.go
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"eventease-api/models"
)

// Collection keys. Each key holds one whole JSON-serialized collection; a
// write replaces the blob in a single statement, so readers never observe a
// partially written collection.
const (
	EventsKey      = "eventease_events"
	UsersKey       = "eventease_users"
	CurrentUserKey = "eventease_current_user"
)

// Collection is one persisted key-value row.
type Collection struct {
	Key       string `gorm:"primaryKey;size:191"`
	Data      []byte `gorm:"not null"`
	UpdatedAt time.Time
}

// Storage is the durable store: key-value persistence of the three
// collections with no business logic. Reads that fail or return malformed
// data degrade to an empty result; writes propagate their error to the
// caller.
type Storage struct {
	db     *gorm.DB
	logger *zap.Logger
}

func New(db *gorm.DB, logger *zap.Logger) *Storage {
	return &Storage{db: db, logger: logger}
}

// GetEvents returns the event collection, empty if absent or unreadable.
func (s *Storage) GetEvents(ctx context.Context) []models.Event {
	var events []models.Event
	if !s.getCollection(ctx, EventsKey, &events) || events == nil {
		return []models.Event{}
	}
	return events
}

// SaveEvents replaces the whole event collection.
func (s *Storage) SaveEvents(ctx context.Context, events []models.Event) error {
	return s.setCollection(ctx, EventsKey, events)
}

// ClearEvents removes the event collection.
func (s *Storage) ClearEvents(ctx context.Context) error {
	return s.clearCollection(ctx, EventsKey)
}

// GetUsers returns the user collection, empty if absent or unreadable.
func (s *Storage) GetUsers(ctx context.Context) []models.User {
	var users []models.User
	if !s.getCollection(ctx, UsersKey, &users) || users == nil {
		return []models.User{}
	}
	return users
}

// SaveUsers replaces the whole user collection.
func (s *Storage) SaveUsers(ctx context.Context, users []models.User) error {
	return s.setCollection(ctx, UsersKey, users)
}

// GetCurrentUser returns the persisted current-user record, or nil when no
// session exists.
func (s *Storage) GetCurrentUser(ctx context.Context) *models.PublicUser {
	var user models.PublicUser
	if !s.getCollection(ctx, CurrentUserKey, &user) {
		return nil
	}
	return &user
}

// SaveCurrentUser stores the redacted current-user record.
func (s *Storage) SaveCurrentUser(ctx context.Context, user *models.PublicUser) error {
	return s.setCollection(ctx, CurrentUserKey, user)
}

// ClearCurrentUser removes the current-user record.
func (s *Storage) ClearCurrentUser(ctx context.Context) error {
	return s.clearCollection(ctx, CurrentUserKey)
}

// ClearAll wipes every collection.
func (s *Storage) ClearAll(ctx context.Context) error {
	for _, key := range []string{EventsKey, UsersKey, CurrentUserKey} {
		if err := s.clearCollection(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

// getCollection unmarshals the blob stored under key into out. It returns
// false when the key is absent or the data cannot be decoded; both cases are
// logged and treated as "no data" rather than surfaced to the caller.
func (s *Storage) getCollection(ctx context.Context, key string, out interface{}) bool {
	var row Collection
	if err := s.db.WithContext(ctx).First(&row, "key = ?", key).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("reading collection", zap.String("key", key), zap.Error(err))
		}
		return false
	}

	if err := json.Unmarshal(row.Data, out); err != nil {
		s.logger.Error("decoding collection", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *Storage) setCollection(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding collection %s: %w", key, err)
	}

	row := Collection{Key: key, Data: data, UpdatedAt: time.Now()}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("writing collection %s: %w", key, err)
	}
	return nil
}

func (s *Storage) clearCollection(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Delete(&Collection{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("clearing collection %s: %w", key, err)
	}
	return nil
}
