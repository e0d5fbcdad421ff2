// File: /models/event.go
package models

import (
	"time"
)

// Event is a user-created record describing a scheduled activity with a time,
// an optional place and a participation flag. The whole collection is
// persisted as one JSON document, so only json tags matter here.
type Event struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Date         time.Time  `json:"date"`
	Location     string     `json:"location,omitempty"`
	Latitude     *float64   `json:"latitude,omitempty"`
	Longitude    *float64   `json:"longitude,omitempty"`
	Participated bool       `json:"participated"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`

	// Distance is a view-only label computed per render from the device
	// position. It is never persisted.
	Distance string `json:"distance,omitempty"`
}

// HasCoordinates reports whether the event carries a full coordinate pair.
func (e Event) HasCoordinates() bool {
	return e.Latitude != nil && e.Longitude != nil
}
