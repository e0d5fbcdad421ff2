// File: /services/view_service.go
package services

import (
	"sort"
	"time"

	"eventease-api/models"
)

// View derivation: pure functions turning the canonical event list into the
// projection a screen renders. "now" and the device position are explicit
// parameters so the derivations stay deterministic.

type EventFilter string

const (
	FilterAll          EventFilter = "all"
	FilterUpcoming     EventFilter = "upcoming"
	FilterParticipated EventFilter = "participated"
	FilterPast         EventFilter = "past"
)

// Calendar dot colors, matching the mobile theme.
const (
	dotColorUpcoming     = "#6366f1"
	dotColorParticipated = "#10b981"
)

// ParseEventFilter maps a query-string value onto a filter.
func ParseEventFilter(s string) (EventFilter, bool) {
	switch EventFilter(s) {
	case FilterAll, FilterUpcoming, FilterParticipated, FilterPast:
		return EventFilter(s), true
	}
	return FilterAll, false
}

// FilterEvents keeps the events matching the filter. Upcoming and past use
// strict comparison against now, so an event dated exactly at now belongs to
// neither.
func FilterEvents(events []models.Event, filter EventFilter, now time.Time) []models.Event {
	if filter == FilterAll {
		return events
	}

	filtered := make([]models.Event, 0, len(events))
	for _, event := range events {
		switch filter {
		case FilterUpcoming:
			if event.Date.After(now) {
				filtered = append(filtered, event)
			}
		case FilterPast:
			if event.Date.Before(now) {
				filtered = append(filtered, event)
			}
		case FilterParticipated:
			if event.Participated {
				filtered = append(filtered, event)
			}
		}
	}
	return filtered
}

// SortEventsByDate returns a copy sorted descending by date, most recent
// first. The sort is stable so equal timestamps keep their input order.
func SortEventsByDate(events []models.Event) []models.Event {
	sorted := make([]models.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted
}

// AnnotateDistances attaches a formatted distance label to every event that
// carries a full coordinate pair. Events without coordinates pass through
// untouched.
func AnnotateDistances(events []models.Event, device Coordinates) []models.Event {
	annotated := make([]models.Event, len(events))
	for i, event := range events {
		if event.HasCoordinates() {
			d := Distance(device.Latitude, device.Longitude, *event.Latitude, *event.Longitude)
			event.Distance = FormatDistance(d)
		}
		annotated[i] = event
	}
	return annotated
}

// DeriveEventList is the pipeline the list screen renders: filter, sort
// descending by date, then annotate distances when a device position is
// known.
func DeriveEventList(events []models.Event, filter EventFilter, now time.Time, device *Coordinates) []models.Event {
	derived := SortEventsByDate(FilterEvents(events, filter, now))
	if device != nil {
		derived = AnnotateDistances(derived, *device)
	}
	return derived
}

// MarkerDot is one calendar dot, colored by participation state.
type MarkerDot struct {
	Color string `json:"color"`
}

// DayMarker is the calendar marking for one day: one dot per event on that
// day, plus a selection flag.
type DayMarker struct {
	Marked   bool        `json:"marked"`
	Dots     []MarkerDot `json:"dots"`
	Selected bool        `json:"selected,omitempty"`
}

// CalendarDay renders the calendar-day key (UTC date portion) for an event.
func CalendarDay(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// MarkedDates groups events by calendar day. The selected day is flagged
// even when it has no events.
func MarkedDates(events []models.Event, selectedDay string) map[string]DayMarker {
	marked := make(map[string]DayMarker)

	for _, event := range events {
		day := CalendarDay(event.Date)
		marker := marked[day]
		marker.Marked = true

		color := dotColorUpcoming
		if event.Participated {
			color = dotColorParticipated
		}
		marker.Dots = append(marker.Dots, MarkerDot{Color: color})
		marked[day] = marker
	}

	if selectedDay != "" {
		marker := marked[selectedDay]
		marker.Selected = true
		marked[selectedDay] = marker
	}

	return marked
}

// EventsOnDay keeps the events whose date falls on the given calendar day.
func EventsOnDay(events []models.Event, day string) []models.Event {
	matching := make([]models.Event, 0)
	for _, event := range events {
		if CalendarDay(event.Date) == day {
			matching = append(matching, event)
		}
	}
	return matching
}
