// Package trip defines the domain model for a planned trip: the scheduled
// time blocks, the participant roster, and the lighter collaboration data
// (chat, checklists, idea board).
package trip

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Category classifies an event for display styling only.
type Category string

const (
	CategoryActivity      Category = "activity"
	CategoryTransport     Category = "transport"
	CategoryAccommodation Category = "accommodation"
	CategoryMeal          Category = "meal"
	CategoryOther         Category = "other"
)

// Categories lists all categories in cycle order for the editor.
var Categories = []Category{
	CategoryActivity,
	CategoryTransport,
	CategoryAccommodation,
	CategoryMeal,
	CategoryOther,
}

const (
	// MinEventMinutes is the minimum duration of a timed event.
	MinEventMinutes = 15

	// MinDuration is MinEventMinutes as a time.Duration.
	MinDuration = MinEventMinutes * time.Minute
)

// Event is one scheduled item on the trip timeline, either timed within a
// single calendar day or spanning the whole day.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Category    Category  `json:"category"`
	AllDay      bool      `json:"allDay,omitempty"`
}

// NewEvent creates a timed event with a generated id.
func NewEvent(title string, start, end time.Time, category Category) Event {
	return Event{
		ID:        uuid.NewString(),
		Title:     title,
		StartTime: start,
		EndTime:   end,
		Category:  category,
	}
}

// NewAllDayEvent creates an all-day event on day's calendar date with a
// generated id.
func NewAllDayEvent(title string, day time.Time, category Category) Event {
	e := Event{
		ID:       uuid.NewString(),
		Title:    title,
		Category: category,
		AllDay:   true,
	}
	e.StartTime = StartOfDay(day)
	e.EndTime = EndOfDay(day)
	return e
}

// Duration returns the event length.
func (e Event) Duration() time.Duration {
	return e.EndTime.Sub(e.StartTime)
}

// Normalize pins an all-day event's times to the start and end of its
// calendar day. Timed events are returned unchanged.
func (e Event) Normalize() Event {
	if !e.AllDay {
		return e
	}
	e.StartTime = StartOfDay(e.StartTime)
	e.EndTime = EndOfDay(e.StartTime)
	return e
}

// Validate checks the committed-geometry invariants. All-day events are
// valid by construction once normalized.
func (e Event) Validate() error {
	if e.AllDay {
		return nil
	}
	if !SameDay(e.StartTime, e.EndTime) {
		return fmt.Errorf("event %q spans calendar days", e.Title)
	}
	if e.EndTime.Before(e.StartTime) {
		return fmt.Errorf("event %q ends before it starts", e.Title)
	}
	if e.Duration() < MinDuration {
		return fmt.Errorf("event %q shorter than %d minutes", e.Title, MinEventMinutes)
	}
	return nil
}

// Patch is a partial update for an event. Nil fields are left untouched.
type Patch struct {
	Title       *string
	Description *string
	Location    *string
	StartTime   *time.Time
	EndTime     *time.Time
	Category    *Category
	AllDay      *bool
}

// Apply returns a copy of e with the patch's non-nil fields replaced.
// Setting AllDay to true normalizes the times to the day bounds.
func (p Patch) Apply(e Event) Event {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.StartTime != nil {
		e.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		e.EndTime = *p.EndTime
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.AllDay != nil {
		e.AllDay = *p.AllDay
	}
	return e.Normalize()
}
