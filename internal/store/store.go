package store

import (
	"encoding/json"
	"sync"
	"time"

	"itin/internal/trip"
)

const eventKeyPrefix = "trip-events-"

// EventStore holds the event list for one trip and writes the full list
// back to the database after every mutation. Times round-trip through
// JSON as RFC 3339, so reloaded events compare equal to the millisecond.
type EventStore struct {
	mu     sync.Mutex
	db     *DB
	tripID string
	events []trip.Event
}

// NewEventStore loads the event list for tripID. A missing or unreadable
// snapshot falls back to the demo events seeded around tripStart.
func NewEventStore(db *DB, tripID string, tripStart time.Time) (*EventStore, error) {
	s := &EventStore{db: db, tripID: tripID}

	data, err := db.GetBytes(s.key())
	if err == nil {
		var events []trip.Event
		if json.Unmarshal(data, &events) == nil {
			s.events = events
			return s, nil
		}
	} else if err != ErrKeyNotFound {
		return nil, err
	}

	// Missing or corrupt snapshot: start from the demo itinerary. Not
	// persisted until the first mutation, so a bad snapshot is only
	// overwritten once the user actually edits something.
	s.events = SeedEvents(tripStart)
	return s, nil
}

func (s *EventStore) key() string {
	return eventKeyPrefix + s.tripID
}

func (s *EventStore) save() error {
	data, err := json.Marshal(s.events)
	if err != nil {
		return err
	}
	return s.db.SetBytes(s.key(), data)
}

// List returns a copy of the event list.
func (s *EventStore) List() []trip.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]trip.Event(nil), s.events...)
}

// Len returns the number of events.
func (s *EventStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

// Get returns the event with id.
func (s *EventStore) Get(id string) (trip.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ev := range s.events {
		if ev.ID == id {
			return ev, true
		}
	}
	return trip.Event{}, false
}

// Create validates ev, appends it, and persists the list.
func (s *EventStore) Create(ev trip.Event) (trip.Event, error) {
	ev = ev.Normalize()
	if err := ev.Validate(); err != nil {
		return trip.Event{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	if err := s.save(); err != nil {
		s.events = s.events[:len(s.events)-1]
		return trip.Event{}, err
	}
	return ev, nil
}

// Update applies p to the event with id and persists the list. An
// invalid result leaves the stored event untouched and returns the
// validation error. An absent id is a silent no-op.
func (s *EventStore) Update(id string, p trip.Patch) (trip.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, ev := range s.events {
		if ev.ID != id {
			continue
		}
		next := p.Apply(ev)
		next.ID = ev.ID
		if err := next.Validate(); err != nil {
			return trip.Event{}, err
		}
		s.events[i] = next
		if err := s.save(); err != nil {
			s.events[i] = ev
			return trip.Event{}, err
		}
		return next, nil
	}
	return trip.Event{}, nil
}

// Delete removes the event with id and persists the list. An absent id
// is a silent no-op.
func (s *EventStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, ev := range s.events {
		if ev.ID != id {
			continue
		}
		prev := s.events
		next := make([]trip.Event, 0, len(prev)-1)
		next = append(next, prev[:i]...)
		next = append(next, prev[i+1:]...)
		s.events = next
		if err := s.save(); err != nil {
			s.events = prev
			return err
		}
		return nil
	}
	return nil
}
