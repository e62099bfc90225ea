package store

import (
	"time"

	"itin/internal/trip"
)

// SeedEvents returns the demo itinerary used when a trip has no stored
// events yet. Times are placed relative to the trip's first day.
func SeedEvents(tripStart time.Time) []trip.Event {
	day1 := trip.StartOfDay(tripStart)
	day2 := day1.AddDate(0, 0, 1)
	at := func(day time.Time, hour int) time.Time { return day.Add(time.Duration(hour) * time.Hour) }

	return []trip.Event{
		{
			ID:        "1",
			Title:     "Flight to Bali",
			StartTime: at(day1, 8),
			EndTime:   at(day1, 14),
			Category:  trip.CategoryTransport,
			Location:  "SFO Airport",
		},
		{
			ID:        "2",
			Title:     "Hotel Check-in",
			StartTime: at(day1, 15),
			EndTime:   at(day1, 16),
			Category:  trip.CategoryAccommodation,
			Location:  "Ubud Resort",
		},
		{
			ID:        "3",
			Title:     "Temple Tour",
			StartTime: at(day2, 9),
			EndTime:   at(day2, 12),
			Category:  trip.CategoryActivity,
			Location:  "Ubud",
		},
	}
}
