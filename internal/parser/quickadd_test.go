package parser

import (
	"testing"
	"time"

	"itin/internal/trip"
)

func testParser() *Parser {
	p := New()
	p.SetNow(time.Date(2024, 8, 15, 10, 0, 0, 0, time.UTC))
	return p
}

func TestParseQuickAdd(t *testing.T) {
	p := testParser()
	today := time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC)

	t.Run("TimeRangeWithTitle", func(t *testing.T) {
		q, err := p.Parse("tomorrow 2pm-4pm Snorkeling at Blue Lagoon")
		if err != nil {
			t.Fatal(err)
		}
		if !q.Date.Equal(today.AddDate(0, 0, 1)) {
			t.Errorf("date = %v", q.Date)
		}
		if q.Start != 14*60 || q.End != 16*60 {
			t.Errorf("range = %d-%d", q.Start, q.End)
		}
		if q.Title != "Snorkeling at Blue Lagoon" {
			t.Errorf("title = %q", q.Title)
		}
	})

	t.Run("SingleTimeDefaultsOneHour", func(t *testing.T) {
		q, err := p.Parse("today 9am Breakfast")
		if err != nil {
			t.Fatal(err)
		}
		if q.Start != 9*60 || q.End != 10*60 {
			t.Errorf("range = %d-%d", q.Start, q.End)
		}
		if q.Title != "Breakfast" {
			t.Errorf("title = %q", q.Title)
		}
	})

	t.Run("TwentyFourHourClock", func(t *testing.T) {
		q, err := p.Parse("14:00-16:30 Cooking Class")
		if err != nil {
			t.Fatal(err)
		}
		if !q.Date.Equal(today) {
			t.Errorf("date = %v", q.Date)
		}
		if q.Start != 14*60 || q.End != 16*60+30 {
			t.Errorf("range = %d-%d", q.Start, q.End)
		}
	})

	t.Run("NoTimeIsAllDay", func(t *testing.T) {
		q, err := p.Parse("tomorrow Beach Day")
		if err != nil {
			t.Fatal(err)
		}
		if !q.AllDay {
			t.Error("expected all-day")
		}
		if q.Title != "Beach Day" {
			t.Errorf("title = %q", q.Title)
		}
	})

	t.Run("AbsoluteDate", func(t *testing.T) {
		q, err := p.Parse("8/17 at 6pm Sunset Dinner")
		if err != nil {
			t.Fatal(err)
		}
		if !q.Date.Equal(time.Date(2024, 8, 17, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("date = %v", q.Date)
		}
		if q.Start != 18*60 {
			t.Errorf("start = %d", q.Start)
		}
	})

	t.Run("WeekdayName", func(t *testing.T) {
		// Aug 15 2024 is a Thursday
		q, err := p.Parse("saturday 10am Market Visit")
		if err != nil {
			t.Fatal(err)
		}
		if !q.Date.Equal(time.Date(2024, 8, 17, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("date = %v", q.Date)
		}
	})

	t.Run("SharedMeridiemRange", func(t *testing.T) {
		// A dashed range must not be read as a MM-DD date
		for _, input := range []string{"2-4pm Spa", "2-4 pm Spa"} {
			q, err := p.Parse(input)
			if err != nil {
				t.Fatal(err)
			}
			if q.AllDay {
				t.Errorf("%q parsed as all-day", input)
			}
			if q.Start != 14*60 || q.End != 16*60 {
				t.Errorf("%q range = %d-%d", input, q.Start, q.End)
			}
			if !q.Date.Equal(today) {
				t.Errorf("%q date = %v", input, q.Date)
			}
			if q.Title != "Spa" {
				t.Errorf("%q title = %q", input, q.Title)
			}
		}
	})

	t.Run("DashedDateStillParses", func(t *testing.T) {
		q, err := p.Parse("8-17 Beach Day")
		if err != nil {
			t.Fatal(err)
		}
		if !q.Date.Equal(time.Date(2024, 8, 17, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("date = %v", q.Date)
		}
		if !q.AllDay {
			t.Error("expected all-day")
		}
	})

	t.Run("EmptyInput", func(t *testing.T) {
		if _, err := p.Parse("   "); err == nil {
			t.Error("expected error")
		}
	})
}

func TestQuickAddEvent(t *testing.T) {
	p := testParser()

	t.Run("Timed", func(t *testing.T) {
		q, err := p.Parse("tomorrow 2pm-4pm Snorkeling")
		if err != nil {
			t.Fatal(err)
		}
		ev := q.Event(trip.CategoryActivity)
		if ev.ID == "" {
			t.Error("missing id")
		}
		if ev.StartTime.Hour() != 14 || ev.EndTime.Hour() != 16 {
			t.Errorf("times = %v-%v", ev.StartTime, ev.EndTime)
		}
		if err := ev.Validate(); err != nil {
			t.Errorf("invalid event: %v", err)
		}
	})

	t.Run("AllDay", func(t *testing.T) {
		q, err := p.Parse("tomorrow Beach Day")
		if err != nil {
			t.Fatal(err)
		}
		ev := q.Event(trip.CategoryActivity)
		if !ev.AllDay {
			t.Error("expected all-day event")
		}
		if ev.StartTime.Hour() != 0 || ev.EndTime.Hour() != 23 {
			t.Errorf("times = %v-%v", ev.StartTime, ev.EndTime)
		}
	})

	t.Run("UntitledFallsBack", func(t *testing.T) {
		q, err := p.Parse("9am-10am")
		if err != nil {
			t.Fatal(err)
		}
		if ev := q.Event(trip.CategoryOther); ev.Title != "New Event" {
			t.Errorf("title = %q", ev.Title)
		}
	})
}
