package grid

import (
	"testing"
	"time"

	"itin/internal/trip"
)

func TestBuildColumns(t *testing.T) {
	loc := time.UTC
	d1 := time.Date(2024, 8, 15, 0, 0, 0, 0, loc)
	d2 := d1.AddDate(0, 0, 1)
	dates := []time.Time{d1, d2}

	events := []trip.Event{
		{ID: "b", Title: "Hotel Check-in", StartTime: d1.Add(15 * time.Hour), EndTime: d1.Add(16 * time.Hour)},
		{ID: "a", Title: "Flight", StartTime: d1.Add(8 * time.Hour), EndTime: d1.Add(14 * time.Hour)},
		{ID: "c", Title: "Temple Tour", StartTime: d2.Add(9 * time.Hour), EndTime: d2.Add(12 * time.Hour)},
		{ID: "d", Title: "Beach Day", StartTime: trip.StartOfDay(d2), EndTime: trip.EndOfDay(d2), AllDay: true},
		{ID: "e", Title: "Outside Range", StartTime: d1.AddDate(0, 0, 5).Add(9 * time.Hour), EndTime: d1.AddDate(0, 0, 5).Add(10 * time.Hour)},
	}

	cols := BuildColumns(dates, events)
	if len(cols) != 2 {
		t.Fatalf("got %d columns", len(cols))
	}

	if got := len(cols[0].Timed); got != 2 {
		t.Fatalf("day 1 timed = %d, want 2", got)
	}
	if cols[0].Timed[0].ID != "a" || cols[0].Timed[1].ID != "b" {
		t.Errorf("day 1 order = %s, %s", cols[0].Timed[0].ID, cols[0].Timed[1].ID)
	}
	if len(cols[0].AllDay) != 0 {
		t.Errorf("day 1 all-day = %d, want 0", len(cols[0].AllDay))
	}

	if len(cols[1].Timed) != 1 || cols[1].Timed[0].ID != "c" {
		t.Errorf("day 2 timed = %v", cols[1].Timed)
	}
	if len(cols[1].AllDay) != 1 || cols[1].AllDay[0].ID != "d" {
		t.Errorf("day 2 all-day = %v", cols[1].AllDay)
	}
}

func TestAssignLanes(t *testing.T) {
	base := time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time { return base.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute) }

	t.Run("DisjointEventsShareLane", func(t *testing.T) {
		timed := []trip.Event{
			{ID: "a", StartTime: at(8, 0), EndTime: at(9, 0)},
			{ID: "b", StartTime: at(9, 0), EndTime: at(10, 0)},
		}
		lanes, n := AssignLanes(timed)
		if n != 1 {
			t.Fatalf("lane count = %d, want 1", n)
		}
		if lanes["a"] != 0 || lanes["b"] != 0 {
			t.Errorf("lanes = %v", lanes)
		}
	})

	t.Run("OverlapSplitsLanes", func(t *testing.T) {
		timed := []trip.Event{
			{ID: "a", StartTime: at(8, 0), EndTime: at(10, 0)},
			{ID: "b", StartTime: at(9, 0), EndTime: at(11, 0)},
			{ID: "c", StartTime: at(10, 0), EndTime: at(12, 0)},
		}
		lanes, n := AssignLanes(timed)
		if n != 2 {
			t.Fatalf("lane count = %d, want 2", n)
		}
		if lanes["a"] != 0 || lanes["b"] != 1 || lanes["c"] != 0 {
			t.Errorf("lanes = %v", lanes)
		}
	})

	t.Run("TripleOverlap", func(t *testing.T) {
		timed := []trip.Event{
			{ID: "a", StartTime: at(8, 0), EndTime: at(12, 0)},
			{ID: "b", StartTime: at(8, 30), EndTime: at(11, 0)},
			{ID: "c", StartTime: at(9, 0), EndTime: at(10, 0)},
		}
		_, n := AssignLanes(timed)
		if n != 3 {
			t.Errorf("lane count = %d, want 3", n)
		}
	})
}

func TestEventsAt(t *testing.T) {
	base := time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC)
	timed := []trip.Event{
		{ID: "a", StartTime: base.Add(8 * time.Hour), EndTime: base.Add(10 * time.Hour)},
		{ID: "b", StartTime: base.Add(9 * time.Hour), EndTime: base.Add(11 * time.Hour)},
	}
	lanes, _ := AssignLanes(timed)

	if got := EventsAt(timed, lanes, 8*60); len(got) != 1 || got[0].ID != "a" {
		t.Errorf("08:00 = %v", got)
	}
	if got := EventsAt(timed, lanes, 9*60+30); len(got) != 2 {
		t.Errorf("09:30 = %v", got)
	}
	// End minute is exclusive
	if got := EventsAt(timed, lanes, 10*60); len(got) != 1 || got[0].ID != "b" {
		t.Errorf("10:00 = %v", got)
	}
	if got := EventsAt(timed, lanes, 12*60); len(got) != 0 {
		t.Errorf("12:00 = %v", got)
	}
}
