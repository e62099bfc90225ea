package grid

import (
	"testing"
	"time"

	"itin/internal/trip"
)

type recordingWriter struct {
	created []trip.Event
	updates map[string]trip.Patch
}

func newRecordingWriter() *recordingWriter {
	return &recordingWriter{updates: make(map[string]trip.Patch)}
}

func (w *recordingWriter) Create(ev trip.Event) (trip.Event, error) {
	w.created = append(w.created, ev)
	return ev, nil
}

func (w *recordingWriter) Update(id string, p trip.Patch) (trip.Event, error) {
	w.updates[id] = p
	return trip.Event{ID: id}, nil
}

func day(hour, minute int) time.Time {
	return time.Date(2024, 8, 15, hour, minute, 0, 0, time.UTC)
}

func TestDragMove(t *testing.T) {
	m := NewMapper(DefaultPixelsPerHour)
	ev := trip.Event{ID: "1", Title: "Flight to Bali", StartTime: day(8, 0), EndTime: day(14, 0), Category: trip.CategoryTransport}

	t.Run("ShiftsBothEdges", func(t *testing.T) {
		var d Drag
		w := newRecordingWriter()

		d.BeginMove(m, ev, 500)
		d.Update(530)
		start, end, ok := d.Tentative()
		if !ok || start != 8*60+30 || end != 14*60+30 {
			t.Fatalf("tentative after 30px = %d-%d (ok=%v)", start, end, ok)
		}

		if _, _, err := d.Release(560, w); err != nil {
			t.Fatal(err)
		}
		p, ok := w.updates["1"]
		if !ok {
			t.Fatal("no update committed")
		}
		if !p.StartTime.Equal(day(9, 0)) || !p.EndTime.Equal(day(15, 0)) {
			t.Errorf("committed %v-%v, want 09:00-15:00", *p.StartTime, *p.EndTime)
		}
		if d.Active() {
			t.Error("drag still active after release")
		}
	})

	t.Run("SnapsDelta", func(t *testing.T) {
		var d Drag
		d.BeginMove(m, ev, 500)
		// 7px rounds down to no delta, 8px up to one slot
		d.Update(507)
		if start, _, _ := d.Tentative(); start != 8*60 {
			t.Errorf("start after 7px = %d, want %d", start, 8*60)
		}
		d.Update(508)
		if start, _, _ := d.Tentative(); start != 8*60+15 {
			t.Errorf("start after 8px = %d, want %d", start, 8*60+15)
		}
	})

	t.Run("CompressesAtDayStart", func(t *testing.T) {
		early := trip.Event{ID: "2", StartTime: day(0, 0), EndTime: day(2, 0)}
		var d Drag
		d.BeginMove(m, early, 500)
		d.Update(440)
		start, end, _ := d.Tentative()
		if start != 0 || end != 60 {
			t.Errorf("tentative = %d-%d, want 0-60", start, end)
		}
	})

	t.Run("NoCommitWhenUnmoved", func(t *testing.T) {
		var d Drag
		w := newRecordingWriter()
		d.BeginMove(m, ev, 500)
		if _, committed, _ := d.Release(503, w); committed {
			t.Error("sub-slot wiggle committed an update")
		}
		if len(w.updates) != 0 {
			t.Errorf("updates = %v, want none", w.updates)
		}
	})
}

func TestDragResize(t *testing.T) {
	m := NewMapper(DefaultPixelsPerHour)
	ev := trip.Event{ID: "1", StartTime: day(10, 0), EndTime: day(11, 0)}

	t.Run("TopEdge", func(t *testing.T) {
		var d Drag
		w := newRecordingWriter()
		d.BeginResizeTop(m, ev, 600)
		d.Update(570)
		start, end, _ := d.Tentative()
		if start != 9*60+30 || end != 11*60 {
			t.Fatalf("tentative = %d-%d", start, end)
		}
		d.Release(570, w)
		p := w.updates["1"]
		if !p.StartTime.Equal(day(9, 30)) || !p.EndTime.Equal(day(11, 0)) {
			t.Errorf("committed %v-%v", *p.StartTime, *p.EndTime)
		}
	})

	t.Run("TopEdgeRejectsBelowMinimum", func(t *testing.T) {
		var d Drag
		d.BeginResizeTop(m, ev, 600)
		// Dragging past the end would leave less than the minimum; the
		// tentative start holds its last valid value.
		d.Update(645)
		d.Update(655)
		start, end, _ := d.Tentative()
		if end-start < trip.MinEventMinutes {
			t.Errorf("tentative %d-%d below minimum", start, end)
		}
		if start != 10*60+45 {
			t.Errorf("start = %d, want %d", start, 10*60+45)
		}
	})

	t.Run("BottomEdgeRejectsBelowMinimum", func(t *testing.T) {
		var d Drag
		d.BeginResizeBottom(m, ev, 660)
		d.Update(570)
		start, end, _ := d.Tentative()
		if end-start < trip.MinEventMinutes {
			t.Errorf("tentative %d-%d below minimum", start, end)
		}
	})

	t.Run("BottomEdgeExtends", func(t *testing.T) {
		var d Drag
		w := newRecordingWriter()
		d.BeginResizeBottom(m, ev, 660)
		d.Release(705, w)
		p := w.updates["1"]
		if !p.EndTime.Equal(day(11, 45)) {
			t.Errorf("end = %v, want 11:45", *p.EndTime)
		}
	})
}

func TestDragCreate(t *testing.T) {
	m := NewMapper(DefaultPixelsPerHour)
	date := day(0, 0)

	t.Run("DownwardDrag", func(t *testing.T) {
		var d Drag
		w := newRecordingWriter()
		d.BeginCreate(m, date, 540)
		d.Update(600)
		start, end, _ := d.Tentative()
		if start != 9*60 || end != 10*60 {
			t.Fatalf("tentative = %d-%d", start, end)
		}

		ev, committed, err := d.Release(600, w)
		if err != nil || !committed {
			t.Fatalf("release: committed=%v err=%v", committed, err)
		}
		if ev.Title != "New Event" || ev.Category != trip.CategoryOther {
			t.Errorf("created %q/%s", ev.Title, ev.Category)
		}
		if !ev.StartTime.Equal(day(9, 0)) || !ev.EndTime.Equal(day(10, 0)) {
			t.Errorf("created %v-%v", ev.StartTime, ev.EndTime)
		}
		if len(w.created) != 1 {
			t.Errorf("created %d events", len(w.created))
		}
	})

	t.Run("UpwardDragSwapsInterval", func(t *testing.T) {
		var d Drag
		d.BeginCreate(m, date, 600)
		d.Update(540)
		start, end, _ := d.Tentative()
		if start != 9*60 || end != 10*60 {
			t.Errorf("tentative = %d-%d", start, end)
		}
	})

	t.Run("BelowThresholdIsNoop", func(t *testing.T) {
		var d Drag
		w := newRecordingWriter()
		d.BeginCreate(m, date, 540)
		if _, committed, _ := d.Release(545, w); committed {
			t.Error("sub-threshold drag committed")
		}
		if len(w.created) != 0 {
			t.Errorf("created %d events", len(w.created))
		}
	})
}
