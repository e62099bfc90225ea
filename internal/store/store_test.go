package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itin/internal/trip"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

var tripStart = time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC)

func TestSeedFallback(t *testing.T) {
	db := testDB(t)

	s, err := NewEventStore(db, "bali-2024", tripStart)
	require.NoError(t, err)

	events := s.List()
	require.Len(t, events, 3)
	assert.Equal(t, "Flight to Bali", events[0].Title)
	assert.Equal(t, trip.CategoryTransport, events[0].Category)
	assert.Equal(t, tripStart.Add(8*time.Hour), events[0].StartTime)
	assert.Equal(t, "Temple Tour", events[2].Title)
	assert.Equal(t, tripStart.AddDate(0, 0, 1).Add(9*time.Hour), events[2].StartTime)

	for _, ev := range events {
		assert.NoError(t, ev.Validate())
	}
}

func TestSeedFallbackOnCorruptSnapshot(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.SetBytes("trip-events-bali-2024", []byte("{not json")))

	s, err := NewEventStore(db, "bali-2024", tripStart)
	require.NoError(t, err)
	assert.Len(t, s.List(), 3)
}

func TestCreatePersistsAcrossReopen(t *testing.T) {
	db := testDB(t)

	s, err := NewEventStore(db, "bali-2024", tripStart)
	require.NoError(t, err)

	ev := trip.NewEvent("Cooking Class", tripStart.Add(17*time.Hour), tripStart.Add(19*time.Hour+30*time.Minute), trip.CategoryMeal)
	created, err := s.Create(ev)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	reloaded, err := NewEventStore(db, "bali-2024", tripStart)
	require.NoError(t, err)
	events := reloaded.List()
	require.Len(t, events, 4)

	got, ok := reloaded.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, "Cooking Class", got.Title)
	assert.True(t, got.StartTime.Equal(created.StartTime), "start changed across reload: %v vs %v", got.StartTime, created.StartTime)
	assert.True(t, got.EndTime.Equal(created.EndTime))
}

func TestCreateRejectsInvalidGeometry(t *testing.T) {
	db := testDB(t)
	s, err := NewEventStore(db, "bali-2024", tripStart)
	require.NoError(t, err)

	t.Run("TooShort", func(t *testing.T) {
		ev := trip.NewEvent("Blink", tripStart.Add(9*time.Hour), tripStart.Add(9*time.Hour+10*time.Minute), trip.CategoryOther)
		_, err := s.Create(ev)
		assert.Error(t, err)
	})

	t.Run("SpansDays", func(t *testing.T) {
		ev := trip.NewEvent("Red-eye", tripStart.Add(23*time.Hour), tripStart.Add(25*time.Hour), trip.CategoryTransport)
		_, err := s.Create(ev)
		assert.Error(t, err)
	})

	assert.Equal(t, 3, s.Len())
}

func TestUpdate(t *testing.T) {
	db := testDB(t)
	s, err := NewEventStore(db, "bali-2024", tripStart)
	require.NoError(t, err)

	t.Run("MovesEvent", func(t *testing.T) {
		start := tripStart.Add(9 * time.Hour)
		end := tripStart.Add(15 * time.Hour)
		updated, err := s.Update("1", trip.Patch{StartTime: &start, EndTime: &end})
		require.NoError(t, err)
		assert.Equal(t, start, updated.StartTime)
		assert.Equal(t, end, updated.EndTime)

		got, ok := s.Get("1")
		require.True(t, ok)
		assert.Equal(t, start, got.StartTime)
	})

	t.Run("RejectsInvalidKeepingPrior", func(t *testing.T) {
		before, _ := s.Get("2")
		bad := before.StartTime.Add(-2 * time.Hour)
		_, err := s.Update("2", trip.Patch{EndTime: &bad})
		assert.Error(t, err)

		after, _ := s.Get("2")
		assert.Equal(t, before, after)
	})

	t.Run("AbsentIDIsNoop", func(t *testing.T) {
		title := "Ghost"
		_, err := s.Update("nope", trip.Patch{Title: &title})
		assert.NoError(t, err)
		assert.Equal(t, 3, s.Len())
	})

	t.Run("AllDayNormalizes", func(t *testing.T) {
		allDay := true
		updated, err := s.Update("3", trip.Patch{AllDay: &allDay})
		require.NoError(t, err)
		day2 := tripStart.AddDate(0, 0, 1)
		assert.Equal(t, day2, updated.StartTime)
		assert.Equal(t, 23, updated.EndTime.Hour())
		assert.Equal(t, 59, updated.EndTime.Minute())
		assert.Equal(t, 59, updated.EndTime.Second())
	})
}

func TestDelete(t *testing.T) {
	db := testDB(t)
	s, err := NewEventStore(db, "bali-2024", tripStart)
	require.NoError(t, err)

	require.NoError(t, s.Delete("2"))
	assert.Equal(t, 2, s.Len())
	_, ok := s.Get("2")
	assert.False(t, ok)

	// Absent id is a silent no-op
	require.NoError(t, s.Delete("2"))
	assert.Equal(t, 2, s.Len())

	reloaded, err := NewEventStore(db, "bali-2024", tripStart)
	require.NoError(t, err)
	_, ok = reloaded.Get("2")
	assert.False(t, ok)
	assert.Equal(t, 2, reloaded.Len())
}

func TestStoresAreKeyedByTrip(t *testing.T) {
	db := testDB(t)

	a, err := NewEventStore(db, "bali-2024", tripStart)
	require.NoError(t, err)
	require.NoError(t, a.Delete("1"))

	b, err := NewEventStore(db, "tokyo-2025", tripStart)
	require.NoError(t, err)
	assert.Equal(t, 3, b.Len())
}
