package grid

import (
	"sort"
	"time"

	"itin/internal/trip"
)

// DayColumn is one day of the schedule view: the all-day lane on top and
// the timed events below it, both in start order.
type DayColumn struct {
	Date   time.Time
	AllDay []trip.Event
	Timed  []trip.Event
}

// BuildColumns buckets events into one column per date. An event lands in
// the column matching its start date; events outside the date range are
// dropped.
func BuildColumns(dates []time.Time, events []trip.Event) []DayColumn {
	columns := make([]DayColumn, len(dates))
	for i, d := range dates {
		columns[i].Date = trip.StartOfDay(d)
	}

	for _, ev := range events {
		for i := range columns {
			if !trip.SameDay(columns[i].Date, ev.StartTime) {
				continue
			}
			if ev.AllDay {
				columns[i].AllDay = append(columns[i].AllDay, ev)
			} else {
				columns[i].Timed = append(columns[i].Timed, ev)
			}
			break
		}
	}

	for i := range columns {
		sortByStart(columns[i].AllDay)
		sortByStart(columns[i].Timed)
	}
	return columns
}

func sortByStart(events []trip.Event) {
	sort.SliceStable(events, func(a, b int) bool {
		return events[a].StartTime.Before(events[b].StartTime)
	})
}

// AssignLanes gives each timed event in a column a lane index so that
// overlapping events render side by side. Events are packed greedily into
// the lowest free lane; the second return value is the lane count.
func AssignLanes(timed []trip.Event) (map[string]int, int) {
	lanes := make(map[string]int, len(timed))

	// laneEnd tracks, per lane, when the last event placed there ends.
	var laneEnd []int

	for _, ev := range timed {
		start := MinutesOfDay(ev.StartTime)
		end := MinutesOfDay(ev.EndTime)
		if end <= start {
			end = start + SlotMinutes
		}

		placed := false
		for lane, busyUntil := range laneEnd {
			if start >= busyUntil {
				lanes[ev.ID] = lane
				laneEnd[lane] = end
				placed = true
				break
			}
		}
		if !placed {
			lanes[ev.ID] = len(laneEnd)
			laneEnd = append(laneEnd, end)
		}
	}

	return lanes, len(laneEnd)
}

// EventsAt returns the timed events covering the slot that starts at
// minute of day, in lane order.
func EventsAt(timed []trip.Event, lanes map[string]int, minute int) []trip.Event {
	var out []trip.Event
	for _, ev := range timed {
		start := MinutesOfDay(ev.StartTime)
		end := MinutesOfDay(ev.EndTime)
		if minute >= start && minute < end {
			out = append(out, ev)
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return lanes[out[a].ID] < lanes[out[b].ID]
	})
	return out
}
