// Package grid implements the time-block geometry of the schedule view:
// conversion between minutes-of-day and vertical pixel offsets, slot
// snapping, day clamping, and the drag gesture state machine built on top.
package grid

import (
	"time"
)

const (
	// SlotMinutes is the snapping granularity for drag positions.
	SlotMinutes = 15

	// MinutesPerDay is the number of minutes in one day column.
	MinutesPerDay = 24 * 60

	// DefaultPixelsPerHour is the grid density used when a Mapper is not
	// configured explicitly. The TUI uses one terminal row per slot, so it
	// configures a much smaller density; the default matches a 60px/hour
	// visual grid.
	DefaultPixelsPerHour = 60
)

// Mapper converts between vertical pixel offsets and minutes since
// midnight at a fixed density. The zero value is not usable; construct
// with NewMapper.
type Mapper struct {
	pixelsPerHour int
}

// NewMapper returns a Mapper with the given density. Non-positive values
// fall back to DefaultPixelsPerHour.
func NewMapper(pixelsPerHour int) Mapper {
	if pixelsPerHour <= 0 {
		pixelsPerHour = DefaultPixelsPerHour
	}
	return Mapper{pixelsPerHour: pixelsPerHour}
}

// PixelsPerHour returns the configured density.
func (m Mapper) PixelsPerHour() int {
	return m.pixelsPerHour
}

// ToPixels converts minutes since midnight to a vertical pixel offset.
func (m Mapper) ToPixels(minutes int) int {
	return minutes * m.pixelsPerHour / 60
}

// ToMinutes converts a vertical pixel offset to minutes since midnight.
// Exact inverse of ToPixels up to the slot granularity.
func (m Mapper) ToMinutes(pixels int) int {
	return pixels * 60 / m.pixelsPerHour
}

// MinutesOfDay returns the time-of-day component of t in minutes, in
// [0, MinutesPerDay).
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// Snap rounds minutes to the nearest slot boundary. Negative inputs
// (deltas from an upward drag) round away from zero so that dragging up
// and down behave symmetrically. Idempotent: Snap(Snap(x)) == Snap(x).
func Snap(minutes int) int {
	if minutes < 0 {
		return -Snap(-minutes)
	}
	return (minutes + SlotMinutes/2) / SlotMinutes * SlotMinutes
}

// Clamp bounds minutes to [0, MinutesPerDay) so a dragged event cannot
// leave its day.
func Clamp(minutes int) int {
	if minutes < 0 {
		return 0
	}
	if minutes >= MinutesPerDay {
		return MinutesPerDay - 1
	}
	return minutes
}

// WithMinutesOfDay replaces only the time-of-day component of base,
// preserving its calendar date and location.
func WithMinutesOfDay(base time.Time, minutes int) time.Time {
	return time.Date(base.Year(), base.Month(), base.Day(), 0, minutes, 0, 0, base.Location())
}
