// Package parser turns the text the user types into schedule data: the
// editor's clock fields and the quick-add line.
package parser

import (
	"fmt"
	"regexp"
	"strconv"
)

var clockRe = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*([AaPp][Mm])`)

// ParseClock extracts the first "H:MM AM/PM" clock from s and returns it
// as minutes since midnight. ok is false when no valid clock appears, so
// callers can keep the previous value for free-form input.
func ParseClock(s string) (int, bool) {
	matches := clockRe.FindStringSubmatch(s)
	if matches == nil {
		return 0, false
	}

	hour, _ := strconv.Atoi(matches[1])
	minute, _ := strconv.Atoi(matches[2])
	if hour < 1 || hour > 12 || minute > 59 {
		return 0, false
	}

	pm := matches[3][0] == 'P' || matches[3][0] == 'p'
	if pm && hour != 12 {
		hour += 12
	} else if !pm && hour == 12 {
		hour = 0
	}

	return hour*60 + minute, true
}

// FormatClock renders minutes since midnight as "H:MM AM/PM".
func FormatClock(minutes int) string {
	hour := minutes / 60 % 24
	minute := minutes % 60

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	h12 := hour % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, minute, period)
}
