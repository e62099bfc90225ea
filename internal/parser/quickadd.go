package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"itin/internal/trip"
)

// QuickAdd is the result of parsing one quick-add line, e.g.
// "tomorrow 2pm-4pm Snorkeling at Blue Lagoon".
type QuickAdd struct {
	Date   time.Time
	Start  int // minutes of day
	End    int
	AllDay bool
	Title  string
}

// Event builds the trip event the parsed line describes.
func (q *QuickAdd) Event(category trip.Category) trip.Event {
	title := q.Title
	if title == "" {
		title = "New Event"
	}
	if q.AllDay {
		return trip.NewAllDayEvent(title, q.Date, category)
	}
	start := q.Date.Add(time.Duration(q.Start) * time.Minute)
	end := q.Date.Add(time.Duration(q.End) * time.Minute)
	return trip.NewEvent(title, start, end, category)
}

// Parser parses quick-add lines relative to a reference date.
type Parser struct {
	now      time.Time
	location *time.Location
}

func New() *Parser {
	return &Parser{
		now:      time.Now(),
		location: time.Local,
	}
}

// SetNow fixes the reference date used for "today" and "tomorrow".
func (p *Parser) SetNow(now time.Time) {
	p.now = now
	p.location = now.Location()
}

// Parse splits input into date, time range, and title. A line with no
// time becomes an all-day event; a single time gets a one-hour duration.
func (p *Parser) Parse(input string) (*QuickAdd, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("empty input")
	}

	result := &QuickAdd{}
	remaining := input

	if date, text, ok := p.parseRelativeDate(remaining); ok {
		result.Date = date
		remaining = text
	} else if date, text, ok := p.parseAbsoluteDate(remaining); ok {
		result.Date = date
		remaining = text
	} else {
		result.Date = p.today()
	}

	if start, end, text, ok := p.parseTimeRange(remaining); ok {
		result.Start = start
		result.End = end
		remaining = text
	} else {
		result.AllDay = true
	}

	result.Title = strings.TrimSpace(remaining)
	return result, nil
}

func (p *Parser) parseRelativeDate(input string) (time.Time, string, bool) {
	lower := strings.ToLower(input)

	if strings.HasPrefix(lower, "today") {
		return p.today(), strings.TrimSpace(input[5:]), true
	}
	if strings.HasPrefix(lower, "tomorrow") {
		return p.today().AddDate(0, 0, 1), strings.TrimSpace(input[8:]), true
	}
	if strings.HasPrefix(lower, "tmrw") {
		return p.today().AddDate(0, 0, 1), strings.TrimSpace(input[4:]), true
	}

	weekdayRe := regexp.MustCompile(`^(mon|monday|tue|tuesday|wed|wednesday|thu|thursday|fri|friday|sat|saturday|sun|sunday)\b`)
	if matches := weekdayRe.FindStringSubmatch(lower); matches != nil {
		date := p.nextWeekday(parseWeekday(matches[1]))
		return date, strings.TrimSpace(input[len(matches[0]):]), true
	}

	return time.Time{}, input, false
}

var (
	// The day must end at a word break so "2-4pm" stays a time range, and
	// a meridiem right after the match ("2-4 pm") disqualifies it too.
	absDateRe  = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})(?:[/-](\d{4}))?(?:\s+|$)`)
	meridiemRe = regexp.MustCompile(`^(?i:am|pm)\b`)
)

func (p *Parser) parseAbsoluteDate(input string) (time.Time, string, bool) {
	// MM/DD or MM/DD/YYYY
	if matches := absDateRe.FindStringSubmatch(input); matches != nil {
		rest := strings.TrimSpace(input[len(matches[0]):])
		if !meridiemRe.MatchString(rest) {
			month, _ := strconv.Atoi(matches[1])
			day, _ := strconv.Atoi(matches[2])
			year := p.now.Year()
			if matches[3] != "" {
				year, _ = strconv.Atoi(matches[3])
			}
			date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location)
			return date, rest, true
		}
	}

	// Month DD
	monthRe := regexp.MustCompile(`^(jan|january|feb|february|mar|march|apr|april|may|jun|june|jul|july|aug|august|sep|september|oct|october|nov|november|dec|december)\s+(\d{1,2})\b`)
	if matches := monthRe.FindStringSubmatch(strings.ToLower(input)); matches != nil {
		day, _ := strconv.Atoi(matches[2])
		date := time.Date(p.now.Year(), parseMonth(matches[1]), day, 0, 0, 0, 0, p.location)
		return date, strings.TrimSpace(input[len(matches[0]):]), true
	}

	return time.Time{}, input, false
}

func (p *Parser) parseTimeRange(input string) (int, int, string, bool) {
	lower := strings.ToLower(input)
	if strings.HasPrefix(lower, "at ") {
		input = input[3:]
		lower = lower[3:]
	}

	// Range, e.g. "2pm-4pm" or "14:00-16:00"
	rangeRe := regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\s*-\s*(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\b`)
	if matches := rangeRe.FindStringSubmatch(lower); matches != nil {
		start := clockMinutes(matches[1], matches[2], matches[3])
		end := clockMinutes(matches[4], matches[5], matches[6])
		// "2-4pm" means both ends are afternoon
		if matches[3] == "" && matches[6] == "pm" && start+12*60 < end {
			start += 12 * 60
		}
		if end > start {
			return start, end, strings.TrimSpace(input[len(matches[0]):]), true
		}
	}

	// Single time, one-hour default duration
	timeRe := regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
	if matches := timeRe.FindStringSubmatch(lower); matches != nil {
		start := clockMinutes(matches[1], matches[2], matches[3])
		end := start + 60
		if end >= 24*60 {
			end = 24*60 - 1
		}
		return start, end, strings.TrimSpace(input[len(matches[0]):]), true
	}

	// 24-hour single time requires a colon so bare numbers stay in titles
	colonRe := regexp.MustCompile(`^(\d{1,2}):(\d{2})\b`)
	if matches := colonRe.FindStringSubmatch(lower); matches != nil {
		start := clockMinutes(matches[1], matches[2], "")
		end := start + 60
		if end >= 24*60 {
			end = 24*60 - 1
		}
		return start, end, strings.TrimSpace(input[len(matches[0]):]), true
	}

	return 0, 0, input, false
}

func clockMinutes(hourStr, minStr, period string) int {
	hour, _ := strconv.Atoi(hourStr)
	min := 0
	if minStr != "" {
		min, _ = strconv.Atoi(minStr)
	}
	if period == "pm" && hour < 12 {
		hour += 12
	} else if period == "am" && hour == 12 {
		hour = 0
	}
	return hour*60 + min
}

func parseWeekday(s string) time.Weekday {
	switch s[:3] {
	case "sun":
		return time.Sunday
	case "mon":
		return time.Monday
	case "tue":
		return time.Tuesday
	case "wed":
		return time.Wednesday
	case "thu":
		return time.Thursday
	case "fri":
		return time.Friday
	default:
		return time.Saturday
	}
}

func parseMonth(s string) time.Month {
	months := map[string]time.Month{
		"jan": time.January, "feb": time.February, "mar": time.March,
		"apr": time.April, "may": time.May, "jun": time.June,
		"jul": time.July, "aug": time.August, "sep": time.September,
		"oct": time.October, "nov": time.November, "dec": time.December,
	}
	return months[s[:3]]
}

func (p *Parser) nextWeekday(target time.Weekday) time.Time {
	date := p.today()
	days := int(target-date.Weekday()+7) % 7
	if days == 0 {
		days = 7
	}
	return date.AddDate(0, 0, days)
}

func (p *Parser) today() time.Time {
	y, m, d := p.now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, p.location)
}
