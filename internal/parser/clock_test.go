package parser

import "testing"

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		minutes int
		ok      bool
	}{
		{"2:30 PM", 870, true},
		{"2:30PM", 870, true},
		{"2:30 pm", 870, true},
		{"9:00 AM", 540, true},
		{"12:00 AM", 0, true},
		{"12:00 PM", 720, true},
		{"11:59 PM", 1439, true},
		{"arrive around 7:15 am", 435, true},
		{"", 0, false},
		{"lunch", 0, false},
		{"2:30", 0, false},
		{"14:30 PM", 0, false},
		{"2:75 PM", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseClock(c.in)
		if ok != c.ok || (ok && got != c.minutes) {
			t.Errorf("ParseClock(%q) = %d, %v; want %d, %v", c.in, got, ok, c.minutes, c.ok)
		}
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "12:00 AM"},
		{540, "9:00 AM"},
		{720, "12:00 PM"},
		{870, "2:30 PM"},
		{1439, "11:59 PM"},
	}
	for _, c := range cases {
		if got := FormatClock(c.minutes); got != c.want {
			t.Errorf("FormatClock(%d) = %q, want %q", c.minutes, got, c.want)
		}
	}
}

func TestClockRoundTrip(t *testing.T) {
	for minutes := 0; minutes < 24*60; minutes += 15 {
		got, ok := ParseClock(FormatClock(minutes))
		if !ok || got != minutes {
			t.Fatalf("round trip of %d = %d, %v", minutes, got, ok)
		}
	}
}
