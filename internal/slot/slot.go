// Package slot owns the fixed 24-slot day grid and the arithmetic that
// decides whether a slot's hour has already gone by.
package slot

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeSlot is one fixed one-hour interval of the day.
type TimeSlot struct {
	Label     string // "09:00 AM - 10:00 AM"
	StartHour int    // 0-23
}

var slots = build()

func build() []TimeSlot {
	out := make([]TimeSlot, 24)
	for i := 0; i < 24; i++ {
		out[i] = TimeSlot{
			Label:     fmt.Sprintf("%s - %s", format12h(i), format12h((i+1)%24)),
			StartHour: i,
		}
	}
	return out
}

// format12h renders an hour on the 12-hour clock: 0 → "12:00 AM",
// 12 → "12:00 PM", 13 → "01:00 PM".
func format12h(hour int) string {
	h := hour % 12
	if h == 0 {
		h = 12
	}
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	return fmt.Sprintf("%02d:00 %s", h, ampm)
}

// Slots returns the canonical day grid in start-hour order.
// Callers must not mutate the returned slice.
func Slots() []TimeSlot { return slots }

// Valid reports whether label is one of the 24 canonical slot labels.
func Valid(label string) bool {
	for _, s := range slots {
		if s.Label == label {
			return true
		}
	}
	return false
}

// IsPast reports whether the slot's end time on the given date is behind now.
// The end component of the label is parsed on the 12-hour clock; "12:00 AM"
// resolves to hour 0 of the same date, so the last slot of a day reads as
// past from midnight of that day onward. Malformed labels or dates fail open
// and report false — the caller then simply never shows "did it happen" UI.
func IsPast(label, date string, now time.Time) bool {
	end, ok := parseEnd(label)
	if !ok {
		return false
	}
	day, err := time.ParseInLocation("2006-01-02", date, now.Location())
	if err != nil {
		return false
	}
	return now.After(day.Add(end))
}

// parseEnd extracts the end component of a "start - end" label as an offset
// from midnight.
func parseEnd(label string) (time.Duration, bool) {
	parts := strings.Split(label, " - ")
	if len(parts) != 2 {
		return 0, false
	}
	fields := strings.Fields(parts[1])
	if len(fields) != 2 {
		return 0, false
	}
	hm := strings.Split(fields[0], ":")
	if len(hm) != 2 {
		return 0, false
	}
	hours, err := strconv.Atoi(hm[0])
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(hm[1])
	if err != nil {
		return 0, false
	}
	if hours < 1 || hours > 12 || minutes < 0 || minutes > 59 {
		return 0, false
	}
	switch fields[1] {
	case "PM":
		if hours < 12 {
			hours += 12
		}
	case "AM":
		if hours == 12 {
			hours = 0
		}
	default:
		return 0, false
	}
	return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute, true
}
