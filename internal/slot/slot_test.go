package slot_test

import (
	"testing"
	"time"

	"civicconnect-api/internal/slot"
)

func TestSlotsGrid(t *testing.T) {
	s := slot.Slots()
	if len(s) != 24 {
		t.Fatalf("expected 24 slots, got %d", len(s))
	}

	for i, ts := range s {
		if ts.StartHour != i {
			t.Errorf("slot %d: start hour %d", i, ts.StartHour)
		}
		if !slot.Valid(ts.Label) {
			t.Errorf("slot %d: label %q not valid against its own grid", i, ts.Label)
		}
	}

	// spot-check the labels around noon and midnight
	want := map[int]string{
		0:  "12:00 AM - 01:00 AM",
		9:  "09:00 AM - 10:00 AM",
		11: "11:00 AM - 12:00 PM",
		12: "12:00 PM - 01:00 PM",
		23: "11:00 PM - 12:00 AM",
	}
	for i, label := range want {
		if s[i].Label != label {
			t.Errorf("slot %d: got %q, want %q", i, s[i].Label, label)
		}
	}
}

func TestValidRejectsNonCanonical(t *testing.T) {
	for _, label := range []string{
		"",
		"9:00 AM - 10:00 AM",
		"09:00 AM-10:00 AM",
		"09:00 am - 10:00 am",
		"09:00 AM - 10:30 AM",
	} {
		if slot.Valid(label) {
			t.Errorf("label %q should not be canonical", label)
		}
	}
}

func TestIsPast(t *testing.T) {
	now := time.Date(2025, time.June, 15, 14, 30, 0, 0, time.Local)

	tests := []struct {
		name  string
		label string
		date  string
		want  bool
	}{
		{"earlier today", "09:00 AM - 10:00 AM", "2025-06-15", true},
		{"in progress", "02:00 PM - 03:00 PM", "2025-06-15", false},
		{"later today", "05:00 PM - 06:00 PM", "2025-06-15", false},
		{"two years back", "09:00 AM - 10:00 AM", "2023-06-15", true},
		{"two years ahead", "09:00 AM - 10:00 AM", "2027-06-15", false},
		// end "12:00 AM" is hour 0 of the same date, never hour 24
		{"midnight rollover past", "11:00 PM - 12:00 AM", "2024-01-01", true},
		{"midnight rollover today", "11:00 PM - 12:00 AM", "2025-06-15", true},
		{"midnight rollover future", "11:00 PM - 12:00 AM", "2025-06-16", false},
		{"noon end is hour 12", "11:00 AM - 12:00 PM", "2025-06-15", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := slot.IsPast(tt.label, tt.date, now); got != tt.want {
				t.Errorf("IsPast(%q, %q) = %v, want %v", tt.label, tt.date, got, tt.want)
			}
		})
	}
}

func TestIsPastFailsOpen(t *testing.T) {
	now := time.Date(2030, time.January, 1, 12, 0, 0, 0, time.Local)

	// far in the past relative to now, yet every malformed input reads as
	// "not past" rather than erroring
	for _, tt := range []struct{ label, date string }{
		{"garbage", "2020-01-01"},
		{"", "2020-01-01"},
		{"09:00 AM / 10:00 AM", "2020-01-01"},
		{"09:00 AM - ten", "2020-01-01"},
		{"09:00 AM - 10:00 XM", "2020-01-01"},
		{"09:00 AM - 13:00 PM", "2020-01-01"},
		{"09:00 AM - 10:00 AM", "not-a-date"},
		{"09:00 AM - 10:00 AM", ""},
	} {
		if slot.IsPast(tt.label, tt.date, now) {
			t.Errorf("IsPast(%q, %q) should fail open to false", tt.label, tt.date)
		}
	}
}
