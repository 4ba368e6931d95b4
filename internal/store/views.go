package store

import (
	"context"
	"sort"
	"strings"

	"civicconnect-api/internal/model"
)

// Derived views: read-only projections recomputed from the current
// collection. None of them are a source of truth.

// ByDate returns the appointments scheduled on the given day.
func (s *Store) ByDate(_ context.Context, date string) []model.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Appointment
	for _, a := range s.appointments {
		if a.Date == date {
			out = append(out, a)
		}
	}
	return out
}

// BySlotAndDate narrows ByDate to a single slot row.
func (s *Store) BySlotAndDate(_ context.Context, date, slot string) []model.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Appointment
	for _, a := range s.appointments {
		if a.Date == date && a.TimeSlot == slot {
			out = append(out, a)
		}
	}
	return out
}

// Completed returns every appointment whose meeting was held and recorded.
func (s *Store) Completed(_ context.Context) []model.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Appointment
	for _, a := range s.appointments {
		if a.Status == model.StatusCompleted {
			out = append(out, a)
		}
	}
	return out
}

// Search filters a list by case-insensitive substring match against the
// constituent name, description, outcome and the raw date string. A blank or
// whitespace-only term returns the list unchanged.
func Search(list []model.Appointment, term string) []model.Appointment {
	if strings.TrimSpace(term) == "" {
		return list
	}
	needle := strings.ToLower(term)

	var out []model.Appointment
	for _, a := range list {
		if strings.Contains(strings.ToLower(a.Name), needle) ||
			strings.Contains(strings.ToLower(a.Description), needle) ||
			strings.Contains(strings.ToLower(a.Outcome), needle) ||
			strings.Contains(a.Date, needle) {
			out = append(out, a)
		}
	}
	return out
}

// DateGroup is one day's worth of appointments in a grouped listing.
type DateGroup struct {
	Date         string
	Appointments []model.Appointment
}

// GroupByDate partitions a list by date and orders the groups by date
// descending. Lexicographic comparison is enough for ISO YYYY-MM-DD strings.
// Within a group the input order is preserved.
func GroupByDate(list []model.Appointment) []DateGroup {
	byDate := make(map[string][]model.Appointment)
	for _, a := range list {
		byDate[a.Date] = append(byDate[a.Date], a)
	}

	out := make([]DateGroup, 0, len(byDate))
	for date, apps := range byDate {
		out = append(out, DateGroup{Date: date, Appointments: apps})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}
