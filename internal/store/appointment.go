// Package store holds every appointment for the lifetime of the process.
// Nothing is persisted: the collection is seeded at startup and lost on exit.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"civicconnect-api/internal/model"
)

type Store struct {
	mu           sync.RWMutex
	appointments []model.Appointment
}

// New builds a store pre-populated with the given records. Seed records are
// trusted to already carry IDs and timestamps.
func New(seed ...model.Appointment) *Store {
	return &Store{appointments: append([]model.Appointment(nil), seed...)}
}

// Create assigns a fresh ID and creation time, forces status to pending and
// appends the record. Field validation happens upstream at the RPC boundary.
func (s *Store) Create(_ context.Context, a model.Appointment) model.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = uuid.NewString()
	a.Status = model.StatusPending
	a.CreatedAt = time.Now().UnixMilli()
	s.appointments = append(s.appointments, a)
	return a
}

// Delete removes the record with the given id. Deleting an unknown id is a
// silent no-op: ids only ever come from the currently rendered state.
func (s *Store) Delete(_ context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.appointments {
		if a.ID == id {
			s.appointments = append(s.appointments[:i], s.appointments[i+1:]...)
			return
		}
	}
}

// Patch carries a partial update; nil fields are left untouched. A non-nil
// Outcome pointing at "" clears a previously recorded outcome.
type Patch struct {
	Name        *string
	Description *string
	Date        *string
	TimeSlot    *string
	Status      *string
	Outcome     *string
}

// Update merges the patch into the record with the given id and returns the
// result. Marking a meeting missed always blanks the outcome, even when the
// same patch supplies one and even when a prior completed state recorded one.
// An unknown id is a no-op and reports false.
func (s *Store) Update(_ context.Context, id string, p Patch) (model.Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.appointments {
		a := &s.appointments[i]
		if a.ID != id {
			continue
		}
		if p.Name != nil {
			a.Name = *p.Name
		}
		if p.Description != nil {
			a.Description = *p.Description
		}
		if p.Date != nil {
			a.Date = *p.Date
		}
		if p.TimeSlot != nil {
			a.TimeSlot = *p.TimeSlot
		}
		if p.Outcome != nil {
			a.Outcome = *p.Outcome
		}
		if p.Status != nil {
			a.Status = *p.Status
			if a.Status == model.StatusMissed {
				a.Outcome = ""
			}
		}
		return *a, true
	}
	return model.Appointment{}, false
}

// List returns a snapshot of the whole collection in insertion order.
func (s *Store) List(_ context.Context) []model.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Appointment(nil), s.appointments...)
}

// Len reports the number of stored appointments.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.appointments)
}
