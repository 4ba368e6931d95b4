// Package session owns the transient UI-facing state that the original
// portal kept in ambient globals: whether anyone is logged in, who, which
// navigation tab is active and which day the calendar shows. One
// mutex-guarded struct, mutated only by discrete intents.
package session

import (
	"sync"

	"civicconnect-api/internal/model"
)

const (
	TabCalendar = "calendar"
	TabReports  = "reports"
)

// State is a point-in-time snapshot handed to the presentation layer.
type State struct {
	Authenticated bool
	User          model.User
	ActiveTab     string
	SelectedDate  string // YYYY-MM-DD
}

type Manager struct {
	mu    sync.Mutex
	state State
}

// New starts unauthenticated on the default view for the given day.
func New(today string) *Manager {
	return &Manager{state: State{ActiveTab: TabCalendar, SelectedDate: today}}
}

// Login marks the session authenticated under the given identity.
func (m *Manager) Login(u model.User) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Authenticated = true
	m.state.User = u
	return m.state
}

// Logout drops the identity and resets the active tab to the default view.
// The selected date survives logout.
func (m *Manager) Logout() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Authenticated = false
	m.state.User = model.User{}
	m.state.ActiveTab = TabCalendar
	return m.state
}

// SelectTab switches the active navigation tab.
func (m *Manager) SelectTab(tab string) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.ActiveTab = tab
	return m.state
}

// SelectDate moves the calendar to the given day.
func (m *Manager) SelectDate(date string) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.SelectedDate = date
	return m.state
}

// Active reports whether a login is currently in effect.
func (m *Manager) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Authenticated
}

// Snapshot returns the current state.
func (m *Manager) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}
