// Package rpc defines the FrontDesk wire messages and their protobuf
// codecs. The browser client speaks grpc-web; there are no generated stubs,
// so each message is encoded and decoded by hand with protowire.
package rpc

// User mirrors the nominal admin identity.
type User struct {
	Id       string // field 1
	Username string // field 2
	Role     string // field 3
}

// SessionState is the snapshot the client renders its chrome from.
type SessionState struct {
	Authenticated bool   // field 1
	User          *User  // field 2
	ActiveTab     string // field 3
	SelectedDate  string // field 4
}

// Appointment is the wire form of one booked meeting.
type Appointment struct {
	Id          string // field 1
	Date        string // field 2
	TimeSlot    string // field 3
	Name        string // field 4
	Description string // field 5
	Outcome     string // field 6
	Status      string // field 7
	CreatedAt   int64  // field 8, epoch milliseconds
}

type LoginRequest struct {
	Username string `validate:"required"` // field 1
	Password string `validate:"required"` // field 2
}

type LoginResponse struct {
	Token string        // field 1
	User  *User         // field 2
	State *SessionState // field 3
}

type LogoutRequest struct{}

type LogoutResponse struct {
	State *SessionState // field 1
}

type CreateAppointmentRequest struct {
	Name        string `validate:"required"`                     // field 1
	Description string ``                                        // field 2
	Date        string `validate:"required,datetime=2006-01-02"` // field 3
	TimeSlot    string `validate:"required"`                     // field 4
}

type CreateAppointmentResponse struct {
	Appointment *Appointment // field 1
}

// UpdateAppointmentRequest carries a partial patch: nil fields were absent
// on the wire and leave the stored value alone. A present-but-empty Outcome
// explicitly clears any recorded outcome.
type UpdateAppointmentRequest struct {
	Id          string  `validate:"required"`                               // field 1
	Name        *string `validate:"omitempty,min=1"`                        // field 2
	Description *string ``                                                  // field 3
	Date        *string `validate:"omitempty,datetime=2006-01-02"`          // field 4
	TimeSlot    *string ``                                                  // field 5
	Status      *string `validate:"omitempty,oneof=pending completed missed"` // field 6
	Outcome     *string ``                                                  // field 7
}

type UpdateAppointmentResponse struct {
	Appointment *Appointment // field 1
	Found       bool         // field 2
}

type DeleteAppointmentRequest struct {
	Id string `validate:"required"` // field 1
}

type DeleteAppointmentResponse struct{}

type ListDayRequest struct {
	Date string `validate:"required,datetime=2006-01-02"` // field 1
}

// SlotRow is one line of the day timeline: a canonical slot plus whatever is
// booked in it, and whether its hour has already gone by.
type SlotRow struct {
	Label        string         // field 1
	StartHour    int32          // field 2
	Past         bool           // field 3
	Appointments []*Appointment // field 4
}

type ListDayResponse struct {
	Date      string     // field 1
	Slots     []*SlotRow // field 2
	Total     int32      // field 3
	Completed int32      // field 4
}

type SelectTabRequest struct {
	Tab string `validate:"required,oneof=calendar reports"` // field 1
}

type SelectTabResponse struct {
	State *SessionState // field 1
}

type SearchReportsRequest struct {
	Query string // field 1
}

// ReportGroup is one day's completed meetings in the reports view.
type ReportGroup struct {
	Date         string         // field 1
	Appointments []*Appointment // field 2
}

type SearchReportsResponse struct {
	Groups []*ReportGroup // field 1
	Total  int32          // field 2
}
