package model

// Appointment statuses. An empty status means the meeting has not been
// resolved yet (future, or the admin never answered "did it happen?").
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusMissed    = "missed"
)

type Appointment struct {
	ID          string
	Date        string // ISO YYYY-MM-DD
	TimeSlot    string // canonical label, e.g. "09:00 AM - 10:00 AM"
	Name        string
	Description string
	Outcome     string // set once a held meeting is written up
	Status      string
	CreatedAt   int64 // epoch milliseconds
}

type User struct {
	ID       string
	Username string
	Role     string
}
