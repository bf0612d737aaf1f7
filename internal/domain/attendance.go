package domain

import (
	"context"
	"time"
)

// Attendance is a user's registration for an event, optionally prepaid.
// At most one row exists per (event, user) pair.
type Attendance struct {
	ID           string    `json:"id"`
	EventID      string    `json:"event_id"`
	UserID       string    `json:"user_id"`
	Prepaid      bool      `json:"prepaid"`
	RegisteredAt time.Time `json:"registered_at"`
}

// NewAttendance returns a new Attendance. ID is typically set by the repository on create.
func NewAttendance(eventID, userID string, prepaid bool, registeredAt time.Time) *Attendance {
	return &Attendance{
		EventID:      eventID,
		UserID:       userID,
		Prepaid:      prepaid,
		RegisteredAt: registeredAt,
	}
}

// AttendanceWithUser bundles an attendance row with the attendee's name for
// the event detail view.
type AttendanceWithUser struct {
	Attendance *Attendance `json:"attendance"`
	FirstName  string      `json:"first_name"`
	LastName   string      `json:"last_name"`
}

// AttendanceRepository defines storage operations for attendance records.
type AttendanceRepository interface {
	Create(ctx context.Context, att *Attendance) error
	GetByEventAndUser(ctx context.Context, eventID, userID string) (*Attendance, error)
	ListByEventID(ctx context.Context, eventID string) ([]*AttendanceWithUser, error)
}

// AttendanceService registers users for approved events.
type AttendanceService interface {
	// Attend creates a prepaid=false registration. A second call for the
	// same (user, event) fails with ErrDuplicateRegistration.
	Attend(ctx context.Context, eventID, userID string) (*Attendance, error)
	// Prepay creates a prepaid=true registration. Fails with
	// ErrPrepayNotAccepted when the event does not allow prepayment,
	// regardless of prior registration state.
	Prepay(ctx context.Context, eventID, userID string) (*Attendance, error)
}
