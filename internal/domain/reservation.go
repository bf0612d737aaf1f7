package domain

import (
	"context"
	"time"
)

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

// Reservation lifecycle. Every reservation starts PENDING; APPROVED and
// DENIED are terminal.
const (
	StatusPending  ReservationStatus = "PENDING"
	StatusApproved ReservationStatus = "APPROVED"
	StatusDenied   ReservationStatus = "DENIED"
)

// Reservation binds an event to a location and a time window.
type Reservation struct {
	ID         string            `json:"id"`
	EventID    string            `json:"event_id"`
	LocationID string            `json:"location_id"`
	StartTime  time.Time         `json:"start_time"`
	EndTime    time.Time         `json:"end_time"`
	Status     ReservationStatus `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// NewReservation returns a PENDING reservation for the given event, location
// and time window. ID is typically set by the repository on create.
func NewReservation(eventID, locationID string, startTime, endTime time.Time, createdAt, updatedAt time.Time) *Reservation {
	return &Reservation{
		EventID:    eventID,
		LocationID: locationID,
		StartTime:  startTime,
		EndTime:    endTime,
		Status:     StatusPending,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}

// Approval is the audit record of a staff user approving a reservation.
type Approval struct {
	ID            string    `json:"id"`
	ApproverID    string    `json:"approver_id"`
	ReservationID string    `json:"reservation_id"`
	ApprovedAt    time.Time `json:"approved_at"`
}

// ReservationRepository defines storage operations for reservations and their
// approval workflow. Approve and Deny only act on PENDING reservations and
// return ErrAlreadyDecided otherwise.
type ReservationRepository interface {
	GetByEventID(ctx context.Context, eventID string) (*Reservation, error)
	ListPending(ctx context.Context) ([]*EventDetails, error)
	ListApprovedByLocationID(ctx context.Context, locationID string) ([]*EventDetails, error)
	// SearchApproved returns a page of approved reservations matching the
	// term by case-insensitive substring over event name, event description,
	// and location name, plus the total match count. An empty term matches
	// everything approved.
	SearchApproved(ctx context.Context, term string, params PaginationParams) ([]*EventDetails, int, error)
	// Approve transitions the event's reservation to APPROVED and, in the
	// same transaction, writes the Approval audit row and an Attendance row
	// for the event's creator (prepaid=false).
	Approve(ctx context.Context, eventID, approverID string, decidedAt time.Time) (*Reservation, error)
	// Deny transitions the event's reservation to DENIED. No side effects.
	Deny(ctx context.Context, eventID string, decidedAt time.Time) (*Reservation, error)
	GetApprovalByReservationID(ctx context.Context, reservationID string) (*Approval, error)
}

// ModerationService is the staff-only reservation workflow. All methods fail
// with ErrNotFound when the actor lacks the staff role; a missing entity and
// a failed role check are indistinguishable to the caller.
type ModerationService interface {
	ListPending(ctx context.Context, actorID string) ([]*EventDetails, error)
	Approve(ctx context.Context, eventID, actorID string) (*Reservation, error)
	Deny(ctx context.Context, eventID, actorID string) (*Reservation, error)
}
