package domain

import (
	"context"
	"time"
)

// Event represents a campus event. Every event owns exactly one Reservation
// for its lifetime; the pair is created and deleted together.
type Event struct {
	ID            string    `json:"id"`
	CreatorID     string    `json:"creator_id"`
	CategoryID    *string   `json:"category_id,omitempty"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	IsPublic      bool      `json:"is_public"`
	StudentFee    float64   `json:"student_fee"`
	StaffFee      float64   `json:"staff_fee"`
	PublicFee     float64   `json:"public_fee"`
	PrepayAllowed bool      `json:"prepay_allowed"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewEvent returns a new Event with the given fields. ID is typically set by the repository on create.
func NewEvent(creatorID, name, description string, createdAt, updatedAt time.Time) *Event {
	return &Event{
		CreatorID:   creatorID,
		Name:        name,
		Description: description,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// EventDetails bundles an event with its reservation and venue for listings.
type EventDetails struct {
	Event       *Event       `json:"event"`
	Reservation *Reservation `json:"reservation"`
	Location    *Location    `json:"location"`
}

// EventPermissions are the caller-specific action flags on an event detail view.
type EventPermissions struct {
	Creator bool `json:"creator"`
	Mod     bool `json:"mod"`
	Prepay  bool `json:"prepay"`
	Attend  bool `json:"attend"`
}

// EventView is the full detail view of an event: the event/reservation pair,
// its venue, the registered attendees, and the caller's permission flags.
type EventView struct {
	Event       *Event                `json:"event"`
	Reservation *Reservation          `json:"reservation"`
	Location    *Location             `json:"location"`
	Attendance  []*AttendanceWithUser `json:"attendance"`
	Permissions EventPermissions      `json:"permissions"`
}

// EventRepository defines the interface for event storage. Multi-row writes
// (event plus reservation) happen in a single transaction.
type EventRepository interface {
	// CreateWithReservation inserts the event and its reservation atomically.
	// On success both IDs are set; on failure neither row persists.
	CreateWithReservation(ctx context.Context, event *Event, res *Reservation) error
	GetByID(ctx context.Context, id string) (*Event, error)
	ListByCreatorID(ctx context.Context, creatorID string) ([]*EventDetails, error)
	// UpdateWithReservation applies event field changes and the reservation's
	// location/time window in one transaction.
	UpdateWithReservation(ctx context.Context, event *Event, res *Reservation) error
	// Delete removes the reservation and then the event in one transaction.
	Delete(ctx context.Context, id string) error
}

// EventUpdate carries the editable fields of an event/reservation pair.
// Nil pointers leave the current value unchanged.
type EventUpdate struct {
	Name          *string
	Description   *string
	CategoryID    *string
	IsPublic      *bool
	StudentFee    *float64
	StaffFee      *float64
	PublicFee     *float64
	PrepayAllowed *bool
	LocationID    *string
	StartTime     *time.Time
	EndTime       *time.Time
}

// CreateEventInput is the full set of fields needed to create an event with
// its reservation.
type CreateEventInput struct {
	Name          string
	Description   string
	CategoryID    *string
	IsPublic      bool
	StudentFee    float64
	StaffFee      float64
	PublicFee     float64
	PrepayAllowed bool
	LocationID    string
	StartTime     time.Time
	EndTime       time.Time
}

// EventService defines the event lifecycle operations available to creators
// and attendees.
type EventService interface {
	Create(ctx context.Context, creatorID string, input CreateEventInput) (*EventDetails, error)
	Get(ctx context.Context, eventID, callerID string) (*EventView, error)
	Update(ctx context.Context, eventID, callerID string, update EventUpdate) (*EventDetails, error)
	Delete(ctx context.Context, eventID, callerID string) error
	ListMine(ctx context.Context, callerID string) ([]*EventDetails, error)
	// ListApproved returns a page of approved reservations plus the total
	// match count; a non-empty searchTerm filters by case-insensitive
	// substring over event name, event description, and location name.
	ListApproved(ctx context.Context, searchTerm string, params PaginationParams) ([]*EventDetails, int, error)
}
