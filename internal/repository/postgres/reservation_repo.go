package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"campusevents/internal/domain"
)

type reservationRepository struct {
	DB *sql.DB
}

func NewReservationRepository(db *sql.DB) domain.ReservationRepository {
	return &reservationRepository{
		DB: db,
	}
}

func (r *reservationRepository) GetByEventID(ctx context.Context, eventID string) (*domain.Reservation, error) {
	query := `
		SELECT id, event_id, location_id, start_time, end_time, status, created_at, updated_at
		FROM reservations
		WHERE event_id = $1
	`
	res := &domain.Reservation{}
	err := r.DB.QueryRowContext(ctx, query, eventID).Scan(
		&res.ID, &res.EventID, &res.LocationID, &res.StartTime, &res.EndTime, &res.Status, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return res, nil
}

func (r *reservationRepository) ListPending(ctx context.Context) ([]*domain.EventDetails, error) {
	query := `
		SELECT ` + detailsColumns + `
		FROM events e
		INNER JOIN reservations r ON r.event_id = e.id
		INNER JOIN locations l ON l.id = r.location_id
		WHERE r.status = $1
		ORDER BY r.start_time
	`
	rows, err := r.DB.QueryContext(ctx, query, domain.StatusPending)
	if err != nil {
		return nil, err
	}
	return collectDetails(rows)
}

func (r *reservationRepository) ListApprovedByLocationID(ctx context.Context, locationID string) ([]*domain.EventDetails, error) {
	query := `
		SELECT ` + detailsColumns + `
		FROM events e
		INNER JOIN reservations r ON r.event_id = e.id
		INNER JOIN locations l ON l.id = r.location_id
		WHERE r.status = $1 AND r.location_id = $2
		ORDER BY r.start_time
	`
	rows, err := r.DB.QueryContext(ctx, query, domain.StatusApproved, locationID)
	if err != nil {
		return nil, err
	}
	return collectDetails(rows)
}

func (r *reservationRepository) SearchApproved(ctx context.Context, term string, params domain.PaginationParams) ([]*domain.EventDetails, int, error) {
	const match = `
		r.status = $1
			AND (e.name ILIKE '%' || $2 || '%'
				OR e.description ILIKE '%' || $2 || '%'
				OR l.name ILIKE '%' || $2 || '%')`

	countQuery := `
		SELECT COUNT(*)
		FROM events e
		INNER JOIN reservations r ON r.event_id = e.id
		INNER JOIN locations l ON l.id = r.location_id
		WHERE ` + match
	var total int
	if err := r.DB.QueryRowContext(ctx, countQuery, domain.StatusApproved, term).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + detailsColumns + `
		FROM events e
		INNER JOIN reservations r ON r.event_id = e.id
		INNER JOIN locations l ON l.id = r.location_id
		WHERE ` + match + `
		ORDER BY r.start_time
		LIMIT $3 OFFSET $4
	`
	rows, err := r.DB.QueryContext(ctx, query, domain.StatusApproved, term, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	details, err := collectDetails(rows)
	if err != nil {
		return nil, 0, err
	}
	return details, total, nil
}

// Approve flips the event's PENDING reservation to APPROVED and, in the same
// transaction, records the approval audit row and registers the event's
// creator as an attendee. The WHERE status = PENDING guard makes concurrent
// decisions race-safe: the loser sees zero rows and gets ErrAlreadyDecided.
func (r *reservationRepository) Approve(ctx context.Context, eventID, approverID string, decidedAt time.Time) (*domain.Reservation, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	res, err := decideTx(ctx, tx, eventID, domain.StatusApproved, decidedAt)
	if err != nil {
		return nil, err
	}

	approvalQuery := `
		INSERT INTO approvals (approver_id, reservation_id, approved_at)
		VALUES ($1, $2, $3)
	`
	if _, err := tx.ExecContext(ctx, approvalQuery, approverID, res.ID, decidedAt); err != nil {
		return nil, err
	}

	attendQuery := `
		INSERT INTO attendance (event_id, user_id, prepaid, registered_at)
		SELECT e.id, e.creator_id, FALSE, $2
		FROM events e
		WHERE e.id = $1
		ON CONFLICT (event_id, user_id) DO NOTHING
	`
	if _, err := tx.ExecContext(ctx, attendQuery, eventID, decidedAt); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *reservationRepository) Deny(ctx context.Context, eventID string, decidedAt time.Time) (*domain.Reservation, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	res, err := decideTx(ctx, tx, eventID, domain.StatusDenied, decidedAt)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return res, nil
}

// decideTx moves the event's reservation out of PENDING. A reservation that
// exists but is no longer PENDING yields ErrAlreadyDecided; a missing
// reservation yields ErrNotFound.
func decideTx(ctx context.Context, tx *sql.Tx, eventID string, status domain.ReservationStatus, decidedAt time.Time) (*domain.Reservation, error) {
	query := `
		UPDATE reservations
		SET status = $1, updated_at = $2
		WHERE event_id = $3 AND status = $4
		RETURNING id, event_id, location_id, start_time, end_time, status, created_at, updated_at
	`
	res := &domain.Reservation{}
	err := tx.QueryRowContext(ctx, query, status, decidedAt, eventID, domain.StatusPending).Scan(
		&res.ID, &res.EventID, &res.LocationID, &res.StartTime, &res.EndTime, &res.Status, &res.CreatedAt, &res.UpdatedAt,
	)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM reservations WHERE event_id = $1)`, eventID).Scan(&exists); err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyDecided
	}
	return nil, domain.ErrNotFound
}

func (r *reservationRepository) GetApprovalByReservationID(ctx context.Context, reservationID string) (*domain.Approval, error) {
	query := `
		SELECT id, approver_id, reservation_id, approved_at
		FROM approvals
		WHERE reservation_id = $1
	`
	a := &domain.Approval{}
	err := r.DB.QueryRowContext(ctx, query, reservationID).Scan(&a.ID, &a.ApproverID, &a.ReservationID, &a.ApprovedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}
