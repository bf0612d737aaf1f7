package postgres

import (
	"context"
	"database/sql"
	"errors"

	"campusevents/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) CreateWithReservation(ctx context.Context, e *domain.Event, res *domain.Reservation) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	eventQuery := `
		INSERT INTO events (creator_id, category_id, name, description, is_public,
			student_fee, staff_fee, public_fee, prepay_allowed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, eventQuery,
		e.CreatorID, e.CategoryID, e.Name, e.Description, e.IsPublic,
		e.StudentFee, e.StaffFee, e.PublicFee, e.PrepayAllowed, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
	if err != nil {
		return err
	}

	res.EventID = e.ID
	resQuery := `
		INSERT INTO reservations (event_id, location_id, start_time, end_time, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, resQuery,
		res.EventID, res.LocationID, res.StartTime, res.EndTime, res.Status, res.CreatedAt, res.UpdatedAt,
	).Scan(&res.ID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT id, creator_id, category_id, name, description, is_public,
			student_fee, staff_fee, public_fee, prepay_allowed, created_at, updated_at
		FROM events
		WHERE id = $1
	`
	e := &domain.Event{}
	var categoryNull sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.CreatorID, &categoryNull, &e.Name, &e.Description, &e.IsPublic,
		&e.StudentFee, &e.StaffFee, &e.PublicFee, &e.PrepayAllowed, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if categoryNull.Valid {
		e.CategoryID = &categoryNull.String
	}
	return e, nil
}

func (r *eventRepository) ListByCreatorID(ctx context.Context, creatorID string) ([]*domain.EventDetails, error) {
	query := `
		SELECT ` + detailsColumns + `
		FROM events e
		INNER JOIN reservations r ON r.event_id = e.id
		INNER JOIN locations l ON l.id = r.location_id
		WHERE e.creator_id = $1
		ORDER BY r.start_time
	`
	rows, err := r.DB.QueryContext(ctx, query, creatorID)
	if err != nil {
		return nil, err
	}
	return collectDetails(rows)
}

func (r *eventRepository) UpdateWithReservation(ctx context.Context, e *domain.Event, res *domain.Reservation) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	resQuery := `
		UPDATE reservations
		SET location_id = $1, start_time = $2, end_time = $3, updated_at = $4
		WHERE id = $5
	`
	result, err := tx.ExecContext(ctx, resQuery, res.LocationID, res.StartTime, res.EndTime, res.UpdatedAt, res.ID)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrNotFound
	}

	eventQuery := `
		UPDATE events
		SET category_id = $1, name = $2, description = $3, is_public = $4,
			student_fee = $5, staff_fee = $6, public_fee = $7, prepay_allowed = $8, updated_at = $9
		WHERE id = $10
	`
	result, err = tx.ExecContext(ctx, eventQuery,
		e.CategoryID, e.Name, e.Description, e.IsPublic,
		e.StudentFee, e.StaffFee, e.PublicFee, e.PrepayAllowed, e.UpdatedAt, e.ID,
	)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrNotFound
	}

	return tx.Commit()
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Reservation first, then the event; dependent attendance and approval
	// rows go with them via ON DELETE CASCADE.
	if _, err := tx.ExecContext(ctx, `DELETE FROM reservations WHERE event_id = $1`, id); err != nil {
		return err
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrNotFound
	}

	return tx.Commit()
}
