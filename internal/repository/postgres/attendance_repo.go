package postgres

import (
	"context"
	"database/sql"
	"errors"

	"campusevents/internal/domain"
)

type attendanceRepository struct {
	DB *sql.DB
}

func NewAttendanceRepository(db *sql.DB) domain.AttendanceRepository {
	return &attendanceRepository{
		DB: db,
	}
}

func (r *attendanceRepository) Create(ctx context.Context, att *domain.Attendance) error {
	query := `
		INSERT INTO attendance (event_id, user_id, prepaid, registered_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, att.EventID, att.UserID, att.Prepaid, att.RegisteredAt).Scan(&att.ID)
	if err != nil {
		// The (event_id, user_id) unique constraint closes the race between
		// the service-level duplicate pre-check and this insert.
		if isUniqueViolation(err) {
			return domain.ErrDuplicateRegistration
		}
		return err
	}
	return nil
}

func (r *attendanceRepository) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Attendance, error) {
	query := `
		SELECT id, event_id, user_id, prepaid, registered_at
		FROM attendance
		WHERE event_id = $1 AND user_id = $2
	`
	att := &domain.Attendance{}
	err := r.DB.QueryRowContext(ctx, query, eventID, userID).Scan(
		&att.ID, &att.EventID, &att.UserID, &att.Prepaid, &att.RegisteredAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return att, nil
}

func (r *attendanceRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.AttendanceWithUser, error) {
	query := `
		SELECT a.id, a.event_id, a.user_id, a.prepaid, a.registered_at, u.first_name, u.last_name
		FROM attendance a
		INNER JOIN users u ON u.id = a.user_id
		WHERE a.event_id = $1
		ORDER BY a.registered_at
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.AttendanceWithUser, 0)
	for rows.Next() {
		att := &domain.Attendance{}
		entry := &domain.AttendanceWithUser{Attendance: att}
		if err := rows.Scan(&att.ID, &att.EventID, &att.UserID, &att.Prepaid, &att.RegisteredAt, &entry.FirstName, &entry.LastName); err != nil {
			return nil, err
		}
		list = append(list, entry)
	}
	return list, rows.Err()
}
