package postgres

import (
	"database/sql"

	"campusevents/internal/domain"
)

// detailsColumns is the joined column list for event/reservation/location
// queries. Queries using it must alias events as e, reservations as r and
// locations as l.
const detailsColumns = `
	e.id, e.creator_id, e.category_id, e.name, e.description, e.is_public,
	e.student_fee, e.staff_fee, e.public_fee, e.prepay_allowed, e.created_at, e.updated_at,
	r.id, r.event_id, r.location_id, r.start_time, r.end_time, r.status, r.created_at, r.updated_at,
	l.id, l.name, l.building, l.room, l.description, l.capacity`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDetails(row rowScanner) (*domain.EventDetails, error) {
	e := &domain.Event{}
	res := &domain.Reservation{}
	loc := &domain.Location{}
	var categoryNull sql.NullString
	err := row.Scan(
		&e.ID, &e.CreatorID, &categoryNull, &e.Name, &e.Description, &e.IsPublic,
		&e.StudentFee, &e.StaffFee, &e.PublicFee, &e.PrepayAllowed, &e.CreatedAt, &e.UpdatedAt,
		&res.ID, &res.EventID, &res.LocationID, &res.StartTime, &res.EndTime, &res.Status, &res.CreatedAt, &res.UpdatedAt,
		&loc.ID, &loc.Name, &loc.Building, &loc.Room, &loc.Description, &loc.Capacity,
	)
	if err != nil {
		return nil, err
	}
	if categoryNull.Valid {
		e.CategoryID = &categoryNull.String
	}
	return &domain.EventDetails{Event: e, Reservation: res, Location: loc}, nil
}

func collectDetails(rows *sql.Rows) ([]*domain.EventDetails, error) {
	defer rows.Close()
	details := make([]*domain.EventDetails, 0)
	for rows.Next() {
		d, err := scanDetails(rows)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}
