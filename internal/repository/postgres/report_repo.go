package postgres

import (
	"context"
	"database/sql"
	"time"

	"campusevents/internal/domain"
)

type reportRepository struct {
	DB *sql.DB
}

func NewReportRepository(db *sql.DB) domain.ReportRepository {
	return &reportRepository{
		DB: db,
	}
}

func (r *reportRepository) EventCounts(ctx context.Context, start, end time.Time) (int, int, error) {
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE r.status = $3)
		FROM events e
		INNER JOIN reservations r ON r.event_id = e.id
		WHERE r.start_time >= $1 AND r.start_time <= $2
	`
	var total, approved int
	err := r.DB.QueryRowContext(ctx, query, start, end, domain.StatusApproved).Scan(&total, &approved)
	if err != nil {
		return 0, 0, err
	}
	return total, approved, nil
}

func (r *reportRepository) AttendanceStats(ctx context.Context, start, end time.Time) (int, float64, error) {
	// Revenue charges every attendance row the event's student fee, whatever
	// the attendee's actual fee class. Observed behavior of the system this
	// replaces; change only with a requirements decision.
	query := `
		SELECT COUNT(a.id), COALESCE(SUM(e.student_fee), 0)
		FROM attendance a
		INNER JOIN events e ON e.id = a.event_id
		INNER JOIN reservations r ON r.event_id = e.id
		WHERE r.start_time >= $1 AND r.start_time <= $2
	`
	var count int
	var revenue float64
	err := r.DB.QueryRowContext(ctx, query, start, end).Scan(&count, &revenue)
	if err != nil {
		return 0, 0, err
	}
	return count, revenue, nil
}

func (r *reportRepository) CategoryBreakdown(ctx context.Context, start, end time.Time) ([]*domain.CategorySummary, error) {
	query := `
		SELECT COALESCE(c.name, 'Uncategorized'),
			COUNT(a.id),
			COUNT(a.id) FILTER (WHERE a.prepaid)
		FROM events e
		INNER JOIN reservations r ON r.event_id = e.id
		LEFT JOIN categories c ON c.id = e.category_id
		LEFT JOIN attendance a ON a.event_id = e.id
		WHERE r.start_time >= $1 AND r.start_time <= $2
		GROUP BY 1
		ORDER BY 1
	`
	rows, err := r.DB.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]*domain.CategorySummary, 0)
	for rows.Next() {
		s := &domain.CategorySummary{}
		if err := rows.Scan(&s.Category, &s.Registrations, &s.Prepaid); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
