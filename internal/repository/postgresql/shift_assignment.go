package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/medishift/clinic-backend-go/internal/domain/shift"
	"github.com/medishift/clinic-backend-go/internal/pkg/database"
	"github.com/medishift/clinic-backend-go/internal/pkg/dateutil"
)

type shiftAssignmentRepository struct {
	db *database.DB
}

func NewShiftAssignmentRepository(db *database.DB) shift.AssignmentRepository {
	return &shiftAssignmentRepository{db: db}
}

func (r *shiftAssignmentRepository) DeletePendingInWindow(ctx context.Context, clinicID string, from, to dateutil.Date) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM shift_assignments
		WHERE clinic_id = $1 AND status = 'pending' AND date BETWEEN $2 AND $3
	`

	tag, err := q.Exec(ctx, query, clinicID, from.Time(), to.Time())
	if err != nil {
		return 0, fmt.Errorf("failed to delete pending shift assignments: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *shiftAssignmentRepository) Insert(ctx context.Context, a shift.Assignment) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_assignments (
			id, clinic_id, employee_id, date, session, start_time, end_time,
			category, title, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	_, err := q.Exec(ctx, query,
		a.ID, a.ClinicID, a.EmployeeID, a.Date.Time(), a.Session,
		a.StartTime, a.EndTime, a.Category, a.Title, a.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to insert shift assignment: %w", err)
	}

	return nil
}

func (r *shiftAssignmentRepository) ListPendingInWindow(ctx context.Context, clinicID string, from, to dateutil.Date) ([]shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.clinic_id, s.employee_id, s.date, s.session,
			   s.start_time, s.end_time, s.category, s.title, s.status,
			   s.created_at, s.updated_at, e.full_name, c.name
		FROM shift_assignments s
		JOIN employees e ON s.employee_id = e.id
		JOIN clinics c ON s.clinic_id = c.id
		WHERE s.clinic_id = $1 AND s.status = 'pending' AND s.date BETWEEN $2 AND $3
		ORDER BY s.date, s.session, s.category, e.full_name
	`

	rows, err := q.Query(ctx, query, clinicID, from.Time(), to.Time())
	if err != nil {
		return nil, fmt.Errorf("failed to list shift assignments: %w", err)
	}
	defer rows.Close()

	var assignments []shift.Assignment
	for rows.Next() {
		a, err := scanShiftAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

func (r *shiftAssignmentRepository) GetByID(ctx context.Context, id string) (shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.clinic_id, s.employee_id, s.date, s.session,
			   s.start_time, s.end_time, s.category, s.title, s.status,
			   s.created_at, s.updated_at, e.full_name, c.name
		FROM shift_assignments s
		JOIN employees e ON s.employee_id = e.id
		JOIN clinics c ON s.clinic_id = c.id
		WHERE s.id = $1
	`

	a, err := scanShiftAssignment(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.Assignment{}, shift.ErrAssignmentNotFound
		}
		return shift.Assignment{}, fmt.Errorf("failed to get shift assignment: %w", err)
	}

	return a, nil
}

func (r *shiftAssignmentRepository) UpdateStatus(ctx context.Context, id string, status shift.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shift_assignments
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, status).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to update shift assignment status: %w", err)
	}

	return nil
}

func scanShiftAssignment(row pgx.Row) (shift.Assignment, error) {
	var a shift.Assignment
	var date time.Time
	err := row.Scan(
		&a.ID, &a.ClinicID, &a.EmployeeID, &date, &a.Session,
		&a.StartTime, &a.EndTime, &a.Category, &a.Title, &a.Status,
		&a.CreatedAt, &a.UpdatedAt, &a.EmployeeName, &a.ClinicName,
	)
	if err != nil {
		return shift.Assignment{}, err
	}
	a.Date = dateutil.DateOf(date)

	return a, nil
}
