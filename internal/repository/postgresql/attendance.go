package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/medishift/clinic-backend-go/internal/domain/attendance"
	"github.com/medishift/clinic-backend-go/internal/pkg/database"
	"github.com/medishift/clinic-backend-go/internal/pkg/dateutil"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) ListForEmployeeMonth(ctx context.Context, employeeID string, month, year int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	first, last := dateutil.MonthRange(year, time.Month(month))

	query := `
		SELECT id, employee_id, date, clock_in, clock_out, status, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, first.Time(), last.Time())
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		var date time.Time
		if err := rows.Scan(
			&a.ID, &a.EmployeeID, &date, &a.ClockIn, &a.ClockOut, &a.Status,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		a.Date = dateutil.DateOf(date)
		attendances = append(attendances, a)
	}

	return attendances, nil
}
