package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/medishift/clinic-backend-go/internal/domain/leave"
	"github.com/medishift/clinic-backend-go/internal/pkg/database"
	"github.com/medishift/clinic-backend-go/internal/pkg/dateutil"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

func (r *leaveRepository) ListApprovedStartingIn(ctx context.Context, employeeID string, month, year int) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	first, last := dateutil.MonthRange(year, time.Month(month))

	query := `
		SELECT id, employee_id, type, start_date, end_date, reason, status, created_at, updated_at
		FROM leave_requests
		WHERE employee_id = $1
		  AND status = 'approved'
		  AND start_date BETWEEN $2 AND $3
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, employeeID, first.Time(), last.Time())
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var l leave.LeaveRequest
		var startDate, endDate time.Time
		if err := rows.Scan(
			&l.ID, &l.EmployeeID, &l.Type, &startDate, &endDate, &l.Reason, &l.Status,
			&l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		l.StartDate = dateutil.DateOf(startDate)
		l.EndDate = dateutil.DateOf(endDate)
		requests = append(requests, l)
	}

	return requests, nil
}
