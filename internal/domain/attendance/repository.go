package attendance

import "context"

type AttendanceRepository interface {
	// ListForEmployeeMonth returns all attendance rows for an employee whose
	// date falls in the given month, ordered by date.
	ListForEmployeeMonth(ctx context.Context, employeeID string, month, year int) ([]Attendance, error)
}
