package attendance

import (
	"time"

	"github.com/medishift/clinic-backend-go/internal/pkg/dateutil"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusLeave   Status = "leave"
)

// Attendance is one employee-day. Created on clock-in, mutated on clock-out
// or when leave is synced; the payroll engine only ever reads it.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       dateutil.Date
	ClockIn    *time.Time
	ClockOut   *time.Time
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// WorkedHours returns the fractional hours between clock-in and clock-out,
// or 0 when either clock is missing. Callers sum at full precision and round
// only for display.
func (a Attendance) WorkedHours() float64 {
	if a.ClockIn == nil || a.ClockOut == nil {
		return 0
	}
	return a.ClockOut.Sub(*a.ClockIn).Hours()
}
