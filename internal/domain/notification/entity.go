package notification

import "time"

type Type string

const (
	TypeScheduleGenerated Type = "schedule_generated"
	TypePayrollCalculated Type = "payroll_calculated"
)

type Notification struct {
	ID        string
	Type      Type
	Title     string
	Message   string
	CreatedAt time.Time
}
