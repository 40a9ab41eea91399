package shift

import (
	"time"

	"github.com/medishift/clinic-backend-go/internal/domain/employee"
	"github.com/medishift/clinic-backend-go/internal/pkg/dateutil"
)

type Status string

const (
	// StatusPending marks a scheduler-authored rotation entry awaiting
	// manager approval. Pending rows for a window are superseded wholesale by
	// the next scheduler run, never transitioned.
	StatusPending Status = "pending"
	// StatusScheduled is the terminal, manager-approved state.
	StatusScheduled Status = "scheduled"
)

// Assignment is one employee placed in one session slot of one day.
type Assignment struct {
	ID         string
	ClinicID   string
	EmployeeID string
	Date       dateutil.Date
	Session    int
	StartTime  time.Time
	EndTime    time.Time
	Category   employee.Category
	Title      string
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
	ClinicName   *string
}

// SlotFailure records one assignment row that could not be inserted during a
// run. The run continues past it; a partial schedule is replaced wholesale
// next run anyway.
type SlotFailure struct {
	Date       dateutil.Date     `json:"date"`
	Session    int               `json:"session"`
	Category   employee.Category `json:"category"`
	EmployeeID string            `json:"employee_id"`
	Err        string            `json:"error"`
}

// RunResult is the explicit outcome of one generation run, so callers and
// tests can assert on partial success instead of digging through logs.
type RunResult struct {
	ClinicID string        `json:"clinic_id"`
	Month    int           `json:"month"`
	Year     int           `json:"year"`
	Deleted  int64         `json:"deleted"`
	Inserted int           `json:"inserted"`
	Skipped  bool          `json:"skipped"`
	Failures []SlotFailure `json:"failures,omitempty"`
}
