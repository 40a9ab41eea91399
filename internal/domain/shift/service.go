package shift

import (
	"context"
	"time"
)

type SchedulerService interface {
	// GenerateMonthlySchedule builds the rotation for the month following
	// now, replacing any pending assignments already in that window.
	GenerateMonthlySchedule(ctx context.Context, clinicID string, now time.Time) (RunResult, error)
	// GenerateForAllClinics runs GenerateMonthlySchedule for every clinic;
	// one clinic failing does not stop the others.
	GenerateForAllClinics(ctx context.Context, now time.Time) ([]RunResult, error)
	ListPending(ctx context.Context, clinicID string, month, year int) ([]Assignment, error)
	// Approve promotes a pending assignment to scheduled. This is the manager
	// action; the scheduler itself never transitions rows.
	Approve(ctx context.Context, assignmentID string) (Assignment, error)
}
