package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/medishift/clinic-backend-go/internal/domain/shift"
)

// ShiftJobs owns the recurring shift-generation trigger.
type ShiftJobs struct {
	schedulerSvc shift.SchedulerService
	runDay       int
	now          func() time.Time
}

func NewShiftJobs(schedulerSvc shift.SchedulerService, runDay int) *ShiftJobs {
	return &ShiftJobs{
		schedulerSvc: schedulerSvc,
		runDay:       runDay,
		now:          time.Now,
	}
}

func (j *ShiftJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("generate_monthly_schedules", 1*time.Hour, j.GenerateMonthlySchedules)
}

// GenerateMonthlySchedules runs the scheduler for every clinic on the
// configured day of the month. The hourly tick re-enters the gate all day;
// reruns are harmless because generation deletes the window before
// inserting.
func (j *ShiftJobs) GenerateMonthlySchedules(ctx context.Context) error {
	now := j.now()
	if now.Day() != j.runDay {
		return nil
	}

	slog.Info("Cron: Starting monthly shift generation", "run_day", j.runDay)

	results, err := j.schedulerSvc.GenerateForAllClinics(ctx, now)
	if err != nil {
		return err
	}

	for _, result := range results {
		if result.Skipped {
			continue
		}
		slog.Info("Cron: Shift generation result",
			"clinic_id", result.ClinicID, "month", result.Month, "year", result.Year,
			"inserted", result.Inserted, "failed", len(result.Failures))
	}
	return nil
}
