package cron

import (
	"context"
	"testing"
	"time"

	"github.com/medishift/clinic-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSchedulerService struct {
	runs int
}

func (f *fakeSchedulerService) GenerateMonthlySchedule(_ context.Context, clinicID string, now time.Time) (shift.RunResult, error) {
	f.runs++
	return shift.RunResult{ClinicID: clinicID}, nil
}

func (f *fakeSchedulerService) GenerateForAllClinics(_ context.Context, now time.Time) ([]shift.RunResult, error) {
	f.runs++
	target := now.AddDate(0, 1, 0)
	return []shift.RunResult{
		{ClinicID: "clinic-1", Month: int(target.Month()), Year: target.Year(), Inserted: 300},
	}, nil
}

func (f *fakeSchedulerService) ListPending(_ context.Context, _ string, _, _ int) ([]shift.Assignment, error) {
	return nil, nil
}

func (f *fakeSchedulerService) Approve(_ context.Context, _ string) (shift.Assignment, error) {
	return shift.Assignment{}, shift.ErrAssignmentNotFound
}

func TestGenerateMonthlySchedulesRunsOnlyOnRunDay(t *testing.T) {
	svc := &fakeSchedulerService{}
	jobs := NewShiftJobs(svc, 25)
	jobs.now = func() time.Time {
		return time.Date(2024, time.March, 24, 10, 0, 0, 0, time.UTC)
	}

	require.NoError(t, jobs.GenerateMonthlySchedules(context.Background()))
	assert.Zero(t, svc.runs)

	jobs.now = func() time.Time {
		return time.Date(2024, time.March, 25, 10, 0, 0, 0, time.UTC)
	}

	require.NoError(t, jobs.GenerateMonthlySchedules(context.Background()))
	assert.Equal(t, 1, svc.runs)
}

func TestGenerateMonthlySchedulesRerunsSameDay(t *testing.T) {
	svc := &fakeSchedulerService{}
	jobs := NewShiftJobs(svc, 25)
	jobs.now = func() time.Time {
		return time.Date(2024, time.March, 25, 12, 0, 0, 0, time.UTC)
	}

	// The hourly tick re-enters the gate all day; generation itself is
	// idempotent, so reruns are allowed rather than suppressed.
	require.NoError(t, jobs.GenerateMonthlySchedules(context.Background()))
	require.NoError(t, jobs.GenerateMonthlySchedules(context.Background()))
	assert.Equal(t, 2, svc.runs)
}

func TestSchedulerRunOnce(t *testing.T) {
	svc := &fakeSchedulerService{}
	jobs := NewShiftJobs(svc, 25)
	jobs.now = func() time.Time {
		return time.Date(2024, time.March, 25, 10, 0, 0, 0, time.UTC)
	}

	scheduler := NewScheduler()
	jobs.RegisterJobs(scheduler)
	scheduler.RunOnce(context.Background())

	assert.Equal(t, 1, svc.runs)
}
