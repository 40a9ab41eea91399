package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/medishift/clinic-backend-go/internal/domain/clinic"
	"github.com/medishift/clinic-backend-go/internal/domain/department"
	"github.com/medishift/clinic-backend-go/internal/domain/employee"
	"github.com/medishift/clinic-backend-go/internal/domain/notification"
	"github.com/medishift/clinic-backend-go/internal/domain/shift"
	"github.com/medishift/clinic-backend-go/internal/pkg/dateutil"
)

type SchedulerServiceImpl struct {
	policy          shift.RotationPolicy
	assignmentRepo  shift.AssignmentRepository
	employeeRepo    employee.EmployeeRepository
	clinicRepo      clinic.ClinicRepository
	departmentRepo  department.DepartmentRepository
	notificationSvc notification.Service
}

func NewSchedulerService(
	policy shift.RotationPolicy,
	assignmentRepo shift.AssignmentRepository,
	employeeRepo employee.EmployeeRepository,
	clinicRepo clinic.ClinicRepository,
	departmentRepo department.DepartmentRepository,
	notificationSvc notification.Service,
) shift.SchedulerService {
	return &SchedulerServiceImpl{
		policy:          policy,
		assignmentRepo:  assignmentRepo,
		employeeRepo:    employeeRepo,
		clinicRepo:      clinicRepo,
		departmentRepo:  departmentRepo,
		notificationSvc: notificationSvc,
	}
}

// rotation is a circular selector over one category's pool. The cursor
// advances with every draw across the whole run, so successive sessions see
// successive employees instead of always the first N.
type rotation struct {
	pool   []employee.Employee
	cursor int
}

// draw returns up to n employees, cycling through the pool. A pool smaller
// than n yields each member once rather than repeating anyone within a
// single session slot; an empty pool yields nothing.
func (r *rotation) draw(n int) []employee.Employee {
	if len(r.pool) == 0 {
		return nil
	}
	if n > len(r.pool) {
		n = len(r.pool)
	}
	out := make([]employee.Employee, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, r.pool[r.cursor%len(r.pool)])
		r.cursor++
	}
	return out
}

func (s *SchedulerServiceImpl) GenerateMonthlySchedule(ctx context.Context, clinicID string, now time.Time) (shift.RunResult, error) {
	// First of the following month. AddDate would normalize end-of-month
	// triggers (Jan 31 + 1 month = Mar 2) into the wrong target.
	target := time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, now.Location())
	result := shift.RunResult{
		ClinicID: clinicID,
		Month:    int(target.Month()),
		Year:     target.Year(),
	}

	enabled, err := s.departmentRepo.ListShiftingEnabled(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to check shifting departments: %w", err)
	}
	if len(enabled) == 0 {
		slog.Info("Shift generation skipped, no department has shifting enabled", "clinic_id", clinicID)
		result.Skipped = true
		return result, nil
	}

	cl, err := s.clinicRepo.GetByID(ctx, clinicID)
	if err != nil {
		return result, err
	}

	first, last := dateutil.MonthRange(result.Year, time.Month(result.Month))

	// Full replace of the window, not a merge. A crash between the delete and
	// the inserts leaves a partial schedule; the next run replaces it anyway.
	deleted, err := s.assignmentRepo.DeletePendingInWindow(ctx, clinicID, first, last)
	if err != nil {
		return result, fmt.Errorf("failed to clear pending assignments: %w", err)
	}
	result.Deleted = deleted

	emps, err := s.employeeRepo.ListActiveByClinic(ctx, clinicID)
	if err != nil {
		return result, fmt.Errorf("failed to load clinic employees: %w", err)
	}

	rotations := make(map[employee.Category]*rotation)
	for _, cat := range employee.SchedulableCategories {
		rotations[cat] = &rotation{}
	}
	for _, emp := range emps {
		if r, ok := rotations[emp.Category]; ok {
			r.pool = append(r.pool, emp)
		}
	}

	for day := first; !day.After(last); day = day.AddDays(1) {
		for session, window := range s.policy.Sessions {
			start := day.At(window.StartHour, 0, time.UTC)
			end := day.At(window.EndHour, 0, time.UTC)
			if window.SpansNextDay() {
				end = day.AddDays(1).At(window.EndHour, 0, time.UTC)
			}

			for _, cat := range employee.SchedulableCategories {
				for _, emp := range rotations[cat].draw(s.policy.Headcounts[cat]) {
					a := shift.Assignment{
						ClinicID:   clinicID,
						EmployeeID: emp.ID,
						Date:       day,
						Session:    session,
						StartTime:  start,
						EndTime:    end,
						Category:   cat,
						Title: fmt.Sprintf("%s shift at %s, %s session %d",
							cat, cl.Name, day, session+1),
						Status: shift.StatusPending,
					}
					if err := s.assignmentRepo.Insert(ctx, a); err != nil {
						// Skip-and-continue: a partial schedule beats no
						// schedule, and the window is regenerated next run.
						slog.Warn("Failed to insert shift assignment",
							"clinic_id", clinicID, "employee_id", emp.ID,
							"date", day.String(), "session", session, "error", err)
						result.Failures = append(result.Failures, shift.SlotFailure{
							Date:       day,
							Session:    session,
							Category:   cat,
							EmployeeID: emp.ID,
							Err:        err.Error(),
						})
						continue
					}
					result.Inserted++
				}
			}
		}
	}

	slog.Info("Shift schedule generated",
		"clinic_id", clinicID, "month", result.Month, "year", result.Year,
		"deleted", result.Deleted, "inserted", result.Inserted, "failed", len(result.Failures))

	if s.notificationSvc != nil {
		s.notificationSvc.Publish(ctx, notification.TypeScheduleGenerated,
			"Shift schedule generated",
			fmt.Sprintf("Generated %d pending shifts for %s covering %02d/%d",
				result.Inserted, cl.Name, result.Month, result.Year))
	}

	return result, nil
}

func (s *SchedulerServiceImpl) GenerateForAllClinics(ctx context.Context, now time.Time) ([]shift.RunResult, error) {
	clinics, err := s.clinicRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clinics: %w", err)
	}

	results := make([]shift.RunResult, 0, len(clinics))
	for _, cl := range clinics {
		result, err := s.GenerateMonthlySchedule(ctx, cl.ID, now)
		if err != nil {
			slog.Error("Shift generation failed for clinic", "clinic_id", cl.ID, "error", err)
			continue
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *SchedulerServiceImpl) ListPending(ctx context.Context, clinicID string, month, year int) ([]shift.Assignment, error) {
	first, last := dateutil.MonthRange(year, time.Month(month))
	return s.assignmentRepo.ListPendingInWindow(ctx, clinicID, first, last)
}

func (s *SchedulerServiceImpl) Approve(ctx context.Context, assignmentID string) (shift.Assignment, error) {
	a, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return shift.Assignment{}, err
	}
	if a.Status != shift.StatusPending {
		return shift.Assignment{}, shift.ErrAssignmentNotPending
	}

	if err := s.assignmentRepo.UpdateStatus(ctx, assignmentID, shift.StatusScheduled); err != nil {
		return shift.Assignment{}, err
	}

	a.Status = shift.StatusScheduled
	return a, nil
}
