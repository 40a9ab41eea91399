package scheduler

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/medishift/clinic-backend-go/internal/domain/clinic"
	"github.com/medishift/clinic-backend-go/internal/domain/department"
	"github.com/medishift/clinic-backend-go/internal/domain/employee"
	"github.com/medishift/clinic-backend-go/internal/domain/shift"
	"github.com/medishift/clinic-backend-go/internal/pkg/dateutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ========== FAKES ==========

type fakeAssignmentRepo struct {
	assignments     []shift.Assignment
	failEmployeeIDs map[string]bool
	nextID          int
}

func (f *fakeAssignmentRepo) DeletePendingInWindow(_ context.Context, clinicID string, from, to dateutil.Date) (int64, error) {
	var kept []shift.Assignment
	var deleted int64
	for _, a := range f.assignments {
		inWindow := !a.Date.Before(from) && !a.Date.After(to)
		if a.ClinicID == clinicID && a.Status == shift.StatusPending && inWindow {
			deleted++
			continue
		}
		kept = append(kept, a)
	}
	f.assignments = kept
	return deleted, nil
}

func (f *fakeAssignmentRepo) Insert(_ context.Context, a shift.Assignment) error {
	if f.failEmployeeIDs[a.EmployeeID] {
		return errors.New("insert rejected")
	}
	f.nextID++
	a.ID = fmt.Sprintf("sa-%d", f.nextID)
	f.assignments = append(f.assignments, a)
	return nil
}

func (f *fakeAssignmentRepo) ListPendingInWindow(_ context.Context, clinicID string, from, to dateutil.Date) ([]shift.Assignment, error) {
	var out []shift.Assignment
	for _, a := range f.assignments {
		inWindow := !a.Date.Before(from) && !a.Date.After(to)
		if a.ClinicID == clinicID && a.Status == shift.StatusPending && inWindow {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssignmentRepo) GetByID(_ context.Context, id string) (shift.Assignment, error) {
	for _, a := range f.assignments {
		if a.ID == id {
			return a, nil
		}
	}
	return shift.Assignment{}, shift.ErrAssignmentNotFound
}

func (f *fakeAssignmentRepo) UpdateStatus(_ context.Context, id string, status shift.Status) error {
	for i, a := range f.assignments {
		if a.ID == id {
			f.assignments[i].Status = status
			return nil
		}
	}
	return shift.ErrAssignmentNotFound
}

type fakeClinicRepo struct {
	clinics map[string]clinic.Clinic
	// extraListed appear in List but fail GetByID, simulating a clinic
	// removed between the two lookups.
	extraListed []clinic.Clinic
}

func (f *fakeClinicRepo) GetByID(_ context.Context, id string) (clinic.Clinic, error) {
	c, ok := f.clinics[id]
	if !ok {
		return clinic.Clinic{}, clinic.ErrClinicNotFound
	}
	return c, nil
}

func (f *fakeClinicRepo) List(_ context.Context) ([]clinic.Clinic, error) {
	var out []clinic.Clinic
	for _, c := range f.clinics {
		out = append(out, c)
	}
	return append(out, f.extraListed...), nil
}

type fakeStaffRepo struct {
	byClinic map[string][]employee.Employee
}

func (f *fakeStaffRepo) GetByID(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeStaffRepo) ListActiveByClinic(_ context.Context, clinicID string) ([]employee.Employee, error) {
	return f.byClinic[clinicID], nil
}

type fakeDepartmentRepo struct {
	shifting []department.Department
}

func (f *fakeDepartmentRepo) List(_ context.Context) ([]department.Department, error) {
	return f.shifting, nil
}

func (f *fakeDepartmentRepo) ListShiftingEnabled(_ context.Context) ([]department.Department, error) {
	return f.shifting, nil
}

// ========== HELPERS ==========

const testClinicID = "clinic-1"

// runTime is 2024-03-25, so generation targets April 2024 (30 days).
var runTime = time.Date(2024, time.March, 25, 2, 0, 0, 0, time.UTC)

func staff(category employee.Category, n int) []employee.Employee {
	out := make([]employee.Employee, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, employee.Employee{
			ID:       fmt.Sprintf("%s-%d", category, i+1),
			FullName: fmt.Sprintf("%s %d", category, i+1),
			Category: category,
			Status:   employee.StatusActive,
		})
	}
	return out
}

func fullRoster() []employee.Employee {
	var roster []employee.Employee
	roster = append(roster, staff(employee.CategoryDoctor, 4)...)
	roster = append(roster, staff(employee.CategoryNurse, 4)...)
	roster = append(roster, staff(employee.CategoryReceptionist, 2)...)
	return roster
}

type schedulerFixture struct {
	svc            shift.SchedulerService
	assignmentRepo *fakeAssignmentRepo
	clinicRepo     *fakeClinicRepo
	staffRepo      *fakeStaffRepo
	departmentRepo *fakeDepartmentRepo
}

func newSchedulerFixture(roster []employee.Employee) *schedulerFixture {
	f := &schedulerFixture{
		assignmentRepo: &fakeAssignmentRepo{},
		clinicRepo: &fakeClinicRepo{clinics: map[string]clinic.Clinic{
			testClinicID: {ID: testClinicID, Name: "Downtown Clinic"},
		}},
		staffRepo: &fakeStaffRepo{byClinic: map[string][]employee.Employee{
			testClinicID: roster,
		}},
		departmentRepo: &fakeDepartmentRepo{shifting: []department.Department{
			{ID: "dept-1", Name: "General Practice", ShiftingEnabled: true},
		}},
	}
	f.svc = NewSchedulerService(
		shift.DefaultRotationPolicy(),
		f.assignmentRepo,
		f.staffRepo,
		f.clinicRepo,
		f.departmentRepo,
		nil,
	)
	return f
}

// ========== GENERATION ==========

func TestGenerateMonthlyScheduleFullMonth(t *testing.T) {
	f := newSchedulerFixture(fullRoster())

	result, err := f.svc.GenerateMonthlySchedule(context.Background(), testClinicID, runTime)
	require.NoError(t, err)

	assert.Equal(t, 4, result.Month)
	assert.Equal(t, 2024, result.Year)
	assert.False(t, result.Skipped)
	assert.Empty(t, result.Failures)

	// 30 days x 2 sessions x (2 doctors + 2 nurses + 1 receptionist)
	assert.Equal(t, 300, result.Inserted)
	assert.Len(t, f.assignmentRepo.assignments, 300)

	for _, a := range f.assignmentRepo.assignments {
		assert.Equal(t, shift.StatusPending, a.Status)
		assert.Equal(t, testClinicID, a.ClinicID)
		assert.Equal(t, time.April, a.Date.Month)
	}
}

func TestGenerateMonthlyScheduleMonthEndTrigger(t *testing.T) {
	f := newSchedulerFixture(fullRoster())

	// A day-31 trigger still targets the immediately following month, even
	// though February has no day 31.
	result, err := f.svc.GenerateMonthlySchedule(context.Background(), testClinicID,
		time.Date(2024, time.January, 31, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Month)
	assert.Equal(t, 2024, result.Year)
	// 29 leap-February days x 2 sessions x 5 slots
	assert.Equal(t, 290, result.Inserted)
	for _, a := range f.assignmentRepo.assignments {
		assert.Equal(t, time.February, a.Date.Month)
	}
}

func TestGenerateMonthlyScheduleYearRollover(t *testing.T) {
	f := newSchedulerFixture(fullRoster())

	result, err := f.svc.GenerateMonthlySchedule(context.Background(), testClinicID,
		time.Date(2024, time.December, 31, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Month)
	assert.Equal(t, 2025, result.Year)
}

func TestGenerateMonthlyScheduleRotationIsFair(t *testing.T) {
	f := newSchedulerFixture(fullRoster())

	_, err := f.svc.GenerateMonthlySchedule(context.Background(), testClinicID, runTime)
	require.NoError(t, err)

	// 60 sessions x 2 doctor slots spread over 4 doctors is exactly 30 each.
	counts := make(map[string]int)
	for _, a := range f.assignmentRepo.assignments {
		if a.Category == employee.CategoryDoctor {
			counts[a.EmployeeID]++
		}
	}
	require.Len(t, counts, 4)
	for id, n := range counts {
		assert.Equal(t, 30, n, "doctor %s", id)
	}
}

func TestGenerateMonthlyScheduleEveningSessionSpansNextDay(t *testing.T) {
	f := newSchedulerFixture(fullRoster())

	_, err := f.svc.GenerateMonthlySchedule(context.Background(), testClinicID, runTime)
	require.NoError(t, err)

	for _, a := range f.assignmentRepo.assignments {
		if a.Session != 1 {
			continue
		}
		assert.Equal(t, 17, a.StartTime.Hour())
		assert.Equal(t, 1, a.EndTime.Hour())
		assert.Equal(t, a.StartTime.AddDate(0, 0, 1).Day(), a.EndTime.Day())
	}
}

func TestGenerateMonthlyScheduleSmallPoolNoRepeatsInSlot(t *testing.T) {
	roster := staff(employee.CategoryDoctor, 1)
	roster = append(roster, staff(employee.CategoryNurse, 4)...)
	roster = append(roster, staff(employee.CategoryReceptionist, 2)...)
	f := newSchedulerFixture(roster)

	result, err := f.svc.GenerateMonthlySchedule(context.Background(), testClinicID, runTime)
	require.NoError(t, err)

	// The lone doctor covers one slot per session instead of both.
	doctorCount := 0
	for _, a := range f.assignmentRepo.assignments {
		if a.Category == employee.CategoryDoctor {
			doctorCount++
		}
	}
	assert.Equal(t, 60, doctorCount)
	// 60 doctor + 120 nurse + 60 receptionist slots
	assert.Equal(t, 240, result.Inserted)
}

func TestGenerateMonthlyScheduleEmptyCategoryLeavesSlotsUnfilled(t *testing.T) {
	roster := staff(employee.CategoryNurse, 4)
	roster = append(roster, staff(employee.CategoryReceptionist, 2)...)
	f := newSchedulerFixture(roster)

	result, err := f.svc.GenerateMonthlySchedule(context.Background(), testClinicID, runTime)
	require.NoError(t, err)

	for _, a := range f.assignmentRepo.assignments {
		assert.NotEqual(t, employee.CategoryDoctor, a.Category)
	}
	// 30 days x 2 sessions x (2 nurses + 1 receptionist)
	assert.Equal(t, 180, result.Inserted)
}

func TestGenerateMonthlyScheduleSkippedWhenNoShiftingDepartment(t *testing.T) {
	f := newSchedulerFixture(fullRoster())
	f.departmentRepo.shifting = nil

	result, err := f.svc.GenerateMonthlySchedule(context.Background(), testClinicID, runTime)
	require.NoError(t, err)

	assert.True(t, result.Skipped)
	assert.Zero(t, result.Inserted)
	assert.Empty(t, f.assignmentRepo.assignments)
}

func TestGenerateMonthlyScheduleReplacesPendingWindow(t *testing.T) {
	f := newSchedulerFixture(fullRoster())

	first, err := f.svc.GenerateMonthlySchedule(context.Background(), testClinicID, runTime)
	require.NoError(t, err)
	require.Equal(t, 300, first.Inserted)

	// An approved row in the window must survive the re-run.
	approvedID := f.assignmentRepo.assignments[0].ID
	require.NoError(t, f.assignmentRepo.UpdateStatus(context.Background(), approvedID, shift.StatusScheduled))

	second, err := f.svc.GenerateMonthlySchedule(context.Background(), testClinicID, runTime)
	require.NoError(t, err)

	assert.Equal(t, int64(299), second.Deleted)
	assert.Equal(t, 300, second.Inserted)
	assert.Len(t, f.assignmentRepo.assignments, 301)

	kept, err := f.assignmentRepo.GetByID(context.Background(), approvedID)
	require.NoError(t, err)
	assert.Equal(t, shift.StatusScheduled, kept.Status)
}

func TestGenerateMonthlySchedulePartialFailure(t *testing.T) {
	f := newSchedulerFixture(fullRoster())
	f.assignmentRepo.failEmployeeIDs = map[string]bool{"doctor-1": true}

	result, err := f.svc.GenerateMonthlySchedule(context.Background(), testClinicID, runTime)
	require.NoError(t, err)

	assert.Equal(t, 30, len(result.Failures))
	assert.Equal(t, 270, result.Inserted)
	for _, failure := range result.Failures {
		assert.Equal(t, "doctor-1", failure.EmployeeID)
		assert.Equal(t, employee.CategoryDoctor, failure.Category)
		assert.NotEmpty(t, failure.Err)
	}
}

func TestGenerateMonthlyScheduleUnknownClinic(t *testing.T) {
	f := newSchedulerFixture(fullRoster())

	_, err := f.svc.GenerateMonthlySchedule(context.Background(), "clinic-404", runTime)
	assert.ErrorIs(t, err, clinic.ErrClinicNotFound)
}

func TestGenerateForAllClinicsContinuesPastFailure(t *testing.T) {
	f := newSchedulerFixture(fullRoster())
	f.clinicRepo.clinics["clinic-2"] = clinic.Clinic{ID: "clinic-2", Name: "Uptown Clinic"}
	f.staffRepo.byClinic["clinic-2"] = staff(employee.CategoryDoctor, 2)
	f.clinicRepo.extraListed = []clinic.Clinic{{ID: "clinic-ghost", Name: "Ghost Clinic"}}

	results, err := f.svc.GenerateForAllClinics(context.Background(), runTime)
	require.NoError(t, err)

	// The ghost clinic's failure is logged and skipped, the other two run.
	require.Len(t, results, 2)
	for _, result := range results {
		assert.NotEqual(t, "clinic-ghost", result.ClinicID)
	}
}

// ========== PENDING / APPROVE ==========

func TestListPending(t *testing.T) {
	f := newSchedulerFixture(fullRoster())

	_, err := f.svc.GenerateMonthlySchedule(context.Background(), testClinicID, runTime)
	require.NoError(t, err)

	pending, err := f.svc.ListPending(context.Background(), testClinicID, 4, 2024)
	require.NoError(t, err)
	assert.Len(t, pending, 300)

	empty, err := f.svc.ListPending(context.Background(), testClinicID, 5, 2024)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestApprove(t *testing.T) {
	f := newSchedulerFixture(fullRoster())

	_, err := f.svc.GenerateMonthlySchedule(context.Background(), testClinicID, runTime)
	require.NoError(t, err)

	id := f.assignmentRepo.assignments[0].ID
	approved, err := f.svc.Approve(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, shift.StatusScheduled, approved.Status)

	// A second approval hits a non-pending row.
	_, err = f.svc.Approve(context.Background(), id)
	assert.ErrorIs(t, err, shift.ErrAssignmentNotPending)
}

func TestApproveMissingAssignment(t *testing.T) {
	f := newSchedulerFixture(fullRoster())

	_, err := f.svc.Approve(context.Background(), "sa-404")
	assert.ErrorIs(t, err, shift.ErrAssignmentNotFound)
}
