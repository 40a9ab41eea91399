package payroll

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/medishift/clinic-backend-go/internal/domain/attendance"
	"github.com/medishift/clinic-backend-go/internal/domain/employee"
	"github.com/medishift/clinic-backend-go/internal/domain/leave"
	"github.com/medishift/clinic-backend-go/internal/domain/notification"
	"github.com/medishift/clinic-backend-go/internal/domain/payroll"
	"github.com/medishift/clinic-backend-go/internal/pkg/dateutil"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	policy          payroll.Policy
	payrollRepo     payroll.PayrollRepository
	employeeRepo    employee.EmployeeRepository
	attendanceRepo  attendance.AttendanceRepository
	leaveRepo       leave.LeaveRepository
	notificationSvc notification.Service
}

func NewPayrollService(
	policy payroll.Policy,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	notificationSvc notification.Service,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		policy:          policy,
		payrollRepo:     payrollRepo,
		employeeRepo:    employeeRepo,
		attendanceRepo:  attendanceRepo,
		leaveRepo:       leaveRepo,
		notificationSvc: notificationSvc,
	}
}

// computation is the full derivation trail for one employee-month.
type computation struct {
	baseSalary           decimal.Decimal
	workingDays          int
	dailyRate            decimal.Decimal
	hourlyRate           decimal.Decimal
	hoursWorked          float64
	adjustedMinimumHours float64
	leaveDays            payroll.LeaveBreakdown
	deductions           []payroll.Deduction
	actualSalary         decimal.Decimal
	employeeContribution decimal.Decimal
	employerContribution decimal.Decimal
	netSalary            decimal.Decimal
}

// ========== CALCULATE / RECALCULATE ==========

func (s *PayrollServiceImpl) Calculate(ctx context.Context, req payroll.CalculateRequest) (payroll.BreakdownResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.BreakdownResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.BreakdownResponse{}, err
	}

	base := s.policy.ResolveBaseSalary(emp)
	if base.IsZero() {
		return payroll.BreakdownResponse{}, payroll.ErrNoBaseSalary
	}

	// Duplicate calculation is a conflict, not a merge. The check-then-insert
	// is not atomic; the unique (employee, month, year) index is the backstop.
	_, err = s.payrollRepo.GetByEmployeePeriod(ctx, req.EmployeeID, req.Month, req.Year)
	if err == nil {
		return payroll.BreakdownResponse{}, payroll.ErrPayrollRecordAlreadyExists
	}
	if !errors.Is(err, payroll.ErrPayrollRecordNotFound) {
		return payroll.BreakdownResponse{}, err
	}

	comp, err := s.compute(ctx, emp.ID, base, req.Month, req.Year)
	if err != nil {
		return payroll.BreakdownResponse{}, err
	}

	record := payroll.PayrollRecord{
		EmployeeID:           emp.ID,
		Month:                req.Month,
		Year:                 req.Year,
		BaseSalary:           comp.baseSalary,
		HoursWorked:          comp.hoursWorked,
		PaidLeaveDays:        comp.leaveDays.PaidDays,
		UnpaidLeaveDays:      comp.leaveDays.UnpaidDays,
		MedicalLeaveDays:     comp.leaveDays.MedicalDays,
		Deductions:           comp.deductions,
		EmployeeContribution: comp.employeeContribution,
		EmployerContribution: comp.employerContribution,
		NetSalary:            comp.netSalary,
		Status:               payroll.StatusPending,
	}

	created, err := s.payrollRepo.Create(ctx, record)
	if err != nil {
		return payroll.BreakdownResponse{}, err
	}

	if s.notificationSvc != nil {
		s.notificationSvc.Publish(ctx, notification.TypePayrollCalculated,
			"Payroll calculated",
			fmt.Sprintf("Payroll for %s %d/%d calculated, net %s", emp.FullName, req.Month, req.Year, comp.netSalary.StringFixed(2)))
	}

	return buildBreakdown(created, emp, comp, s.policy), nil
}

func (s *PayrollServiceImpl) Recalculate(ctx context.Context, req payroll.CalculateRequest) (payroll.BreakdownResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.BreakdownResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.BreakdownResponse{}, err
	}

	existing, err := s.payrollRepo.GetByEmployeePeriod(ctx, req.EmployeeID, req.Month, req.Year)
	if err != nil {
		return payroll.BreakdownResponse{}, err
	}

	base := s.policy.ResolveBaseSalary(emp)
	if base.IsZero() {
		return payroll.BreakdownResponse{}, payroll.ErrNoBaseSalary
	}

	comp, err := s.compute(ctx, emp.ID, base, req.Month, req.Year)
	if err != nil {
		return payroll.BreakdownResponse{}, err
	}

	existing.BaseSalary = comp.baseSalary
	existing.HoursWorked = comp.hoursWorked
	existing.PaidLeaveDays = comp.leaveDays.PaidDays
	existing.UnpaidLeaveDays = comp.leaveDays.UnpaidDays
	existing.MedicalLeaveDays = comp.leaveDays.MedicalDays
	existing.Deductions = comp.deductions
	existing.EmployeeContribution = comp.employeeContribution
	existing.EmployerContribution = comp.employerContribution
	existing.NetSalary = comp.netSalary

	updated, err := s.payrollRepo.UpdateComputed(ctx, existing)
	if err != nil {
		return payroll.BreakdownResponse{}, err
	}

	return buildBreakdown(updated, emp, comp, s.policy), nil
}

// compute derives the full salary breakdown for one employee-month. Hours
// are summed at full precision; each currency figure is rounded to two
// decimal places at the point it becomes a breakdown line.
func (s *PayrollServiceImpl) compute(ctx context.Context, employeeID string, base decimal.Decimal, month, year int) (computation, error) {
	attendances, err := s.attendanceRepo.ListForEmployeeMonth(ctx, employeeID, month, year)
	if err != nil {
		return computation{}, fmt.Errorf("failed to load attendance: %w", err)
	}

	hoursWorked := 0.0
	for _, a := range attendances {
		if a.Status == attendance.StatusPresent {
			hoursWorked += a.WorkedHours()
		}
	}

	leaves, err := s.leaveRepo.ListApprovedStartingIn(ctx, employeeID, month, year)
	if err != nil {
		return computation{}, fmt.Errorf("failed to load leave requests: %w", err)
	}

	var days payroll.LeaveBreakdown
	for _, l := range leaves {
		switch l.Type {
		case leave.TypePaid:
			days.PaidDays += l.Days()
		case leave.TypeUnpaid:
			days.UnpaidDays += l.Days()
		case leave.TypeMedical:
			days.MedicalDays += l.Days()
		}
	}

	workingDays := dateutil.WorkingDays(year, time.Month(month))
	threshold := s.policy.MinimumMonthlyHours
	dailyRate := base.Div(decimal.NewFromInt(int64(workingDays)))
	hourlyRate := base.Div(decimal.NewFromFloat(threshold))
	hoursPerWorkingDay := threshold / float64(workingDays)

	// Approved paid and medical leave credits hours against the threshold so
	// that taking leave does not trigger the hours-short deduction.
	adjustedMinimum := threshold + float64(days.PaidDays+days.MedicalDays)*hoursPerWorkingDay

	deductions := []payroll.Deduction{
		{
			Type:   payroll.DeductionUnpaidLeave,
			Amount: dailyRate.Mul(decimal.NewFromInt(int64(days.UnpaidDays))).Round(2),
			Details: fmt.Sprintf("%d unpaid leave day(s) x %s daily rate",
				days.UnpaidDays, dailyRate.StringFixed(2)),
		},
	}

	if hoursWorked < adjustedMinimum {
		shortfall := adjustedMinimum - hoursWorked
		deductions = append(deductions, payroll.Deduction{
			Type:   payroll.DeductionHoursShort,
			Amount: hourlyRate.Mul(decimal.NewFromFloat(shortfall)).Round(2),
			Details: fmt.Sprintf("worked %.2f of %.2f adjusted minimum hours, short %.2f",
				hoursWorked, adjustedMinimum, shortfall),
		})
	}

	actual := base
	for _, d := range deductions {
		actual = actual.Sub(d.Amount)
	}

	employeeContribution := actual.Mul(s.policy.EmployeeRate).Round(2)
	employerContribution := actual.Mul(s.policy.EmployerRate).Round(2)
	netSalary := actual.Sub(employeeContribution)

	return computation{
		baseSalary:           base,
		workingDays:          workingDays,
		dailyRate:            dailyRate,
		hourlyRate:           hourlyRate,
		hoursWorked:          hoursWorked,
		adjustedMinimumHours: adjustedMinimum,
		leaveDays:            days,
		deductions:           deductions,
		actualSalary:         actual,
		employeeContribution: employeeContribution,
		employerContribution: employerContribution,
		netSalary:            netSalary,
	}, nil
}

// ========== READS ==========

func (s *PayrollServiceImpl) GetForEmployee(ctx context.Context, employeeID string, month, year *int) ([]payroll.RecordResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	records, err := s.payrollRepo.ListByEmployee(ctx, employeeID, month, year)
	if err != nil {
		return nil, err
	}

	return mapToRecordResponses(records), nil
}

func (s *PayrollServiceImpl) GetAll(ctx context.Context, filter payroll.Filter) ([]payroll.RecordResponse, error) {
	records, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return mapToRecordResponses(records), nil
}

func (s *PayrollServiceImpl) GetStats(ctx context.Context, filter payroll.Filter) (payroll.StatsResponse, error) {
	stats, err := s.payrollRepo.GetStats(ctx, filter)
	if err != nil {
		return payroll.StatsResponse{}, err
	}

	return payroll.StatsResponse{
		Month:       filter.Month,
		Year:        filter.Year,
		Departments: stats,
	}, nil
}

func (s *PayrollServiceImpl) SetStatus(ctx context.Context, req payroll.SetStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.payrollRepo.UpdateStatus(ctx, req.ID, payroll.Status(req.Status))
}

// GetPayslip assembles the stored record with its month of attendance and
// approved leave. This is a reporting view: lookup failures on the
// sub-sections degrade to omissions rather than failing the payslip.
func (s *PayrollServiceImpl) GetPayslip(ctx context.Context, payrollID string) (payroll.PayslipResponse, error) {
	record, err := s.payrollRepo.GetByID(ctx, payrollID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	resp := payroll.PayslipResponse{
		Record:     mapToRecordResponse(record),
		Deductions: record.Deductions,
	}

	attendances, err := s.attendanceRepo.ListForEmployeeMonth(ctx, record.EmployeeID, record.Month, record.Year)
	if err == nil {
		summary := payroll.AttendanceSummary{}
		for _, a := range attendances {
			switch a.Status {
			case attendance.StatusPresent:
				summary.DaysPresent++
			case attendance.StatusLate:
				summary.DaysLate++
			case attendance.StatusAbsent:
				summary.DaysAbsent++
			}
			resp.Attendance = append(resp.Attendance, mapToAttendanceRow(a))
		}
		resp.Summary = &summary
	}

	leaves, err := s.leaveRepo.ListApprovedStartingIn(ctx, record.EmployeeID, record.Month, record.Year)
	if err == nil {
		for _, l := range leaves {
			resp.Leaves = append(resp.Leaves, payroll.PayslipLeaveRow{
				Type:      string(l.Type),
				StartDate: l.StartDate.String(),
				EndDate:   l.EndDate.String(),
				Days:      l.Days(),
			})
		}
	}

	return resp, nil
}

// ========== HELPERS ==========

func buildBreakdown(record payroll.PayrollRecord, emp employee.Employee, comp computation, policy payroll.Policy) payroll.BreakdownResponse {
	resp := mapToRecordResponse(record)
	resp.EmployeeName = emp.FullName

	return payroll.BreakdownResponse{
		Record:               resp,
		WorkingDays:          comp.workingDays,
		DailyRate:            comp.dailyRate.Round(2),
		HourlyRate:           comp.hourlyRate.Round(2),
		HoursWorked:          roundHours(comp.hoursWorked),
		AdjustedMinimumHours: roundHours(comp.adjustedMinimumHours),
		Leave:                comp.leaveDays,
		Deductions:           comp.deductions,
		ActualSalary:         comp.actualSalary,
		Rates: payroll.RatesUsed{
			EmployeeRate:        policy.EmployeeRate,
			EmployerRate:        policy.EmployerRate,
			MinimumMonthlyHours: policy.MinimumMonthlyHours,
		},
	}
}

func mapToRecordResponse(r payroll.PayrollRecord) payroll.RecordResponse {
	employeeName := ""
	departmentName := ""
	if r.EmployeeName != nil {
		employeeName = *r.EmployeeName
	}
	if r.DepartmentName != nil {
		departmentName = *r.DepartmentName
	}

	return payroll.RecordResponse{
		ID:                   r.ID,
		EmployeeID:           r.EmployeeID,
		EmployeeName:         employeeName,
		DepartmentName:       departmentName,
		Month:                r.Month,
		Year:                 r.Year,
		BaseSalary:           r.BaseSalary,
		HoursWorked:          roundHours(r.HoursWorked),
		Deductions:           r.Deductions,
		EmployeeContribution: r.EmployeeContribution,
		EmployerContribution: r.EmployerContribution,
		NetSalary:            r.NetSalary,
		Status:               string(r.Status),
	}
}

func mapToRecordResponses(records []payroll.PayrollRecord) []payroll.RecordResponse {
	result := make([]payroll.RecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapToRecordResponse(r))
	}
	return result
}

func mapToAttendanceRow(a attendance.Attendance) payroll.PayslipAttendanceRow {
	row := payroll.PayslipAttendanceRow{
		Date:   a.Date.String(),
		Status: string(a.Status),
		Hours:  roundHours(a.WorkedHours()),
	}
	if a.ClockIn != nil {
		str := a.ClockIn.Format(time.RFC3339)
		row.ClockIn = &str
	}
	if a.ClockOut != nil {
		str := a.ClockOut.Format(time.RFC3339)
		row.ClockOut = &str
	}
	return row
}

// roundHours is display rounding only; sums stay at full precision.
func roundHours(h float64) float64 {
	return math.Round(h*100) / 100
}
