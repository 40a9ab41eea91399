package payroll

import (
	"github.com/medishift/clinic-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CalculateRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

func (r CalculateRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}
	if r.Year < 2000 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year must be 2000 or later"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SetStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r SetStatusRequest) Validate() error {
	switch Status(r.Status) {
	case StatusPending, StatusPaid:
		return nil
	}
	return ErrInvalidStatus
}

// Filter narrows list and stats queries. Nil fields match everything.
type Filter struct {
	Month      *int
	Year       *int
	Department *string
}

// LeaveBreakdown is the per-type day count that fed a calculation.
type LeaveBreakdown struct {
	PaidDays    int `json:"paid_days"`
	UnpaidDays  int `json:"unpaid_days"`
	MedicalDays int `json:"medical_days"`
}

// RatesUsed echoes the policy constants applied, for audit display.
type RatesUsed struct {
	EmployeeRate        decimal.Decimal `json:"employee_rate"`
	EmployerRate        decimal.Decimal `json:"employer_rate"`
	MinimumMonthlyHours float64         `json:"minimum_monthly_hours"`
}

// BreakdownResponse is the full computation trail returned by Calculate and
// Recalculate. The breakdown is part of the contract, not incidental logging.
type BreakdownResponse struct {
	Record               RecordResponse  `json:"record"`
	WorkingDays          int             `json:"working_days"`
	DailyRate            decimal.Decimal `json:"daily_rate"`
	HourlyRate           decimal.Decimal `json:"hourly_rate"`
	HoursWorked          float64         `json:"hours_worked"`
	AdjustedMinimumHours float64         `json:"adjusted_minimum_hours"`
	Leave                LeaveBreakdown  `json:"leave"`
	Deductions           []Deduction     `json:"deductions"`
	ActualSalary         decimal.Decimal `json:"actual_salary"`
	Rates                RatesUsed       `json:"rates"`
}

type RecordResponse struct {
	ID                   string          `json:"id"`
	EmployeeID           string          `json:"employee_id"`
	EmployeeName         string          `json:"employee_name,omitempty"`
	DepartmentName       string          `json:"department_name,omitempty"`
	Month                int             `json:"month"`
	Year                 int             `json:"year"`
	BaseSalary           decimal.Decimal `json:"base_salary"`
	HoursWorked          float64         `json:"hours_worked"`
	Deductions           []Deduction     `json:"deductions"`
	EmployeeContribution decimal.Decimal `json:"employee_contribution"`
	EmployerContribution decimal.Decimal `json:"employer_contribution"`
	NetSalary            decimal.Decimal `json:"net_salary"`
	Status               string          `json:"status"`
}

// AttendanceSummary is the per-status day count shown on a payslip.
type AttendanceSummary struct {
	DaysPresent int `json:"days_present"`
	DaysLate    int `json:"days_late"`
	DaysAbsent  int `json:"days_absent"`
}

type PayslipAttendanceRow struct {
	Date     string  `json:"date"`
	ClockIn  *string `json:"clock_in,omitempty"`
	ClockOut *string `json:"clock_out,omitempty"`
	Status   string  `json:"status"`
	Hours    float64 `json:"hours"`
}

type PayslipLeaveRow struct {
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Days      int    `json:"days"`
}

// PayslipResponse is a read-only assembly of a record with its supporting
// month of attendance and leave. Sub-sections are omitted, not fatal, when
// their lookups fail.
type PayslipResponse struct {
	Record     RecordResponse         `json:"record"`
	Attendance []PayslipAttendanceRow `json:"attendance,omitempty"`
	Summary    *AttendanceSummary     `json:"attendance_summary,omitempty"`
	Leaves     []PayslipLeaveRow      `json:"leaves,omitempty"`
	Deductions []Deduction            `json:"deductions"`
}

type StatsResponse struct {
	Month       *int              `json:"month,omitempty"`
	Year        *int              `json:"year,omitempty"`
	Departments []DepartmentStats `json:"departments"`
}
