package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// DeductionType labels one line of the deduction breakdown.
type DeductionType string

const (
	DeductionUnpaidLeave DeductionType = "unpaid_leave"
	DeductionHoursShort  DeductionType = "hours_short"
)

// Deduction is one line of the salary breakdown. Amount is rounded to two
// decimal places at the point the line is computed; Details is the
// human-readable explanation shown on the payslip.
type Deduction struct {
	Type    DeductionType   `json:"type"`
	Amount  decimal.Decimal `json:"amount"`
	Details string          `json:"details"`
}

// PayrollRecord is the persisted result of one calculation, unique per
// (employee, month, year). It is a snapshot: later base-salary or attendance
// changes do not flow into it unless Recalculate is called explicitly.
type PayrollRecord struct {
	ID                   string
	EmployeeID           string
	Month                int
	Year                 int
	BaseSalary           decimal.Decimal
	HoursWorked          float64
	PaidLeaveDays        int
	UnpaidLeaveDays      int
	MedicalLeaveDays     int
	Deductions           []Deduction
	EmployeeContribution decimal.Decimal
	EmployerContribution decimal.Decimal
	NetSalary            decimal.Decimal
	Status               Status
	CreatedAt            time.Time
	UpdatedAt            time.Time

	// Joined fields
	EmployeeName   *string
	DepartmentName *string
}

// ActualSalary is the base salary after deductions, before contributions.
func (r PayrollRecord) ActualSalary() decimal.Decimal {
	actual := r.BaseSalary
	for _, d := range r.Deductions {
		actual = actual.Sub(d.Amount)
	}
	return actual
}

// DepartmentStats is one row of the aggregated payroll summary.
type DepartmentStats struct {
	Department      string
	RecordCount     int
	TotalBaseSalary decimal.Decimal
	TotalNetSalary  decimal.Decimal
	PaidCount       int
	PendingCount    int
}
