package payroll

import (
	"github.com/medishift/clinic-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

// Policy carries every payroll constant as injected configuration so tests
// can vary rates and thresholds per case instead of patching globals.
type Policy struct {
	// EmployeeRate and EmployerRate are the CPF-style contribution fractions
	// applied to the post-deduction salary.
	EmployeeRate decimal.Decimal
	EmployerRate decimal.Decimal

	// MinimumMonthlyHours is the standard hour threshold a full month of
	// attendance is expected to reach before leave credits.
	MinimumMonthlyHours float64

	// DefaultBaseSalaries resolves a base salary for employees whose own
	// record has none, keyed by role category.
	DefaultBaseSalaries map[employee.Category]decimal.Decimal
}

// DefaultPolicy mirrors the statutory reference rates: employee 20%,
// employer 17%, 176-hour month.
func DefaultPolicy() Policy {
	return Policy{
		EmployeeRate:        decimal.NewFromFloat(0.20),
		EmployerRate:        decimal.NewFromFloat(0.17),
		MinimumMonthlyHours: 176,
		DefaultBaseSalaries: map[employee.Category]decimal.Decimal{
			employee.CategoryDoctor:       decimal.NewFromInt(8000),
			employee.CategoryNurse:        decimal.NewFromInt(3500),
			employee.CategoryReceptionist: decimal.NewFromInt(2200),
		},
	}
}

// ResolveBaseSalary returns the employee's own base salary when set and
// non-zero, else the category default. A zero result on both paths means no
// salary is defined.
func (p Policy) ResolveBaseSalary(emp employee.Employee) decimal.Decimal {
	if emp.BaseSalary != nil && !emp.BaseSalary.IsZero() {
		return *emp.BaseSalary
	}
	return p.DefaultBaseSalaries[emp.Category]
}
