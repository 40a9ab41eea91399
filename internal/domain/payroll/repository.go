package payroll

import "context"

type PayrollRepository interface {
	Create(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	GetByID(ctx context.Context, id string) (PayrollRecord, error)
	GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (PayrollRecord, error)
	ListByEmployee(ctx context.Context, employeeID string, month, year *int) ([]PayrollRecord, error)
	List(ctx context.Context, filter Filter) ([]PayrollRecord, error)
	// UpdateComputed overwrites the computed fields of an existing record in
	// place; only Recalculate uses it.
	UpdateComputed(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	GetStats(ctx context.Context, filter Filter) ([]DepartmentStats, error)
}
