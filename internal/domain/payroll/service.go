package payroll

import "context"

type PayrollService interface {
	Calculate(ctx context.Context, req CalculateRequest) (BreakdownResponse, error)
	Recalculate(ctx context.Context, req CalculateRequest) (BreakdownResponse, error)
	GetForEmployee(ctx context.Context, employeeID string, month, year *int) ([]RecordResponse, error)
	GetAll(ctx context.Context, filter Filter) ([]RecordResponse, error)
	GetStats(ctx context.Context, filter Filter) (StatsResponse, error)
	SetStatus(ctx context.Context, req SetStatusRequest) error
	GetPayslip(ctx context.Context, payrollID string) (PayslipResponse, error)
}
