package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/medishift/clinic-backend-go/internal/domain/payroll"
	"github.com/medishift/clinic-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `
	p.id, p.employee_id, p.month, p.year, p.base_salary, p.hours_worked,
	p.paid_leave_days, p.unpaid_leave_days, p.medical_leave_days, p.deductions,
	p.employee_contribution, p.employer_contribution, p.net_salary, p.status,
	p.created_at, p.updated_at, e.full_name, d.name
`

func (r *payrollRepository) Create(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	deductions, err := json.Marshal(record.Deductions)
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to encode deductions: %w", err)
	}

	query := `
		INSERT INTO payroll_records (
			id, employee_id, month, year, base_salary, hours_worked,
			paid_leave_days, unpaid_leave_days, medical_leave_days, deductions,
			employee_contribution, employer_contribution, net_salary, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at
	`

	record.ID = uuid.NewString()
	err = q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.Month, record.Year,
		record.BaseSalary, record.HoursWorked,
		record.PaidLeaveDays, record.UnpaidLeaveDays, record.MedicalLeaveDays, deductions,
		record.EmployeeContribution, record.EmployerContribution, record.NetSalary, record.Status,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		// uk_payroll_employee_period is the unique (employee_id, month, year)
		// index backing the one-record-per-period rule.
		if strings.Contains(err.Error(), "uk_payroll_employee_period") {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordAlreadyExists
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return record, nil
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payroll_records p
		JOIN employees e ON p.employee_id = e.id
		JOIN departments d ON e.department_id = d.id
		WHERE p.id = $1
	`, payrollColumns)

	record, err := scanPayrollRow(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return record, nil
}

func (r *payrollRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payroll_records p
		JOIN employees e ON p.employee_id = e.id
		JOIN departments d ON e.department_id = d.id
		WHERE p.employee_id = $1 AND p.month = $2 AND p.year = $3
	`, payrollColumns)

	record, err := scanPayrollRow(q.QueryRow(ctx, query, employeeID, month, year))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return record, nil
}

func (r *payrollRepository) ListByEmployee(ctx context.Context, employeeID string, month, year *int) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payroll_records p
		JOIN employees e ON p.employee_id = e.id
		JOIN departments d ON e.department_id = d.id
		WHERE p.employee_id = $1
	`, payrollColumns)
	args := []interface{}{employeeID}
	argIdx := 2

	if month != nil {
		query += fmt.Sprintf(" AND p.month = $%d", argIdx)
		args = append(args, *month)
		argIdx++
	}
	if year != nil {
		query += fmt.Sprintf(" AND p.year = $%d", argIdx)
		args = append(args, *year)
		argIdx++
	}
	query += " ORDER BY p.year DESC, p.month DESC"

	return r.queryPayrollRows(ctx, q, query, args)
}

func (r *payrollRepository) List(ctx context.Context, filter payroll.Filter) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payroll_records p
		JOIN employees e ON p.employee_id = e.id
		JOIN departments d ON e.department_id = d.id
		WHERE 1=1
	`, payrollColumns)
	var args []interface{}
	argIdx := 1

	if filter.Month != nil {
		query += fmt.Sprintf(" AND p.month = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Year != nil {
		query += fmt.Sprintf(" AND p.year = $%d", argIdx)
		args = append(args, *filter.Year)
		argIdx++
	}
	if filter.Department != nil {
		query += fmt.Sprintf(" AND d.name = $%d", argIdx)
		args = append(args, *filter.Department)
		argIdx++
	}
	query += " ORDER BY p.year DESC, p.month DESC, e.full_name"

	return r.queryPayrollRows(ctx, q, query, args)
}

func (r *payrollRepository) UpdateComputed(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	deductions, err := json.Marshal(record.Deductions)
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to encode deductions: %w", err)
	}

	query := `
		UPDATE payroll_records
		SET base_salary = $2, hours_worked = $3,
			paid_leave_days = $4, unpaid_leave_days = $5, medical_leave_days = $6,
			deductions = $7, employee_contribution = $8, employer_contribution = $9,
			net_salary = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err = q.QueryRow(ctx, query,
		record.ID, record.BaseSalary, record.HoursWorked,
		record.PaidLeaveDays, record.UnpaidLeaveDays, record.MedicalLeaveDays,
		deductions, record.EmployeeContribution, record.EmployerContribution,
		record.NetSalary,
	).Scan(&record.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to update payroll record: %w", err)
	}

	return record, nil
}

func (r *payrollRepository) UpdateStatus(ctx context.Context, id string, status payroll.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, status).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrPayrollRecordNotFound
		}
		return fmt.Errorf("failed to update payroll status: %w", err)
	}

	return nil
}

func (r *payrollRepository) GetStats(ctx context.Context, filter payroll.Filter) ([]payroll.DepartmentStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.name, COUNT(*),
			   COALESCE(SUM(p.base_salary), 0), COALESCE(SUM(p.net_salary), 0),
			   COUNT(*) FILTER (WHERE p.status = 'paid'),
			   COUNT(*) FILTER (WHERE p.status = 'pending')
		FROM payroll_records p
		JOIN employees e ON p.employee_id = e.id
		JOIN departments d ON e.department_id = d.id
		WHERE 1=1
	`
	var args []interface{}
	argIdx := 1

	if filter.Month != nil {
		query += fmt.Sprintf(" AND p.month = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Year != nil {
		query += fmt.Sprintf(" AND p.year = $%d", argIdx)
		args = append(args, *filter.Year)
		argIdx++
	}
	if filter.Department != nil {
		query += fmt.Sprintf(" AND d.name = $%d", argIdx)
		args = append(args, *filter.Department)
		argIdx++
	}
	query += " GROUP BY d.name ORDER BY d.name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get payroll stats: %w", err)
	}
	defer rows.Close()

	var stats []payroll.DepartmentStats
	for rows.Next() {
		var s payroll.DepartmentStats
		if err := rows.Scan(
			&s.Department, &s.RecordCount, &s.TotalBaseSalary, &s.TotalNetSalary,
			&s.PaidCount, &s.PendingCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll stats: %w", err)
		}
		stats = append(stats, s)
	}

	return stats, nil
}

// ========== HELPERS ==========

func (r *payrollRepository) queryPayrollRows(ctx context.Context, q database.Querier, query string, args []interface{}) ([]payroll.PayrollRecord, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		record, err := scanPayrollRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, record)
	}

	return records, nil
}

func scanPayrollRow(row pgx.Row) (payroll.PayrollRecord, error) {
	var record payroll.PayrollRecord
	var deductions []byte
	err := row.Scan(
		&record.ID, &record.EmployeeID, &record.Month, &record.Year,
		&record.BaseSalary, &record.HoursWorked,
		&record.PaidLeaveDays, &record.UnpaidLeaveDays, &record.MedicalLeaveDays, &deductions,
		&record.EmployeeContribution, &record.EmployerContribution, &record.NetSalary, &record.Status,
		&record.CreatedAt, &record.UpdatedAt, &record.EmployeeName, &record.DepartmentName,
	)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}

	if len(deductions) > 0 {
		if err := json.Unmarshal(deductions, &record.Deductions); err != nil {
			return payroll.PayrollRecord{}, fmt.Errorf("failed to decode deductions: %w", err)
		}
	}

	return record, nil
}
