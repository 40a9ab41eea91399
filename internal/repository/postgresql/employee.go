package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/medishift/clinic-backend-go/internal/domain/employee"
	"github.com/medishift/clinic-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.full_name, e.department_id, d.category, e.clinic_id,
			   e.base_salary, e.status, e.created_at, e.updated_at,
			   d.name, c.name
		FROM employees e
		JOIN departments d ON e.department_id = d.id
		LEFT JOIN clinics c ON e.clinic_id = c.id
		WHERE e.id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.FullName, &emp.DepartmentID, &emp.Category, &emp.ClinicID,
		&emp.BaseSalary, &emp.Status, &emp.CreatedAt, &emp.UpdatedAt,
		&emp.DepartmentName, &emp.ClinicName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

func (r *employeeRepository) ListActiveByClinic(ctx context.Context, clinicID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	// Read order is the rotation order; created_at keeps it stable across
	// runs instead of leaving it to the planner.
	query := `
		SELECT e.id, e.full_name, e.department_id, d.category, e.clinic_id,
			   e.base_salary, e.status, e.created_at, e.updated_at
		FROM employees e
		JOIN departments d ON e.department_id = d.id
		WHERE e.clinic_id = $1
		  AND e.status = 'active'
		  AND d.category IN ('doctor', 'nurse', 'receptionist')
		ORDER BY e.created_at, e.id
	`

	rows, err := q.Query(ctx, query, clinicID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clinic employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID, &emp.FullName, &emp.DepartmentID, &emp.Category, &emp.ClinicID,
			&emp.BaseSalary, &emp.Status, &emp.CreatedAt, &emp.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, nil
}
