package postgresql

import (
	"context"
	"fmt"

	"github.com/medishift/clinic-backend-go/internal/domain/department"
	"github.com/medishift/clinic-backend-go/internal/pkg/database"
)

type departmentRepository struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) List(ctx context.Context) ([]department.Department, error) {
	return r.list(ctx, false)
}

func (r *departmentRepository) ListShiftingEnabled(ctx context.Context) ([]department.Department, error) {
	return r.list(ctx, true)
}

func (r *departmentRepository) list(ctx context.Context, shiftingOnly bool) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, category, shifting_enabled, created_at, updated_at
		FROM departments
	`
	if shiftingOnly {
		query += " WHERE shifting_enabled = true"
	}
	query += " ORDER BY name"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var d department.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Category, &d.ShiftingEnabled, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}

	return departments, nil
}
