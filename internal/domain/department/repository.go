package department

import "context"

type DepartmentRepository interface {
	List(ctx context.Context) ([]Department, error)
	// ListShiftingEnabled returns the departments flagged for automatic
	// rotation generation. An empty result makes a scheduler run a no-op.
	ListShiftingEnabled(ctx context.Context) ([]Department, error)
}
