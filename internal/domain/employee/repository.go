package employee

import "context"

// EmployeeRepository is read-only from the engines' point of view: employee
// records are owned by the user store.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	// ListActiveByClinic returns active employees assigned to a clinic whose
	// category is schedulable, preserving the store's read order.
	ListActiveByClinic(ctx context.Context, clinicID string) ([]Employee, error)
}
