package department

import (
	"time"

	"github.com/medishift/clinic-backend-go/internal/domain/employee"
)

type Department struct {
	ID              string
	Name            string
	Category        employee.Category
	ShiftingEnabled bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
