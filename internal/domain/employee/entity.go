package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is the role bucket a clinic employee is scheduled and paid under.
type Category string

const (
	CategoryDoctor       Category = "doctor"
	CategoryNurse        Category = "nurse"
	CategoryReceptionist Category = "receptionist"
)

// SchedulableCategories lists the categories the rotation scheduler fills,
// in the order slots are generated for each session.
var SchedulableCategories = []Category{CategoryDoctor, CategoryNurse, CategoryReceptionist}

func IsValidCategory(c Category) bool {
	switch c {
	case CategoryDoctor, CategoryNurse, CategoryReceptionist:
		return true
	}
	return false
}

type Status string

const (
	StatusActive   Status = "active"
	StatusResigned Status = "resigned"
)

type Employee struct {
	ID           string
	FullName     string
	DepartmentID string
	Category     Category
	ClinicID     *string
	BaseSalary   *decimal.Decimal
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	DepartmentName *string
	ClinicName     *string
}
