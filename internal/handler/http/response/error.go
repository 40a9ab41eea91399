package response

import (
	"errors"
	"net/http"

	"github.com/medishift/clinic-backend-go/internal/domain/clinic"
	"github.com/medishift/clinic-backend-go/internal/domain/employee"
	"github.com/medishift/clinic-backend-go/internal/domain/payroll"
	"github.com/medishift/clinic-backend-go/internal/domain/shift"
	"github.com/medishift/clinic-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Clinic domain errors
	case errors.Is(err, clinic.ErrClinicNotFound):
		NotFound(w, "Clinic not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollRecordAlreadyExists):
		Conflict(w, "Payroll already calculated for this employee and period")
	case errors.Is(err, payroll.ErrNoBaseSalary):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrInvalidStatus):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)

	// Shift domain errors
	case errors.Is(err, shift.ErrAssignmentNotFound):
		NotFound(w, "Shift assignment not found")
	case errors.Is(err, shift.ErrAssignmentNotPending):
		Conflict(w, "Shift assignment is not pending")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
