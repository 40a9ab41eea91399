package payroll

import "errors"

var (
	ErrPayrollRecordNotFound      = errors.New("payroll record not found")
	ErrPayrollRecordAlreadyExists = errors.New("payroll record already exists for this period")
	ErrNoBaseSalary               = errors.New("no salary defined: set a base salary for the employee or a default for the department")
	ErrInvalidStatus              = errors.New("invalid payroll status, must be pending or paid")
	ErrInvalidPeriod              = errors.New("invalid payroll period")
)
