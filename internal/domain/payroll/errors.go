package payroll

import "errors"

var (
	ErrPayrollNotFound     = errors.New("payroll record not found")
	ErrPayrollExists       = errors.New("payroll already generated for this period")
	ErrNoEligibleEmployees = errors.New("no eligible employees found")
	ErrNoFieldsToUpdate    = errors.New("no fields to update")
	ErrUnauthorized        = errors.New("unauthorized access")
)
