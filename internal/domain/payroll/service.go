package payroll

import (
	"context"
)

// PayrollService defines business logic for payroll operations.
type PayrollService interface {
	// Generate runs the batch generator for one (month, year) over all
	// eligible employees, or the requested subset (HR)
	Generate(ctx context.Context, req GeneratePayrollRequest) (GeneratePayrollResponse, error)

	// List retrieves payroll records with filters; employees are scoped to
	// their own records
	List(ctx context.Context, filter ListFilter) ([]PayrollResponse, error)

	// GetEmployeeHistory retrieves one employee's records plus earned and
	// bonus totals; employees may only read their own
	GetEmployeeHistory(ctx context.Context, employeeID string) (EmployeeHistoryResponse, error)

	// GetPayslip retrieves a single record enriched with employee contact
	// details; employees may only read their own
	GetPayslip(ctx context.Context, id string) (PayslipResponse, error)

	// Update applies HR adjustments, recomputing net salary (HR)
	Update(ctx context.Context, req UpdatePayrollRequest) error

	// Delete removes a payroll record (HR)
	Delete(ctx context.Context, id string) error

	// GetSummary totals one period across employees (HR); zero month/year
	// default to the current period
	GetSummary(ctx context.Context, month, year int) (SummaryResponse, error)
}
