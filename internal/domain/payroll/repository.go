package payroll

import (
	"context"
	"time"
)

// UpdateFields carries the computed values a payroll update writes. The
// service derives them from the current persisted record; the repository
// only applies them.
type UpdateFields struct {
	Bonus      *float64
	NetSalary  *float64
	Deductions *DeductionBreakdown
	Status     *Status
	PaidBy     *string
	PaidAt     *time.Time
	Remarks    *string
	UpdatedBy  string
}

// PayrollRepository defines data access methods for payroll records.
type PayrollRepository interface {
	Create(ctx context.Context, p Payroll) (Payroll, error)

	// GetByID returns nil when no record matches.
	GetByID(ctx context.Context, id string) (*Payroll, error)

	// GetByEmployeeAndPeriod returns nil when the period has no record for
	// the employee. The generator's idempotency check reads through this.
	GetByEmployeeAndPeriod(ctx context.Context, employeeID string, month, year int) (*Payroll, error)

	// List returns records matching the filter, newest period first.
	List(ctx context.Context, filter ListFilter) ([]Payroll, error)

	// ListByEmployee returns one employee's full history, newest first.
	ListByEmployee(ctx context.Context, employeeID string) ([]Payroll, error)

	// ListByPeriod returns every record for one (month, year).
	ListByPeriod(ctx context.Context, month, year int) ([]Payroll, error)

	Update(ctx context.Context, id string, fields UpdateFields) error
	Delete(ctx context.Context, id string) error
}
