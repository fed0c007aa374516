package employee

import (
	"context"
)

// EmployeeService defines business logic for employee management.
type EmployeeService interface {
	// CreateEmployee allocates the next free employee ID, creates the
	// login account and the employee record.
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (CreateEmployeeResponse, error)

	// GetEmployee retrieves a single employee by employee ID.
	GetEmployee(ctx context.Context, employeeID string) (EmployeeResponse, error)

	// ListEmployees returns all employees outside the HR department.
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// UpdateEmployee applies partial updates. Employees may edit their own
	// name and phone; everything else requires HR.
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) error

	// DeleteEmployee removes the employee record and its login account.
	DeleteEmployee(ctx context.Context, employeeID string) error

	// ChangePassword updates a login password. Employees must present
	// their current password; HR may set anyone's without it.
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
}
