package employee

import "context"

// ListFilter narrows employee listings. A nil field means no constraint.
type ListFilter struct {
	Status            *Status
	ExcludeDepartment *string
	EmployeeIDs       []string
}

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (Employee, error)
	List(ctx context.Context, filter ListFilter) ([]Employee, error)

	// ExistsByEmail reports whether another employee already uses the
	// email. excludeEmployeeID is skipped so an employee can keep their
	// own address on update.
	ExistsByEmail(ctx context.Context, email string, excludeEmployeeID string) (bool, error)

	Update(ctx context.Context, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, employeeID string) error
}
