package user

import (
	"context"
)

type UserRepository interface {
	Create(ctx context.Context, newUser User) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByRole(ctx context.Context, role Role) (bool, error)

	// ListEmployeeIDs returns every allocated employee ID, used when
	// picking the next free EMP sequence number.
	ListEmployeeIDs(ctx context.Context) ([]string, error)

	UpdateEmail(ctx context.Context, employeeID string, email string) error
	UpdateActive(ctx context.Context, employeeID string, isActive bool) error
	UpdatePassword(ctx context.Context, employeeID string, passwordHash string, resetBy *string) error
	DeleteByEmployeeID(ctx context.Context, employeeID string) error
}
