package leave

import (
	"context"
)

// LeaveTypeRepository defines data access methods for leave types.
type LeaveTypeRepository interface {
	Create(ctx context.Context, lt LeaveType) (LeaveType, error)

	// GetByID returns nil when no leave type matches.
	GetByID(ctx context.Context, id string) (*LeaveType, error)

	// GetByCode matches the uppercased code exactly; nil when absent.
	GetByCode(ctx context.Context, code string) (*LeaveType, error)

	// GetByName matches case-insensitively, excluding excludeID when it is
	// a valid object id; nil when absent.
	GetByName(ctx context.Context, name string, excludeID string) (*LeaveType, error)

	// List returns leave types sorted by name; activeOnly restricts to
	// isActive true.
	List(ctx context.Context, activeOnly bool) ([]LeaveType, error)

	Update(ctx context.Context, req UpdateLeaveTypeRequest, updatedBy string) error
	Delete(ctx context.Context, id string) error
}

// RequestFilter narrows leave request listings. A nil EmployeeID means
// all employees.
type RequestFilter struct {
	EmployeeID *string
}

// DecisionUpdate carries the fields stamped when HR decides a request.
type DecisionUpdate struct {
	Status     RequestStatus
	ApprovedBy string
	Comments   *string
}

// LeaveRequestRepository defines data access methods for leave requests.
type LeaveRequestRepository interface {
	Create(ctx context.Context, lr LeaveRequest) (LeaveRequest, error)

	// List returns requests matching the filter, newest application first.
	List(ctx context.Context, filter RequestFilter) ([]LeaveRequest, error)

	// ListByEmployeeStatusAndRange returns an employee's requests with the
	// given status and startDate within [startDate, endDate]. The balance
	// calculator reads a calendar year through this.
	ListByEmployeeStatusAndRange(ctx context.Context, employeeID string, status RequestStatus, startDate, endDate string) ([]LeaveRequest, error)

	// Decide stamps status, approver and decision time on a request.
	Decide(ctx context.Context, id string, update DecisionUpdate) error

	// ExistsByLeaveTypeName reports whether any request references the
	// leave type name. Backs the deletion guard.
	ExistsByLeaveTypeName(ctx context.Context, name string) (bool, error)
}
