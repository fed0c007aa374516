package leave

import (
	"context"
)

// LeaveService defines business logic for leave requests, leave types
// and the per-employee balance calculation.
type LeaveService interface {
	// Requests
	ListRequests(ctx context.Context) ([]LeaveRequestResponse, error)
	CreateRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)
	DecideRequest(ctx context.Context, req DecideLeaveRequestRequest) error

	// Balance computes used/pending/available days per active leave type
	// for one employee-year; year 0 means the current year.
	GetBalance(ctx context.Context, employeeID string, year int) (BalanceResponse, error)

	// Types
	CreateType(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	UpdateType(ctx context.Context, req UpdateLeaveTypeRequest) error
	GetType(ctx context.Context, id string) (LeaveTypeResponse, error)
	ListTypes(ctx context.Context) ([]LeaveTypeResponse, error)
	DeleteType(ctx context.Context, id string) error
	SeedTypes(ctx context.Context) (SeedLeaveTypesResponse, error)
}
