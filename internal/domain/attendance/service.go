package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations.
// Methods that act on "the current employee" resolve the actor from the
// request context's JWT claims.
type AttendanceService interface {
	// CheckIn opens today's attendance record for the authenticated employee
	CheckIn(ctx context.Context) (CheckInResponse, error)

	// CheckOut completes today's record and computes worked hours and status
	CheckOut(ctx context.Context) (CheckOutResponse, error)

	// GetToday returns today's record, if any, with check-in/out flags
	GetToday(ctx context.Context) (TodayResponse, error)

	// List retrieves attendance records with filters (HR)
	List(ctx context.Context, filter ListFilter) ([]AttendanceResponse, error)

	// GetEmployeeHistory retrieves one employee's records plus an aggregate
	// summary; employees may only read their own history. Month and year
	// restrict the range when both are set.
	GetEmployeeHistory(ctx context.Context, employeeID string, month, year int) (EmployeeHistoryResponse, error)

	// GetSummary aggregates a calendar month for one employee or, for HR,
	// for any employee
	GetSummary(ctx context.Context, req SummaryRequest) (SummaryResponse, error)
}
