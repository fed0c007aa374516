package attendance

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByEmployeeAndDate returns nil when no record exists for the day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*Attendance, error)

	// CompleteCheckOut finalizes a day with its check-out time, computed
	// hours and status.
	CompleteCheckOut(ctx context.Context, id primitive.ObjectID, update CheckOutUpdate) error

	// List returns records matching the filter, newest date first.
	List(ctx context.Context, filter ListFilter) ([]Attendance, error)

	// ListByEmployeeAndDateRange returns an employee's records with date in
	// [startDate, endDate), newest first. The payroll generator reads a pay
	// period through this.
	ListByEmployeeAndDateRange(ctx context.Context, employeeID string, startDate, endDate string) ([]Attendance, error)
}

// CheckOutUpdate carries the fields written when a day completes.
type CheckOutUpdate struct {
	CheckOut     string
	CheckOutTime time.Time
	WorkingHours float64
	Status       Status
}
