package attendance

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusHalfDay Status = "half-day"
	StatusAbsent  Status = "absent"
)

// Attendance is one employee-day. Date is a "YYYY-MM-DD" string so the
// store can range-filter it lexicographically; CheckIn/CheckOut are the
// wall-clock "HH:MM" strings shown to users, with the full timestamps
// kept alongside for hour computation.
type Attendance struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	EmployeeID   string             `bson:"employeeId"`
	EmployeeName string             `bson:"employeeName,omitempty"`
	Department   string             `bson:"department,omitempty"`
	Date         string             `bson:"date"`
	CheckIn      string             `bson:"checkIn,omitempty"`
	CheckInTime  *time.Time         `bson:"checkInTime,omitempty"`
	CheckOut     *string            `bson:"checkOut,omitempty"`
	CheckOutTime *time.Time         `bson:"checkOutTime,omitempty"`
	Status       Status             `bson:"status"`
	WorkingHours float64            `bson:"workingHours"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    *time.Time         `bson:"updatedAt,omitempty"`
}

// HasCheckedOut reports whether the day is completed.
func (a *Attendance) HasCheckedOut() bool {
	return a.CheckOut != nil
}
