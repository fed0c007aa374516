package leave

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// LeaveType is a configured category of leave. Code is stored uppercased
// and both code and name are unique case-insensitively. MaxCarryForward
// is a cap on days allowed to roll into the next year, not an automatic
// credit; the balance calculator never adds it to the entitlement.
type LeaveType struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"name"`
	Code            string             `bson:"code"`
	TotalDays       int                `bson:"totalDays"`
	Description     string             `bson:"description"`
	CarryForward    bool               `bson:"carryForward"`
	MaxCarryForward int                `bson:"maxCarryForward"`
	IsPaid          bool               `bson:"isPaid"`
	IsActive        bool               `bson:"isActive"`
	CreatedBy       string             `bson:"createdBy,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt"`
	UpdatedBy       *string            `bson:"updatedBy,omitempty"`
	UpdatedAt       *time.Time         `bson:"updatedAt,omitempty"`
}

// LeaveRequest references its leave type by NAME, not by id. The
// deletion guard on leave types and the balance calculator both match on
// that name. Employee details are denormalized at submission time.
type LeaveRequest struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	EmployeeID   string             `bson:"employeeId"`
	EmployeeName string             `bson:"employeeName,omitempty"`
	Department   string             `bson:"department,omitempty"`
	Position     string             `bson:"position,omitempty"`
	Email        string             `bson:"email,omitempty"`
	LeaveType    string             `bson:"leaveType"`
	StartDate    string             `bson:"startDate"`
	EndDate      string             `bson:"endDate"`
	Days         float64            `bson:"days"`
	Reason       string             `bson:"reason"`
	Status       RequestStatus      `bson:"status"`
	AppliedDate  time.Time          `bson:"appliedDate"`
	ApprovedBy   *string            `bson:"approvedBy,omitempty"`
	ApprovedDate *time.Time         `bson:"approvedDate,omitempty"`
	Comments     *string            `bson:"comments,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"`
}
