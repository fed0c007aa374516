package employee

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DepartmentHR is excluded from payroll generation. HR staff administer
// the system rather than draw salary through it.
const DepartmentHR = "Human Resources"

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type Employee struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	EmployeeID     string             `bson:"employeeId"`
	FirstName      string             `bson:"firstName"`
	LastName       string             `bson:"lastName"`
	Email          string             `bson:"email"`
	Phone          string             `bson:"phone"`
	Department     string             `bson:"department"`
	Position       string             `bson:"position"`
	Status         Status             `bson:"status"`
	ProfilePicture string             `bson:"profilePicture,omitempty"`
	DateOfJoining  time.Time          `bson:"dateOfJoining"`

	// Salary holds whatever shape the document carries: a plain number,
	// or a document with basic/allowances/deductions where allowances and
	// deductions may themselves be maps of named sub-components. Payroll
	// resolves it; nothing else reads it directly.
	Salary any `bson:"salary,omitempty"`

	CreatedAt time.Time  `bson:"createdAt"`
	UpdatedAt *time.Time `bson:"updatedAt,omitempty"`
}

func (e *Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}
