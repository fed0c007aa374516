package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleHR       Role = "hr"       // HR staff - manages employees, leave and payroll
	RoleAdmin    Role = "admin"    // System administrator - same privileges as HR
	RoleEmployee Role = "employee" // Regular employee
)

type User struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	EmployeeID        string             `bson:"employeeId"`
	Email             string             `bson:"email"`
	PasswordHash      string             `bson:"password"`
	Role              Role               `bson:"role"`
	IsActive          bool               `bson:"isActive"`
	CreatedAt         time.Time          `bson:"createdAt"`
	PasswordUpdatedAt *time.Time         `bson:"passwordUpdatedAt,omitempty"`
	PasswordResetBy   *string            `bson:"passwordResetBy,omitempty"`
}

// IsHR checks if the user can act as HR staff.
func (u *User) IsHR() bool {
	return IsHRRole(u.Role)
}

// IsHRRole reports whether a role carries HR privileges. Services scope
// queries with this before touching other employees' records.
func IsHRRole(role Role) bool {
	return role == RoleHR || role == RoleAdmin
}
