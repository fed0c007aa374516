package fixtures

import (
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/leave"
)

// ==========================================
// DEFAULT ADMIN ACCOUNT
// ==========================================

// DefaultAdminEmployeeID is the employee ID of the seeded HR account.
// Employee ID allocation starts counting from it.
const DefaultAdminEmployeeID = "EMP001"

// GetDefaultAdminEmployee returns the employee profile created alongside
// the first HR login account.
func GetDefaultAdminEmployee(email string, now time.Time) employee.Employee {
	return employee.Employee{
		EmployeeID:     DefaultAdminEmployeeID,
		FirstName:      "Admin",
		LastName:       "User",
		Email:          email,
		Phone:          "1234567890",
		Department:     employee.DepartmentHR,
		Position:       "HR Manager",
		Status:         employee.StatusActive,
		ProfilePicture: "/placeholder.svg",
		DateOfJoining:  now,
		Salary: map[string]any{
			"basic":      80000,
			"allowances": 10000,
			"deductions": 5000,
		},
		CreatedAt: now,
	}
}

// ==========================================
// DEFAULT LEAVE TYPES
// ==========================================

// GetDefaultLeaveTypes returns the standard leave types seeded into a
// fresh installation. Codes must stay stable; the seed endpoint skips
// any code that already exists.
func GetDefaultLeaveTypes() []leave.LeaveType {
	return []leave.LeaveType{
		{
			Name:        "Casual Leave",
			Code:        "CL",
			TotalDays:   12,
			Description: "For personal matters and short-term absences",
			IsPaid:      true,
			IsActive:    true,
		},
		{
			Name:        "Sick Leave",
			Code:        "SL",
			TotalDays:   10,
			Description: "For illness and medical appointments",
			IsPaid:      true,
			IsActive:    true,
		},
		// The only type with carry-forward; the cap limits what may roll
		// into the next year.
		{
			Name:            "Annual Leave",
			Code:            "AL",
			TotalDays:       15,
			Description:     "Earned/privilege leave for vacation",
			CarryForward:    true,
			MaxCarryForward: 5,
			IsPaid:          true,
			IsActive:        true,
		},
		{
			Name:        "Maternity Leave",
			Code:        "ML",
			TotalDays:   180,
			Description: "For expecting mothers (6 months)",
			IsPaid:      true,
			IsActive:    true,
		},
		{
			Name:        "Paternity Leave",
			Code:        "PL",
			TotalDays:   15,
			Description: "For new fathers",
			IsPaid:      true,
			IsActive:    true,
		},
		{
			Name:        "Unpaid Leave",
			Code:        "UL",
			TotalDays:   30,
			Description: "Leave without pay",
			IsPaid:      false,
			IsActive:    true,
		},
		{
			Name:        "Bereavement Leave",
			Code:        "BL",
			TotalDays:   5,
			Description: "For loss of immediate family member",
			IsPaid:      true,
			IsActive:    true,
		},
		{
			Name:        "Work From Home",
			Code:        "WFH",
			TotalDays:   52,
			Description: "Remote work days",
			IsPaid:      true,
			IsActive:    true,
		},
	}
}
