package response

import (
	"errors"
	"net/http"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/auth"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/payroll"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAccountDisabled):
		Forbidden(w, "Account is disabled")
	case errors.Is(err, auth.ErrProfileNotFound):
		NotFound(w, "Employee profile not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrPasswordTooShort):
		BadRequest(w, "Password must be at least 6 characters", nil)
	case errors.Is(err, user.ErrPasswordRequired):
		BadRequest(w, "Current password is required", nil)
	case errors.Is(err, user.ErrPasswordIncorrect):
		BadRequest(w, "Current password is incorrect", nil)
	case errors.Is(err, user.ErrHRAccessRequired):
		Forbidden(w, "HR access required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrCannotDeleteSelf):
		BadRequest(w, "You cannot delete your own account", nil)
	case errors.Is(err, employee.ErrNoFieldsToUpdate):
		BadRequest(w, "No fields to update", nil)
	case errors.Is(err, employee.ErrOnlyHRCanSetField):
		Forbidden(w, "Only HR can update this field")
	case errors.Is(err, employee.ErrUnauthorized):
		Forbidden(w, "You cannot access this employee")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		BadRequest(w, "Already checked in today", nil)
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "You have not checked in today", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		BadRequest(w, "Already checked out today", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrUnauthorized):
		Forbidden(w, "You can only view your own attendance")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrLeaveTypeCodeExists):
		Conflict(w, "Leave type code already exists")
	case errors.Is(err, leave.ErrLeaveTypeNameExists):
		Conflict(w, "Leave type name already exists")
	case errors.Is(err, leave.ErrLeaveTypeInUse):
		Conflict(w, "Leave type is used in existing leave requests; deactivate it instead")
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrNoFieldsToUpdate):
		BadRequest(w, "No fields to update", nil)
	case errors.Is(err, leave.ErrUnauthorized):
		Forbidden(w, "You cannot access this leave data")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollExists):
		Conflict(w, "Payroll already generated for this period")
	case errors.Is(err, payroll.ErrNoEligibleEmployees):
		NotFound(w, "No employees found")
	case errors.Is(err, payroll.ErrNoFieldsToUpdate):
		BadRequest(w, "No fields to update", nil)
	case errors.Is(err, payroll.ErrUnauthorized):
		Forbidden(w, "You cannot access this payroll data")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
