package employee

import (
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/validator"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type CreateEmployeeRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Salary     any    `json:"salary"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "firstName",
			Message: "firstName is required",
		})
	}

	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "lastName",
			Message: "lastName is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEmployeeRequest carries partial updates. firstName, lastName and
// phone are self-service; the rest require HR.
type UpdateEmployeeRequest struct {
	EmployeeID string  `json:"-"`
	FirstName  *string `json:"firstName,omitempty"`
	LastName   *string `json:"lastName,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Email      *string `json:"email,omitempty"`
	Department *string `json:"department,omitempty"`
	Position   *string `json:"position,omitempty"`
	Salary     any     `json:"salary,omitempty"`
	Status     *string `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.Status != nil {
		validStatuses := []string{string(StatusActive), string(StatusInactive)}
		if !validator.IsInSlice(*r.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: active, inactive",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// HasUpdates reports whether any updatable field was supplied.
func (r *UpdateEmployeeRequest) HasUpdates() bool {
	return r.FirstName != nil || r.LastName != nil || r.Phone != nil ||
		r.Email != nil || r.Department != nil || r.Position != nil ||
		r.Salary != nil || r.Status != nil
}

// RequiresHR reports whether any supplied field is HR-only.
func (r *UpdateEmployeeRequest) RequiresHR() bool {
	return r.Email != nil || r.Department != nil || r.Position != nil ||
		r.Salary != nil || r.Status != nil
}

// ChangePasswordRequest updates a login password. CurrentPassword is
// required when employees change their own; HR changes skip it.
type ChangePasswordRequest struct {
	EmployeeID      string  `json:"-"`
	CurrentPassword *string `json:"currentPassword,omitempty"`
	NewPassword     string  `json:"newPassword"`
}

func (r *ChangePasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	if len(r.NewPassword) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "newPassword",
			Message: "newPassword must be at least 6 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID             string `json:"id"`
	EmployeeID     string `json:"employeeId"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Department     string `json:"department"`
	Position       string `json:"position"`
	Status         string `json:"status"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	DateOfJoining  string `json:"dateOfJoining"`
	Salary         any    `json:"salary,omitempty"`
	CreatedAt      string `json:"createdAt"`
}

type CreateEmployeeResponse struct {
	EmployeeID string `json:"employeeId"`
}
