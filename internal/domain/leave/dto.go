package leave

import (
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/validator"
)

// ========================================
// LEAVE REQUEST DTOs
// ========================================

type CreateLeaveRequestRequest struct {
	LeaveType string  `json:"leaveType"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Days      float64 `json:"days"`
	Reason    string  `json:"reason"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leaveType",
			Message: "leaveType is required",
		})
	}

	_, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate must be in YYYY-MM-DD format",
		})
	}

	_, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must be in YYYY-MM-DD format",
		})
	}

	// Dates share a fixed format, so string order is date order.
	if startOK && endOK && r.EndDate < r.StartDate {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must not be before startDate",
		})
	}

	if r.Days <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "days must be greater than zero",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DecideLeaveRequestRequest approves or rejects a pending request.
type DecideLeaveRequestRequest struct {
	ID       string  `json:"-"`
	Status   string  `json:"status"`
	Comments *string `json:"comments,omitempty"`
}

func (r *DecideLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidObjectID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid object id",
		})
	}

	validStatuses := []string{string(RequestApproved), string(RequestRejected)}
	if !validator.IsInSlice(r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: approved, rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveRequestResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employeeId"`
	EmployeeName string  `json:"employeeName"`
	Department   string  `json:"department"`
	Position     string  `json:"position"`
	Email        string  `json:"email"`
	LeaveType    string  `json:"leaveType"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	Days         float64 `json:"days"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	AppliedDate  string  `json:"appliedDate"`
	ApprovedBy   *string `json:"approvedBy,omitempty"`
	ApprovedDate *string `json:"approvedDate,omitempty"`
	Comments     *string `json:"comments,omitempty"`
}

// ========================================
// LEAVE TYPE DTOs
// ========================================

// CreateLeaveTypeRequest uses pointers for the boolean knobs so an
// omitted field keeps its default (paid and active default true).
type CreateLeaveTypeRequest struct {
	Name            string `json:"name"`
	Code            string `json:"code"`
	TotalDays       int    `json:"totalDays"`
	Description     string `json:"description"`
	CarryForward    bool   `json:"carryForward"`
	MaxCarryForward int    `json:"maxCarryForward"`
	IsPaid          *bool  `json:"isPaid,omitempty"`
	IsActive        *bool  `json:"isActive,omitempty"`
}

func (r *CreateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	}

	if r.TotalDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "totalDays",
			Message: "totalDays cannot be negative",
		})
	}

	if r.MaxCarryForward < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "maxCarryForward",
			Message: "maxCarryForward cannot be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateLeaveTypeRequest struct {
	ID              string  `json:"-"`
	Name            *string `json:"name,omitempty"`
	TotalDays       *int    `json:"totalDays,omitempty"`
	Description     *string `json:"description,omitempty"`
	CarryForward    *bool   `json:"carryForward,omitempty"`
	MaxCarryForward *int    `json:"maxCarryForward,omitempty"`
	IsPaid          *bool   `json:"isPaid,omitempty"`
	IsActive        *bool   `json:"isActive,omitempty"`
}

func (r *UpdateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidObjectID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid object id",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.TotalDays != nil && *r.TotalDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "totalDays",
			Message: "totalDays cannot be negative",
		})
	}

	if r.MaxCarryForward != nil && *r.MaxCarryForward < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "maxCarryForward",
			Message: "maxCarryForward cannot be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// HasUpdates reports whether any updatable field was supplied.
func (r *UpdateLeaveTypeRequest) HasUpdates() bool {
	return r.Name != nil || r.TotalDays != nil || r.Description != nil ||
		r.CarryForward != nil || r.MaxCarryForward != nil ||
		r.IsPaid != nil || r.IsActive != nil
}

type LeaveTypeResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Code            string `json:"code"`
	TotalDays       int    `json:"totalDays"`
	Description     string `json:"description"`
	CarryForward    bool   `json:"carryForward"`
	MaxCarryForward int    `json:"maxCarryForward"`
	IsPaid          bool   `json:"isPaid"`
	IsActive        bool   `json:"isActive"`
}

type SeedLeaveTypesResponse struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

// ========================================
// LEAVE BALANCE DTOs
// ========================================

// BalanceItem is one leave type's position for an employee-year. Pending
// days are informational and are not subtracted from availability.
type BalanceItem struct {
	LeaveType     string  `json:"leaveType"`
	Code          string  `json:"code"`
	TotalDays     int     `json:"totalDays"`
	UsedDays      float64 `json:"usedDays"`
	PendingDays   float64 `json:"pendingDays"`
	AvailableDays float64 `json:"availableDays"`
	IsPaid        bool    `json:"isPaid"`
}

type BalanceEmployee struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
}

type BalanceResponse struct {
	Employee BalanceEmployee `json:"employee"`
	Year     int             `json:"year"`
	Balance  []BalanceItem   `json:"balance"`
}
