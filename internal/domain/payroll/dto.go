package payroll

import (
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/validator"
)

type GeneratePayrollRequest struct {
	Month       int      `json:"month"`
	Year        int      `json:"year"`
	EmployeeIDs []string `json:"employeeIds,omitempty"`
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < 2020 || r.Year > 2030 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2020 and 2030",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type GeneratePayrollResponse struct {
	Generated int               `json:"generated"`
	Skipped   int               `json:"skipped"`
	Records   []PayrollResponse `json:"records"`
}

// UpdatePayrollRequest carries HR adjustments. Deductions is an
// additional deduction amount layered onto the generated breakdown, not
// a replacement for it.
type UpdatePayrollRequest struct {
	ID         string   `json:"-"`
	Bonus      *float64 `json:"bonus,omitempty"`
	Deductions *float64 `json:"deductions,omitempty"`
	Status     *string  `json:"status,omitempty"`
	Remarks    *string  `json:"remarks,omitempty"`
}

func (r *UpdatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidObjectID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid object id",
		})
	}

	if r.Bonus != nil && *r.Bonus < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "bonus",
			Message: "bonus cannot be negative",
		})
	}

	if r.Deductions != nil && *r.Deductions < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "deductions",
			Message: "deductions cannot be negative",
		})
	}

	if r.Status != nil && validator.IsEmpty(*r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// HasUpdates reports whether any updatable field was supplied.
func (r *UpdatePayrollRequest) HasUpdates() bool {
	return r.Bonus != nil || r.Deductions != nil || r.Status != nil || r.Remarks != nil
}

// ListFilter narrows payroll listings. Nil fields are ignored.
type ListFilter struct {
	Month      *int
	Year       *int
	EmployeeID *string
}

type PayrollResponse struct {
	ID           string             `json:"id"`
	EmployeeID   string             `json:"employeeId"`
	EmployeeName string             `json:"employeeName"`
	Department   string             `json:"department"`
	Position     string             `json:"position"`
	Month        int                `json:"month"`
	Year         int                `json:"year"`
	PayPeriod    string             `json:"payPeriod"`
	BasicSalary  float64            `json:"basicSalary"`
	Allowances   float64            `json:"allowances"`
	GrossSalary  float64            `json:"grossSalary"`
	Deductions   DeductionBreakdown `json:"deductions"`
	NetSalary    float64            `json:"netSalary"`
	Attendance   PeriodAttendance   `json:"attendance"`
	Bonus        float64            `json:"bonus"`
	Status       string             `json:"status"`
	Remarks      string             `json:"remarks,omitempty"`
	GeneratedBy  string             `json:"generatedBy"`
	GeneratedAt  string             `json:"generatedAt"`
	PaidBy       *string            `json:"paidBy,omitempty"`
	PaidAt       *string            `json:"paidAt,omitempty"`
}

type HistoryEmployee struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Position   string `json:"position"`
}

type HistoryTotals struct {
	TotalRecords int     `json:"totalRecords"`
	TotalEarned  float64 `json:"totalEarned"`
	TotalBonus   float64 `json:"totalBonus"`
}

type EmployeeHistoryResponse struct {
	Employee HistoryEmployee   `json:"employee"`
	Summary  HistoryTotals     `json:"summary"`
	Records  []PayrollResponse `json:"records"`
}

// EmployeeContact completes a payslip with details the payroll record
// does not denormalize.
type EmployeeContact struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	JoinDate string `json:"joinDate"`
}

type PayslipResponse struct {
	PayrollResponse
	EmployeeDetails *EmployeeContact `json:"employeeDetails,omitempty"`
}

type SummaryResponse struct {
	Month            int     `json:"month"`
	Year             int     `json:"year"`
	TotalEmployees   int     `json:"totalEmployees"`
	PaidCount        int     `json:"paidCount"`
	PendingCount     int     `json:"pendingCount"`
	TotalGrossSalary float64 `json:"totalGrossSalary"`
	TotalDeductions  float64 `json:"totalDeductions"`
	TotalBonus       float64 `json:"totalBonus"`
	TotalNetSalary   float64 `json:"totalNetSalary"`
}
