package attendance

import (
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employeeId"`
	EmployeeName string  `json:"employeeName"`
	Department   string  `json:"department"`
	Date         string  `json:"date"`
	CheckIn      string  `json:"checkIn,omitempty"`
	CheckOut     *string `json:"checkOut,omitempty"`
	Status       string  `json:"status"`
	WorkingHours float64 `json:"workingHours"`
}

type CheckInResponse struct {
	CheckIn string `json:"checkIn"`
	Date    string `json:"date"`
}

type CheckOutResponse struct {
	CheckOut     string  `json:"checkOut"`
	WorkingHours float64 `json:"workingHours"`
	Status       string  `json:"status"`
}

type TodayResponse struct {
	Attendance    *AttendanceResponse `json:"attendance"`
	HasCheckedIn  bool                `json:"hasCheckedIn"`
	HasCheckedOut bool                `json:"hasCheckedOut"`
}

// ListFilter narrows attendance listings. Employees are always scoped to
// themselves by the service regardless of the EmployeeID field.
type ListFilter struct {
	Date       *string `json:"date,omitempty"` // YYYY-MM-DD
	EmployeeID *string `json:"employeeId,omitempty"`
	StartDate  *string `json:"-"` // YYYY-MM-DD, inclusive
	EndDate    *string `json:"-"` // YYYY-MM-DD, exclusive
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != nil && *f.Date != "" {
		if _, valid := validator.IsValidDate(*f.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SummaryRequest selects the month to aggregate. Zero month/year default
// to the current period.
type SummaryRequest struct {
	Month      int     `json:"month"`
	Year       int     `json:"year"`
	EmployeeID *string `json:"employeeId,omitempty"`
}

type SummaryResponse struct {
	Month int `json:"month"`
	Year  int `json:"year"`
	Summary
}

type EmployeeInfo struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Position   string `json:"position"`
}

type EmployeeHistoryResponse struct {
	Employee EmployeeInfo         `json:"employee"`
	Summary  Summary              `json:"summary"`
	Records  []AttendanceResponse `json:"records"`
}
