package payroll

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Status string

const (
	StatusGenerated Status = "generated"
	StatusPaid      Status = "paid"
)

// DeductionBreakdown itemizes a record's deductions. Standard comes from
// the employee's salary configuration; the absent and half-day parts are
// derived from the period's attendance; Additional is only present once
// HR adds one through an update. Total is always the sum of the four.
type DeductionBreakdown struct {
	Standard         float64 `bson:"standard" json:"standard"`
	AbsentDeduction  float64 `bson:"absentDeduction" json:"absentDeduction"`
	HalfDayDeduction float64 `bson:"halfDayDeduction" json:"halfDayDeduction"`
	Additional       float64 `bson:"additional,omitempty" json:"additional,omitempty"`
	Total            float64 `bson:"total" json:"total"`
}

// PeriodAttendance is the attendance aggregate frozen into the record at
// generation time.
type PeriodAttendance struct {
	WorkingDays int     `bson:"workingDays" json:"workingDays"`
	PresentDays int     `bson:"presentDays" json:"presentDays"`
	HalfDays    int     `bson:"halfDays" json:"halfDays"`
	AbsentDays  int     `bson:"absentDays" json:"absentDays"`
	TotalHours  float64 `bson:"totalHours" json:"totalHours"`
}

// Payroll is one employee's pay for one (month, year) period; the pair
// is unique per employee. NetSalary is always recomputed from gross,
// deductions and bonus, never written directly.
type Payroll struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	EmployeeID   string             `bson:"employeeId"`
	EmployeeName string             `bson:"employeeName"`
	Department   string             `bson:"department"`
	Position     string             `bson:"position"`
	Month        int                `bson:"month"`
	Year         int                `bson:"year"`
	PayPeriod    string             `bson:"payPeriod"`
	BasicSalary  float64            `bson:"basicSalary"`
	Allowances   float64            `bson:"allowances"`
	GrossSalary  float64            `bson:"grossSalary"`
	Deductions   DeductionBreakdown `bson:"deductions"`
	NetSalary    float64            `bson:"netSalary"`
	Attendance   PeriodAttendance   `bson:"attendance"`
	Bonus        float64            `bson:"bonus"`
	Status       Status             `bson:"status"`
	Remarks      string             `bson:"remarks,omitempty"`
	GeneratedBy  string             `bson:"generatedBy"`
	GeneratedAt  time.Time          `bson:"generatedAt"`
	PaidBy       *string            `bson:"paidBy,omitempty"`
	PaidAt       *time.Time         `bson:"paidAt,omitempty"`
	UpdatedBy    *string            `bson:"updatedBy,omitempty"`
	UpdatedAt    *time.Time         `bson:"updatedAt,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"`
}
