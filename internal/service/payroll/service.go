package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/payroll"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
)

type PayrollServiceImpl struct {
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
	}
}

// Helper to get the acting employee and role from the JWT context.
func getClaimsFromContext(ctx context.Context) (employeeID, role string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	role, _ = claims["role"].(string)

	return employeeID, role, nil
}

// Generate implements payroll.PayrollService. One record per eligible
// employee per period; employees that already have one are skipped, and
// a failure on one employee never aborts the rest of the batch.
func (s *PayrollServiceImpl) Generate(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.GeneratePayrollResponse, error) {
	actorID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}
	if !user.IsHRRole(user.Role(role)) {
		return payroll.GeneratePayrollResponse{}, payroll.ErrUnauthorized
	}

	if err := req.Validate(); err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}

	// HR staff administer payroll and are never paid through it.
	active := employee.StatusActive
	hrDepartment := employee.DepartmentHR
	employees, err := s.employeeRepo.List(ctx, employee.ListFilter{
		Status:            &active,
		ExcludeDepartment: &hrDepartment,
		EmployeeIDs:       req.EmployeeIDs,
	})
	if err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}
	if len(employees) == 0 {
		return payroll.GeneratePayrollResponse{}, payroll.ErrNoEligibleEmployees
	}

	startDate, endDate := attendance.MonthRange(req.Month, req.Year)

	resp := payroll.GeneratePayrollResponse{Records: []payroll.PayrollResponse{}}
	for _, emp := range employees {
		existing, err := s.payrollRepo.GetByEmployeeAndPeriod(ctx, emp.EmployeeID, req.Month, req.Year)
		if err != nil {
			slog.Error("failed to check existing payroll record", "employeeId", emp.EmployeeID, "error", err)
			continue
		}
		if existing != nil {
			resp.Skipped++
			continue
		}

		records, err := s.attendanceRepo.ListByEmployeeAndDateRange(ctx, emp.EmployeeID, startDate, endDate)
		if err != nil {
			slog.Error("failed to read attendance for payroll", "employeeId", emp.EmployeeID, "error", err)
			continue
		}

		created, err := s.payrollRepo.Create(ctx, buildRecord(emp, req.Month, req.Year, records, actorID))
		if err != nil {
			// A concurrent generation run beat us to the insert.
			if errors.Is(err, payroll.ErrPayrollExists) {
				resp.Skipped++
				continue
			}
			slog.Error("failed to create payroll record", "employeeId", emp.EmployeeID, "error", err)
			continue
		}

		resp.Records = append(resp.Records, toResponse(created))
		resp.Generated++
	}

	return resp, nil
}

// buildRecord computes one employee's pay for a period from their salary
// configuration and the month's attendance.
func buildRecord(emp employee.Employee, month, year int, records []attendance.Attendance, generatedBy string) payroll.Payroll {
	components := resolveSalary(emp.Salary)
	summary := attendance.Summarize(records)

	grossSalary := components.Basic.Add(components.Allowances)

	// Per-day rate is a flat thirtieth of basic, guarding the zero case.
	perDay := decimal.Zero
	if components.Basic.IsPositive() {
		perDay = components.Basic.Div(decimal.NewFromInt(30))
	}
	absentDeduction := perDay.Mul(decimal.NewFromInt(int64(summary.AbsentDays)))
	halfDayDeduction := perDay.Div(decimal.NewFromInt(2)).Mul(decimal.NewFromInt(int64(summary.HalfDays)))

	totalDeductions := components.Deductions.Add(absentDeduction).Add(halfDayDeduction)
	netSalary := grossSalary.Sub(totalDeductions)

	now := time.Now().UTC()
	return payroll.Payroll{
		EmployeeID:   emp.EmployeeID,
		EmployeeName: emp.FullName(),
		Department:   emp.Department,
		Position:     emp.Position,
		Month:        month,
		Year:         year,
		PayPeriod:    fmt.Sprintf("%d-%02d", year, month),
		BasicSalary:  components.Basic.InexactFloat64(),
		Allowances:   components.Allowances.InexactFloat64(),
		GrossSalary:  grossSalary.InexactFloat64(),
		Deductions: payroll.DeductionBreakdown{
			Standard:         components.Deductions.InexactFloat64(),
			AbsentDeduction:  absentDeduction.Round(2).InexactFloat64(),
			HalfDayDeduction: halfDayDeduction.Round(2).InexactFloat64(),
			Total:            totalDeductions.Round(2).InexactFloat64(),
		},
		NetSalary: netSalary.Round(2).InexactFloat64(),
		Attendance: payroll.PeriodAttendance{
			WorkingDays: summary.TotalDays,
			PresentDays: summary.PresentDays,
			HalfDays:    summary.HalfDays,
			AbsentDays:  summary.AbsentDays,
			TotalHours:  summary.TotalHours,
		},
		Bonus:       0,
		Status:      payroll.StatusGenerated,
		GeneratedBy: generatedBy,
		GeneratedAt: now,
		CreatedAt:   now,
	}
}

// List implements payroll.PayrollService.
func (s *PayrollServiceImpl) List(ctx context.Context, filter payroll.ListFilter) ([]payroll.PayrollResponse, error) {
	employeeID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	// Employees only ever see themselves; the employeeId filter is an HR
	// affordance.
	if !user.IsHRRole(user.Role(role)) {
		filter.EmployeeID = &employeeID
	}

	records, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return toResponses(records), nil
}

// GetEmployeeHistory implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetEmployeeHistory(ctx context.Context, employeeID string) (payroll.EmployeeHistoryResponse, error) {
	actorID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.EmployeeHistoryResponse{}, err
	}
	if !user.IsHRRole(user.Role(role)) && actorID != employeeID {
		return payroll.EmployeeHistoryResponse{}, payroll.ErrUnauthorized
	}

	emp, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return payroll.EmployeeHistoryResponse{}, err
	}

	records, err := s.payrollRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return payroll.EmployeeHistoryResponse{}, err
	}

	totalEarned := decimal.Zero
	totalBonus := decimal.Zero
	for _, rec := range records {
		totalEarned = totalEarned.Add(decimal.NewFromFloat(rec.NetSalary))
		totalBonus = totalBonus.Add(decimal.NewFromFloat(rec.Bonus))
	}

	return payroll.EmployeeHistoryResponse{
		Employee: payroll.HistoryEmployee{
			EmployeeID: employeeID,
			Name:       emp.FullName(),
			Department: emp.Department,
			Position:   emp.Position,
		},
		Summary: payroll.HistoryTotals{
			TotalRecords: len(records),
			TotalEarned:  totalEarned.Round(2).InexactFloat64(),
			TotalBonus:   totalBonus.Round(2).InexactFloat64(),
		},
		Records: toResponses(records),
	}, nil
}

// GetPayslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayslip(ctx context.Context, id string) (payroll.PayslipResponse, error) {
	employeeID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}
	if record == nil {
		return payroll.PayslipResponse{}, payroll.ErrPayrollNotFound
	}

	if !user.IsHRRole(user.Role(role)) && record.EmployeeID != employeeID {
		return payroll.PayslipResponse{}, payroll.ErrUnauthorized
	}

	resp := payroll.PayslipResponse{PayrollResponse: toResponse(*record)}

	// The slip carries contact details the record does not denormalize;
	// a missing profile just leaves them off.
	if emp, err := s.employeeRepo.GetByEmployeeID(ctx, record.EmployeeID); err == nil {
		resp.EmployeeDetails = &payroll.EmployeeContact{
			Email:    emp.Email,
			Phone:    emp.Phone,
			JoinDate: emp.DateOfJoining.Format("2006-01-02"),
		}
	}

	return resp, nil
}

// Update implements payroll.PayrollService. Net salary is always
// recomputed from the record's current persisted values, never trusted
// from the caller.
func (s *PayrollServiceImpl) Update(ctx context.Context, req payroll.UpdatePayrollRequest) error {
	actorID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}
	if !user.IsHRRole(user.Role(role)) {
		return payroll.ErrUnauthorized
	}

	if err := req.Validate(); err != nil {
		return err
	}

	existing, err := s.payrollRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return payroll.ErrPayrollNotFound
	}

	if !req.HasUpdates() {
		return payroll.ErrNoFieldsToUpdate
	}

	fields := payroll.UpdateFields{UpdatedBy: actorID}

	bonus := decimal.NewFromFloat(existing.Bonus)
	if req.Bonus != nil {
		bonus = decimal.NewFromFloat(*req.Bonus)
		net := decimal.NewFromFloat(existing.NetSalary).
			Sub(decimal.NewFromFloat(existing.Bonus)).
			Add(bonus).
			Round(2).InexactFloat64()
		fields.Bonus = req.Bonus
		fields.NetSalary = &net
	}

	if req.Deductions != nil {
		breakdown := existing.Deductions
		breakdown.Additional = *req.Deductions
		total := decimal.NewFromFloat(breakdown.Standard).
			Add(decimal.NewFromFloat(breakdown.AbsentDeduction)).
			Add(decimal.NewFromFloat(breakdown.HalfDayDeduction)).
			Add(decimal.NewFromFloat(breakdown.Additional))
		breakdown.Total = total.Round(2).InexactFloat64()

		// bonus here is the one from this same request when both came
		// together, so the stored net always matches the stored bonus.
		net := decimal.NewFromFloat(existing.GrossSalary).
			Sub(total).
			Add(bonus).
			Round(2).InexactFloat64()
		fields.Deductions = &breakdown
		fields.NetSalary = &net
	}

	if req.Status != nil {
		status := payroll.Status(*req.Status)
		fields.Status = &status
		if status == payroll.StatusPaid {
			now := time.Now().UTC()
			fields.PaidBy = &actorID
			fields.PaidAt = &now
		}
	}

	fields.Remarks = req.Remarks

	return s.payrollRepo.Update(ctx, req.ID, fields)
}

// Delete implements payroll.PayrollService.
func (s *PayrollServiceImpl) Delete(ctx context.Context, id string) error {
	_, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}
	if !user.IsHRRole(user.Role(role)) {
		return payroll.ErrUnauthorized
	}

	return s.payrollRepo.Delete(ctx, id)
}

// GetSummary implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetSummary(ctx context.Context, month, year int) (payroll.SummaryResponse, error) {
	_, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.SummaryResponse{}, err
	}
	if !user.IsHRRole(user.Role(role)) {
		return payroll.SummaryResponse{}, payroll.ErrUnauthorized
	}

	now := time.Now()
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}

	records, err := s.payrollRepo.ListByPeriod(ctx, month, year)
	if err != nil {
		return payroll.SummaryResponse{}, err
	}

	resp := payroll.SummaryResponse{
		Month:          month,
		Year:           year,
		TotalEmployees: len(records),
	}

	totalGross := decimal.Zero
	totalDeductions := decimal.Zero
	totalBonus := decimal.Zero
	totalNet := decimal.Zero
	for _, rec := range records {
		totalGross = totalGross.Add(decimal.NewFromFloat(rec.GrossSalary))
		totalDeductions = totalDeductions.Add(decimal.NewFromFloat(rec.Deductions.Total))
		totalBonus = totalBonus.Add(decimal.NewFromFloat(rec.Bonus))
		totalNet = totalNet.Add(decimal.NewFromFloat(rec.NetSalary))

		if rec.Status == payroll.StatusPaid {
			resp.PaidCount++
		} else {
			resp.PendingCount++
		}
	}

	resp.TotalGrossSalary = totalGross.Round(2).InexactFloat64()
	resp.TotalDeductions = totalDeductions.Round(2).InexactFloat64()
	resp.TotalBonus = totalBonus.Round(2).InexactFloat64()
	resp.TotalNetSalary = totalNet.Round(2).InexactFloat64()

	return resp, nil
}

func toResponse(p payroll.Payroll) payroll.PayrollResponse {
	resp := payroll.PayrollResponse{
		ID:           p.ID.Hex(),
		EmployeeID:   p.EmployeeID,
		EmployeeName: p.EmployeeName,
		Department:   p.Department,
		Position:     p.Position,
		Month:        p.Month,
		Year:         p.Year,
		PayPeriod:    p.PayPeriod,
		BasicSalary:  p.BasicSalary,
		Allowances:   p.Allowances,
		GrossSalary:  p.GrossSalary,
		Deductions:   p.Deductions,
		NetSalary:    p.NetSalary,
		Attendance:   p.Attendance,
		Bonus:        p.Bonus,
		Status:       string(p.Status),
		Remarks:      p.Remarks,
		GeneratedBy:  p.GeneratedBy,
		GeneratedAt:  p.GeneratedAt.Format(time.RFC3339),
		PaidBy:       p.PaidBy,
	}

	if p.PaidAt != nil {
		paidAt := p.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &paidAt
	}

	return resp
}

func toResponses(records []payroll.Payroll) []payroll.PayrollResponse {
	responses := make([]payroll.PayrollResponse, 0, len(records))
	for _, p := range records {
		responses = append(responses, toResponse(p))
	}

	return responses
}
