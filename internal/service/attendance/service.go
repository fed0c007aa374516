package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
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

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context) (attendance.CheckInResponse, error) {
	employeeID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	now := time.Now()
	today := now.Format("2006-01-02")

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}
	if existing != nil {
		return attendance.CheckInResponse{}, attendance.ErrAlreadyCheckedIn
	}

	// Denormalize who this is so listings don't join per row.
	employeeName := "Unknown"
	department := ""
	if emp, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID); err == nil {
		employeeName = emp.FullName()
		department = emp.Department
	}

	checkInTime := now
	_, err = s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		Department:   department,
		Date:         today,
		CheckIn:      checkInTime.Format("15:04"),
		CheckInTime:  &checkInTime,
		Status:       attendance.StatusPresent,
		WorkingHours: 0,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	return attendance.CheckInResponse{
		CheckIn: checkInTime.Format("15:04"),
		Date:    today,
	}, nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context) (attendance.CheckOutResponse, error) {
	employeeID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	now := time.Now()
	today := now.Format("2006-01-02")

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}
	if existing == nil {
		return attendance.CheckOutResponse{}, attendance.ErrNotCheckedIn
	}
	if existing.HasCheckedOut() {
		return attendance.CheckOutResponse{}, attendance.ErrAlreadyCheckedOut
	}

	checkInTime, err := s.resolveCheckInTime(existing, today)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	workingHours := math.Round(now.Sub(checkInTime).Hours()*100) / 100
	status := attendance.StatusForHours(workingHours)

	update := attendance.CheckOutUpdate{
		CheckOut:     now.Format("15:04"),
		CheckOutTime: now,
		WorkingHours: workingHours,
		Status:       status,
	}
	if err := s.attendanceRepo.CompleteCheckOut(ctx, existing.ID, update); err != nil {
		return attendance.CheckOutResponse{}, err
	}

	return attendance.CheckOutResponse{
		CheckOut:     update.CheckOut,
		WorkingHours: workingHours,
		Status:       string(status),
	}, nil
}

// resolveCheckInTime falls back to the wall-clock string for records
// written before full timestamps were stored.
func (s *AttendanceServiceImpl) resolveCheckInTime(att *attendance.Attendance, today string) (time.Time, error) {
	if att.CheckInTime != nil {
		return *att.CheckInTime, nil
	}

	t, err := time.ParseInLocation("2006-01-02 15:04", today+" "+att.CheckIn, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse check-in time: %w", err)
	}
	return t, nil
}

// GetToday implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetToday(ctx context.Context) (attendance.TodayResponse, error) {
	employeeID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return attendance.TodayResponse{}, err
	}

	today := time.Now().Format("2006-01-02")
	att, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.TodayResponse{}, err
	}
	if att == nil {
		return attendance.TodayResponse{}, nil
	}

	resp := toResponse(*att)
	return attendance.TodayResponse{
		Attendance:    &resp,
		HasCheckedIn:  true,
		HasCheckedOut: att.HasCheckedOut(),
	}, nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
	employeeID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	// Employees only ever see themselves; the employeeId filter is an HR
	// affordance.
	if !user.IsHRRole(user.Role(role)) {
		filter.EmployeeID = &employeeID
	}

	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, s.withEmployeeDetails(ctx, att))
	}

	return responses, nil
}

// withEmployeeDetails backfills denormalized fields for records written
// without them.
func (s *AttendanceServiceImpl) withEmployeeDetails(ctx context.Context, att attendance.Attendance) attendance.AttendanceResponse {
	resp := toResponse(att)
	if resp.EmployeeName != "" {
		return resp
	}

	emp, err := s.employeeRepo.GetByEmployeeID(ctx, att.EmployeeID)
	if err != nil {
		resp.EmployeeName = "Unknown"
		return resp
	}

	resp.EmployeeName = emp.FullName()
	resp.Department = emp.Department
	return resp
}

// GetEmployeeHistory implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetEmployeeHistory(ctx context.Context, employeeID string, month, year int) (attendance.EmployeeHistoryResponse, error) {
	actorID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return attendance.EmployeeHistoryResponse{}, err
	}
	if !user.IsHRRole(user.Role(role)) && actorID != employeeID {
		return attendance.EmployeeHistoryResponse{}, attendance.ErrUnauthorized
	}

	emp, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return attendance.EmployeeHistoryResponse{}, err
	}

	filter := attendance.ListFilter{EmployeeID: &employeeID}
	if month != 0 && year != 0 {
		startDate, endDate := attendance.MonthRange(month, year)
		filter.StartDate = &startDate
		filter.EndDate = &endDate
	}

	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.EmployeeHistoryResponse{}, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, toResponse(att))
	}

	return attendance.EmployeeHistoryResponse{
		Employee: attendance.EmployeeInfo{
			EmployeeID: employeeID,
			Name:       emp.FullName(),
			Department: emp.Department,
			Position:   emp.Position,
		},
		Summary: attendance.Summarize(records),
		Records: responses,
	}, nil
}

// GetSummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetSummary(ctx context.Context, req attendance.SummaryRequest) (attendance.SummaryResponse, error) {
	employeeID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	now := time.Now()
	month := req.Month
	year := req.Year
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}

	startDate, endDate := attendance.MonthRange(month, year)
	filter := attendance.ListFilter{StartDate: &startDate, EndDate: &endDate}

	if user.IsHRRole(user.Role(role)) {
		filter.EmployeeID = req.EmployeeID
	} else {
		filter.EmployeeID = &employeeID
	}

	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	return attendance.SummaryResponse{
		Month:   month,
		Year:    year,
		Summary: attendance.Summarize(records),
	}, nil
}

func toResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:           att.ID.Hex(),
		EmployeeID:   att.EmployeeID,
		EmployeeName: att.EmployeeName,
		Department:   att.Department,
		Date:         att.Date,
		CheckIn:      att.CheckIn,
		CheckOut:     att.CheckOut,
		Status:       string(att.Status),
		WorkingHours: att.WorkingHours,
	}
}
