package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/validator"
)

// ===== TEST FAKES =====

type fakeAttendanceRepo struct {
	records []attendance.Attendance
}

func (f *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	for _, r := range f.records {
		if r.EmployeeID == att.EmployeeID && r.Date == att.Date {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
	}
	att.ID = primitive.NewObjectID()
	f.records = append(f.records, att)
	return att, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date string) (*attendance.Attendance, error) {
	for i := range f.records {
		if f.records[i].EmployeeID == employeeID && f.records[i].Date == date {
			att := f.records[i]
			return &att, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) CompleteCheckOut(_ context.Context, id primitive.ObjectID, update attendance.CheckOutUpdate) error {
	for i := range f.records {
		if f.records[i].ID != id {
			continue
		}
		checkOut := update.CheckOut
		checkOutTime := update.CheckOutTime
		f.records[i].CheckOut = &checkOut
		f.records[i].CheckOutTime = &checkOutTime
		f.records[i].WorkingHours = update.WorkingHours
		f.records[i].Status = update.Status
		now := time.Now().UTC()
		f.records[i].UpdatedAt = &now
		return nil
	}
	return attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) List(_ context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, r := range f.records {
		if filter.Date != nil && *filter.Date != "" && r.Date != *filter.Date {
			continue
		}
		if filter.EmployeeID != nil && r.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.StartDate != nil && r.Date < *filter.StartDate {
			continue
		}
		if filter.EndDate != nil && r.Date >= *filter.EndDate {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByEmployeeAndDateRange(_ context.Context, employeeID string, startDate, endDate string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, r := range f.records {
		if r.EmployeeID == employeeID && r.Date >= startDate && r.Date < endDate {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees = append(f.employees, emp)
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmployeeID(_ context.Context, employeeID string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.EmployeeID == employeeID {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(context.Context, employee.ListFilter) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) ExistsByEmail(context.Context, string, string) (bool, error) {
	return false, nil
}

func (f *fakeEmployeeRepo) Update(context.Context, employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *fakeEmployeeRepo) Delete(context.Context, string) error {
	return nil
}

// ===== TEST HELPERS =====

func authContext(t *testing.T, employeeID, role string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("attendance-test-secret"), nil)
	token, _, err := ja.Encode(map[string]any{
		"employee_id": employeeID,
		"role":        role,
		"type":        "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func testEmployee(employeeID, department string) employee.Employee {
	return employee.Employee{
		EmployeeID:    employeeID,
		FirstName:     "Test",
		LastName:      employeeID,
		Email:         employeeID + "@example.com",
		Phone:         "5550000",
		Department:    department,
		Position:      "Engineer",
		Status:        employee.StatusActive,
		DateOfJoining: time.Date(2022, 3, 15, 0, 0, 0, 0, time.UTC),
	}
}

// todayRecord is an open check-in for the current date. The check-in
// moment is a timestamp, so tests can place it hours in the past without
// caring about the wall clock.
func todayRecord(employeeID string, checkedInAt time.Time) attendance.Attendance {
	checkIn := checkedInAt
	return attendance.Attendance{
		ID:          primitive.NewObjectID(),
		EmployeeID:  employeeID,
		Date:        time.Now().Format("2006-01-02"),
		CheckIn:     checkedInAt.Format("15:04"),
		CheckInTime: &checkIn,
		Status:      attendance.StatusPresent,
		CreatedAt:   time.Now().UTC(),
	}
}

func dayRecord(employeeID, date string, status attendance.Status, hours float64) attendance.Attendance {
	return attendance.Attendance{
		ID:           primitive.NewObjectID(),
		EmployeeID:   employeeID,
		Date:         date,
		Status:       status,
		WorkingHours: hours,
	}
}

func recordFor(t *testing.T, repo *fakeAttendanceRepo, employeeID, date string) attendance.Attendance {
	t.Helper()
	for _, r := range repo.records {
		if r.EmployeeID == employeeID && r.Date == date {
			return r
		}
	}
	t.Fatalf("no attendance record for %s on %s", employeeID, date)
	return attendance.Attendance{}
}

// ===== CHECK-IN TESTS =====

func TestAttendanceService_CheckIn_CreatesTodayRecord(t *testing.T) {
	attRepo := &fakeAttendanceRepo{}
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{testEmployee("EMP002", "Engineering")}}
	svc := NewAttendanceService(attRepo, empRepo)

	resp, err := svc.CheckIn(authContext(t, "EMP002", "employee"))

	require.NoError(t, err)
	today := time.Now().Format("2006-01-02")
	assert.Equal(t, today, resp.Date)
	assert.NotEmpty(t, resp.CheckIn)

	stored := recordFor(t, attRepo, "EMP002", today)
	assert.Equal(t, attendance.StatusPresent, stored.Status)
	assert.Equal(t, 0.0, stored.WorkingHours)
	assert.Equal(t, "Test EMP002", stored.EmployeeName)
	assert.Equal(t, "Engineering", stored.Department)
	assert.NotNil(t, stored.CheckInTime)
}

func TestAttendanceService_CheckIn_RejectsSecondCheckIn(t *testing.T) {
	attRepo := &fakeAttendanceRepo{}
	svc := NewAttendanceService(attRepo, &fakeEmployeeRepo{})
	ctx := authContext(t, "EMP002", "employee")

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestAttendanceService_CheckIn_UnknownEmployeeStillRecords(t *testing.T) {
	attRepo := &fakeAttendanceRepo{}
	svc := NewAttendanceService(attRepo, &fakeEmployeeRepo{})

	_, err := svc.CheckIn(authContext(t, "EMP009", "employee"))

	require.NoError(t, err)
	stored := recordFor(t, attRepo, "EMP009", time.Now().Format("2006-01-02"))
	assert.Equal(t, "Unknown", stored.EmployeeName)
}

// ===== CHECK-OUT TESTS =====

func TestAttendanceService_CheckOut_ComputesHoursAndStatus(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		todayRecord("EMP002", time.Now().Add(-6*time.Hour)),
	}}
	svc := NewAttendanceService(attRepo, &fakeEmployeeRepo{})

	resp, err := svc.CheckOut(authContext(t, "EMP002", "employee"))

	require.NoError(t, err)
	assert.InDelta(t, 6.0, resp.WorkingHours, 0.01)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
	assert.NotEmpty(t, resp.CheckOut)

	stored := recordFor(t, attRepo, "EMP002", time.Now().Format("2006-01-02"))
	assert.True(t, stored.HasCheckedOut())
	assert.InDelta(t, 6.0, stored.WorkingHours, 0.01)
}

func TestAttendanceService_CheckOut_ShortDayIsHalfDay(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		todayRecord("EMP002", time.Now().Add(-2*time.Hour)),
	}}
	svc := NewAttendanceService(attRepo, &fakeEmployeeRepo{})

	resp, err := svc.CheckOut(authContext(t, "EMP002", "employee"))

	require.NoError(t, err)
	assert.InDelta(t, 2.0, resp.WorkingHours, 0.01)
	assert.Equal(t, string(attendance.StatusHalfDay), resp.Status)
}

func TestAttendanceService_CheckOut_WithoutCheckIn(t *testing.T) {
	svc := NewAttendanceService(&fakeAttendanceRepo{}, &fakeEmployeeRepo{})

	_, err := svc.CheckOut(authContext(t, "EMP002", "employee"))

	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestAttendanceService_CheckOut_Twice(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		todayRecord("EMP002", time.Now().Add(-6*time.Hour)),
	}}
	svc := NewAttendanceService(attRepo, &fakeEmployeeRepo{})
	ctx := authContext(t, "EMP002", "employee")

	_, err := svc.CheckOut(ctx)
	require.NoError(t, err)

	_, err = svc.CheckOut(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestAttendanceService_CheckOut_LegacyRecordParsesWallClock(t *testing.T) {
	// Records written before timestamps were stored only carry the HH:MM
	// string; checking out still works off the parsed wall clock.
	legacy := todayRecord("EMP002", time.Now())
	legacy.CheckIn = "00:00"
	legacy.CheckInTime = nil
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{legacy}}
	svc := NewAttendanceService(attRepo, &fakeEmployeeRepo{})

	resp, err := svc.CheckOut(authContext(t, "EMP002", "employee"))

	require.NoError(t, err)
	assert.GreaterOrEqual(t, resp.WorkingHours, 0.0)
	stored := recordFor(t, attRepo, "EMP002", time.Now().Format("2006-01-02"))
	assert.True(t, stored.HasCheckedOut())
}

// ===== TODAY TESTS =====

func TestAttendanceService_GetToday_TracksTheDay(t *testing.T) {
	attRepo := &fakeAttendanceRepo{}
	svc := NewAttendanceService(attRepo, &fakeEmployeeRepo{})
	ctx := authContext(t, "EMP002", "employee")

	resp, err := svc.GetToday(ctx)
	require.NoError(t, err)
	assert.False(t, resp.HasCheckedIn)
	assert.Nil(t, resp.Attendance)

	_, err = svc.CheckIn(ctx)
	require.NoError(t, err)

	resp, err = svc.GetToday(ctx)
	require.NoError(t, err)
	assert.True(t, resp.HasCheckedIn)
	assert.False(t, resp.HasCheckedOut)
	require.NotNil(t, resp.Attendance)
	assert.Equal(t, "EMP002", resp.Attendance.EmployeeID)

	_, err = svc.CheckOut(ctx)
	require.NoError(t, err)

	resp, err = svc.GetToday(ctx)
	require.NoError(t, err)
	assert.True(t, resp.HasCheckedOut)
}

// ===== LIST TESTS =====

func TestAttendanceService_List_EmployeeScopedToSelf(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		dayRecord("EMP002", "2025-07-01", attendance.StatusPresent, 8),
		dayRecord("EMP003", "2025-07-01", attendance.StatusPresent, 8),
	}}
	svc := NewAttendanceService(attRepo, &fakeEmployeeRepo{})

	otherID := "EMP003"
	records, err := svc.List(authContext(t, "EMP002", "employee"), attendance.ListFilter{EmployeeID: &otherID})

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "EMP002", records[0].EmployeeID)
}

func TestAttendanceService_List_HRFiltersAnyEmployee(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		dayRecord("EMP002", "2025-07-01", attendance.StatusPresent, 8),
		dayRecord("EMP003", "2025-07-01", attendance.StatusPresent, 8),
	}}
	svc := NewAttendanceService(attRepo, &fakeEmployeeRepo{})

	otherID := "EMP003"
	records, err := svc.List(authContext(t, "EMP001", "hr"), attendance.ListFilter{EmployeeID: &otherID})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "EMP003", records[0].EmployeeID)

	all, err := svc.List(authContext(t, "EMP001", "hr"), attendance.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAttendanceService_List_BackfillsEmployeeName(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		dayRecord("EMP002", "2025-07-01", attendance.StatusPresent, 8),
		dayRecord("EMP009", "2025-07-02", attendance.StatusPresent, 8),
	}}
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{testEmployee("EMP002", "Engineering")}}
	svc := NewAttendanceService(attRepo, empRepo)

	records, err := svc.List(authContext(t, "EMP001", "hr"), attendance.ListFilter{})

	require.NoError(t, err)
	require.Len(t, records, 2)
	byEmployee := make(map[string]attendance.AttendanceResponse, len(records))
	for _, r := range records {
		byEmployee[r.EmployeeID] = r
	}
	assert.Equal(t, "Test EMP002", byEmployee["EMP002"].EmployeeName)
	assert.Equal(t, "Engineering", byEmployee["EMP002"].Department)
	assert.Equal(t, "Unknown", byEmployee["EMP009"].EmployeeName)
}

func TestAttendanceService_List_ValidatesDate(t *testing.T) {
	svc := NewAttendanceService(&fakeAttendanceRepo{}, &fakeEmployeeRepo{})

	badDate := "07/01/2025"
	_, err := svc.List(authContext(t, "EMP002", "employee"), attendance.ListFilter{Date: &badDate})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "date")
}

// ===== HISTORY TESTS =====

func TestAttendanceService_GetEmployeeHistory_MonthWindow(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		dayRecord("EMP002", "2025-07-01", attendance.StatusPresent, 8),
		dayRecord("EMP002", "2025-07-15", attendance.StatusHalfDay, 3.5),
		dayRecord("EMP002", "2025-08-01", attendance.StatusPresent, 8),
	}}
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{testEmployee("EMP002", "Engineering")}}
	svc := NewAttendanceService(attRepo, empRepo)

	history, err := svc.GetEmployeeHistory(authContext(t, "EMP002", "employee"), "EMP002", 7, 2025)

	require.NoError(t, err)
	assert.Equal(t, "Test EMP002", history.Employee.Name)
	assert.Equal(t, "Engineering", history.Employee.Department)
	assert.Len(t, history.Records, 2)
	assert.Equal(t, 2, history.Summary.TotalDays)
	assert.Equal(t, 1, history.Summary.PresentDays)
	assert.Equal(t, 1, history.Summary.HalfDays)
	assert.Equal(t, 11.5, history.Summary.TotalHours)
	assert.Equal(t, 5.75, history.Summary.AverageHours)
}

func TestAttendanceService_GetEmployeeHistory_AllTimeWhenNoPeriod(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		dayRecord("EMP002", "2025-06-01", attendance.StatusPresent, 8),
		dayRecord("EMP002", "2025-07-01", attendance.StatusPresent, 8),
	}}
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{testEmployee("EMP002", "Engineering")}}
	svc := NewAttendanceService(attRepo, empRepo)

	history, err := svc.GetEmployeeHistory(authContext(t, "EMP001", "hr"), "EMP002", 0, 0)

	require.NoError(t, err)
	assert.Len(t, history.Records, 2)
}

func TestAttendanceService_GetEmployeeHistory_ForbidsOtherEmployees(t *testing.T) {
	svc := NewAttendanceService(&fakeAttendanceRepo{}, &fakeEmployeeRepo{})

	_, err := svc.GetEmployeeHistory(authContext(t, "EMP003", "employee"), "EMP002", 7, 2025)

	assert.ErrorIs(t, err, attendance.ErrUnauthorized)
}

func TestAttendanceService_GetEmployeeHistory_UnknownEmployee(t *testing.T) {
	svc := NewAttendanceService(&fakeAttendanceRepo{}, &fakeEmployeeRepo{})

	_, err := svc.GetEmployeeHistory(authContext(t, "EMP001", "hr"), "EMP404", 7, 2025)

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

// ===== SUMMARY TESTS =====

func TestAttendanceService_GetSummary_EmployeeScopedToSelf(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		dayRecord("EMP002", "2025-07-01", attendance.StatusPresent, 8),
		dayRecord("EMP002", "2025-07-02", attendance.StatusAbsent, 0),
		dayRecord("EMP003", "2025-07-01", attendance.StatusPresent, 8),
	}}
	svc := NewAttendanceService(attRepo, &fakeEmployeeRepo{})

	otherID := "EMP003"
	resp, err := svc.GetSummary(authContext(t, "EMP002", "employee"), attendance.SummaryRequest{
		Month:      7,
		Year:       2025,
		EmployeeID: &otherID,
	})

	require.NoError(t, err)
	assert.Equal(t, 7, resp.Month)
	assert.Equal(t, 2025, resp.Year)
	assert.Equal(t, 2, resp.TotalDays)
	assert.Equal(t, 1, resp.PresentDays)
	assert.Equal(t, 1, resp.AbsentDays)
	assert.Equal(t, 8.0, resp.TotalHours)
}

func TestAttendanceService_GetSummary_HRFiltersAnyEmployee(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		dayRecord("EMP002", "2025-07-01", attendance.StatusPresent, 8),
		dayRecord("EMP002", "2025-07-02", attendance.StatusPresent, 8),
		dayRecord("EMP003", "2025-07-01", attendance.StatusPresent, 8),
	}}
	svc := NewAttendanceService(attRepo, &fakeEmployeeRepo{})

	otherID := "EMP003"
	scoped, err := svc.GetSummary(authContext(t, "EMP001", "hr"), attendance.SummaryRequest{
		Month:      7,
		Year:       2025,
		EmployeeID: &otherID,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, scoped.TotalDays)

	all, err := svc.GetSummary(authContext(t, "EMP001", "hr"), attendance.SummaryRequest{Month: 7, Year: 2025})
	require.NoError(t, err)
	assert.Equal(t, 3, all.TotalDays)
}

func TestAttendanceService_GetSummary_DefaultsToCurrentPeriod(t *testing.T) {
	now := time.Now()
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		dayRecord("EMP002", now.Format("2006-01-02"), attendance.StatusPresent, 8),
	}}
	svc := NewAttendanceService(attRepo, &fakeEmployeeRepo{})

	resp, err := svc.GetSummary(authContext(t, "EMP002", "employee"), attendance.SummaryRequest{})

	require.NoError(t, err)
	assert.Equal(t, int(now.Month()), resp.Month)
	assert.Equal(t, now.Year(), resp.Year)
	assert.Equal(t, 1, resp.TotalDays)
}
