package cron

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/employee"
)

// AttendanceJobs contains attendance-related cron jobs
type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

// NewAttendanceJobs creates attendance cron jobs
func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// RegisterJobs registers all attendance-related cron jobs
func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees writes a zero-hour absent record for every active
// employee who never checked in yesterday, so payroll counts the day.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	yesterday := time.Now().UTC().AddDate(0, 0, -1)

	// Saturdays and Sundays are not working days.
	if wd := yesterday.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return nil
	}

	slog.Info("Cron: Starting mark absent employees job")

	active := employee.StatusActive
	employees, err := j.employeeRepo.List(ctx, employee.ListFilter{Status: &active})
	if err != nil {
		return err
	}

	date := yesterday.Format("2006-01-02")
	marked := 0

	for _, emp := range employees {
		existing, err := j.attendanceRepo.GetByEmployeeAndDate(ctx, emp.EmployeeID, date)
		if err != nil {
			slog.Error("Cron: Failed to check attendance", "employee_id", emp.EmployeeID, "error", err)
			continue
		}
		if existing != nil {
			continue
		}

		record := attendance.Attendance{
			EmployeeID:   emp.EmployeeID,
			EmployeeName: emp.FullName(),
			Department:   emp.Department,
			Date:         date,
			Status:       attendance.StatusAbsent,
			WorkingHours: 0,
			CreatedAt:    time.Now().UTC(),
		}

		if _, err := j.attendanceRepo.Create(ctx, record); err != nil {
			// A record landing between the check and the insert means the
			// day is already covered.
			if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
				continue
			}
			slog.Error("Cron: Failed to mark absent", "employee_id", emp.EmployeeID, "error", err)
			continue
		}

		marked++
	}

	slog.Info("Cron: Marked absent employees", "date", date, "count", marked)
	return nil
}
