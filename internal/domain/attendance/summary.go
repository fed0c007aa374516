package attendance

import (
	"fmt"
	"math"
)

// Summary aggregates a set of attendance records. Payroll embeds the
// counts per generated record; the reporting endpoints return it as-is.
type Summary struct {
	TotalDays    int     `json:"totalDays"`
	PresentDays  int     `json:"presentDays"`
	HalfDays     int     `json:"halfDays"`
	AbsentDays   int     `json:"absentDays"`
	TotalHours   float64 `json:"totalHours"`
	AverageHours float64 `json:"averageHours"`
}

// Summarize counts records by status and sums working hours. Records with
// an unknown status still count toward TotalDays and TotalHours.
func Summarize(records []Attendance) Summary {
	s := Summary{TotalDays: len(records)}

	for _, r := range records {
		switch r.Status {
		case StatusPresent:
			s.PresentDays++
		case StatusHalfDay:
			s.HalfDays++
		case StatusAbsent:
			s.AbsentDays++
		}
		s.TotalHours += r.WorkingHours
	}

	s.TotalHours = round2(s.TotalHours)
	if s.TotalDays > 0 {
		s.AverageHours = round2(s.TotalHours / float64(s.TotalDays))
	}

	return s
}

// StatusForHours classifies a completed day by its worked hours. Under
// four hours is a half-day; four hours and up counts as present, which
// makes the four-to-eight band an explicit present rather than an
// unhandled gap.
func StatusForHours(hours float64) Status {
	if hours < 4 {
		return StatusHalfDay
	}
	return StatusPresent
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// MonthRange returns the [inclusive, exclusive) date-string bounds of a
// calendar month, rolling December over into January of the next year.
// Both reporting and payroll generation filter the store with it.
func MonthRange(month, year int) (startDate, endDate string) {
	startDate = fmt.Sprintf("%d-%02d-01", year, month)
	if month == 12 {
		endDate = fmt.Sprintf("%d-01-01", year+1)
	} else {
		endDate = fmt.Sprintf("%d-%02d-01", year, month+1)
	}
	return startDate, endDate
}
