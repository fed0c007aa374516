package attendance

import "testing"

func TestStatusForHours(t *testing.T) {
	cases := []struct {
		hours float64
		want  Status
	}{
		{0, StatusHalfDay},
		{2.5, StatusHalfDay},
		{3.99, StatusHalfDay},
		{4, StatusPresent},
		{5.5, StatusPresent},
		{7.99, StatusPresent},
		{8, StatusPresent},
		{10, StatusPresent},
	}
	for _, c := range cases {
		if got := StatusForHours(c.hours); got != c.want {
			t.Errorf("StatusForHours(%v) = %q, want %q", c.hours, got, c.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	records := []Attendance{
		{Status: StatusPresent, WorkingHours: 8},
		{Status: StatusPresent, WorkingHours: 7.333},
		{Status: StatusHalfDay, WorkingHours: 3.5},
		{Status: StatusAbsent, WorkingHours: 0},
		{Status: StatusAbsent, WorkingHours: 0},
	}

	s := Summarize(records)

	if s.TotalDays != 5 {
		t.Errorf("TotalDays = %d, want 5", s.TotalDays)
	}
	if s.PresentDays != 2 {
		t.Errorf("PresentDays = %d, want 2", s.PresentDays)
	}
	if s.HalfDays != 1 {
		t.Errorf("HalfDays = %d, want 1", s.HalfDays)
	}
	if s.AbsentDays != 2 {
		t.Errorf("AbsentDays = %d, want 2", s.AbsentDays)
	}
	if s.TotalHours != 18.83 {
		t.Errorf("TotalHours = %v, want 18.83", s.TotalHours)
	}
	if s.AverageHours != 3.77 {
		t.Errorf("AverageHours = %v, want 3.77", s.AverageHours)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalDays != 0 || s.TotalHours != 0 || s.AverageHours != 0 {
		t.Errorf("Summarize(nil) = %+v, want zero summary", s)
	}
}

func TestMonthRange(t *testing.T) {
	cases := []struct {
		month, year int
		start, end  string
	}{
		{1, 2025, "2025-01-01", "2025-02-01"},
		{7, 2025, "2025-07-01", "2025-08-01"},
		{9, 2025, "2025-09-01", "2025-10-01"},
		{11, 2025, "2025-11-01", "2025-12-01"},
		{12, 2025, "2025-12-01", "2026-01-01"},
	}
	for _, c := range cases {
		start, end := MonthRange(c.month, c.year)
		if start != c.start || end != c.end {
			t.Errorf("MonthRange(%d, %d) = (%q, %q), want (%q, %q)",
				c.month, c.year, start, end, c.start, c.end)
		}
	}
}
