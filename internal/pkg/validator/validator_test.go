package validator

import "testing"

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty string", "", true},
		{"only spaces", "   ", true},
		{"tab and newline", "\t\n", true},
		{"word", "abc", false},
		{"padded word", " abc ", false},
	}
	for _, c := range cases {
		if got := IsEmpty(c.input); got != c.want {
			t.Errorf("%s: IsEmpty(%q) = %v, want %v", c.name, c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"admin@dayflow.com", true},
		{"user.name+tag@domain.co", true},
		{"a@b.cd", true},
		{"no-at-sign.com", false},
		{"@missing-local.com", false},
		{"trailing@dot.", false},
		{"bare@domain", false},
		{"", false},
	}
	for _, c := range cases {
		if got := IsValidEmail(c.email); got != c.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", c.email, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"2025-07-01", true},
		{"2000-12-31", true},
		{"2025-02-30", false},
		{"2025-13-01", false},
		{"07/01/2025", false},
		{"2025-7-1", false},
		{"", false},
	}
	for _, c := range cases {
		if _, got := IsValidDate(c.input); got != c.want {
			t.Errorf("IsValidDate(%q) = %v, want %v", c.input, got, c.want)
		}
	}

	parsed, ok := IsValidDate("2025-07-01")
	if !ok || parsed.Year() != 2025 || parsed.Month() != 7 || parsed.Day() != 1 {
		t.Errorf("IsValidDate(2025-07-01) parsed to %v", parsed)
	}
}

func TestIsValidEmployeeID(t *testing.T) {
	cases := []struct {
		id   string
		want bool
	}{
		{"EMP001", true},
		{"EMP042", true},
		{"EMP999", true},
		{"EMP1000", true},
		{"EMP1", false},
		{"EMP01", false},
		{"emp001", false},
		{"EMPabc", false},
		{"001", false},
		{"", false},
	}
	for _, c := range cases {
		if got := IsValidEmployeeID(c.id); got != c.want {
			t.Errorf("IsValidEmployeeID(%q) = %v, want %v", c.id, got, c.want)
		}
	}
}

func TestIsValidObjectID(t *testing.T) {
	cases := []struct {
		name string
		id   string
		want bool
	}{
		{"lowercase hex", "507f1f77bcf86cd799439011", true},
		{"uppercase hex", "65A2B3C4D5E6F7A8B9C0D1E2", true},
		{"too short", "507f1f77bcf86cd79943901", false},
		{"too long", "507f1f77bcf86cd7994390111", false},
		{"non-hex character", "g07f1f77bcf86cd799439011", false},
		{"empty", "", false},
	}
	for _, c := range cases {
		if got := IsValidObjectID(c.id); got != c.want {
			t.Errorf("%s: IsValidObjectID(%q) = %v, want %v", c.name, c.id, got, c.want)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	statuses := []string{"active", "inactive", "terminated"}

	if !IsInSlice("active", statuses) {
		t.Error("IsInSlice(active) = false, want true")
	}
	if IsInSlice("retired", statuses) {
		t.Error("IsInSlice(retired) = true, want false")
	}
	if IsInSlice("active", nil) {
		t.Error("IsInSlice on nil slice = true, want false")
	}
}

func TestValidationErrorsError(t *testing.T) {
	errs := ValidationErrors{
		{Field: "month", Message: "month must be between 1 and 12"},
		{Field: "year", Message: "year must be between 2020 and 2030"},
	}

	want := "month: month must be between 1 and 12; year: year must be between 2020 and 2030"
	if got := errs.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if got := (ValidationErrors{}).Error(); got != "" {
		t.Errorf("empty Error() = %q, want empty", got)
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid email format"},
		{Field: "password", Message: "password is required"},
		{Field: "email", Message: "email already in use"},
	}

	got := errs.ToMap()
	if len(got) != 2 {
		t.Fatalf("ToMap() has %d keys, want 2", len(got))
	}
	if got["email"] != "email already in use" {
		t.Errorf("ToMap()[email] = %q, want the last message", got["email"])
	}
	if got["password"] != "password is required" {
		t.Errorf("ToMap()[password] = %q", got["password"])
	}
}
