package validator

import (
	"regexp"
	"slices"
	"strings"
	"time"
)

// ValidationError is one rejected field with the reason.
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors collects every rejected field of a request so the
// caller sees all problems at once rather than one per attempt.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var b strings.Builder
	for i, err := range v {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(err.Field)
		b.WriteString(": ")
		b.WriteString(err.Message)
	}
	return b.String()
}

// ToMap keys messages by field for JSON error payloads. A field listed
// twice keeps the last message.
func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v))
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidDate parses a "YYYY-MM-DD" string, the format every date field
// in the API uses.
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Employee IDs look like EMP001; the numeric part is zero-padded to at
// least three digits and grows unbounded.
var employeeIDRegex = regexp.MustCompile(`^EMP\d{3,}$`)

func IsValidEmployeeID(id string) bool {
	return employeeIDRegex.MatchString(id)
}

// IsValidObjectID checks for 24 hex characters, either case.
var objectIDRegex = regexp.MustCompile(`^[0-9a-f]{24}$`)

func IsValidObjectID(id string) bool {
	return objectIDRegex.MatchString(strings.ToLower(id))
}

func IsInSlice(value string, slice []string) bool {
	return slices.Contains(slice, value)
}
