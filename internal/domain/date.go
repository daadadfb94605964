package domain

import "time"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// DateOf returns the calendar date of t as a YYYY-MM-DD string.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// TimeOf returns the clock time of t as a zero-padded HH:MM string.
func TimeOf(t time.Time) string {
	return t.Format(TimeLayout)
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD date string.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ValidTime reports whether s is a well-formed HH:MM time string.
func ValidTime(s string) bool {
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}

// FormatDateBR converts a YYYY-MM-DD string to DD/MM/YYYY for display.
// Malformed input is returned unchanged.
func FormatDateBR(s string) string {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return s
	}
	return t.Format("02/01/2006")
}
