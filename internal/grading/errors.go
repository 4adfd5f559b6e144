package grading

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoSubjects  = errors.New("at least one subject required")
	ErrNoSemesters = errors.New("at least one semester required")

	// ErrCreditsOverflow is returned when every row is valid but the
	// credits add up to more than a float64 can hold.
	ErrCreditsOverflow = errors.New("total credits are too large")
)

// ValidationError reports the first malformed field found in a request.
// Its text is meant to be shown to the user as-is.
type ValidationError struct {
	Entity  string // "Subject" or "Semester"
	Index   int    // 1-based position in the input list
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %d: %s", e.Entity, e.Index, e.Message)
}

// InvalidGradeError is returned when a grade symbol is not on the scale.
type InvalidGradeError struct {
	Grade string
}

func (e *InvalidGradeError) Error() string {
	symbols := make([]string, 0, len(gradeScale))
	for _, g := range Grades() {
		symbols = append(symbols, string(g))
	}
	return fmt.Sprintf("invalid grade %q: must be one of %s", e.Grade, strings.Join(symbols, ", "))
}

// IsInputError reports whether err was caused by the caller's input
// rather than by the service.
func IsInputError(err error) bool {
	var validationErr *ValidationError
	var gradeErr *InvalidGradeError

	switch {
	case errors.As(err, &validationErr), errors.As(err, &gradeErr):
		return true
	case errors.Is(err, ErrNoSubjects), errors.Is(err, ErrNoSemesters), errors.Is(err, ErrCreditsOverflow):
		return true
	default:
		return false
	}
}
