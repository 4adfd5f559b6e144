package grading

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Subject is one course taken in a semester. Name is only used in
// validation; it does not affect the result. A NaN Credits means the
// value was missing or not a number.
type Subject struct {
	Name    string
	Credits float64
	Grade   GradeSymbol
}

// GPAResult is the outcome of ComputeGPA.
type GPAResult struct {
	GPA          float64
	TotalCredits float64
}

// ComputeGPA returns the credit-weighted grade point average of subjects,
// rounded half up to two decimals. Every subject is validated before any
// grade is looked up, so a *ValidationError for a later subject takes
// precedence over an unknown grade earlier in the list.
func ComputeGPA(subjects []Subject) (GPAResult, error) {
	if len(subjects) == 0 {
		return GPAResult{}, ErrNoSubjects
	}

	for i, s := range subjects {
		if err := validateSubject(i+1, s); err != nil {
			return GPAResult{}, err
		}
	}

	weightedSum := decimal.Zero
	totalCredits := decimal.Zero

	for _, s := range subjects {
		points, err := PointsFor(s.Grade)
		if err != nil {
			return GPAResult{}, err
		}

		credits := decimal.NewFromFloat(s.Credits)
		weightedSum = weightedSum.Add(credits.Mul(decimal.NewFromFloat(float64(points))))
		totalCredits = totalCredits.Add(credits)
	}

	total, err := totalAsFloat(totalCredits)
	if err != nil {
		return GPAResult{}, err
	}

	return GPAResult{
		GPA:          weightedAverage(weightedSum, totalCredits),
		TotalCredits: total,
	}, nil
}

func validateSubject(index int, s Subject) error {
	if strings.TrimSpace(s.Name) == "" {
		return &ValidationError{Entity: "Subject", Index: index, Message: "Name is required"}
	}
	if !isPositive(s.Credits) {
		return &ValidationError{Entity: "Subject", Index: index, Message: "Credits must be a positive number"}
	}
	if s.Grade == "" {
		return &ValidationError{Entity: "Subject", Index: index, Message: "Grade is required"}
	}
	return nil
}

// isPositive is false for NaN and infinities.
func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
