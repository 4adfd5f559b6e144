package grading

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	MinGPA = 0
	MaxGPA = 10
)

// Semester summarises one completed semester. NaN fields mean the value
// was missing or not a number.
type Semester struct {
	GPA     float64
	Credits float64
}

// CGPAResult is the outcome of ComputeCGPA.
type CGPAResult struct {
	CGPA         float64
	TotalCredits float64
}

// ComputeCGPA returns the credit-weighted average of the semester GPAs,
// rounded half up to two decimals.
func ComputeCGPA(semesters []Semester) (CGPAResult, error) {
	if len(semesters) == 0 {
		return CGPAResult{}, ErrNoSemesters
	}

	for i, s := range semesters {
		if err := validateSemester(i+1, s); err != nil {
			return CGPAResult{}, err
		}
	}

	weightedSum := decimal.Zero
	totalCredits := decimal.Zero

	for _, s := range semesters {
		credits := decimal.NewFromFloat(s.Credits)
		weightedSum = weightedSum.Add(decimal.NewFromFloat(s.GPA).Mul(credits))
		totalCredits = totalCredits.Add(credits)
	}

	total, err := totalAsFloat(totalCredits)
	if err != nil {
		return CGPAResult{}, err
	}

	return CGPAResult{
		CGPA:         weightedAverage(weightedSum, totalCredits),
		TotalCredits: total,
	}, nil
}

func validateSemester(index int, s Semester) error {
	if math.IsNaN(s.GPA) {
		return &ValidationError{Entity: "Semester", Index: index, Message: "GPA is required"}
	}
	if s.GPA < MinGPA || s.GPA > MaxGPA {
		return &ValidationError{Entity: "Semester", Index: index, Message: "GPA must be between 0 and 10"}
	}
	if !isPositive(s.Credits) {
		return &ValidationError{Entity: "Semester", Index: index, Message: "Credits must be a positive number"}
	}
	return nil
}
