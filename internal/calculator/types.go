package calculator

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"gpa-calculator/internal/grading"
)

// decimalNumber matches plain decimal notation with an optional exponent.
// It keeps strconv's Go-literal forms ("0x1p3", "1_0", "Inf") out.
var decimalNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// Number is a JSON numeric field that also accepts numeric strings.
// Missing, null or non-numeric values decode to an invalid Number, which
// the grading rules report as "not a number".
type Number struct {
	value float64
	valid bool
}

// NewNumber returns a valid Number holding v.
func NewNumber(v float64) Number {
	return Number{value: v, valid: true}
}

func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case float64:
		*n = NewNumber(v)
	case string:
		if f, ok := parseDecimal(v); ok {
			*n = NewNumber(f)
		}
	}
	return nil
}

func parseDecimal(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if !decimalNumber.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Float64 returns the value, or NaN when the field was not a number.
func (n Number) Float64() float64 {
	if !n.valid {
		return math.NaN()
	}
	return n.value
}

// SubjectInput is one row of POST /calculate/semester-gpa.
type SubjectInput struct {
	Name    string `json:"name"`
	Credits Number `json:"credits"`
	Grade   string `json:"grade"`
}

// SemesterGPARequest is the JSON body for POST /calculate/semester-gpa.
type SemesterGPARequest struct {
	Subjects []SubjectInput `json:"subjects"`
}

// SemesterGPAResponse is the JSON response for POST /calculate/semester-gpa.
type SemesterGPAResponse struct {
	GPA          float64 `json:"gpa"`
	TotalCredits float64 `json:"total_credits"`
}

// SemesterInput is one row of POST /calculate/cgpa.
type SemesterInput struct {
	GPA     Number `json:"gpa"`
	Credits Number `json:"credits"`
}

// CGPARequest is the JSON body for POST /calculate/cgpa.
type CGPARequest struct {
	Semesters []SemesterInput `json:"semesters"`
}

// CGPAResponse is the JSON response for POST /calculate/cgpa.
type CGPAResponse struct {
	CGPA         float64 `json:"cgpa"`
	TotalCredits float64 `json:"total_credits"`
}

// GradeScaleEntry pairs a grade symbol with its points.
type GradeScaleEntry struct {
	Grade  string  `json:"grade"`
	Points float64 `json:"points"`
}

// GradeScaleResponse is the JSON response for GET /calculate/grades.
type GradeScaleResponse struct {
	Grades []GradeScaleEntry `json:"grades"`
}

func (req SemesterGPARequest) subjects() []grading.Subject {
	out := make([]grading.Subject, len(req.Subjects))
	for i, s := range req.Subjects {
		out[i] = grading.Subject{
			Name:    s.Name,
			Credits: s.Credits.Float64(),
			Grade:   grading.GradeSymbol(s.Grade),
		}
	}
	return out
}

func (req CGPARequest) semesters() []grading.Semester {
	out := make([]grading.Semester, len(req.Semesters))
	for i, s := range req.Semesters {
		out[i] = grading.Semester{
			GPA:     s.GPA.Float64(),
			Credits: s.Credits.Float64(),
		}
	}
	return out
}
