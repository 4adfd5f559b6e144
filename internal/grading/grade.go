package grading

// GradeSymbol is a letter grade as it appears on a mark sheet.
type GradeSymbol string

const (
	GradeO     GradeSymbol = "O"
	GradeAPlus GradeSymbol = "A+"
	GradeA     GradeSymbol = "A"
	GradeBPlus GradeSymbol = "B+"
	GradeB     GradeSymbol = "B"
	GradeC     GradeSymbol = "C"
	GradeP     GradeSymbol = "P"
	GradeF     GradeSymbol = "F"
)

// GradePoint is the numeric value a grade contributes to an average.
type GradePoint float64

// gradeScale is ordered from the highest grade to the lowest.
var gradeScale = []struct {
	symbol GradeSymbol
	points GradePoint
}{
	{GradeO, 10},
	{GradeAPlus, 9},
	{GradeA, 8},
	{GradeBPlus, 7},
	{GradeB, 6},
	{GradeC, 5},
	{GradeP, 4},
	{GradeF, 0},
}

var gradePoints = func() map[GradeSymbol]GradePoint {
	m := make(map[GradeSymbol]GradePoint, len(gradeScale))
	for _, g := range gradeScale {
		m[g.symbol] = g.points
	}
	return m
}()

// PointsFor returns the grade point for grade. Matching is exact and
// case-sensitive; anything outside the scale yields *InvalidGradeError.
func PointsFor(grade GradeSymbol) (GradePoint, error) {
	points, ok := gradePoints[grade]
	if !ok {
		return 0, &InvalidGradeError{Grade: string(grade)}
	}
	return points, nil
}

// Grades returns every grade symbol, highest first.
func Grades() []GradeSymbol {
	out := make([]GradeSymbol, len(gradeScale))
	for i, g := range gradeScale {
		out[i] = g.symbol
	}
	return out
}
