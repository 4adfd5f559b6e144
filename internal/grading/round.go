package grading

import (
	"math"

	"github.com/shopspring/decimal"
)

// round2 rounds half up to two decimal places. Averages are never
// negative, so decimal's half-away-from-zero rounding is half-up here.
func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// weightedAverage returns round2(weightedSum / totalCredits).
// totalCredits is always positive by the time this is called.
func weightedAverage(weightedSum, totalCredits decimal.Decimal) float64 {
	return round2(weightedSum.Div(totalCredits))
}

// totalAsFloat converts the summed credits for the response. Sums that do
// not fit in a float64 are reported as ErrCreditsOverflow.
func totalAsFloat(totalCredits decimal.Decimal) (float64, error) {
	f := totalCredits.InexactFloat64()
	if math.IsInf(f, 0) {
		return 0, ErrCreditsOverflow
	}
	return f, nil
}
