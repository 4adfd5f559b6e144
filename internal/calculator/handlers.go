package calculator

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"gpa-calculator/internal/grading"
	"gpa-calculator/internal/handlers"
	"gpa-calculator/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

const (
	opSemesterGPA = "semester_gpa"
	opCGPA        = "cgpa"
)

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

// SemesterGPA handles POST /calculate/semester-gpa
func SemesterGPA(w http.ResponseWriter, r *http.Request) {
	handleCalculation(w, r, opSemesterGPA, func(req SemesterGPARequest) (outcome, error) {
		res, err := grading.ComputeGPA(req.subjects())
		if err != nil {
			return outcome{}, err
		}
		return outcome{
			value:   res.GPA,
			credits: res.TotalCredits,
			items:   len(req.Subjects),
			body:    SemesterGPAResponse{GPA: res.GPA, TotalCredits: res.TotalCredits},
		}, nil
	})
}

// CGPA handles POST /calculate/cgpa
func CGPA(w http.ResponseWriter, r *http.Request) {
	handleCalculation(w, r, opCGPA, func(req CGPARequest) (outcome, error) {
		res, err := grading.ComputeCGPA(req.semesters())
		if err != nil {
			return outcome{}, err
		}
		return outcome{
			value:   res.CGPA,
			credits: res.TotalCredits,
			items:   len(req.Semesters),
			body:    CGPAResponse{CGPA: res.CGPA, TotalCredits: res.TotalCredits},
		}, nil
	})
}

// GradeScale handles GET /calculate/grades so clients can build their
// grade pickers from the same table the calculator uses.
func GradeScale(w http.ResponseWriter, r *http.Request) {
	grades := grading.Grades()
	resp := GradeScaleResponse{Grades: make([]GradeScaleEntry, 0, len(grades))}

	for _, g := range grades {
		points, err := grading.PointsFor(g)
		if err != nil {
			handlers.WriteError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		resp.Grades = append(resp.Grades, GradeScaleEntry{Grade: string(g), Points: float64(points)})
	}

	handlers.WriteJSON(w, http.StatusOK, resp)
}

// outcome is what a calculation hands back to handleCalculation.
type outcome struct {
	value   float64
	credits float64
	items   int
	body    any
}

// handleCalculation is the shared implementation for both calculations:
// child span, body decoding, timed computation, metrics, trace-correlated
// logging and the JSON response.
func handleCalculation[Req any](w http.ResponseWriter, r *http.Request, opName string, compute func(Req) (outcome, error)) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	// --- 1. Custom child span ---
	ctx, span := tracer.Start(ctx, fmt.Sprintf("calculator.%s", opName),
		trace.WithAttributes(
			attribute.String("calculator.operation", opName),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	// --- 2. Decode request body ---
	var req Req
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		status, msg := decodeFailure(err)
		observability.RecordError(ctx, span, logger, errorCounter, opName, msg, err, status, w)
		return
	}

	// --- 3. Validate and compute (timed for histogram) ---
	start := time.Now()
	out, err := compute(req)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		if grading.IsInputError(err) {
			observability.RecordError(ctx, span, logger, errorCounter, opName, err.Error(), err, http.StatusBadRequest, w)
			return
		}
		observability.RecordError(ctx, span, logger, errorCounter, opName, "internal server error", err, http.StatusInternalServerError, w)
		return
	}

	// --- 4. Record metrics ---
	attrs := metric.WithAttributes(attribute.String("operation", opName))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)
	resultGauge.Record(ctx, out.value, attrs)
	resultValues.WithLabelValues(opName).Observe(out.value)

	// --- 5. Span event with the result ---
	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.Float64("result", out.value),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(
		attribute.Int("calculator.items", out.items),
		attribute.Float64("calculator.total_credits", out.credits),
		attribute.Float64("calculator.result", out.value),
	)
	span.SetStatus(codes.Ok, "")

	// --- 6. Structured log with trace correlation ---
	logger.Info("grade calculation completed",
		zap.String("operation", opName),
		zap.Int("items", out.items),
		zap.Float64("total_credits", out.credits),
		zap.Float64("result", out.value),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	// --- 7. Write JSON response ---
	handlers.WriteJSON(w, http.StatusOK, out.body)
}

// decodeFailure maps a body decoding error to a status and client message.
func decodeFailure(err error) (int, string) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge, "request body too large"
	}
	return http.StatusBadRequest, "invalid request body"
}
