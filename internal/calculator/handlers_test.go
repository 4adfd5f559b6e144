package calculator

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gpa-calculator/internal/handlers"
	"gpa-calculator/internal/testutil"

	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(t *testing.T, h http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	return testutil.ExecuteRequest(testutil.NewJSONRequest(http.MethodPost, path, body), h)
}

func TestSemesterGPA(t *testing.T) {
	require.NoError(t, InitMetrics())

	tests := []struct {
		name        string
		body        string
		wantGPA     float64
		wantCredits float64
	}{
		{
			name:        "numeric credits",
			body:        `{"subjects":[{"name":"Math","credits":4,"grade":"O"},{"name":"Phy","credits":3,"grade":"B+"}]}`,
			wantGPA:     8.71,
			wantCredits: 7,
		},
		{
			name:        "numeric strings are accepted",
			body:        `{"subjects":[{"name":"Math","credits":"4","grade":"O"},{"name":"Phy","credits":" 3 ","grade":"B+"}]}`,
			wantGPA:     8.71,
			wantCredits: 7,
		},
		{
			name:        "unknown fields are ignored",
			body:        `{"subjects":[{"name":"Art","credits":2,"grade":"P","room":"B12"}],"term":"fall"}`,
			wantGPA:     4,
			wantCredits: 2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := post(t, SemesterGPA, "/calculate/semester-gpa", tc.body)
			testutil.CheckResponseCode(t, http.StatusOK, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var resp SemesterGPAResponse
			testutil.DecodeJSONBody(t, w.Body, &resp)
			assert.Equal(t, tc.wantGPA, resp.GPA)
			assert.Equal(t, tc.wantCredits, resp.TotalCredits)
		})
	}
}

func TestSemesterGPAResponseFieldNames(t *testing.T) {
	w := post(t, SemesterGPA, "/calculate/semester-gpa",
		`{"subjects":[{"name":"Math","credits":4,"grade":"O"}]}`)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var payload map[string]any
	testutil.DecodeJSONBody(t, w.Body, &payload)
	assert.Equal(t, map[string]any{"gpa": 10.0, "total_credits": 4.0}, payload)
}

func TestSemesterGPAErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantDetail string
	}{
		{
			name:       "missing name",
			body:       `{"subjects":[{"credits":4,"grade":"O"}]}`,
			wantStatus: http.StatusBadRequest,
			wantDetail: "Subject 1: Name is required",
		},
		{
			name:       "credits not numeric",
			body:       `{"subjects":[{"name":"Math","credits":"four","grade":"O"}]}`,
			wantStatus: http.StatusBadRequest,
			wantDetail: "Subject 1: Credits must be a positive number",
		},
		{
			name:       "credits null",
			body:       `{"subjects":[{"name":"Math","credits":null,"grade":"O"}]}`,
			wantStatus: http.StatusBadRequest,
			wantDetail: "Subject 1: Credits must be a positive number",
		},
		{
			name:       "zero credits on second subject",
			body:       `{"subjects":[{"name":"Math","credits":4,"grade":"O"},{"name":"Phy","credits":0,"grade":"A"}]}`,
			wantStatus: http.StatusBadRequest,
			wantDetail: "Subject 2: Credits must be a positive number",
		},
		{
			name:       "missing grade",
			body:       `{"subjects":[{"name":"Math","credits":4}]}`,
			wantStatus: http.StatusBadRequest,
			wantDetail: "Subject 1: Grade is required",
		},
		{
			name:       "lowercase grade",
			body:       `{"subjects":[{"name":"Math","credits":4,"grade":"o"}]}`,
			wantStatus: http.StatusBadRequest,
			wantDetail: `invalid grade "o": must be one of O, A+, A, B+, B, C, P, F`,
		},
		{
			name:       "empty list",
			body:       `{"subjects":[]}`,
			wantStatus: http.StatusBadRequest,
			wantDetail: "at least one subject required",
		},
		{
			name:       "missing list",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantDetail: "at least one subject required",
		},
		{
			name:       "malformed json",
			body:       `{"subjects":[`,
			wantStatus: http.StatusBadRequest,
			wantDetail: "invalid request body",
		},
		{
			name:       "grade of wrong type",
			body:       `{"subjects":[{"name":"Math","credits":4,"grade":10}]}`,
			wantStatus: http.StatusBadRequest,
			wantDetail: "invalid request body",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := post(t, SemesterGPA, "/calculate/semester-gpa", tc.body)
			testutil.CheckResponseCode(t, tc.wantStatus, w.Code)

			var resp handlers.ErrorResponse
			testutil.DecodeJSONBody(t, w.Body, &resp)
			assert.Equal(t, tc.wantDetail, resp.Detail)
		})
	}
}

func TestCGPA(t *testing.T) {
	w := post(t, CGPA, "/calculate/cgpa",
		`{"semesters":[{"gpa":8.5,"credits":20},{"gpa":"9.0","credits":22}]}`)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var payload map[string]any
	testutil.DecodeJSONBody(t, w.Body, &payload)
	assert.Equal(t, map[string]any{"cgpa": 8.76, "total_credits": 42.0}, payload)
}

func TestCGPAErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantDetail string
	}{
		{
			name:       "gpa missing",
			body:       `{"semesters":[{"credits":20}]}`,
			wantDetail: "Semester 1: GPA is required",
		},
		{
			name:       "gpa blank string",
			body:       `{"semesters":[{"gpa":"","credits":20}]}`,
			wantDetail: "Semester 1: GPA is required",
		},
		{
			name:       "go literal syntax is not a number",
			body:       `{"semesters":[{"gpa":"0x1p3","credits":"1_0"}]}`,
			wantDetail: "Semester 1: GPA is required",
		},
		{
			name:       "gpa above range",
			body:       `{"semesters":[{"gpa":8,"credits":20},{"gpa":10.0001,"credits":20}]}`,
			wantDetail: "Semester 2: GPA must be between 0 and 10",
		},
		{
			name:       "gpa below range",
			body:       `{"semesters":[{"gpa":-0.0001,"credits":20}]}`,
			wantDetail: "Semester 1: GPA must be between 0 and 10",
		},
		{
			name:       "credits negative",
			body:       `{"semesters":[{"gpa":8,"credits":-3}]}`,
			wantDetail: "Semester 1: Credits must be a positive number",
		},
		{
			name:       "empty list",
			body:       `{"semesters":[]}`,
			wantDetail: "at least one semester required",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := post(t, CGPA, "/calculate/cgpa", tc.body)
			testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)

			var resp handlers.ErrorResponse
			testutil.DecodeJSONBody(t, w.Body, &resp)
			assert.Equal(t, tc.wantDetail, resp.Detail)
		})
	}
}

func TestCalculationRejectsOversizedBody(t *testing.T) {
	body := `{"semesters":[` + strings.Repeat(`{"gpa":8,"credits":20},`, 50) + `{"gpa":8,"credits":20}]}`
	h := http.MaxBytesHandler(http.HandlerFunc(CGPA), 64)

	w := testutil.ExecuteRequest(testutil.NewJSONRequest(http.MethodPost, "/calculate/cgpa", body), h)

	testutil.CheckResponseCode(t, http.StatusRequestEntityTooLarge, w.Code)

	var resp handlers.ErrorResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)
	assert.Equal(t, "request body too large", resp.Detail)
}

func TestCalculationObservesResultHistogram(t *testing.T) {
	w := post(t, CGPA, "/calculate/cgpa", `{"semesters":[{"gpa":7,"credits":20}]}`)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	assert.GreaterOrEqual(t, promtestutil.CollectAndCount(resultValues, "gpa_result_value"), 1)
}

func TestGradeScale(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/calculate/grades", nil)
	w := testutil.ExecuteRequest(req, http.HandlerFunc(GradeScale))
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp GradeScaleResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)

	require.Len(t, resp.Grades, 8)
	assert.Equal(t, GradeScaleEntry{Grade: "O", Points: 10}, resp.Grades[0])
	assert.Equal(t, GradeScaleEntry{Grade: "B+", Points: 7}, resp.Grades[3])
	assert.Equal(t, GradeScaleEntry{Grade: "F", Points: 0}, resp.Grades[7])
}

func TestCalculationRejectsCreditsOverflow(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		path    string
		body    string
	}{
		{
			name:    "semester gpa",
			handler: SemesterGPA,
			path:    "/calculate/semester-gpa",
			body:    `{"subjects":[{"name":"A","credits":1e308,"grade":"O"},{"name":"B","credits":1e308,"grade":"A"}]}`,
		},
		{
			name:    "cgpa",
			handler: CGPA,
			path:    "/calculate/cgpa",
			body:    `{"semesters":[{"gpa":9,"credits":1e308},{"gpa":8,"credits":1e308}]}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := post(t, tc.handler, tc.path, tc.body)
			testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)

			var resp handlers.ErrorResponse
			testutil.DecodeJSONBody(t, w.Body, &resp)
			assert.Equal(t, "total credits are too large", resp.Detail)
		})
	}
}
