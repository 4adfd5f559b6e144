package calculator

import "github.com/go-chi/chi/v5"

// Endpoints lists the paths mounted by RegisterRoutes.
var Endpoints = []string{
	"/calculate/semester-gpa",
	"/calculate/cgpa",
	"/calculate/grades",
}

// RegisterRoutes mounts all calculation endpoints onto the given router
// under the /calculate prefix.
func RegisterRoutes(r chi.Router) {
	r.Route("/calculate", func(r chi.Router) {
		r.Post("/semester-gpa", SemesterGPA)
		r.Post("/cgpa", CGPA)
		r.Get("/grades", GradeScale)
	})
}
