// Package synth derives the attributes the upstream directory does not supply.
// Every function is a pure function of the employee id, so the same id always
// yields the same role, department, rating, history, projects and feedback.
package synth

import (
	"math"

	"github.com/spec-kit/employee-dashboard/internal/domain"
)

var roles = []string{
	"Software Engineer",
	"HR Manager",
	"Sales Executive",
	"Marketing Lead",
	"Support Agent",
}

var projectPool = []string{
	"Employee Onboarding System",
	"CRM Integration",
	"Performance Review Tool",
	"Mobile App Redesign",
	"Website Migration",
	"Automation of Payroll",
	"Customer Feedback Analysis",
	"Cloud Infrastructure Setup",
	"Security Audit",
	"Marketing Campaign Launch",
}

var feedbackPool = []string{
	"Great team player and communicator.",
	"Delivered the project ahead of schedule.",
	"Needs to improve time management skills.",
	"Excellent problem-solving skills.",
	"Proactive and self-motivated.",
	"Can work better under pressure.",
	"Shows leadership potential.",
	"Requires more attention to detail.",
	"Consistently meets deadlines.",
	"Shows great initiative.",
}

var performanceLabels = []string{"Excellent", "Good", "Average", "Poor", "Bad"}

var quarters = []string{"Q1 2023", "Q2 2023", "Q3 2023", "Q4 2023"}

const (
	ratingSeedOffset = 5
	picksPerList     = 3
	noBio            = "No bio available"
)

// maxUnit is the largest float64 below 1.
var maxUnit = math.Nextafter(1, 0)

// SeededRandom maps seed to [0, 1) as the fractional part of sin(seed)*10000.
// Tiny negative products round x-floor(x) up to 1, so the result is clamped.
func SeededRandom(seed float64) float64 {
	x := math.Sin(seed) * 10000
	return math.Min(x-math.Floor(x), maxUnit)
}

// Role returns the job title for id.
func Role(id int) string {
	return roles[mod(id, len(roles))]
}

// Department returns the department for id.
func Department(id int) domain.Department {
	return domain.Departments[mod(id, len(domain.Departments))]
}

// Rating returns an integer rating in 1..5 for id.
func Rating(id int) float64 {
	return math.Floor(SeededRandom(float64(id+ratingSeedOffset))*domain.MaxRating) + 1
}

// PerformanceHistory returns one labelled entry per quarter.
func PerformanceHistory(id int) []domain.PerformanceEntry {
	history := make([]domain.PerformanceEntry, 0, len(quarters))
	for idx, quarter := range quarters {
		r := SeededRandom(float64(id*10 + idx))
		label := performanceLabels[int(math.Floor(r*float64(len(performanceLabels))))]
		history = append(history, domain.PerformanceEntry{Quarter: quarter, Label: label})
	}
	return history
}

// Projects returns three consecutive projects starting at an id-derived offset.
func Projects(id int) []string {
	return rotate(projectPool, mod(id, len(projectPool)))
}

// Feedback returns three consecutive feedback lines starting at an id-derived offset.
func Feedback(id int) []string {
	return rotate(feedbackPool, mod(id*3, len(feedbackPool)))
}

// Employee builds the roster record for an upstream user.
func Employee(u domain.UpstreamUser) domain.Employee {
	return domain.Employee{
		ID:         u.ID,
		Name:       u.FullName(),
		Email:      u.Email,
		Phone:      u.Phone,
		Age:        u.Age,
		Department: Department(u.ID),
		Rating:     Rating(u.ID),
		Role:       Role(u.ID),
	}
}

// Detail builds the drill-down view for an upstream user.
func Detail(u domain.UpstreamUser) domain.EmployeeDetail {
	bio := u.Company.Title
	if bio == "" {
		bio = noBio
	}
	return domain.EmployeeDetail{
		Employee:           Employee(u),
		Address:            u.Address.Address + ", " + u.Address.City,
		Bio:                bio,
		PerformanceHistory: PerformanceHistory(u.ID),
		Projects:           Projects(u.ID),
		Feedback:           Feedback(u.ID),
	}
}

func rotate(pool []string, start int) []string {
	out := make([]string, 0, picksPerList)
	for i := 0; i < picksPerList; i++ {
		out = append(out, pool[(start+i)%len(pool)])
	}
	return out
}

// mod keeps negative ids inside the table bounds.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
