package synth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/employee-dashboard/internal/domain"
)

func TestSeededRandomRange(t *testing.T) {
	for seed := -50; seed <= 500; seed++ {
		r := SeededRandom(float64(seed))
		require.GreaterOrEqual(t, r, 0.0, "seed %d", seed)
		require.Less(t, r, 1.0, "seed %d", seed)
	}
	assert.Equal(t, SeededRandom(12), SeededRandom(12))
}

func TestDetailIsDeterministic(t *testing.T) {
	u := domain.UpstreamUser{ID: 7, FirstName: "Alexander", LastName: "Jones", Email: "alexander.jones@x.dummyjson.com"}
	u.Address.Address = "1 Main St"
	u.Address.City = "Springfield"

	first := Detail(u)
	second := Detail(u)
	assert.Equal(t, first, second)

	assert.Equal(t, "Sales Executive", first.Role)
	assert.Equal(t, domain.DepartmentSales, first.Department)
	assert.Equal(t, "1 Main St, Springfield", first.Address)
	assert.Equal(t, "No bio available", first.Bio)
	assert.Len(t, first.PerformanceHistory, 4)
	assert.Equal(t, "Q1 2023", first.PerformanceHistory[0].Quarter)
	assert.Equal(t, "Q4 2023", first.PerformanceHistory[3].Quarter)
}

func TestRoleAndDepartmentCycle(t *testing.T) {
	tests := []struct {
		id   int
		role string
		dept domain.Department
	}{
		{0, "Software Engineer", domain.DepartmentHR},
		{1, "HR Manager", domain.DepartmentEngineering},
		{4, "Support Agent", domain.DepartmentSupport},
		{5, "Software Engineer", domain.DepartmentHR},
		{-1, "Support Agent", domain.DepartmentSupport},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.role, Role(tt.id), "id %d", tt.id)
		assert.Equal(t, tt.dept, Department(tt.id), "id %d", tt.id)
	}
}

func TestRatingWithinScale(t *testing.T) {
	seen := map[float64]bool{}
	for id := 1; id <= 200; id++ {
		r := Rating(id)
		require.GreaterOrEqual(t, r, 1.0)
		require.LessOrEqual(t, r, 5.0)
		require.Equal(t, float64(int(r)), r, "rating must be whole")
		seen[r] = true
	}
	assert.Len(t, seen, 5, "every rating value should occur across 200 ids")
}

func TestProjectsAndFeedbackRotate(t *testing.T) {
	assert.Equal(t, []string{"Security Audit", "Marketing Campaign Launch", "Employee Onboarding System"}, Projects(8))
	assert.Equal(t, []string{"Employee Onboarding System", "CRM Integration", "Performance Review Tool"}, Projects(10))

	// (3*3) % 10 = 9, wraps to 0 and 1
	assert.Equal(t, []string{
		"Shows great initiative.",
		"Great team player and communicator.",
		"Delivered the project ahead of schedule.",
	}, Feedback(3))
}

func TestEmployeeUsesSameSchemeAsDetail(t *testing.T) {
	u := domain.UpstreamUser{ID: 13, FirstName: "A", LastName: "B"}
	u.Company.Title = "Sales Manager"
	emp := Employee(u)
	detail := Detail(u)
	assert.Equal(t, emp, detail.Employee)
	assert.Equal(t, "A B", emp.Name)
	assert.Equal(t, "Sales Manager", detail.Bio)
}

func TestSeededRandomStaysBelowOne(t *testing.T) {
	seeds := []float64{-1e-30, -1e-300, -math.SmallestNonzeroFloat64, 0, 1, -7, 1e9}
	for _, seed := range seeds {
		r := SeededRandom(seed)
		assert.GreaterOrEqual(t, r, 0.0, "seed %g", seed)
		assert.Less(t, r, 1.0, "seed %g", seed)
		assert.Less(t, int(r*float64(len(performanceLabels))), len(performanceLabels), "seed %g", seed)
	}
}
