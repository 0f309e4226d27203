package domain

import (
	"strings"
)

// Department is one of the fixed organizational units.
type Department string

const (
	DepartmentHR          Department = "HR"
	DepartmentEngineering Department = "Engineering"
	DepartmentSales       Department = "Sales"
	DepartmentMarketing   Department = "Marketing"
	DepartmentSupport     Department = "Support"
)

// Departments lists every department in display order.
var Departments = []Department{
	DepartmentHR,
	DepartmentEngineering,
	DepartmentSales,
	DepartmentMarketing,
	DepartmentSupport,
}

// ParseDepartment resolves a department name case-insensitively.
func ParseDepartment(name string) (Department, bool) {
	name = strings.TrimSpace(name)
	for _, d := range Departments {
		if strings.EqualFold(string(d), name) {
			return d, true
		}
	}
	return "", false
}

// MaxRating is the top of the rating scale.
const MaxRating = 5

// Employee is a roster entry with its synthesized attributes.
type Employee struct {
	ID         int
	Name       string
	Email      string
	Phone      string
	Age        int
	Department Department
	Rating     float64
	Role       string
}

// Criteria filters a roster. Rating 0 means unset.
type Criteria struct {
	SearchText string
	Department *Department
	Rating     int
}

// Matches reports whether e satisfies every set criterion.
func (c Criteria) Matches(e Employee) bool {
	if term := strings.ToLower(c.SearchText); term != "" {
		if !strings.Contains(strings.ToLower(e.Name), term) &&
			!strings.Contains(strings.ToLower(e.Email), term) &&
			!strings.Contains(strings.ToLower(string(e.Department)), term) {
			return false
		}
	}
	if c.Department != nil && e.Department != *c.Department {
		return false
	}
	if c.Rating != 0 && e.Rating != float64(c.Rating) {
		return false
	}
	return true
}

// Statistics summarizes the full roster.
type Statistics struct {
	TotalCount         int
	AverageRating      float64
	HighPerformerCount int
}
