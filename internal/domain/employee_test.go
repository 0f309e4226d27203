package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCriteriaMatches(t *testing.T) {
	eng := DepartmentEngineering
	sales := DepartmentSales
	emp := Employee{ID: 1, Name: "Emily Johnson", Email: "emily.johnson@x.dummyjson.com", Department: eng, Rating: 4}

	tests := []struct {
		name     string
		criteria Criteria
		want     bool
	}{
		{"empty criteria", Criteria{}, true},
		{"name substring any case", Criteria{SearchText: "JOHN"}, true},
		{"email substring", Criteria{SearchText: "x.dummyjson"}, true},
		{"department text", Criteria{SearchText: "engin"}, true},
		{"no text match", Criteria{SearchText: "zzz"}, false},
		{"department equal", Criteria{Department: &eng}, true},
		{"department differs", Criteria{Department: &sales}, false},
		{"rating zero is unset", Criteria{Rating: 0}, true},
		{"rating equal", Criteria{Rating: 4}, true},
		{"rating differs", Criteria{Rating: 5}, false},
		{"all conjunctive", Criteria{SearchText: "emily", Department: &eng, Rating: 4}, true},
		{"one failing clause", Criteria{SearchText: "emily", Department: &eng, Rating: 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.criteria.Matches(emp))
		})
	}
}

func TestParseDepartment(t *testing.T) {
	d, ok := ParseDepartment(" engineering ")
	assert.True(t, ok)
	assert.Equal(t, DepartmentEngineering, d)

	_, ok = ParseDepartment("Finance")
	assert.False(t, ok)
	assert.Len(t, Departments, 5)
}
