package domain

// PerformanceEntry is one quarter of an employee's review history.
type PerformanceEntry struct {
	Quarter string
	Label   string
}

// String renders the entry as "Q1 2023 - Good".
func (p PerformanceEntry) String() string {
	return p.Quarter + " - " + p.Label
}

// EmployeeDetail is the drill-down view of one employee.
type EmployeeDetail struct {
	Employee
	Address            string
	Bio                string
	PerformanceHistory []PerformanceEntry
	Projects           []string
	Feedback           []string
}
