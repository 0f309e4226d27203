// Package export renders the dashboard as an XLSX workbook.
package export

import (
	"fmt"

	excelize "github.com/xuri/excelize/v2"

	"github.com/spec-kit/employee-dashboard/internal/analytics"
	"github.com/spec-kit/employee-dashboard/internal/domain"
)

const (
	EmployeesSheet   = "Employees"
	DepartmentsSheet = "Departments"
)

var (
	employeeHeaders   = []string{"ID", "Name", "Email", "Department", "Role", "Rating", "Bookmarked"}
	employeeWidths    = []float64{6, 28, 34, 16, 24, 8, 12}
	departmentHeaders = []string{"Department", "Employees", "Average Rating", "Bookmarked", "Bookmark Rate %"}
	departmentWidths  = []float64{16, 12, 16, 12, 16}
)

// Workbook renders the roster and department rollup and returns the XLSX bytes.
func Workbook(roster []domain.Employee, departments []domain.DepartmentSummary, bookmarked analytics.IsBookmarked) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", EmployeesSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(DepartmentsSheet); err != nil {
		return nil, fmt.Errorf("add sheet: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	if err := writeTable(f, EmployeesSheet, header, employeeHeaders, employeeWidths, employeeRows(roster, bookmarked)); err != nil {
		return nil, fmt.Errorf("write employees: %w", err)
	}
	if err := writeTable(f, DepartmentsSheet, header, departmentHeaders, departmentWidths, departmentRows(departments)); err != nil {
		return nil, fmt.Errorf("write departments: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write to buffer: %w", err)
	}
	return buf.Bytes(), nil
}

func employeeRows(roster []domain.Employee, bookmarked analytics.IsBookmarked) [][]interface{} {
	rows := make([][]interface{}, 0, len(roster))
	for _, e := range roster {
		marked := "no"
		if bookmarked != nil && bookmarked(e.ID) {
			marked = "yes"
		}
		rows = append(rows, []interface{}{e.ID, e.Name, e.Email, string(e.Department), e.Role, e.Rating, marked})
	}
	return rows
}

func departmentRows(departments []domain.DepartmentSummary) [][]interface{} {
	rows := make([][]interface{}, 0, len(departments))
	for _, d := range departments {
		rows = append(rows, []interface{}{
			string(d.Department),
			d.Employees,
			analytics.RoundTenth(d.AverageRating),
			d.Bookmarked,
			d.BookmarkRate,
		})
	}
	return rows
}

func writeTable(f *excelize.File, sheet string, style int, headers []string, widths []float64, rows [][]interface{}) error {
	for col, h := range headers {
		cell := CellName(0, col)
		if err := f.SetCellStr(sheet, cell, h); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(sheet, CellName(0, 0), CellName(0, len(headers)-1), style); err != nil {
		return err
	}

	for i, values := range rows {
		for col, val := range values {
			if err := f.SetCellValue(sheet, CellName(i+1, col), val); err != nil {
				return fmt.Errorf("row %d, col %d: %w", i+1, col, err)
			}
		}
	}

	for col, w := range widths {
		name := ColumnName(col)
		if err := f.SetColWidth(sheet, name, name, w); err != nil {
			return err
		}
	}
	return nil
}
