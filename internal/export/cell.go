package export

import "fmt"

// CellName converts 0-based row and column indices to a cell reference (0,0 → "A1").
func CellName(row, col int) string {
	return fmt.Sprintf("%s%d", ColumnName(col), row+1)
}

// ColumnName converts a 0-based column index to column letters (0→A, 26→AA).
func ColumnName(n int) string {
	result := ""
	for n >= 0 {
		result = string(rune('A'+(n%26))) + result
		n = n/26 - 1
	}
	return result
}
