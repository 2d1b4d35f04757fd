package dataset

import (
	"regexp"
	"strings"
)

// newlineRe matches runs of line breaks inside headers and cell values
var newlineRe = regexp.MustCompile(`[\n\r]+`)

// Table is an in-memory tabular dataset. All values are kept as strings;
// numeric interpretation happens in the analysis stages.
type Table struct {
	Columns []string
	Rows    [][]string
}

// NewTable creates an empty table with the given column names
func NewTable(columns []string) *Table {
	return &Table{Columns: columns}
}

// RowCount returns the number of data rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColumnCount returns the number of columns
func (t *Table) ColumnCount() int {
	return len(t.Columns)
}

// ColumnIndex returns the index of the named column, or -1 if absent
func (t *Table) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the named column exists
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// Column returns all values of the named column, or nil if absent
func (t *Table) Column(name string) []string {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}

	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[idx]
	}
	return values
}

// Cell returns the value at the given row for the named column.
// Out-of-range access returns the empty string.
func (t *Table) Cell(row int, column string) string {
	idx := t.ColumnIndex(column)
	if idx < 0 || row < 0 || row >= len(t.Rows) {
		return ""
	}
	return t.Rows[row][idx]
}

// AppendRow adds a data row, padding short rows with empty strings so every
// row has exactly one value per column
func (t *Table) AppendRow(row []string) {
	if len(row) < len(t.Columns) {
		padded := make([]string, len(t.Columns))
		copy(padded, row)
		row = padded
	}
	t.Rows = append(t.Rows, row[:len(t.Columns)])
}

// NormalizeColumnName cleans a raw header: leading/trailing whitespace is
// trimmed, embedded line breaks collapse to a single space, and remaining
// spaces become underscores. " College \n" becomes "College" and
// "Fee Info" becomes "Fee_Info".
func NormalizeColumnName(name string) string {
	name = strings.TrimSpace(newlineRe.ReplaceAllString(name, " "))
	return strings.ReplaceAll(name, " ", "_")
}

// CleanCell normalizes a cell value: line breaks collapse to a single space
// and surrounding whitespace is trimmed
func CleanCell(value string) string {
	return strings.TrimSpace(newlineRe.ReplaceAllString(value, " "))
}

// Clean normalizes all headers and cell values in place and drops rows that
// are entirely empty afterwards
func (t *Table) Clean() {
	for i, col := range t.Columns {
		t.Columns[i] = NormalizeColumnName(col)
	}

	cleaned := t.Rows[:0]
	for _, row := range t.Rows {
		empty := true
		for j, cell := range row {
			row[j] = CleanCell(cell)
			if row[j] != "" {
				empty = false
			}
		}
		if !empty {
			cleaned = append(cleaned, row)
		}
	}
	t.Rows = cleaned
}
