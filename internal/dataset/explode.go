package dataset

import (
	"fmt"
	"strings"

	apperrors "partnerscope/internal/errors"
)

// Explode expands rows whose named column holds a delimited list of values
// into one row per value. The exploded value is trimmed; all other columns
// are duplicated. An empty cell still yields a single row so no program is
// lost in the exploded view.
//
// The named column is mandatory: its absence is a fatal NOT_FOUND error.
func Explode(t *Table, column, sep string) (*Table, error) {
	idx := t.ColumnIndex(column)
	if idx < 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("column %q", column)).
			WithContext("columns", t.Columns)
	}

	out := NewTable(append([]string(nil), t.Columns...))
	for _, row := range t.Rows {
		for _, value := range strings.Split(row[idx], sep) {
			dup := make([]string, len(row))
			copy(dup, row)
			dup[idx] = strings.TrimSpace(value)
			out.Rows = append(out.Rows, dup)
		}
	}

	return out, nil
}
