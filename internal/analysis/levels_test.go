package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"partnerscope/internal/dataset"
)

func TestCategorizeLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "college level", input: "College of Engineering", expected: LevelECE},
		{name: "case insensitive", input: "COLLEGE-WIDE", expected: LevelECE},
		{name: "departmental", input: "Department of Computer Science", expected: LevelDepartmental},
		{name: "blank defaults to departmental", input: "", expected: LevelDepartmental},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CategorizeLevel(tt.input))
		})
	}
}

func TestLevelBreakdown(t *testing.T) {
	table := dataset.NewTable([]string{"Program", "Program_Level"})
	table.AppendRow([]string{"A", "College of Engineering"})
	table.AppendRow([]string{"B", "Department of ECE"})
	table.AppendRow([]string{"C", "Departmental"})
	table.AppendRow([]string{"D", "college"})

	rows := LevelBreakdown(table, "Program_Level")

	assert.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].Count)
	assert.Equal(t, 2, rows[1].Count)
	labels := []string{rows[0].Label, rows[1].Label}
	assert.Contains(t, labels, LevelECE)
	assert.Contains(t, labels, LevelDepartmental)
}
