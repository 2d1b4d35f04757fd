package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"partnerscope/internal/dataset"
)

func TestFindSectorColumn(t *testing.T) {
	tests := []struct {
		name     string
		columns  []string
		expected string
		found    bool
	}{
		{
			name:     "plain sector header",
			columns:  []string{"College", "Sector", "Fee_Info"},
			expected: "Sector",
			found:    true,
		},
		{
			name:     "industry variant",
			columns:  []string{"College", "Industry_Focus"},
			expected: "Industry_Focus",
			found:    true,
		},
		{
			name:     "case insensitive match",
			columns:  []string{"College", "PARTNER_SECTORS"},
			expected: "PARTNER_SECTORS",
			found:    true,
		},
		{
			name:    "no match",
			columns: []string{"College", "Fee_Info"},
			found:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := dataset.NewTable(tt.columns)
			col, ok := FindSectorColumn(table)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, col)
		})
	}
}

func TestSectorFrequency(t *testing.T) {
	table := dataset.NewTable([]string{"College", "Sector"})
	table.AppendRow([]string{"Engineering", "Tech, Energy"})
	table.AppendRow([]string{"Science", "Tech"})
	table.AppendRow([]string{"Business", ""})

	rows := SectorFrequency(table, "Sector", ",")

	assert.Equal(t, []CountRow{
		{Label: "Tech", Count: 2},
		{Label: "Energy", Count: 1},
	}, rows)
}
