package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partnerscope/internal/dataset"
)

func TestPartnersPerCollege(t *testing.T) {
	raw := dataset.NewTable([]string{"College", "Corporate_Partners"})
	raw.AppendRow([]string{"Engineering", "Intel, AMD, Nvidia"})
	raw.AppendRow([]string{"Science", "Pfizer"})
	raw.AppendRow([]string{"", "Orphan Corp"})

	exploded, err := dataset.Explode(raw, "Corporate_Partners", ",")
	require.NoError(t, err)

	rows := PartnersPerCollege(exploded, "College", "Corporate_Partners")

	assert.Equal(t, []CountRow{
		{Label: "Engineering", Count: 3},
		{Label: "Science", Count: 1},
	}, rows, "blank colleges excluded, descending count")
}

func TestPartnersPerCollegeMissingColumn(t *testing.T) {
	table := dataset.NewTable([]string{"Corporate_Partners"})
	table.AppendRow([]string{"Intel"})

	assert.Nil(t, PartnersPerCollege(table, "College", "Corporate_Partners"))
}

func TestCompanyFrequency(t *testing.T) {
	table := dataset.NewTable([]string{"College", "Corporate_Partners"})
	table.AppendRow([]string{"Engineering", "intel corp, AMD"})
	table.AppendRow([]string{"Science", "INTEL CORP"})
	table.AppendRow([]string{"Business", ""})

	rows := CompanyFrequency(table, "Corporate_Partners", ",")

	assert.Equal(t, []CountRow{
		{Label: "Intel Corp", Count: 2},
		{Label: "Amd", Count: 1},
	}, rows, "capitalization variants merge under title case")
}

func TestSortedCountRowsTieBreak(t *testing.T) {
	rows := sortedCountRows(map[string]int{
		"Zeta":  2,
		"Alpha": 2,
		"Mid":   5,
	})

	assert.Equal(t, []CountRow{
		{Label: "Mid", Count: 5},
		{Label: "Alpha", Count: 2},
		{Label: "Zeta", Count: 2},
	}, rows)
}

func TestTopN(t *testing.T) {
	rows := []CountRow{{Label: "A", Count: 3}, {Label: "B", Count: 2}, {Label: "C", Count: 1}}

	assert.Len(t, topN(rows, 2), 2)
	assert.Len(t, topN(rows, 10), 3)
	assert.Len(t, topN(rows, 0), 3, "zero means unlimited")
}

func TestAppearances(t *testing.T) {
	freq := []CountRow{{Label: "A", Count: 4}, {Label: "B", Count: 1}}
	assert.Equal(t, []float64{4, 1}, Appearances(freq))
}
