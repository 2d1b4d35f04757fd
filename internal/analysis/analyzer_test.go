package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partnerscope/internal/config"
	"partnerscope/internal/dataset"
	"partnerscope/internal/errors"
)

func fixtureTable() *dataset.Table {
	table := dataset.NewTable([]string{
		"College", "Corporate_Partners", "Sector", "Tiers_of_Membership", "Fee_Info", "Program_Level",
	})
	table.AppendRow([]string{"Engineering", "Intel, AMD", "Tech", "Bronze, Silver, Gold", "$5,000 per year", "College of Engineering"})
	table.AppendRow([]string{"Engineering", "Boeing", "Aerospace", "Flat", "12000", "Department of Aerospace"})
	table.AppendRow([]string{"Science", "Pfizer", "Pharma", "Basic, Premium", "Contact us", "Department of Biology"})
	return table
}

func TestAnalyzerRunFullDataset(t *testing.T) {
	analyzer := NewAnalyzer(nil, config.Default().Analysis)

	results, err := analyzer.Run(context.Background(), fixtureTable())
	require.NoError(t, err)
	require.NotNil(t, results)

	assert.Equal(t, 3, results.RowCount)
	assert.Equal(t, 6, results.ColumnCount)
	assert.Empty(t, results.SkippedStages)

	require.NotNil(t, results.Exploded)
	assert.Equal(t, 4, results.Exploded.RowCount(), "two partners in row one explode to two rows")

	assert.Equal(t, []CountRow{
		{Label: "Engineering", Count: 3},
		{Label: "Science", Count: 1},
	}, results.PartnersPerCollege)

	assert.Equal(t, "Sector", results.SectorColumn)
	assert.Equal(t, 3, len(results.SectorFrequency))

	assert.Equal(t, []CountRow{
		{Label: "1", Count: 1},
		{Label: "2", Count: 1},
		{Label: "3", Count: 1},
	}, results.TierDistribution)

	assert.Equal(t, []float64{5000, 12000}, results.Fees)
	require.NotNil(t, results.FeeStats)
	assert.Equal(t, 2, results.FeeStats.Count)
	assert.Equal(t, 5000.0, results.FeeStats.Min)
	assert.Equal(t, 12000.0, results.FeeStats.Max)
	assert.NotEmpty(t, results.FeeHistogram.Counts)
	assert.Equal(t, []string{"Engineering"}, results.FeeColleges, "college with no parseable fee is absent")

	assert.Len(t, results.LevelBreakdown, 2)

	assert.Equal(t, 4, results.UniqueCompanies)
	assert.Equal(t, CountRow{Label: "Amd", Count: 1}, results.CompanyFrequency[0])
}

func TestAnalyzerRunMissingPartnerColumn(t *testing.T) {
	table := dataset.NewTable([]string{"College", "Fee_Info"})
	table.AppendRow([]string{"Engineering", "1000"})

	analyzer := NewAnalyzer(nil, config.Default().Analysis)

	results, err := analyzer.Run(context.Background(), table)
	require.Error(t, err)
	assert.Nil(t, results)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrTypeNotFound, appErr.Type)
}

func TestAnalyzerRunSkipsMissingOptionalColumns(t *testing.T) {
	table := dataset.NewTable([]string{"Program", "Corporate_Partners"})
	table.AppendRow([]string{"Robotics", "Intel, Nvidia"})

	analyzer := NewAnalyzer(nil, config.Default().Analysis)

	results, err := analyzer.Run(context.Background(), table)
	require.NoError(t, err)

	assert.Nil(t, results.PartnersPerCollege)
	assert.Nil(t, results.SectorFrequency)
	assert.Nil(t, results.TierDistribution)
	assert.Nil(t, results.FeeStats)
	assert.Nil(t, results.LevelBreakdown)
	assert.Len(t, results.SkippedStages, 5)

	assert.Equal(t, 2, results.UniqueCompanies, "company frequency only needs the partner column")
}

func TestResultsTopHelpers(t *testing.T) {
	r := &Results{
		SectorFrequency:  []CountRow{{Label: "A", Count: 3}, {Label: "B", Count: 2}, {Label: "C", Count: 1}},
		CompanyFrequency: []CountRow{{Label: "X", Count: 9}, {Label: "Y", Count: 8}},
	}

	assert.Len(t, r.TopSectors(2), 2)
	assert.Len(t, r.TopCompanies(5), 2)
}
