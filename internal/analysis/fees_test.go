package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partnerscope/internal/dataset"
)

func TestParseFee(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		ok       bool
	}{
		{
			name:     "annual fee with currency and separator",
			input:    "$1,200 per year",
			expected: 1200,
			ok:       true,
		},
		{
			name:     "bare number",
			input:    "25000",
			expected: 25000,
			ok:       true,
		},
		{
			name:     "range takes first value",
			input:    "5,000 - 25,000 depending on tier",
			expected: 5000,
			ok:       true,
		},
		{
			name:     "embedded in prose",
			input:    "Annual membership of 750 dollars",
			expected: 750,
			ok:       true,
		},
		{
			name:  "no number at all",
			input: "Contact for pricing",
			ok:    false,
		},
		{
			name:  "single digit too short",
			input: "Tier 5",
			ok:    false,
		},
		{
			name:  "empty string",
			input: "",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := ParseFee(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, value)
			}
		})
	}
}

func TestSummarizeFees(t *testing.T) {
	t.Run("empty input returns nil", func(t *testing.T) {
		assert.Nil(t, SummarizeFees(nil))
		assert.Nil(t, SummarizeFees([]float64{}))
	})

	t.Run("basic statistics", func(t *testing.T) {
		fs := SummarizeFees([]float64{1000, 2000, 3000, 4000, 5000})
		require.NotNil(t, fs)

		assert.Equal(t, 5, fs.Count)
		assert.Equal(t, 1000.0, fs.Min)
		assert.Equal(t, 5000.0, fs.Max)
		assert.Equal(t, 3000.0, fs.Mean)
		assert.Equal(t, 3000.0, fs.Median)
		assert.LessOrEqual(t, fs.Q1, fs.Median)
		assert.GreaterOrEqual(t, fs.Q3, fs.Median)
	})

	t.Run("single value", func(t *testing.T) {
		fs := SummarizeFees([]float64{500})
		require.NotNil(t, fs)

		assert.Equal(t, 1, fs.Count)
		assert.Equal(t, 500.0, fs.Min)
		assert.Equal(t, 500.0, fs.Max)
		assert.Equal(t, 500.0, fs.Median)
	})
}

func TestBinValues(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		h := BinValues(nil, 10)
		assert.Nil(t, h.Dividers)
		assert.Nil(t, h.Counts)
	})

	t.Run("zero bins", func(t *testing.T) {
		h := BinValues([]float64{1, 2, 3}, 0)
		assert.Nil(t, h.Counts)
	})

	t.Run("all values land in a bin", func(t *testing.T) {
		values := []float64{100, 200, 300, 400, 500, 500}
		h := BinValues(values, 4)

		require.Len(t, h.Dividers, 5)
		require.Len(t, h.Counts, 4)

		var total float64
		for _, c := range h.Counts {
			total += c
		}
		assert.Equal(t, float64(len(values)), total, "maximum value must not fall off the last bin")
	})

	t.Run("identical values widen the range", func(t *testing.T) {
		h := BinValues([]float64{750, 750, 750}, 3)

		require.Len(t, h.Counts, 3)
		var total float64
		for _, c := range h.Counts {
			total += c
		}
		assert.Equal(t, 3.0, total)
	})
}

func TestParseFees(t *testing.T) {
	table := dataset.NewTable([]string{"College", "Fee_Info"})
	table.AppendRow([]string{"Engineering", "$1,200 annually"})
	table.AppendRow([]string{"Science", "Contact for pricing"})
	table.AppendRow([]string{"Business", "25000"})
	table.AppendRow([]string{"Arts", ""})

	values := ParseFees(table, "Fee_Info")
	assert.Equal(t, []float64{1200, 25000}, values)
}

func TestFeesByGroup(t *testing.T) {
	table := dataset.NewTable([]string{"College", "Fee_Info"})
	table.AppendRow([]string{"Engineering", "1000"})
	table.AppendRow([]string{"Science", "2000"})
	table.AppendRow([]string{"Engineering", "3000"})
	table.AppendRow([]string{"", "4000"})
	table.AppendRow([]string{"Science", "n/a"})

	groups, grouped := FeesByGroup(table, "Fee_Info", "College")

	assert.Equal(t, []string{"Engineering", "Science"}, groups, "first-appearance order")
	assert.Equal(t, []float64{1000, 3000}, grouped["Engineering"])
	assert.Equal(t, []float64{2000}, grouped["Science"])
	assert.NotContains(t, grouped, "", "blank group is skipped")
}

func TestFeesByGroupMissingColumn(t *testing.T) {
	table := dataset.NewTable([]string{"College"})
	table.AppendRow([]string{"Engineering"})

	groups, grouped := FeesByGroup(table, "Fee_Info", "College")
	assert.Nil(t, groups)
	assert.Nil(t, grouped)
}
