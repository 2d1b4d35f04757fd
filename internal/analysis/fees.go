package analysis

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"partnerscope/internal/dataset"
)

// feeRe captures a 2-to-7-digit run, enough for fees up to the millions
// without swallowing phone numbers or years glued to longer digit strings
var feeRe = regexp.MustCompile(`(\d{2,7})`)

// ParseFee extracts an approximate numeric fee from messy free text.
// Thousands separators are stripped first, then the first plausible digit
// run wins: "$1,200 per year" yields 1200. Text with no usable number
// ("Contact for pricing") reports ok=false rather than an error.
func ParseFee(text string) (value float64, ok bool) {
	cleaned := strings.ReplaceAll(text, ",", "")
	m := feeRe.FindStringSubmatch(cleaned)
	if m == nil {
		return 0, false
	}

	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FeeStats holds descriptive statistics over the parsed fee values
type FeeStats struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Q1     float64 `json:"q1"`
	Q3     float64 `json:"q3"`
}

// SummarizeFees computes descriptive statistics for the given fee values.
// Returns nil when there is nothing to summarize.
func SummarizeFees(values []float64) *FeeStats {
	if len(values) == 0 {
		return nil
	}

	min, _ := stats.Min(values)
	max, _ := stats.Max(values)
	mean, _ := stats.Mean(values)
	median, _ := stats.Median(values)

	fs := &FeeStats{
		Count:  len(values),
		Min:    min,
		Max:    max,
		Mean:   mean,
		Median: median,
	}

	if quartiles, err := stats.Quartile(values); err == nil {
		fs.Q1 = quartiles.Q1
		fs.Q3 = quartiles.Q3
	} else {
		fs.Q1 = median
		fs.Q3 = median
	}

	return fs
}

// Histogram is an equal-width binning of a value series. Dividers has one
// more entry than Counts.
type Histogram struct {
	Dividers []float64 `json:"dividers"`
	Counts   []float64 `json:"counts"`
}

// BinValues bins values into the requested number of equal-width bins
func BinValues(values []float64, bins int) Histogram {
	if len(values) == 0 || bins <= 0 {
		return Histogram{}
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	lo := sorted[0]
	hi := sorted[len(sorted)-1]
	if hi == lo {
		hi = lo + 1
	}
	// Nudge the top divider so the maximum lands in the last bin
	hi = math.Nextafter(hi, math.Inf(1))

	dividers := floats.Span(make([]float64, bins+1), lo, hi)
	counts := stat.Histogram(nil, dividers, sorted, nil)

	return Histogram{Dividers: dividers, Counts: counts}
}

// ParseFees extracts all parseable fees from the named column
func ParseFees(t *dataset.Table, column string) []float64 {
	var values []float64
	for _, cell := range t.Column(column) {
		if v, ok := ParseFee(cell); ok {
			values = append(values, v)
		}
	}
	return values
}

// FeesByGroup groups parseable fees from feeColumn by the values of
// groupColumn. Groups are returned in first-appearance order alongside the
// value map so chart axes stay stable between runs.
func FeesByGroup(t *dataset.Table, feeColumn, groupColumn string) ([]string, map[string][]float64) {
	feeIdx := t.ColumnIndex(feeColumn)
	groupIdx := t.ColumnIndex(groupColumn)
	if feeIdx < 0 || groupIdx < 0 {
		return nil, nil
	}

	var groups []string
	grouped := make(map[string][]float64)

	for _, row := range t.Rows {
		group := row[groupIdx]
		if group == "" {
			continue
		}
		v, ok := ParseFee(row[feeIdx])
		if !ok {
			continue
		}
		if _, seen := grouped[group]; !seen {
			groups = append(groups, group)
		}
		grouped[group] = append(grouped[group], v)
	}

	return groups, grouped
}
