package analysis

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"partnerscope/internal/dataset"
)

// CountRow pairs a label with its aggregate count
type CountRow struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// titleCaser normalizes company-name capitalization so "intel corp" and
// "INTEL CORP" count as the same partner
var titleCaser = cases.Title(language.English)

// sortedCountRows flattens a count map into rows ordered by descending
// count, ties broken alphabetically for deterministic output
func sortedCountRows(counts map[string]int) []CountRow {
	rows := make([]CountRow, 0, len(counts))
	for label, count := range counts {
		rows = append(rows, CountRow{Label: label, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Label < rows[j].Label
	})
	return rows
}

// topN truncates rows to at most n entries
func topN(rows []CountRow, n int) []CountRow {
	if n > 0 && len(rows) > n {
		return rows[:n]
	}
	return rows
}

// PartnersPerCollege counts exploded partner rows per college, descending.
// Rows with a blank college are skipped.
func PartnersPerCollege(exploded *dataset.Table, collegeColumn, partnerColumn string) []CountRow {
	collegeIdx := exploded.ColumnIndex(collegeColumn)
	partnerIdx := exploded.ColumnIndex(partnerColumn)
	if collegeIdx < 0 || partnerIdx < 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, row := range exploded.Rows {
		if row[collegeIdx] == "" {
			continue
		}
		counts[row[collegeIdx]]++
	}
	return sortedCountRows(counts)
}

// CompanyFrequency counts how many program rows each corporate partner
// appears in, working from the raw (non-exploded) partner column. Names are
// trimmed and title-cased so capitalization variants merge; blanks drop.
func CompanyFrequency(t *dataset.Table, partnerColumn, sep string) []CountRow {
	counts := make(map[string]int)
	for _, cell := range t.Column(partnerColumn) {
		for _, name := range strings.Split(cell, sep) {
			clean := titleCaser.String(strings.ToLower(strings.TrimSpace(name)))
			if clean == "" {
				continue
			}
			counts[clean]++
		}
	}
	return sortedCountRows(counts)
}

// Appearances flattens company frequency rows into one value per company,
// suitable for histogram binning of partnership spread
func Appearances(freq []CountRow) []float64 {
	values := make([]float64, len(freq))
	for i, row := range freq {
		values[i] = float64(row.Count)
	}
	return values
}
