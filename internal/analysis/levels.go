package analysis

import (
	"strings"

	"partnerscope/internal/dataset"
)

// Program level categories
const (
	LevelECE          = "ECE Programs"
	LevelDepartmental = "Departmental / General College Programs"
)

// CategorizeLevel maps a free-text program level description onto one of
// the two reporting categories. Any text containing "college"
// (case-insensitive) is a college-level ECE program; everything else,
// including blanks, is departmental.
func CategorizeLevel(text string) string {
	if strings.Contains(strings.ToLower(text), "college") {
		return LevelECE
	}
	return LevelDepartmental
}

// LevelBreakdown counts programs per level category, descending by count
func LevelBreakdown(t *dataset.Table, column string) []CountRow {
	counts := make(map[string]int)
	for _, cell := range t.Column(column) {
		counts[CategorizeLevel(cell)]++
	}
	return sortedCountRows(counts)
}
