package analysis

import (
	"strings"

	"partnerscope/internal/dataset"
)

// FindSectorColumn returns the first column whose normalized name contains
// "sector" or "industry", case-insensitive. Sheet exports are inconsistent
// about this header, so discovery beats a fixed name.
func FindSectorColumn(t *dataset.Table) (string, bool) {
	for _, col := range t.Columns {
		lower := strings.ToLower(col)
		if strings.Contains(lower, "sector") || strings.Contains(lower, "industry") {
			return col, true
		}
	}
	return "", false
}

// SectorFrequency counts sector appearances across the partner-exploded
// table. The sector column itself holds delimited lists, so it is split
// again here; blank fragments are dropped.
func SectorFrequency(exploded *dataset.Table, column, sep string) []CountRow {
	counts := make(map[string]int)
	for _, cell := range exploded.Column(column) {
		for _, sector := range strings.Split(cell, sep) {
			sector = strings.TrimSpace(sector)
			if sector == "" {
				continue
			}
			counts[sector]++
		}
	}
	return sortedCountRows(counts)
}
