package analysis

import (
	"sort"
	"strconv"
	"strings"

	"partnerscope/internal/dataset"
)

// CountTiers returns the number of comma-separated tier names in a
// membership description. "Bronze, Silver, Gold" counts three; a single
// value counts one; a blank cell counts zero (missing).
func CountTiers(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	return len(strings.Split(text, ","))
}

// TierDistribution counts programs by their number of membership tiers,
// ordered by ascending tier count. Rows with a blank tier description are
// treated as missing and skipped.
func TierDistribution(t *dataset.Table, column string) []CountRow {
	counts := make(map[int]int)
	for _, cell := range t.Column(column) {
		n := CountTiers(cell)
		if n == 0 {
			continue
		}
		counts[n]++
	}

	tiers := make([]int, 0, len(counts))
	for n := range counts {
		tiers = append(tiers, n)
	}
	sort.Ints(tiers)

	rows := make([]CountRow, 0, len(tiers))
	for _, n := range tiers {
		rows = append(rows, CountRow{Label: strconv.Itoa(n), Count: counts[n]})
	}
	return rows
}
