// Package analysis computes descriptive aggregates over a cleaned
// partnership dataset: partner counts per college, sector and company
// frequencies, membership tier distribution, fee statistics, and the
// departmental-versus-college program breakdown.
//
// All aggregation functions are pure; the Analyzer orchestrates them over a
// Table and degrades gracefully when optional columns are absent.
package analysis
