// Package dataset provides the tabular data model and spreadsheet ingestion
// for partnership program analysis.
//
// # Architecture
//
// The package is organized into three main components:
//
// 1. Table: an ordered, string-typed tabular model with column access
// 2. Loaders: CSV and Excel readers that normalize headers and cell values
// 3. Explode: expansion of delimited multi-value cells into one row per value
//
// # Data Flow
//
// The typical data flow through this package:
//
//	Spreadsheet File → Loader → Table → Clean → Explode → Analysis
//
// # Error Handling
//
// Malformed CSV lines are skipped with a warning rather than failing the
// load. A missing mandatory column surfaces as a NOT_FOUND application
// error; everything else degrades gracefully.
package dataset
