// Package exporter writes the analysis outputs to disk.
//
// This package contains three main components:
//
// CSVWriter: Core CSV writing functionality with support for headers, streaming,
// and UTF-8 BOM for Excel compatibility. Used for the cleaned partnership export.
//
// SummaryWriter: Serializes the aggregate analysis results to an indented JSON
// report alongside the charts.
//
// ChartRenderer: Renders bar charts, histograms, and box plots to PNG files at
// a configurable DPI.
//
// Example usage:
//
//	csvWriter := exporter.NewCSVWriter(paths)
//	err := csvWriter.WriteTable(paths.CleanedCSV, exploded)
//
//	renderer := exporter.NewChartRenderer(paths, cfg.ChartDPI)
//	err = renderer.BarChart(exporter.BarChartSpec{
//		File:   config.ChartSectorFrequency,
//		Title:  "Sector Frequency Among Corporate Partners",
//		Rows:   results.TopSectors(cfg.TopSectors),
//	})
package exporter
