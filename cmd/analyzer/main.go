// Command analyzer ingests a corporate partnership spreadsheet, cleans and
// normalizes it, and writes aggregate charts, a cleaned CSV export, and a
// JSON summary under the output directory.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"partnerscope/internal/analysis"
	"partnerscope/internal/config"
	"partnerscope/internal/dataset"
	"partnerscope/internal/exporter"
	"partnerscope/internal/infrastructure"
)

const version = "1.0.0"

// Bins for the company appearance histogram. Appearance counts are small
// integers, so a fixed coarse binning reads better than the fee binning knob.
const companyFreqBins = 10

// Concurrent chart renders. Rendering is CPU bound and charts are
// independent of each other.
const maxRenderWorkers = 4

func main() {
	inputFile := flag.String("input", "", "Path to the partnership spreadsheet (.csv or .xlsx)")
	outDir := flag.String("out", "", "Output base directory (default: executable directory)")
	partnerCol := flag.String("partner-col", "", "Override the corporate partner column name")
	flag.Parse()

	fmt.Printf("Partnership Analyzer v%s\n", version)

	if *inputFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -input is required")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config, using defaults: %v\n", err)
		cfg = config.Default()
	}
	if *partnerCol != "" {
		cfg.Analysis.PartnerColumn = *partnerCol
	}

	var paths *config.Paths
	if *outDir != "" {
		paths = config.PathsFromDir(*outDir)
	} else {
		paths, err = config.GetPaths()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to resolve output paths: %v\n", err)
			os.Exit(1)
		}
	}
	if err := paths.EnsureDirectories(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create output directories: %v\n", err)
		os.Exit(1)
	}

	cfg.Logging.FilePath = paths.GetLogPath("analyzer.log")
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.WithRunID(context.Background(), infrastructure.NewRunID())
	paths.LogPathResolution()

	start := time.Now()
	if err := run(ctx, logger, cfg, paths, *inputFile); err != nil {
		logger.ErrorContext(ctx, "Analysis failed", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Analysis complete in %s\n", time.Since(start).Round(time.Millisecond))
}

func run(ctx context.Context, logger *slog.Logger, cfg *config.Config, paths *config.Paths, inputFile string) error {
	fmt.Printf("Loading %s...\n", inputFile)
	table, err := dataset.Load(inputFile)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d rows, %d columns\n", table.RowCount(), table.ColumnCount())

	analyzer := analysis.NewAnalyzer(logger, cfg.Analysis)
	results, err := analyzer.Run(ctx, table)
	if err != nil {
		return err
	}
	for _, msg := range results.SkippedStages {
		fmt.Println(msg)
	}

	csvWriter := exporter.NewCSVWriter(paths)
	if err := csvWriter.WriteTable(paths.CleanedCSV, results.Exploded); err != nil {
		return err
	}
	fmt.Printf("Wrote cleaned export: %s\n", paths.CleanedCSV)

	charts, err := renderCharts(ctx, logger, cfg, paths, results)
	if err != nil {
		return err
	}
	fmt.Printf("Rendered %d charts to %s\n", len(charts), paths.ChartsDir)

	summary := &exporter.Summary{
		GeneratedAt: time.Now().UTC(),
		RunID:       infrastructure.GetRunID(ctx),
		SourceFile:  inputFile,
		Charts:      charts,
		Results:     results,
	}
	if err := exporter.NewSummaryWriter(paths).Write(paths.SummaryJSON, summary); err != nil {
		return err
	}
	fmt.Printf("Wrote summary: %s\n", paths.SummaryJSON)

	return nil
}

// renderCharts renders every chart whose aggregate has data, fanning out
// across a bounded worker group. Returns the file names rendered.
func renderCharts(ctx context.Context, logger *slog.Logger, cfg *config.Config, paths *config.Paths, results *analysis.Results) ([]string, error) {
	renderer := exporter.NewChartRenderer(paths, cfg.Analysis.ChartDPI)

	type chartJob struct {
		file   string
		render func() error
	}
	var jobs []chartJob

	if len(results.PartnersPerCollege) > 0 {
		jobs = append(jobs, chartJob{config.ChartPartnersPerCollege, func() error {
			return renderer.BarChart(exporter.BarChartSpec{
				File:       config.ChartPartnersPerCollege,
				Title:      "Number of Corporate Partnerships per College",
				XLabel:     "Partnerships",
				Horizontal: true,
				Rows:       results.PartnersPerCollege,
			})
		}})
	}

	if len(results.SectorFrequency) > 0 {
		jobs = append(jobs, chartJob{config.ChartSectorFrequency, func() error {
			return renderer.BarChart(exporter.BarChartSpec{
				File:   config.ChartSectorFrequency,
				Title:  fmt.Sprintf("Top %d Sectors Among Corporate Partners", cfg.Analysis.TopSectors),
				YLabel: "Partnerships",
				Rows:   results.TopSectors(cfg.Analysis.TopSectors),
			})
		}})
	}

	if len(results.TierDistribution) > 0 {
		jobs = append(jobs, chartJob{config.ChartTierDistribution, func() error {
			return renderer.BarChart(exporter.BarChartSpec{
				File:   config.ChartTierDistribution,
				Title:  "Membership Tier Count Distribution",
				XLabel: "Number of Tiers",
				YLabel: "Programs",
				Rows:   results.TierDistribution,
			})
		}})
	}

	if len(results.Fees) > 0 {
		jobs = append(jobs, chartJob{config.ChartFeeBoxPlot, func() error {
			labels := []string{"All Programs"}
			groups := [][]float64{results.Fees}
			if len(results.FeeColleges) > 0 {
				labels = results.FeeColleges
				groups = make([][]float64, len(labels))
				for i, college := range labels {
					groups[i] = results.FeesByCollege[college]
				}
			}
			return renderer.BoxPlot(config.ChartFeeBoxPlot,
				"Membership Fee Ranges", "Fee (USD)", labels, groups)
		}})
		jobs = append(jobs, chartJob{config.ChartFeeHistogram, func() error {
			return renderer.Histogram(config.ChartFeeHistogram,
				"Membership Fee Distribution", "Fee (USD)",
				results.Fees, cfg.Analysis.FeeBins)
		}})
	}

	if len(results.LevelBreakdown) > 0 {
		jobs = append(jobs, chartJob{config.ChartLevelComparison, func() error {
			return renderer.BarChart(exporter.BarChartSpec{
				File:   config.ChartLevelComparison,
				Title:  "Departmental vs College-Level Partnership Programs",
				YLabel: "Programs",
				Rows:   results.LevelBreakdown,
			})
		}})
	}

	if len(results.CompanyFrequency) > 0 {
		jobs = append(jobs, chartJob{config.ChartTopCompanies, func() error {
			return renderer.BarChart(exporter.BarChartSpec{
				File:       config.ChartTopCompanies,
				Title:      fmt.Sprintf("Top %d Corporate Partners by Program Count", cfg.Analysis.TopCompanies),
				XLabel:     "Programs",
				Horizontal: true,
				Rows:       results.TopCompanies(cfg.Analysis.TopCompanies),
			})
		}})
		jobs = append(jobs, chartJob{config.ChartCompanyFrequency, func() error {
			return renderer.Histogram(config.ChartCompanyFrequency,
				"Company Partnership Count Distribution", "Programs per Company",
				analysis.Appearances(results.CompanyFrequency), companyFreqBins)
		}})
	}

	var g errgroup.Group
	g.SetLimit(maxRenderWorkers)

	charts := make([]string, 0, len(jobs))
	for _, job := range jobs {
		charts = append(charts, job.file)
		g.Go(job.render)
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Rendered charts",
		slog.Int("count", len(charts)),
		slog.String("charts_dir", paths.ChartsDir))
	return charts, nil
}
