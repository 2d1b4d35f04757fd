package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Paths contains all the application paths.
// This is the single source of truth for file locations produced by the
// analyzer: chart images, cleaned exports, the summary report, and logs.
type Paths struct {
	ExecutableDir string
	DataDir       string
	ReportsDir    string
	ChartsDir     string
	LogsDir       string

	// Well-known output files
	CleanedCSV  string
	SummaryJSON string
}

// Chart file names, fixed so downstream tooling can reference them.
const (
	ChartPartnersPerCollege = "partners_per_college.png"
	ChartSectorFrequency    = "sector_frequency.png"
	ChartTierDistribution   = "membership_tier_count_distribution.png"
	ChartFeeBoxPlot         = "membership_fees.png"
	ChartFeeHistogram       = "membership_fees_dist.png"
	ChartLevelComparison    = "dept_vs_ece_comparison.png"
	ChartTopCompanies       = "top_companies.png"
	ChartCompanyFrequency   = "company_frequency_distribution.png"
)

// GetPaths returns the application paths relative to the executable location.
// All paths are resolved against the executable directory, never the current
// working directory, so the tool behaves the same wherever it is invoked.
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %v", err)
	}

	// Resolve symlinks to get the actual executable location
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %v", err)
	}

	return PathsFromDir(filepath.Dir(exe)), nil
}

// PathsFromDir builds the path set rooted at the given base directory.
// Directory structure:
//
//	base/
//	  ├── data/
//	  │   ├── reports/   (cleaned CSV + summary JSON)
//	  │   └── charts/    (PNG chart images)
//	  └── logs/          (application logs)
func PathsFromDir(baseDir string) *Paths {
	dataDir := filepath.Join(baseDir, "data")
	reportsDir := filepath.Join(dataDir, "reports")
	chartsDir := filepath.Join(dataDir, "charts")

	return &Paths{
		ExecutableDir: baseDir,
		DataDir:       dataDir,
		ReportsDir:    reportsDir,
		ChartsDir:     chartsDir,
		LogsDir:       filepath.Join(baseDir, "logs"),

		CleanedCSV:  filepath.Join(reportsDir, "ece_partnerships_cleaned.csv"),
		SummaryJSON: filepath.Join(reportsDir, "analysis_summary.json"),
	}
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.DataDir,
		p.ReportsDir,
		p.ChartsDir,
		p.LogsDir,
	}

	logger := slog.Default()

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %v", dir, err)
		}

		if logger != nil {
			logger.Debug("Ensured directory exists",
				slog.String("directory", dir))
		}
	}

	return nil
}

// GetChartPath returns the path for a chart image file
func (p *Paths) GetChartPath(filename string) string {
	return filepath.Join(p.ChartsDir, filename)
}

// GetReportPath returns the path for a report file
func (p *Paths) GetReportPath(filename string) string {
	return filepath.Join(p.ReportsDir, filename)
}

// GetLogPath returns the path for a log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// LogPathResolution logs detailed path resolution information for debugging
func (p *Paths) LogPathResolution() {
	logger := slog.Default()
	if logger == nil {
		return
	}

	logger.Info("Path resolution summary",
		slog.Group("directories",
			slog.String("executable", p.ExecutableDir),
			slog.String("data", p.DataDir),
			slog.String("reports", p.ReportsDir),
			slog.String("charts", p.ChartsDir),
			slog.String("logs", p.LogsDir),
		),
		slog.Group("report_files",
			slog.String("cleaned_csv", p.CleanedCSV),
			slog.String("summary_json", p.SummaryJSON),
		))
}
