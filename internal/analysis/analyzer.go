package analysis

import (
	"context"
	"fmt"
	"log/slog"

	"partnerscope/internal/config"
	"partnerscope/internal/dataset"
)

// Well-known column names after header normalization. The partner column is
// configurable; these are fixed by the export format.
const (
	ColumnCollege      = "College"
	ColumnTiers        = "Tiers_of_Membership"
	ColumnFeeInfo      = "Fee_Info"
	ColumnProgramLevel = "Program_Level"
)

// Analyzer computes every descriptive aggregate for a cleaned dataset.
// Stages are independent: each reads from the shared table and a missing
// optional column only costs its own output.
type Analyzer struct {
	logger *slog.Logger
	cfg    config.AnalysisConfig
}

// NewAnalyzer creates an analyzer with the given logger and configuration
func NewAnalyzer(logger *slog.Logger, cfg config.AnalysisConfig) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{logger: logger, cfg: cfg}
}

// Results aggregates the output of every analysis stage. Slices are nil for
// stages that were skipped due to a missing column.
type Results struct {
	RowCount    int      `json:"row_count"`
	ColumnCount int      `json:"column_count"`
	Columns     []string `json:"columns"`

	// Exploded is the partner-exploded table exported as the cleaned CSV
	Exploded *dataset.Table `json:"-"`

	PartnersPerCollege []CountRow `json:"partners_per_college,omitempty"`

	SectorColumn    string     `json:"sector_column,omitempty"`
	SectorFrequency []CountRow `json:"sector_frequency,omitempty"`

	TierDistribution []CountRow `json:"tier_distribution,omitempty"`

	Fees          []float64            `json:"-"`
	FeeStats      *FeeStats            `json:"fee_stats,omitempty"`
	FeeHistogram  Histogram            `json:"fee_histogram,omitempty"`
	FeeColleges   []string             `json:"-"`
	FeesByCollege map[string][]float64 `json:"-"`

	LevelBreakdown []CountRow `json:"level_breakdown,omitempty"`

	CompanyFrequency []CountRow `json:"company_frequency,omitempty"`
	UniqueCompanies  int        `json:"unique_companies"`

	// SkippedStages lists analysis stages that could not run and why
	SkippedStages []string `json:"skipped_stages,omitempty"`
}

// TopSectors returns the sector frequency rows capped to the configured N
func (r *Results) TopSectors(n int) []CountRow {
	return topN(r.SectorFrequency, n)
}

// TopCompanies returns the company frequency rows capped to the configured N
func (r *Results) TopCompanies(n int) []CountRow {
	return topN(r.CompanyFrequency, n)
}

// Run computes all aggregates for the cleaned table. The partner column is
// mandatory and its absence aborts the run; every other stage skips with a
// log entry when its column is missing.
func (a *Analyzer) Run(ctx context.Context, table *dataset.Table) (*Results, error) {
	a.logger.InfoContext(ctx, "starting analysis",
		slog.Int("rows", table.RowCount()),
		slog.Int("columns", table.ColumnCount()))

	exploded, err := dataset.Explode(table, a.cfg.PartnerColumn, a.cfg.ListSeparator)
	if err != nil {
		return nil, fmt.Errorf("explode partner column: %w", err)
	}

	results := &Results{
		RowCount:    table.RowCount(),
		ColumnCount: table.ColumnCount(),
		Columns:     table.Columns,
		Exploded:    exploded,
	}

	a.logger.InfoContext(ctx, "exploded partner column",
		slog.String("column", a.cfg.PartnerColumn),
		slog.Int("exploded_rows", exploded.RowCount()))

	// Partners per college
	if table.HasColumn(ColumnCollege) {
		results.PartnersPerCollege = PartnersPerCollege(exploded, ColumnCollege, a.cfg.PartnerColumn)
		a.logger.InfoContext(ctx, "aggregated partners per college",
			slog.Int("colleges", len(results.PartnersPerCollege)))
	} else {
		results.skip(a.logger, ctx, "partners per college", ColumnCollege)
	}

	// Sector frequency
	if sectorCol, ok := FindSectorColumn(exploded); ok {
		results.SectorColumn = sectorCol
		results.SectorFrequency = SectorFrequency(exploded, sectorCol, a.cfg.ListSeparator)
		a.logger.InfoContext(ctx, "aggregated sector frequency",
			slog.String("column", sectorCol),
			slog.Int("sectors", len(results.SectorFrequency)))
	} else {
		results.skip(a.logger, ctx, "sector frequency", "Sector/Industry")
	}

	// Membership tier distribution
	if table.HasColumn(ColumnTiers) {
		results.TierDistribution = TierDistribution(table, ColumnTiers)
		a.logger.InfoContext(ctx, "aggregated membership tier distribution",
			slog.Int("tier_buckets", len(results.TierDistribution)))
	} else {
		results.skip(a.logger, ctx, "membership tiers", ColumnTiers)
	}

	// Fee distribution; fees are parsed once and shared by the box plot,
	// the histogram, and the summary statistics
	if table.HasColumn(ColumnFeeInfo) {
		results.Fees = ParseFees(table, ColumnFeeInfo)
		results.FeeStats = SummarizeFees(results.Fees)
		results.FeeHistogram = BinValues(results.Fees, a.cfg.FeeBins)
		if table.HasColumn(ColumnCollege) {
			results.FeeColleges, results.FeesByCollege = FeesByGroup(table, ColumnFeeInfo, ColumnCollege)
		}
		a.logger.InfoContext(ctx, "parsed membership fees",
			slog.Int("parsed", len(results.Fees)),
			slog.Int("unparsed", table.RowCount()-len(results.Fees)))
	} else {
		results.skip(a.logger, ctx, "membership fees", ColumnFeeInfo)
	}

	// Departmental vs college-level program comparison
	if table.HasColumn(ColumnProgramLevel) {
		results.LevelBreakdown = LevelBreakdown(table, ColumnProgramLevel)
		a.logger.InfoContext(ctx, "aggregated program level breakdown",
			slog.Int("categories", len(results.LevelBreakdown)))
	} else {
		results.skip(a.logger, ctx, "program level comparison", ColumnProgramLevel)
	}

	// Company appearance frequency from the raw partner column
	results.CompanyFrequency = CompanyFrequency(table, a.cfg.PartnerColumn, a.cfg.ListSeparator)
	results.UniqueCompanies = len(results.CompanyFrequency)
	a.logger.InfoContext(ctx, "aggregated company frequency",
		slog.Int("unique_companies", results.UniqueCompanies))

	return results, nil
}

// skip records a stage that could not run because its column is absent
func (r *Results) skip(logger *slog.Logger, ctx context.Context, stage, column string) {
	msg := fmt.Sprintf("%s skipped: column %q not found", stage, column)
	r.SkippedStages = append(r.SkippedStages, msg)
	logger.WarnContext(ctx, "Skipping analysis stage",
		slog.String("stage", stage),
		slog.String("missing_column", column))
}
