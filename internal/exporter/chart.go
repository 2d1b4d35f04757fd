package exporter

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"partnerscope/internal/analysis"
	"partnerscope/internal/config"
	apperrors "partnerscope/internal/errors"
)

// Default canvas size for all charts, in inches
const (
	chartWidth  = 10 * vg.Inch
	chartHeight = 6 * vg.Inch
)

// ChartRenderer renders analysis aggregates to PNG files under the charts
// directory at a fixed DPI.
type ChartRenderer struct {
	paths *config.Paths
	dpi   int
}

// NewChartRenderer creates a renderer writing at the given DPI
func NewChartRenderer(paths *config.Paths, dpi int) *ChartRenderer {
	if dpi <= 0 {
		dpi = 300
	}
	return &ChartRenderer{paths: paths, dpi: dpi}
}

// BarChartSpec describes a single bar chart
type BarChartSpec struct {
	File       string
	Title      string
	XLabel     string
	YLabel     string
	Rows       []analysis.CountRow
	Horizontal bool
}

// BarChart renders labeled counts as a bar chart. Horizontal charts put the
// labels on the Y axis, which keeps long college names readable.
func (r *ChartRenderer) BarChart(spec BarChartSpec) error {
	if len(spec.Rows) == 0 {
		return apperrors.NewValidationError("no rows to chart").WithContext("file", spec.File)
	}

	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel

	values := make(plotter.Values, len(spec.Rows))
	labels := make([]string, len(spec.Rows))
	for i, row := range spec.Rows {
		values[i] = float64(row.Count)
		labels[i] = row.Label
	}

	bar, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return fmt.Errorf("failed to build bar chart: %w", err)
	}
	bar.LineStyle.Width = 0
	bar.Color = plotutil.Color(0)
	bar.Horizontal = spec.Horizontal
	p.Add(bar)

	if spec.Horizontal {
		p.NominalY(labels...)
	} else {
		p.NominalX(labels...)
		// Slanted tick labels keep crowded category axes legible
		p.X.Tick.Label.Rotation = math.Pi / 3
		p.X.Tick.Label.XAlign = draw.XRight
		p.X.Tick.Label.YAlign = draw.YCenter
	}

	return r.savePNG(p, spec.File)
}

// Histogram renders an equal-width histogram of the given values
func (r *ChartRenderer) Histogram(file, title, xlabel string, values []float64, bins int) error {
	if len(values) == 0 {
		return apperrors.NewValidationError("no values to chart").WithContext("file", file)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "Count"

	h, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return fmt.Errorf("failed to build histogram: %w", err)
	}
	h.FillColor = plotutil.Color(2)
	p.Add(h)

	return r.savePNG(p, file)
}

// BoxPlot renders one box per group at unit spacing along the X axis.
// Groups and labels are parallel slices.
func (r *ChartRenderer) BoxPlot(file, title, ylabel string, labels []string, groups [][]float64) error {
	if len(groups) == 0 {
		return apperrors.NewValidationError("no groups to chart").WithContext("file", file)
	}
	if len(labels) != len(groups) {
		return apperrors.NewValidationError("labels and groups length mismatch").
			WithContext("labels", len(labels)).
			WithContext("groups", len(groups))
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = ylabel

	for i, group := range groups {
		box, err := plotter.NewBoxPlot(vg.Points(40), float64(i), plotter.Values(group))
		if err != nil {
			return fmt.Errorf("failed to build box plot %q: %w", labels[i], err)
		}
		p.Add(box)
	}
	p.NominalX(labels...)

	return r.savePNG(p, file)
}

// savePNG rasterizes the plot and writes it under the charts directory
func (r *ChartRenderer) savePNG(p *plot.Plot, file string) error {
	fullPath := file
	if !filepath.IsAbs(fullPath) {
		fullPath = r.paths.GetChartPath(fullPath)
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create charts directory: %w", err)
	}

	canvas := vgimg.NewWith(
		vgimg.UseWH(chartWidth, chartHeight),
		vgimg.UseDPI(r.dpi),
	)
	p.Draw(draw.New(canvas))

	f, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}

	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode chart: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close chart file: %w", err)
	}

	slog.Info("Rendered chart",
		slog.String("full_path", fullPath),
		slog.Int("dpi", r.dpi))
	return nil
}
