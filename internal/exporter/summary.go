package exporter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"partnerscope/internal/analysis"
	"partnerscope/internal/config"
)

// Summary is the JSON report written next to the charts. Embedding the
// analysis results inlines their fields at the top level of the document.
type Summary struct {
	GeneratedAt time.Time `json:"generated_at"`
	RunID       string    `json:"run_id"`
	SourceFile  string    `json:"source_file"`
	Charts      []string  `json:"charts,omitempty"`
	*analysis.Results
}

// SummaryWriter serializes analysis summaries to disk
type SummaryWriter struct {
	paths *config.Paths
}

// NewSummaryWriter creates a new summary writer instance
func NewSummaryWriter(paths *config.Paths) *SummaryWriter {
	return &SummaryWriter{paths: paths}
}

// Write serializes the summary as indented JSON. Relative paths land in the
// reports directory.
func (w *SummaryWriter) Write(filePath string, s *Summary) error {
	fullPath := filePath
	if !filepath.IsAbs(fullPath) {
		fullPath = w.paths.GetReportPath(fullPath)
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	slog.Info("Wrote analysis summary",
		slog.String("full_path", fullPath),
		slog.Int("bytes", len(data)))
	return nil
}
