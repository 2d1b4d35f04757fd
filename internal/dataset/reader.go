package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "partnerscope/internal/errors"
)

// Load reads a spreadsheet export into a cleaned Table, dispatching on the
// file extension. CSV is the primary format; xlsx is supported for raw
// sheet exports that were never converted.
func Load(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path)
	case ".xlsx", ".xlsm":
		return LoadExcel(path)
	default:
		return nil, apperrors.NewParsingError(
			fmt.Sprintf("unsupported input format %q", filepath.Ext(path)), nil)
	}
}

// LoadCSV reads a UTF-8 CSV file into a cleaned Table. Malformed lines are
// skipped with a warning; rows longer than the header are discarded and
// short rows are padded.
func LoadCSV(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to open CSV file", err).
			WithContext("path", path)
	}
	defer file.Close()

	reader := csv.NewReader(stripBOM(file))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read CSV header", err).
			WithContext("path", path)
	}

	table := NewTable(header)
	line := 1
	skipped := 0

	for {
		line++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			slog.Warn("Skipping malformed CSV line",
				slog.Int("line", line),
				slog.String("error", err.Error()))
			skipped++
			continue
		}
		if len(record) > len(header) {
			slog.Warn("Skipping over-long CSV line",
				slog.Int("line", line),
				slog.Int("fields", len(record)),
				slog.Int("columns", len(header)))
			skipped++
			continue
		}
		table.AppendRow(record)
	}

	table.Clean()

	slog.Info("Loaded CSV dataset",
		slog.String("path", path),
		slog.Int("rows", table.RowCount()),
		slog.Int("columns", table.ColumnCount()),
		slog.Int("skipped_lines", skipped))

	return table, nil
}

// LoadExcel reads the data sheet of an xlsx workbook into a cleaned Table.
// The first sheet with at least a header row and one data row wins.
func LoadExcel(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to open workbook", err).
			WithContext("path", path)
	}
	defer f.Close()

	var rows [][]string
	var sheetName string
	for _, name := range f.GetSheetList() {
		sheetRows, err := f.GetRows(name)
		if err != nil {
			continue
		}
		if len(sheetRows) >= 2 && len(sheetRows[0]) > 1 {
			rows = sheetRows
			sheetName = name
			break
		}
	}

	if rows == nil {
		return nil, apperrors.NewParsingError("could not find a data sheet in workbook", nil).
			WithContext("path", path)
	}

	slog.Info("Found data sheet", slog.String("sheet_name", sheetName))

	table := NewTable(rows[0])
	for _, row := range rows[1:] {
		table.AppendRow(row)
	}

	table.Clean()

	slog.Info("Loaded Excel dataset",
		slog.String("path", path),
		slog.String("sheet", sheetName),
		slog.Int("rows", table.RowCount()),
		slog.Int("columns", table.ColumnCount()))

	return table, nil
}

// stripBOM removes a leading UTF-8 byte order mark if present, as written
// by Excel and Google Sheets exports
func stripBOM(r io.Reader) io.Reader {
	buf := bufio.NewReader(r)
	head, err := buf.Peek(3)
	if err == nil && head[0] == 0xEF && head[1] == 0xBB && head[2] == 0xBF {
		buf.Discard(3)
	}
	return buf
}
