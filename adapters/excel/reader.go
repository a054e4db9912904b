package excel

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"meanci/internal"
)

// ColumnReader reads a single numeric column out of an Excel or CSV file so
// it can be fed to the interval calculator as a sample.
type ColumnReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	logger   *internal.Logger
}

// NewColumnReader creates a reader that handles both Excel and CSV files.
func NewColumnReader(filePath string) *ColumnReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &ColumnReader{filePath: filePath, fileType: fileType, logger: internal.DefaultLogger}
}

// ReadColumn returns the values under the named header. Blank cells are
// skipped; a non-numeric cell is an error rather than a silent NaN.
func (r *ColumnReader) ReadColumn(column string) ([]float64, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		return nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
	if err != nil {
		return nil, err
	}

	return extractColumn(rows, column)
}

func (r *ColumnReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	// Always use Sheet1
	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, fmt.Errorf("failed to read Sheet1: %w", err)
	}
	r.logger.Debug("read %d rows from %s", len(rows), r.filePath)
	return rows, nil
}

func (r *ColumnReader) readCSVRows() ([][]string, error) {
	f, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	r.logger.Debug("read %d rows from %s", len(rows), r.filePath)
	return rows, nil
}

func extractColumn(rows [][]string, column string) ([]float64, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("file needs a header row and at least one data row")
	}

	colIdx := -1
	for i, header := range rows[0] {
		if strings.EqualFold(strings.TrimSpace(header), column) {
			colIdx = i
			break
		}
	}
	if colIdx == -1 {
		return nil, fmt.Errorf("column %q not found in header %v", column, rows[0])
	}

	values := make([]float64, 0, len(rows)-1)
	for rowNum, row := range rows[1:] {
		if colIdx >= len(row) {
			continue // short row, treat as blank cell
		}
		cell := strings.TrimSpace(row[colIdx])
		if cell == "" {
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: cannot parse %q as number: %w", rowNum+2, cell, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("row %d: non-finite value %q", rowNum+2, cell)
		}
		values = append(values, v)
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("column %q contains no numeric values", column)
	}
	return values, nil
}
