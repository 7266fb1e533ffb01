package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/comboplot-go/pkg/comboplot/models"
	"github.com/xuri/excelize/v2"
)

var (
	// ErrSheetNotFound indicates the requested worksheet does not exist.
	ErrSheetNotFound = errors.New("sheet not found")
	// ErrNoRows indicates the sheet has no data rows below the header.
	ErrNoRows = errors.New("no data rows")
	// ErrDuplicateColumn indicates two header cells with the same name.
	ErrDuplicateColumn = errors.New("duplicate column name")
	// ErrTooFewColumns indicates fewer than two columns, so there is nothing
	// to plot against the category column.
	ErrTooFewColumns = errors.New("at least two columns are required")
)

// ReadTable loads a worksheet as a header row followed by data records.
// When rng is zero the table spans the bounding box of non-empty cells;
// otherwise it is limited to rng. The first non-empty row is the header.
// Blank header cells are named after their column letter.
func ReadTable(f *excelize.File, sheetName string, rng models.CellRange) (*models.Table, error) {
	display, err := f.GetRows(sheetName)
	if err != nil {
		var notExist excelize.ErrSheetNotExist
		if errors.As(err, &notExist) {
			return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, sheetName)
		}
		return nil, err
	}
	raw, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	bounds, ok := DataBounds(display)
	if ok && !rng.IsZero() {
		bounds, ok = clampBounds(display, rng)
	}
	if !ok {
		return nil, ErrNoRows
	}

	// 0-based coordinates from here on
	r1, r2, c1, c2 := bounds.R1-1, bounds.R2-1, bounds.C1-1, bounds.C2-1
	header := r1
	for header <= r2 && rowIsEmpty(display, header, c1, c2) {
		header++
	}
	if header > r2 {
		return nil, ErrNoRows
	}

	columns, err := headerNames(display, header, c1, c2)
	if err != nil {
		return nil, err
	}
	if len(columns) < 2 {
		return nil, fmt.Errorf("%w: found %d", ErrTooFewColumns, len(columns))
	}

	table := &models.Table{
		Sheet:   sheetName,
		Range:   models.CellRange{R1: header + 1, C1: c1 + 1, R2: r2 + 1, C2: c2 + 1},
		Columns: columns,
	}
	for r := header + 1; r <= r2; r++ {
		if rowIsEmpty(display, r, c1, c2) && rowIsEmpty(raw, r, c1, c2) {
			continue
		}
		record := make(models.Record, len(columns))
		for i, name := range columns {
			text := cellAt(display, r, c1+i)
			rawText := cellAt(raw, r, c1+i)
			if rawText == "" {
				rawText = text
			}
			if rawText == "" {
				continue
			}
			record[name] = models.Cell{Value: parseValue(rawText), Text: text}
		}
		table.Rows = append(table.Rows, record)
	}

	if len(table.Rows) == 0 {
		return nil, ErrNoRows
	}
	return table, nil
}

// headerNames reads the unique column names of the 0-based header row.
func headerNames(rows [][]string, header, c1, c2 int) ([]string, error) {
	seen := make(map[string]struct{}, c2-c1+1)
	columns := make([]string, 0, c2-c1+1)

	for c := c1; c <= c2; c++ {
		name := strings.TrimSpace(cellAt(rows, header, c))
		if name == "" {
			name, _ = excelize.ColumnNumberToName(c + 1)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
		}
		seen[name] = struct{}{}
		columns = append(columns, name)
	}

	return columns, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float; NaN and Inf stay text
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	// Return as string
	return s
}
