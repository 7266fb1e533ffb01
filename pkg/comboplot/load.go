package comboplot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/comboplot-go/pkg/comboplot/models"
	"github.com/ukaji3/comboplot-go/pkg/comboplot/parser"
)

// Load reads the table selected by opts from the workbook at path.
func Load(ctx context.Context, path string, opts Options) (*models.Table, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return loadTable(ctx, f, path, opts)
}

// Inspect reports every sheet of the workbook, the columns still available
// for series on the selected sheet, and the bar/line charts it contains. An
// empty xAxis means the first column of the selected sheet.
func Inspect(ctx context.Context, path, xAxis string, opts Options) (*models.WorkbookSummary, error) {
	logger := zerolog.Ctx(ctx)

	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	wb := &models.WorkbookSummary{BookName: filepath.Base(path)}
	for _, name := range f.GetSheetList() {
		summary := models.SheetSummary{Name: name}
		if table, err := parser.ReadTable(f, name, models.CellRange{}); err != nil {
			summary.Error = err.Error()
		} else {
			summary.Columns = table.Columns
			summary.Rows = table.RowCount()
		}
		wb.Sheets = append(wb.Sheets, summary)
	}

	if table, err := loadTable(ctx, f, path, opts); err == nil {
		if xAxis == "" {
			xAxis = table.Columns[0]
		}
		wb.XAxis = xAxis
		wb.Available = models.AvailableColumns(table.Columns, xAxis, nil)
	} else {
		logger.Debug().Err(err).Msg("selected sheet cannot be charted")
	}

	templates, err := chartTemplates(f, path)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to read charts")
	}
	wb.Charts = templates

	return wb, nil
}

// Templates returns the bar/line charts of the workbook at path with their
// series names resolved.
func Templates(ctx context.Context, path string) ([]models.ChartTemplate, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	templates, err := chartTemplates(f, path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	zerolog.Ctx(ctx).Debug().Int("charts", len(templates)).Msg("read chart templates")
	return templates, nil
}

// FindTemplate looks a template up by name, case-insensitively, or by its
// 1-based position.
func FindTemplate(templates []models.ChartTemplate, name string) (models.ChartTemplate, bool) {
	for _, t := range templates {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	if n, err := strconv.Atoi(name); err == nil && n >= 1 && n <= len(templates) {
		return templates[n-1], true
	}
	return models.ChartTemplate{}, false
}

func chartTemplates(f *excelize.File, path string) ([]models.ChartTemplate, error) {
	templates, err := parser.ExtractChartTemplates(path)
	if err != nil {
		return nil, err
	}
	parser.ResolveTemplateNames(f, templates)
	return templates, nil
}

func openWorkbook(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, &LoadError{Path: path, Err: ErrFileNotFound}
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("%w: %v", ErrInvalidFormat, err)}
	}
	return f, nil
}

func loadTable(ctx context.Context, f *excelize.File, path string, opts Options) (*models.Table, error) {
	sheet := opts.Sheet
	var rng models.CellRange

	if opts.Range != "" {
		rangeSheet, r, err := parser.ResolveRange(f, opts.Range)
		if err != nil {
			return nil, &LoadError{Path: path, Sheet: sheet, Err: err}
		}
		if rangeSheet != "" {
			if sheet != "" && sheet != rangeSheet {
				return nil, &LoadError{Path: path, Sheet: sheet,
					Err: fmt.Errorf("%w: %s refers to sheet %q", ErrInvalidRange, opts.Range, rangeSheet)}
			}
			sheet = rangeSheet
		}
		rng = r
	}
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, &LoadError{Path: path, Err: ErrNoRows}
		}
		sheet = sheets[0]
	}

	table, err := parser.ReadTable(f, sheet, rng)
	if err != nil {
		return nil, &LoadError{Path: path, Sheet: sheet, Err: err}
	}

	zerolog.Ctx(ctx).Debug().
		Str("sheet", sheet).
		Str("range", table.Range.String()).
		Strs("columns", table.Columns).
		Int("rows", table.RowCount()).
		Msg("loaded table")
	return table, nil
}
