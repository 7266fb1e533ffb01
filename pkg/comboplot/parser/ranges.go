package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/comboplot-go/pkg/comboplot/models"
	"github.com/xuri/excelize/v2"
)

// ErrInvalidRange indicates a range reference or defined name that cannot be
// resolved.
var ErrInvalidRange = errors.New("invalid cell range")

// ResolveRange resolves ref to a sheet name and cell range. ref is a plain
// range ("A1:D20", "$A:$D"), a sheet-qualified range ("'My Sheet'!A1:D20")
// or a workbook defined name. The returned sheet is empty when ref does not
// name one.
func ResolveRange(f *excelize.File, ref string) (string, models.CellRange, error) {
	ref = strings.TrimPrefix(strings.TrimSpace(ref), "=")
	if ref == "" {
		return "", models.CellRange{}, fmt.Errorf("%w: empty reference", ErrInvalidRange)
	}

	if !strings.Contains(ref, "!") && !strings.Contains(ref, ":") {
		refersTo, ok := lookupDefinedName(f, ref)
		if !ok {
			return "", models.CellRange{}, fmt.Errorf("%w: no defined name %q", ErrInvalidRange, ref)
		}
		ref = strings.TrimPrefix(refersTo, "=")
	}

	sheet, area := parseAreaReference(ref)
	if area == nil {
		return "", models.CellRange{}, fmt.Errorf("%w: %q", ErrInvalidRange, ref)
	}
	return sheet, *area, nil
}

// lookupDefinedName finds a workbook defined name case-insensitively.
func lookupDefinedName(f *excelize.File, name string) (string, bool) {
	for _, dn := range f.GetDefinedName() {
		if strings.EqualFold(dn.Name, name) {
			return dn.RefersTo, true
		}
	}
	return "", false
}

// splitSheetRef splits 'Sheet Name'!$A$1 into its sheet and cell parts.
func splitSheetRef(ref string) (sheet, cells string) {
	idx := strings.LastIndex(ref, "!")
	if idx < 0 {
		return "", ref
	}
	sheet = strings.Trim(ref[:idx], "'")
	sheet = strings.ReplaceAll(sheet, "''", "'")
	return sheet, ref[idx+1:]
}

// parseAreaReference parses a reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10 or A1:D10.
// Only the first area of a multi-area reference is used.
func parseAreaReference(ref string) (string, *models.CellRange) {
	part := strings.TrimSpace(strings.Split(ref, ",")[0])
	sheet, rangeStr := splitSheetRef(part)
	return sheet, parseRangeToArea(rangeStr)
}

// parseRangeToArea parses a range string like $A$1:$D$10 or A:D.
func parseRangeToArea(rangeStr string) *models.CellRange {
	rangeStr = strings.ReplaceAll(strings.TrimSpace(rangeStr), "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := parseRangeEnd(parts[0], 1)
	if err != nil {
		return nil
	}
	endCol, endRow, err := parseRangeEnd(parts[1], excelize.TotalRows)
	if err != nil {
		return nil
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}
	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}

	return &models.CellRange{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}
}

// parseRangeEnd parses a cell name, or a bare column name whose row becomes
// defaultRow.
func parseRangeEnd(s string, defaultRow int) (col, row int, err error) {
	if s != "" && strings.IndexFunc(s, func(r rune) bool { return r >= '0' && r <= '9' }) < 0 {
		col, err = excelize.ColumnNameToNumber(s)
		return col, defaultRow, err
	}
	return excelize.CellNameToCoordinates(s)
}
