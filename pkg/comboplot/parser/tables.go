package parser

import "github.com/ukaji3/comboplot-go/pkg/comboplot/models"

// DataBounds returns the bounding box of non-empty cells as a 1-based
// range. ok is false when every cell is empty.
func DataBounds(rows [][]string) (bounds models.CellRange, ok bool) {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return models.CellRange{}, false
	}
	return models.CellRange{R1: minRow + 1, C1: minCol + 1, R2: maxRow + 1, C2: maxCol + 1}, true
}

// clampBounds intersects r with the data bounds of rows.
func clampBounds(rows [][]string, r models.CellRange) (models.CellRange, bool) {
	data, ok := DataBounds(rows)
	if !ok {
		return models.CellRange{}, false
	}
	out := models.CellRange{
		R1: max(r.R1, data.R1),
		C1: max(r.C1, data.C1),
		R2: min(r.R2, data.R2),
		C2: min(r.C2, data.C2),
	}
	if out.R1 > out.R2 || out.C1 > out.C2 {
		return models.CellRange{}, false
	}
	return out, true
}

// findDataBounds finds the bounding box of non-empty cells (0-based).
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}

// rowIsEmpty reports whether the 0-based row has no value between the
// 0-based columns c1 and c2.
func rowIsEmpty(rows [][]string, row, c1, c2 int) bool {
	for c := c1; c <= c2; c++ {
		if cellAt(rows, row, c) != "" {
			return false
		}
	}
	return true
}

// cellAt returns the 0-based cell value, or "" outside the grid.
func cellAt(rows [][]string, row, col int) string {
	if row < 0 || row >= len(rows) || col < 0 || col >= len(rows[row]) {
		return ""
	}
	return rows[row][col]
}
