package models

// Table is one worksheet loaded as a header row plus data records.
type Table struct {
	// Sheet is the worksheet name.
	Sheet string `json:"sheet"`
	// Range is the cell range the table was read from.
	Range CellRange `json:"range"`
	// Columns holds the unique header names in sheet order.
	Columns []string `json:"columns"`
	// Rows holds the data records below the header.
	Rows []Record `json:"rows,omitempty"`
}

// RowCount returns the number of data records.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// HasColumn reports whether name is a header of the table.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Categories returns the display text of every row for column. Missing
// cells, and every row of an unknown column, yield "".
func (t *Table) Categories(column string) []string {
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[column].String()
	}
	return out
}

// Values returns the numeric value of every row for column. Missing or
// non-numeric cells, and every row of an unknown column, yield 0.
func (t *Table) Values(column string) []float64 {
	out := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[column].Float()
	}
	return out
}
