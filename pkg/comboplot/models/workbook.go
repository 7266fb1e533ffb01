package models

// SheetSummary describes one worksheet for inspection.
type SheetSummary struct {
	// Name is the worksheet name.
	Name string `json:"name"`
	// Columns holds the header names, when the sheet could be loaded.
	Columns []string `json:"columns,omitempty"`
	// Rows is the number of data records.
	Rows int `json:"rows"`
	// Error is the load error message, if the sheet is not chartable.
	Error string `json:"error,omitempty"`
}

// WorkbookSummary is the inspection report for a workbook.
type WorkbookSummary struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets lists every worksheet in workbook order.
	Sheets []SheetSummary `json:"sheets"`
	// XAxis is the x-axis column used to compute Available.
	XAxis string `json:"x_axis,omitempty"`
	// Available lists the columns of the selected sheet still free for series.
	Available []string `json:"available,omitempty"`
	// Charts lists bar/line charts found in the workbook.
	Charts []ChartTemplate `json:"charts,omitempty"`
}
