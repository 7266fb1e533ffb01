// Package comboplot loads worksheet data and renders combination bar/line
// charts from it.
package comboplot

// Options selects the data to load and how to render it.
type Options struct {
	// Sheet is the worksheet name. Empty means the sheet named by Range, or
	// the first sheet of the workbook.
	Sheet string
	// Range limits the table to a cell range ("A1:D20") or a workbook
	// defined name. Empty means all non-empty cells.
	Range string
	// FontPath is an optional TrueType font used for all chart text.
	FontPath string
}

// DefaultOptions returns options that read the whole first sheet with the
// default font.
func DefaultOptions() Options {
	return Options{}
}
