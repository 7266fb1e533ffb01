package dataset

// Palette is the fixed series palette. Series are colored in render order,
// wrapping around after the last entry.
var Palette = []string{
	"#4F81BD", // blue
	"#C0504D", // red
	"#9BBB59", // green
	"#8064A2", // purple
	"#4BACC6", // cyan
	"#F79646", // orange
	"#777777", // grey
	"#C19859", // brown
}

// SeriesColor returns the palette color for the series at index, cycling
// through the palette.
func SeriesColor(index int) string {
	return Palette[index%len(Palette)]
}
