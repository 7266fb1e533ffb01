package comboplot

import (
	"path/filepath"
	"strings"
)

// DefaultOutputPath derives the image path from the workbook path:
// sales.xlsx becomes sales_chart.png next to it.
func DefaultOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + "_chart.png"
}

// EnsurePNG appends ".png" unless path already ends with it.
func EnsurePNG(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return path
	}
	return path + ".png"
}
