// Package output formats inspection reports and chart plans for the
// terminal.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ukaji3/comboplot-go/pkg/comboplot/dataset"
	"github.com/ukaji3/comboplot-go/pkg/comboplot/models"
)

// ToJSON serializes v, indented when pretty is set.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// WorkbookToJSON serializes an inspection report.
func WorkbookToJSON(wb *models.WorkbookSummary, pretty bool) ([]byte, error) {
	return ToJSON(wb, pretty)
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	layerStyle  = lipgloss.NewStyle().Faint(true)
)

// SeriesStyle returns a style with the series color as foreground.
func SeriesStyle(s dataset.Series) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color))
}

// Summary lists the series of plan in render order, one per line, each
// with a swatch in its chart color.
func Summary(title string, plan *dataset.Plan) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(title))
	b.WriteByte('\n')

	width := 0
	for _, s := range plan.Series() {
		width = max(width, lipgloss.Width(s.Name))
	}

	for _, g := range plan.Groups {
		for _, s := range g.Series {
			fmt.Fprintf(&b, "  %s %-*s %s %d\n",
				SeriesStyle(s).Render("■"),
				width, s.Name,
				layerStyle.Render(fmt.Sprintf("%-14s", g.Layer)),
				len(s.Points))
		}
	}
	return b.String()
}
