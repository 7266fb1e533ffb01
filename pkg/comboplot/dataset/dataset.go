// Package dataset bins configured series into the four render layers of a
// combination chart and assigns series colors.
package dataset

import (
	"github.com/ukaji3/comboplot-go/pkg/comboplot/models"
)

// ColumnSource provides column data by header name.
type ColumnSource interface {
	// Categories returns the string-coerced labels of a column.
	Categories(column string) []string
	// Values returns the numeric values of a column.
	Values(column string) []float64
}

// Point is one plotted value.
type Point struct {
	// Index is the category position on the x axis.
	Index int `json:"index"`
	// Category is the label at Index.
	Category string `json:"category"`
	// Value is the plotted value.
	Value float64 `json:"value"`
}

// Series is a configured series with its data resolved.
type Series struct {
	// Name is the source column name.
	Name string `json:"name"`
	// ColorIndex is the position of the series in render order.
	ColorIndex int `json:"color_index"`
	// Color is the palette color for ColorIndex.
	Color string `json:"color"`
	// Points holds min(len(categories), len(values)) points.
	Points []Point `json:"points"`
}

// Value returns the value keyed by category. Every row is plotted, but when
// a label repeats the last row wins, as in a category-keyed table.
func (s Series) Value(category string) (float64, bool) {
	for i := len(s.Points) - 1; i >= 0; i-- {
		if s.Points[i].Category == category {
			return s.Points[i].Value, true
		}
	}
	return 0, false
}

// Group is the set of series sharing an axis and chart kind.
type Group struct {
	Layer  models.Layer `json:"layer"`
	Series []Series     `json:"series"`
}

// Axis returns the range axis of the group.
func (g Group) Axis() models.Axis {
	return g.Layer.Axis()
}

// Kind returns the chart kind of the group.
func (g Group) Kind() models.ChartKind {
	return g.Layer.Kind()
}

// Plan is the binned form of a chart configuration.
type Plan struct {
	// XAxis is the category column name.
	XAxis string `json:"x_axis"`
	// Categories holds the x axis labels in row order.
	Categories []string `json:"categories"`
	// Groups holds the non-empty groups in render order.
	Groups []Group `json:"groups"`
	// HasSecondaryAxis is set when any series uses the secondary axis.
	HasSecondaryAxis bool `json:"has_secondary_axis"`
}

// Group returns the group for layer, if it has any series.
func (p *Plan) Group(layer models.Layer) (*Group, bool) {
	for i := range p.Groups {
		if p.Groups[i].Layer == layer {
			return &p.Groups[i], true
		}
	}
	return nil, false
}

// Series returns every series in render order.
func (p *Plan) Series() []Series {
	var out []Series
	for _, g := range p.Groups {
		out = append(out, g.Series...)
	}
	return out
}

// Build bins the series of cfg into layers. Series keep their configured
// order inside a layer and layers follow models.Layers. Colors are assigned
// across all layers in that same order. Unknown columns are not checked
// here; src decides what they yield.
func Build(cfg models.ChartConfiguration, src ColumnSource) *Plan {
	categories := src.Categories(cfg.XAxis)
	plan := &Plan{
		XAxis:            cfg.XAxis,
		Categories:       categories,
		HasSecondaryAxis: cfg.HasSecondaryAxis(),
	}

	var byLayer [len(models.Layers)][]models.Series
	for _, s := range cfg.Series {
		l := s.Layer()
		byLayer[l] = append(byLayer[l], s)
	}

	colorIndex := 0
	for _, layer := range models.Layers {
		if len(byLayer[layer]) == 0 {
			continue
		}
		group := Group{Layer: layer}
		for _, s := range byLayer[layer] {
			group.Series = append(group.Series, Series{
				Name:       s.Column,
				ColorIndex: colorIndex,
				Color:      SeriesColor(colorIndex),
				Points:     pair(categories, src.Values(s.Column)),
			})
			colorIndex++
		}
		plan.Groups = append(plan.Groups, group)
	}

	return plan
}

// pair zips categories with values, truncating to the shorter one.
func pair(categories []string, values []float64) []Point {
	n := min(len(categories), len(values))
	points := make([]Point, n)
	for i := 0; i < n; i++ {
		points[i] = Point{Index: i, Category: categories[i], Value: values[i]}
	}
	return points
}
