package models

// TemplateSeries is one series of a chart found in the workbook.
type TemplateSeries struct {
	// Name is the cached series name, normally the header of the value column.
	Name string `json:"name"`
	// NameRange is the range reference for the series name.
	NameRange string `json:"name_range,omitempty"`
	// Kind is bar or line.
	Kind ChartKind `json:"kind"`
	// Axis is primary or secondary.
	Axis Axis `json:"axis"`
	// XRange is the range reference for category values.
	XRange string `json:"x_range,omitempty"`
	// YRange is the range reference for the plotted values.
	YRange string `json:"y_range,omitempty"`
}

// ChartTemplate is a bar/line chart already present in a workbook, usable as
// a starting configuration.
type ChartTemplate struct {
	// Name is the drawing object name (e.g. "Chart 1").
	Name string `json:"name"`
	// Sheet is the worksheet that hosts the chart.
	Sheet string `json:"sheet"`
	// Title is the chart title.
	Title string `json:"title,omitempty"`
	// W is the chart width in pixels (0 if unknown).
	W int `json:"w,omitempty"`
	// H is the chart height in pixels (0 if unknown).
	H int `json:"h,omitempty"`
	// Series lists the bar and line series in plot order.
	Series []TemplateSeries `json:"series"`
}

// Configuration converts the template into a chart configuration for the
// given x-axis column. Image size falls back to defaults when the template
// carries none.
func (t ChartTemplate) Configuration(xAxis string) ChartConfiguration {
	cfg := ChartConfiguration{
		XAxis: xAxis,
		Image: DefaultImageSettings(),
	}
	cfg.Image.Title = t.Title
	if t.W > 0 && t.H > 0 {
		cfg.Image.Width, cfg.Image.Height = float64(t.W), float64(t.H)
	}
	for _, s := range t.Series {
		cfg.Series = append(cfg.Series, NewSeries(s.Name, s.Kind, s.Axis))
	}
	return cfg
}
