package models

import "strings"

// ChartConfiguration is everything needed to draw one chart.
type ChartConfiguration struct {
	// XAxis is the column supplying category labels.
	XAxis string `json:"x_axis" mapstructure:"x_axis"`
	// Series is the ordered list of plotted columns. Order decides color
	// assignment and stacking within a layer.
	Series []Series `json:"series" mapstructure:"series"`
	// Image holds output size, title and legend settings.
	Image ImageSettings `json:"image" mapstructure:"image"`
}

// IsValid reports whether an x-axis column is set and at least one series
// is configured.
func (c ChartConfiguration) IsValid() bool {
	return strings.TrimSpace(c.XAxis) != "" && len(c.Series) > 0
}

// PrimarySeries returns the series on the primary axis, in order.
func (c ChartConfiguration) PrimarySeries() []Series {
	return c.filter(func(s Series) bool { return !s.Secondary() })
}

// SecondarySeries returns the series on the secondary axis, in order.
func (c ChartConfiguration) SecondarySeries() []Series {
	return c.filter(Series.Secondary)
}

// HasSecondaryAxis reports whether any series requests the secondary axis.
func (c ChartConfiguration) HasSecondaryAxis() bool {
	for _, s := range c.Series {
		if s.Secondary() {
			return true
		}
	}
	return false
}

func (c ChartConfiguration) filter(keep func(Series) bool) []Series {
	var out []Series
	for _, s := range c.Series {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

// AvailableColumns returns the columns of all that are neither the x-axis
// column nor used by any series, in their original order.
func AvailableColumns(all []string, xAxis string, series []Series) []string {
	used := make(map[string]struct{}, len(series)+1)
	if xAxis != "" {
		used[xAxis] = struct{}{}
	}
	for _, s := range series {
		used[s.Column] = struct{}{}
	}

	available := make([]string, 0, len(all))
	for _, name := range all {
		if _, ok := used[name]; !ok {
			available = append(available, name)
		}
	}
	return available
}
