package models

import (
	"fmt"
	"strings"
)

// ChartKind is how a series is drawn.
type ChartKind string

const (
	// KindBar draws the series as clustered bars.
	KindBar ChartKind = "bar"
	// KindLine draws the series as a line with point markers.
	KindLine ChartKind = "line"
)

// ParseChartKind parses a chart kind name. "column" is accepted as the Excel
// name for vertical bars.
func ParseChartKind(s string) (ChartKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bar", "column":
		return KindBar, nil
	case "line":
		return KindLine, nil
	default:
		return "", fmt.Errorf("unknown chart kind %q (must be bar or line)", s)
	}
}

// Axis is the range axis a series is scaled against.
type Axis string

const (
	// AxisPrimary is the left value axis. Always present.
	AxisPrimary Axis = "primary"
	// AxisSecondary is the right value axis, drawn only when a series uses it.
	AxisSecondary Axis = "secondary"
)

// ParseAxis parses an axis name.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "primary", "left":
		return AxisPrimary, nil
	case "secondary", "right":
		return AxisSecondary, nil
	default:
		return "", fmt.Errorf("unknown axis %q (must be primary or secondary)", s)
	}
}

// Layer is the (axis, kind) pair a series belongs to. The four layers are
// drawn bottom to top in declaration order.
type Layer int

const (
	// LayerPrimaryBar is the bottom-most layer.
	LayerPrimaryBar Layer = iota
	LayerPrimaryLine
	LayerSecondaryBar
	// LayerSecondaryLine is drawn on top of everything else.
	LayerSecondaryLine
)

// Layers lists every layer in render order.
var Layers = [...]Layer{LayerPrimaryBar, LayerPrimaryLine, LayerSecondaryBar, LayerSecondaryLine}

// LayerOf returns the layer for an axis and chart kind. Anything other than
// the secondary axis is primary; anything other than a line is a bar.
func LayerOf(axis Axis, kind ChartKind) Layer {
	l := LayerPrimaryBar
	if axis == AxisSecondary {
		l = LayerSecondaryBar
	}
	if kind == KindLine {
		l++
	}
	return l
}

// Axis returns the range axis of the layer.
func (l Layer) Axis() Axis {
	if l >= LayerSecondaryBar {
		return AxisSecondary
	}
	return AxisPrimary
}

// Kind returns the chart kind of the layer.
func (l Layer) Kind() ChartKind {
	if l == LayerPrimaryLine || l == LayerSecondaryLine {
		return KindLine
	}
	return KindBar
}

func (l Layer) String() string {
	return string(l.Axis()) + "-" + string(l.Kind())
}

// Series is one worksheet column plotted against the category axis.
type Series struct {
	// Column is the header name of the value column.
	Column string `json:"column" mapstructure:"column"`
	// Kind is bar or line.
	Kind ChartKind `json:"kind" mapstructure:"kind"`
	// Axis is primary or secondary.
	Axis Axis `json:"axis" mapstructure:"axis"`
}

// NewSeries builds a series on the given axis.
func NewSeries(column string, kind ChartKind, axis Axis) Series {
	return Series{Column: column, Kind: kind, Axis: axis}
}

// Layer returns the layer the series is drawn in.
func (s Series) Layer() Layer {
	return LayerOf(s.Axis, s.Kind)
}

// Secondary reports whether the series uses the secondary axis.
func (s Series) Secondary() bool {
	return s.Axis == AxisSecondary
}

func (s Series) String() string {
	return fmt.Sprintf("%s:%s:%s", s.Column, s.Layer().Kind(), s.Layer().Axis())
}

// ParseSeries parses "COLUMN[:KIND][:AXIS]". Kind defaults to bar and axis
// to primary. Trailing tokens are only consumed when they are a valid kind or
// axis, so column names may themselves contain colons.
func ParseSeries(s string) (Series, error) {
	series := Series{Kind: KindBar, Axis: AxisPrimary}
	parts := strings.Split(s, ":")

	if n := len(parts); n > 1 {
		if axis, err := ParseAxis(parts[n-1]); err == nil {
			series.Axis = axis
			parts = parts[:n-1]
		}
	}
	if n := len(parts); n > 1 {
		if kind, err := ParseChartKind(parts[n-1]); err == nil {
			series.Kind = kind
			parts = parts[:n-1]
		}
	}

	series.Column = strings.TrimSpace(strings.Join(parts, ":"))
	if series.Column == "" {
		return Series{}, fmt.Errorf("series %q has no column name", s)
	}
	return series, nil
}

// MarshalText encodes the layer as "axis-kind".
func (l Layer) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}
