// Package render draws a binned chart plan as a PNG image.
package render

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ukaji3/comboplot-go/pkg/comboplot/dataset"
	"github.com/ukaji3/comboplot-go/pkg/comboplot/models"
)

// Options holds rendering settings that are not part of the image settings.
type Options struct {
	// Font replaces the default font, e.g. for CJK labels.
	Font *truetype.Font
}

// LoadFont reads a TrueType font file.
func LoadFont(path string) (*truetype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	font, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return font, nil
}

// BuildChart lays out plan as a go-chart chart. Layers are added bottom to
// top in render order; series without points are skipped.
func BuildChart(plan *dataset.Plan, settings models.ImageSettings, opts Options) chart.Chart {
	c := chart.Chart{
		Width:  settings.WidthPixels(),
		Height: settings.HeightPixels(),
		Font:   opts.Font,
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: categoryAxis(plan.Categories),
	}
	if settings.HasTitle() {
		c.Title = strings.TrimSpace(settings.Title)
	}

	var primary, secondary []float64
	for _, g := range plan.Groups {
		yAxis := chartAxis(g.Axis())

		plotted := 0
		for _, s := range g.Series {
			if len(s.Points) > 0 {
				plotted++
			}
		}

		slot := 0
		for _, s := range g.Series {
			if len(s.Points) == 0 {
				continue
			}
			xs, ys := coordinates(s.Points)
			if g.Axis() == models.AxisSecondary {
				secondary = append(secondary, ys...)
			} else {
				primary = append(primary, ys...)
			}

			color := seriesColor(s.Color)
			switch g.Kind() {
			case models.KindLine:
				c.Series = append(c.Series, chart.ContinuousSeries{
					Name:    s.Name,
					YAxis:   yAxis,
					XValues: xs,
					YValues: ys,
					Style: chart.Style{
						StrokeColor: color,
						StrokeWidth: 2,
						DotColor:    color,
						DotWidth:    3,
					},
				})
			default:
				c.Series = append(c.Series, barSeries{
					Name:    s.Name,
					YAxis:   yAxis,
					XValues: xs,
					YValues: ys,
					Style: chart.Style{
						StrokeColor: color,
						StrokeWidth: 1,
						FillColor:   color,
					},
					slot:  slot,
					slots: plotted,
				})
				slot++
			}
		}
	}

	// Left axis.
	c.YAxisSecondary = chart.YAxis{Range: valueRange(primary)}
	c.YAxis = chart.YAxis{Range: valueRange(secondary)}
	if !plan.HasSecondaryAxis {
		c.YAxis.Style = chart.Style{Hidden: true}
	}
	if settings.ShowLegend {
		c.Elements = []chart.Renderable{chart.Legend(&c)}
	}
	return c
}

// Render writes the chart for plan as PNG to w.
func Render(w io.Writer, plan *dataset.Plan, settings models.ImageSettings, opts Options) error {
	c := BuildChart(plan, settings, opts)
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", c.Width, c.Height)
	}
	return c.Render(chart.PNG, w)
}

// RenderFile writes the chart for plan as PNG to path. A partially written
// file is removed on failure.
func RenderFile(path string, plan *dataset.Plan, settings models.ImageSettings, opts Options) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	return Render(f, plan, settings, opts)
}

// categoryAxis places category i at x = i with its label as the tick.
// go-chart takes the x range from the outermost ticks, so unlabeled ticks at
// -0.5 and n-0.5 keep half a slot free on both sides.
func categoryAxis(categories []string) chart.XAxis {
	n := max(len(categories), 1)
	ticks := make([]chart.Tick, 0, len(categories)+2)
	ticks = append(ticks, chart.Tick{Value: -0.5})
	for i, c := range categories {
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: c})
	}
	ticks = append(ticks, chart.Tick{Value: float64(n) - 0.5})

	return chart.XAxis{
		Range:     &chart.ContinuousRange{Min: -0.5, Max: float64(n) - 0.5},
		Ticks:     ticks,
		TickStyle: chart.Style{TextRotationDegrees: 45},
	}
}

// chartAxis maps a range axis onto go-chart, which draws its primary y axis
// on the right. The primary axis belongs on the left.
func chartAxis(axis models.Axis) chart.YAxisType {
	if axis == models.AxisSecondary {
		return chart.YAxisPrimary
	}
	return chart.YAxisSecondary
}

// valueRange spans values and zero with a little headroom.
func valueRange(values []float64) *chart.ContinuousRange {
	lo, hi := 0.0, 0.0
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi == lo {
		hi = lo + 1
	}
	pad := (hi - lo) * 0.05
	if hi > 0 {
		hi += pad
	}
	if lo < 0 {
		lo -= pad
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}
}

func coordinates(points []dataset.Point) (xs, ys []float64) {
	xs = make([]float64, len(points))
	ys = make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = float64(p.Index), p.Value
	}
	return xs, ys
}

func seriesColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
