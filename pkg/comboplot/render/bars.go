package render

import (
	"errors"

	"github.com/wcharczuk/go-chart/v2"
)

// barGroupWidth is the share of a category slot covered by one bar group.
const barGroupWidth = 0.8

// barSeries draws one series as vertical bars at integer x positions. Bars
// of the same layer sit side by side: slot is this series' position among
// slots bars sharing the category.
type barSeries struct {
	Name    string
	Style   chart.Style
	YAxis   chart.YAxisType
	XValues []float64
	YValues []float64

	slot  int
	slots int
}

func (bs barSeries) GetName() string           { return bs.Name }
func (bs barSeries) GetStyle() chart.Style     { return bs.Style }
func (bs barSeries) GetYAxis() chart.YAxisType { return bs.YAxis }

// Len implements chart.ValuesProvider.
func (bs barSeries) Len() int { return len(bs.XValues) }

// GetValues implements chart.ValuesProvider.
func (bs barSeries) GetValues(index int) (x, y float64) {
	return bs.XValues[index], bs.YValues[index]
}

// Validate implements chart.Series.
func (bs barSeries) Validate() error {
	if len(bs.XValues) == 0 {
		return errors.New("bar series must have values")
	}
	if len(bs.XValues) != len(bs.YValues) {
		return errors.New("bar series must have the same number of x and y values")
	}
	if bs.slots < 1 || bs.slot < 0 || bs.slot >= bs.slots {
		return errors.New("bar series slot out of range")
	}
	return nil
}

// Render implements chart.Series.
func (bs barSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	style := bs.Style.InheritFrom(defaults)

	slotWidth := float64(xrange.Translate(1) - xrange.Translate(0))
	groupWidth := slotWidth * barGroupWidth
	barWidth := groupWidth / float64(bs.slots)

	zero := canvasBox.Bottom - yrange.Translate(0)
	for i, x := range bs.XValues {
		center := float64(canvasBox.Left + xrange.Translate(x))
		left := center - groupWidth/2 + barWidth*float64(bs.slot)
		top := canvasBox.Bottom - yrange.Translate(bs.YValues[i])

		box := chart.Box{
			Left:   int(left),
			Right:  int(left + barWidth),
			Top:    min(top, zero),
			Bottom: max(top, zero),
		}
		if box.Right <= box.Left {
			box.Right = box.Left + 1
		}
		chart.Draw.Box(r, box, style)
	}
}
