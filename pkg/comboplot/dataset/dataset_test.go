package dataset

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/comboplot-go/pkg/comboplot/models"
)

type fakeSource struct {
	categories map[string][]string
	values     map[string][]float64
}

func (f fakeSource) Categories(column string) []string { return f.categories[column] }
func (f fakeSource) Values(column string) []float64    { return f.values[column] }

func quarterSource() fakeSource {
	return fakeSource{
		categories: map[string][]string{"Quarter": {"Q1", "Q2", "Q3"}},
		values: map[string][]float64{
			"Sales":  {10, 20, 30},
			"Profit": {1, 2},
		},
	}
}

func TestBuild_QuarterScenario(t *testing.T) {
	cfg := models.ChartConfiguration{
		XAxis: "Quarter",
		Series: []models.Series{
			models.NewSeries("Sales", models.KindBar, models.AxisPrimary),
			models.NewSeries("Profit", models.KindLine, models.AxisSecondary),
		},
		Image: models.DefaultImageSettings(),
	}

	plan := Build(cfg, quarterSource())

	require.Len(t, plan.Groups, 2)
	assert.True(t, plan.HasSecondaryAxis)
	assert.Equal(t, []string{"Q1", "Q2", "Q3"}, plan.Categories)

	bars, ok := plan.Group(models.LayerPrimaryBar)
	require.True(t, ok)
	require.Len(t, bars.Series, 1)
	assert.Equal(t, "Sales", bars.Series[0].Name)
	assert.Len(t, bars.Series[0].Points, 3)

	lines, ok := plan.Group(models.LayerSecondaryLine)
	require.True(t, ok)
	require.Len(t, lines.Series, 1)
	profit := lines.Series[0]
	assert.Len(t, profit.Points, 2)

	v, ok := profit.Value("Q1")
	assert.True(t, ok)
	assert.Equal(t, 1.0, v)
	v, ok = profit.Value("Q2")
	assert.True(t, ok)
	assert.Equal(t, 2.0, v)
	_, ok = profit.Value("Q3")
	assert.False(t, ok)

	_, ok = plan.Group(models.LayerPrimaryLine)
	assert.False(t, ok)
	_, ok = plan.Group(models.LayerSecondaryBar)
	assert.False(t, ok)
}

func TestBuild_PrimaryOnlyHasNoSecondaryAxis(t *testing.T) {
	cfg := models.ChartConfiguration{
		XAxis:  "Quarter",
		Series: []models.Series{models.NewSeries("Sales", models.KindLine, models.AxisPrimary)},
	}

	plan := Build(cfg, quarterSource())

	assert.False(t, plan.HasSecondaryAxis)
	require.Len(t, plan.Groups, 1)
	assert.Equal(t, models.LayerPrimaryLine, plan.Groups[0].Layer)
}

func TestBuild_GroupCountMatchesDistinctLayers(t *testing.T) {
	kinds := []models.ChartKind{models.KindBar, models.KindLine}
	axes := []models.Axis{models.AxisPrimary, models.AxisSecondary}

	// every subset of the four layers, each layer holding two series
	for mask := 0; mask < 16; mask++ {
		var series []models.Series
		distinct := 0
		for bit := 0; bit < 4; bit++ {
			if mask&(1<<bit) == 0 {
				continue
			}
			distinct++
			for n := 0; n < 2; n++ {
				series = append(series, models.NewSeries(
					fmt.Sprintf("c%d_%d", bit, n), kinds[bit%2], axes[bit/2]))
			}
		}
		cfg := models.ChartConfiguration{XAxis: "Quarter", Series: series}

		plan := Build(cfg, quarterSource())

		assert.Len(t, plan.Groups, distinct, "mask %04b", mask)
		assert.LessOrEqual(t, len(plan.Groups), 4)
		for i := 1; i < len(plan.Groups); i++ {
			assert.Less(t, plan.Groups[i-1].Layer, plan.Groups[i].Layer, "groups out of render order")
		}
	}
}

func TestBuild_ColorsFollowRenderOrder(t *testing.T) {
	// configured order deliberately differs from render order
	cfg := models.ChartConfiguration{
		XAxis: "Quarter",
		Series: []models.Series{
			models.NewSeries("s0", models.KindLine, models.AxisSecondary),
			models.NewSeries("s1", models.KindBar, models.AxisSecondary),
			models.NewSeries("s2", models.KindLine, models.AxisPrimary),
			models.NewSeries("s3", models.KindBar, models.AxisPrimary),
			models.NewSeries("s4", models.KindBar, models.AxisPrimary),
		},
	}
	for i := 5; i < 19; i++ {
		cfg.Series = append(cfg.Series, models.NewSeries(fmt.Sprintf("s%d", i), models.KindLine, models.AxisSecondary))
	}

	plan := Build(cfg, quarterSource())
	all := plan.Series()

	require.Len(t, all, len(cfg.Series))
	assert.Equal(t, []string{"s3", "s4", "s2", "s1", "s0"}, names(all[:5]))
	for i, s := range all {
		assert.Equal(t, i, s.ColorIndex)
		assert.Equal(t, Palette[i%8], s.Color, "series %d", i)
	}
}

func TestBuild_ColorIndexIgnoresEmptyGroups(t *testing.T) {
	cfg := models.ChartConfiguration{
		XAxis: "Quarter",
		Series: []models.Series{
			models.NewSeries("a", models.KindLine, models.AxisSecondary),
			models.NewSeries("b", models.KindLine, models.AxisSecondary),
		},
	}

	plan := Build(cfg, quarterSource())

	require.Len(t, plan.Groups, 1)
	assert.Equal(t, Palette[0], plan.Groups[0].Series[0].Color)
	assert.Equal(t, Palette[1], plan.Groups[0].Series[1].Color)
}

func TestBuild_PointsTruncateToShorterSequence(t *testing.T) {
	tests := []struct {
		x, y int
	}{
		{0, 0}, {0, 3}, {3, 0}, {3, 3}, {5, 2}, {2, 5},
	}

	for _, tt := range tests {
		src := fakeSource{
			categories: map[string][]string{"X": make([]string, tt.x)},
			values:     map[string][]float64{"Y": make([]float64, tt.y)},
		}
		cfg := models.ChartConfiguration{XAxis: "X", Series: []models.Series{models.NewSeries("Y", models.KindBar, models.AxisPrimary)}}

		plan := Build(cfg, src)

		require.Len(t, plan.Groups, 1)
		assert.Len(t, plan.Groups[0].Series[0].Points, min(tt.x, tt.y), "x=%d y=%d", tt.x, tt.y)
	}
}

func TestBuild_DuplicateCategoriesKeepEveryRow(t *testing.T) {
	src := fakeSource{
		categories: map[string][]string{"X": {"a", "a", "b"}},
		values:     map[string][]float64{"Y": {1, 2, 3}},
	}
	cfg := models.ChartConfiguration{XAxis: "X", Series: []models.Series{models.NewSeries("Y", models.KindBar, models.AxisPrimary)}}

	plan := Build(cfg, src)
	points := plan.Groups[0].Series[0].Points

	require.Len(t, points, 3)
	assert.Equal(t, 1, points[1].Index)
	assert.Equal(t, 2.0, points[1].Value)

	v, ok := plan.Groups[0].Series[0].Value("a")
	assert.True(t, ok)
	assert.Equal(t, 2.0, v, "the last row of a repeated label wins")
}

func TestBuild_EmptySeriesBuildsNothing(t *testing.T) {
	plan := Build(models.ChartConfiguration{XAxis: "Quarter"}, quarterSource())

	assert.Empty(t, plan.Groups)
	assert.False(t, plan.HasSecondaryAxis)
}

func names(series []Series) []string {
	out := make([]string, len(series))
	for i, s := range series {
		out[i] = s.Name
	}
	return out
}
