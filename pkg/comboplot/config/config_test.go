package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/comboplot-go/pkg/comboplot/models"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoadConfig_YAML(t *testing.T) {
	// No indentation at the top level to keep the YAML valid
	path := writeFile(t, "chart.yaml", `x_axis: Quarter
series:
  - column: Sales
    kind: column
  - column: Profit
    kind: line
    axis: right
image:
  width: 16
  width_unit: cm
  title: Quarterly
output: out.png
sheet: Data
range: A1:C4
font: /fonts/cjk.ttf
`)

	f, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "Quarter", f.XAxis)
	assert.Equal(t, "out.png", f.Output)
	assert.Equal(t, "Data", f.Sheet)
	assert.Equal(t, "A1:C4", f.Range)
	assert.Equal(t, "/fonts/cjk.ttf", f.Font)

	cfg, err := f.Chart()
	require.NoError(t, err)
	assert.True(t, cfg.IsValid())
	assert.Equal(t, []models.Series{
		models.NewSeries("Sales", models.KindBar, models.AxisPrimary),
		models.NewSeries("Profit", models.KindLine, models.AxisSecondary),
	}, cfg.Series)

	assert.Equal(t, 605, cfg.Image.WidthPixels())
	assert.Equal(t, 768, cfg.Image.HeightPixels(), "height keeps its default")
	assert.Equal(t, "Quarterly", cfg.Image.Title)
	assert.True(t, cfg.Image.ShowLegend)
}

func TestFileOver_KeepsTemplateForUnsetKeys(t *testing.T) {
	path := writeFile(t, "chart.yaml", `image:
  width: 16
  width_unit: cm
  show_legend: false
`)
	f, err := LoadConfig(path)
	require.NoError(t, err)

	base := models.ChartConfiguration{
		XAxis:  "Quarter",
		Series: []models.Series{models.NewSeries("Sales", models.KindBar, models.AxisPrimary)},
		Image: models.ImageSettings{
			Width: 480, WidthUnit: models.UnitPixel,
			Height: 288, HeightUnit: models.UnitPixel,
			Title: "Sales", ShowLegend: true,
		},
	}

	cfg, err := f.Over(base)
	require.NoError(t, err)
	assert.Equal(t, "Quarter", cfg.XAxis)
	assert.Equal(t, base.Series, cfg.Series)
	assert.Equal(t, 605, cfg.Image.WidthPixels(), "width from the file")
	assert.Equal(t, 288, cfg.Image.HeightPixels(), "height from the template")
	assert.Equal(t, "Sales", cfg.Image.Title)
	assert.False(t, cfg.Image.ShowLegend)
}

func TestFileOver_FileWins(t *testing.T) {
	path := writeFile(t, "chart.json", `{"x_axis": "Month", "series": [{"column": "Cost", "kind": "line"}], "image": {"title": ""}}`)
	f, err := LoadConfig(path)
	require.NoError(t, err)

	base := models.ChartConfiguration{
		XAxis:  "Quarter",
		Series: []models.Series{models.NewSeries("Sales", models.KindBar, models.AxisPrimary)},
		Image:  models.DefaultImageSettings(),
	}
	base.Image.Title = "Sales"

	cfg, err := f.Over(base)
	require.NoError(t, err)
	assert.Equal(t, "Month", cfg.XAxis)
	assert.Equal(t, []models.Series{models.NewSeries("Cost", models.KindLine, models.AxisPrimary)}, cfg.Series)
	assert.Empty(t, cfg.Image.Title, "an explicit blank title removes the template's")
}

func TestLoadConfig_JSON(t *testing.T) {
	path := writeFile(t, "chart.json", `{
  "x_axis": "Month",
  "series": [{"column": "Visits", "kind": "line"}],
  "image": {"show_legend": false}
}`)

	f, err := LoadConfig(path)
	require.NoError(t, err)
	cfg, err := f.Chart()
	require.NoError(t, err)

	assert.Equal(t, "Month", cfg.XAxis)
	require.Len(t, cfg.Series, 1)
	assert.Equal(t, models.LayerPrimaryLine, cfg.Series[0].Layer())
	assert.False(t, cfg.Image.ShowLegend)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := writeFile(t, "bad.yaml", "x_axis: a: b: c")
	_, err = LoadConfig(bad)
	assert.Error(t, err)
}

func TestFileChart_InvalidEntries(t *testing.T) {
	tests := []struct {
		name string
		file File
	}{
		{"missing column", File{Series: []SeriesEntry{{Kind: "bar"}}}},
		{"unknown kind", File{Series: []SeriesEntry{{Column: "A", Kind: "pie"}}}},
		{"unknown axis", File{Series: []SeriesEntry{{Column: "A", Axis: "top"}}}},
		{"unknown unit", File{Image: models.ImageSettings{WidthUnit: "in"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.file.Chart()
			assert.Error(t, err)
		})
	}
}
