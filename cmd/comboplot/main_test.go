package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/comboplot-go/pkg/comboplot"
	"github.com/ukaji3/comboplot-go/pkg/comboplot/i18n"
)

type run struct {
	stdout, stderr string
	err            error
}

// runCLI executes the command line with preferences stored under dir.
func runCLI(t *testing.T, dir string, args ...string) run {
	t.Helper()
	var stdout, stderr bytes.Buffer
	a := &app{stdout: &stdout, stderr: &stderr, prefsPath: filepath.Join(dir, "preferences.ini")}
	err := a.execute(context.Background(), args)
	return run{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func fixture(t *testing.T) (dir, input string) {
	t.Helper()
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "en_US.UTF-8")

	dir = t.TempDir()
	f := excelize.NewFile()
	defer f.Close()
	rows := [][]interface{}{
		{"Quarter", "Sales", "Profit"},
		{"Q1", 100, 20},
		{"Q2", 150, 35},
		{"Q3", 130},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.AddChart("Sheet1", "E1", &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       "Sheet1!$B$1",
			Categories: "Sheet1!$A$2:$A$4",
			Values:     "Sheet1!$B$2:$B$4",
		}},
	}))

	input = filepath.Join(dir, "sales.xlsx")
	require.NoError(t, f.SaveAs(input))
	return dir, input
}

func TestGenerate_Flags(t *testing.T) {
	dir, input := fixture(t)
	out := filepath.Join(dir, "combo")

	r := runCLI(t, dir, "generate", input,
		"--x", "Quarter",
		"--series", "Sales:bar",
		"--series", "Profit:line:secondary",
		"--width", "16cm", "--height", "400",
		"--title", "Quarterly",
		"-o", out)
	require.NoError(t, r.err, r.stderr)

	assert.FileExists(t, out+".png")
	assert.Contains(t, r.stdout, "Chart written to "+out+".png (605×400 px)")
	assert.Contains(t, r.stdout, "secondary-line")
}

func TestGenerate_DefaultsToFirstColumnAndInputPath(t *testing.T) {
	dir, input := fixture(t)

	r := runCLI(t, dir, "generate", input, "--series", "Sales")
	require.NoError(t, r.err, r.stderr)
	assert.FileExists(t, filepath.Join(dir, "sales_chart.png"))
	assert.Contains(t, r.stdout, "Quarter")
}

func TestGenerate_ConfigFile(t *testing.T) {
	dir, input := fixture(t)
	chart := filepath.Join(dir, "chart.yaml")
	require.NoError(t, os.WriteFile(chart, []byte(fmt.Sprintf(`x_axis: Quarter
series:
  - column: Sales
  - column: Profit
    kind: line
image:
  show_legend: false
output: %s
`, filepath.Join(dir, "from-config.png"))), 0o644))

	r := runCLI(t, dir, "generate", input, "--config", chart)
	require.NoError(t, r.err, r.stderr)
	assert.FileExists(t, filepath.Join(dir, "from-config.png"))
}

func TestGenerate_FromChart(t *testing.T) {
	dir, input := fixture(t)
	out := filepath.Join(dir, "template.png")

	r := runCLI(t, dir, "generate", input, "--from-chart", "1", "-o", out)
	require.NoError(t, r.err, r.stderr)
	assert.FileExists(t, out)

	r = runCLI(t, dir, "generate", input, "--from-chart", "missing", "-o", out)
	require.Error(t, r.err)
	assert.Contains(t, r.stderr, "from-chart")
}

func TestGenerate_ConfigOverChartTemplate(t *testing.T) {
	dir, input := fixture(t)
	chart := filepath.Join(dir, "chart.yaml")
	require.NoError(t, os.WriteFile(chart, []byte(`image:
  width: 16
  width_unit: cm
  title: From file
`), 0o644))
	out := filepath.Join(dir, "merged.png")

	r := runCLI(t, dir, "generate", input, "--config", chart, "--from-chart", "1", "-o", out)
	require.NoError(t, r.err, r.stderr)
	assert.FileExists(t, out)
	assert.Contains(t, r.stdout, "(605×", "the file's width survives the template")
	assert.Contains(t, r.stdout, "Sales", "the template supplies the series")
}

func TestGenerate_Errors(t *testing.T) {
	dir, input := fixture(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no series", []string{"generate", input}, "add at least one series"},
		{"missing file", []string{"generate", filepath.Join(dir, "none.xlsx"), "--series", "Sales"}, "the file does not exist"},
		{"reused column", []string{"generate", input, "--x", "Sales", "--series", "Sales"}, "a column can be used only once"},
		{"bad width", []string{"generate", input, "--series", "Sales", "--width=-3cm"}, "the image size must be positive"},
		{"bad series", []string{"generate", input, "--series", ":line"}, "the series definition is not valid"},
		{"unknown sheet", []string{"generate", input, "--series", "Sales", "--sheet", "Nope"}, "no such sheet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := runCLI(t, dir, tt.args...)
			require.Error(t, r.err)
			assert.Contains(t, r.stderr, tt.want)
		})
	}
}

func TestInspect(t *testing.T) {
	dir, input := fixture(t)

	r := runCLI(t, dir, "inspect", input, "--x", "Quarter")
	require.NoError(t, r.err, r.stderr)

	var report struct {
		BookName  string   `json:"book_name"`
		Available []string `json:"available"`
		Charts    []struct {
			Name string `json:"name"`
		} `json:"charts"`
	}
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &report))
	assert.Equal(t, "sales.xlsx", report.BookName)
	assert.Equal(t, []string{"Sales", "Profit"}, report.Available)
	assert.Len(t, report.Charts, 1)
}

func TestLang_PersistsChoice(t *testing.T) {
	dir, input := fixture(t)

	r := runCLI(t, dir, "lang")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "Display language: en-US")

	r = runCLI(t, dir, "lang", "zh_CN")
	require.NoError(t, r.err, r.stderr)
	assert.Contains(t, r.stdout, "zh-CN")

	r = runCLI(t, dir, "lang")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "显示语言：zh-CN")

	r = runCLI(t, dir, "generate", input)
	require.Error(t, r.err)
	assert.Contains(t, r.stderr, "请至少添加一个系列")
}

func TestLang_OverrideIsNotPersisted(t *testing.T) {
	dir, input := fixture(t)

	r := runCLI(t, dir, "--lang", "zh-CN", "generate", filepath.Join(dir, "none.xlsx"))
	require.Error(t, r.err)
	assert.Contains(t, r.stderr, "文件不存在")

	_, err := os.Stat(filepath.Join(dir, "preferences.ini"))
	assert.True(t, os.IsNotExist(err))

	r = runCLI(t, dir, "generate", input)
	assert.Contains(t, r.stderr, "add at least one series")
}

func TestDescribe(t *testing.T) {
	loc, err := i18n.New(i18n.EnglishUS)
	require.NoError(t, err)

	got := describe(loc, &comboplot.LoadError{Path: "a.xlsx", Sheet: "Data", Err: comboplot.ErrNoRows})
	assert.Equal(t, "Could not load a.xlsx [Data]: the sheet has no data rows", got)

	got = describe(loc, comboplot.NewValidationError("x_axis", comboplot.ErrMissingXAxis))
	assert.Equal(t, "Invalid chart settings (x_axis): choose an x-axis column", got)

	got = describe(loc, &comboplot.GenerationError{Path: "out.png", Err: errors.New("disk full")})
	assert.Equal(t, "Could not write chart out.png: disk full", got)

	got = describe(loc, errors.New("boom"))
	assert.Equal(t, "Unexpected error: boom", got)
}

func TestDescribe_WithoutLocalizer(t *testing.T) {
	err := &comboplot.LoadError{Path: "a.xlsx", Err: comboplot.ErrNoRows}
	assert.Equal(t, err.Error(), describe(nil, err))
}
