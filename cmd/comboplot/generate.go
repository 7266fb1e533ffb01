package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ukaji3/comboplot-go/pkg/comboplot"
	"github.com/ukaji3/comboplot-go/pkg/comboplot/config"
	"github.com/ukaji3/comboplot-go/pkg/comboplot/models"
	"github.com/ukaji3/comboplot-go/pkg/comboplot/output"
)

type generateFlags struct {
	xAxis      string
	series     []string
	outputPath string
	width      string
	height     string
	title      string
	legend     bool
	sheet      string
	cellRange  string
	configPath string
	fromChart  string
	font       string
}

func (a *app) newGenerateCmd() *cobra.Command {
	var f generateFlags
	cmd := &cobra.Command{
		Use:   "generate [input.xlsx]",
		Short: "Render a combination chart to PNG",
		Example: `  comboplot generate sales.xlsx --x Quarter --series Sales:bar --series Profit:line:secondary
  comboplot generate sales.xlsx --config chart.yaml -o report.png
  comboplot generate sales.xlsx --from-chart "Chart 1" --width 16cm --height 10cm`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, args[0], f)
		},
	}

	cmd.Flags().StringVar(&f.xAxis, "x", "", "X-axis (category) column (default: first column)")
	cmd.Flags().StringArrayVarP(&f.series, "series", "s", nil, "Series as COLUMN[:bar|line][:primary|secondary]; repeatable")
	cmd.Flags().StringVarP(&f.outputPath, "output", "o", "", "Output PNG path (default: INPUT_chart.png)")
	cmd.Flags().StringVar(&f.width, "width", "", "Image width, e.g. 1024, 1024px, 160mm, 16cm (default: 1024px)")
	cmd.Flags().StringVar(&f.height, "height", "", "Image height (default: 768px)")
	cmd.Flags().StringVar(&f.title, "title", "", "Chart title (default: none)")
	cmd.Flags().BoolVar(&f.legend, "legend", true, "Show the legend")
	cmd.Flags().StringVar(&f.sheet, "sheet", "", "Worksheet name (default: first sheet)")
	cmd.Flags().StringVar(&f.cellRange, "range", "", "Cell range or defined name holding the table")
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Chart file (yaml, json or toml)")
	cmd.Flags().StringVar(&f.fromChart, "from-chart", "", "Start from a chart in the workbook, by name or number")
	cmd.Flags().StringVar(&f.font, "font", "", "TrueType font file for chart text")
	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, inputPath string, f generateFlags) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)

	cfg := models.ChartConfiguration{Image: models.DefaultImageSettings()}
	var opts comboplot.Options
	var outputPath string

	var file *config.File
	if f.configPath != "" {
		var err error
		if file, err = config.LoadConfig(f.configPath); err != nil {
			return comboplot.NewValidationError("config", err)
		}
		if cfg, err = file.Chart(); err != nil {
			return comboplot.NewValidationError("config", fmt.Errorf("%w: %v", comboplot.ErrInvalidSeries, err))
		}
		opts = comboplot.Options{Sheet: file.Sheet, Range: file.Range, FontPath: file.Font}
		outputPath = file.Output
	}

	if f.fromChart != "" {
		templates, err := comboplot.Templates(ctx, inputPath)
		if err != nil {
			return err
		}
		tpl, ok := comboplot.FindTemplate(templates, f.fromChart)
		if !ok {
			return comboplot.NewValidationError("from-chart", fmt.Errorf("no bar or line chart %q", f.fromChart))
		}
		cfg = tpl.Configuration(cfg.XAxis)
		if file != nil {
			if cfg, err = file.Over(cfg); err != nil {
				return comboplot.NewValidationError("config", fmt.Errorf("%w: %v", comboplot.ErrInvalidSeries, err))
			}
		}
		if opts.Sheet == "" {
			opts.Sheet = tpl.Sheet
		}
		logger.Debug().Str("chart", tpl.Name).Int("series", len(tpl.Series)).Msg("using chart template")
	}

	if err := applyFlags(cmd, f, &cfg, &opts, &outputPath); err != nil {
		return err
	}

	table, err := comboplot.Load(ctx, inputPath, opts)
	if err != nil {
		return err
	}
	if cfg.XAxis == "" {
		cfg.XAxis = table.Columns[0]
	}
	for _, s := range cfg.Series {
		if !table.HasColumn(s.Column) {
			logger.Warn().Msg(a.loc.T("generate.unknown_column", map[string]interface{}{"Column": s.Column}))
		}
	}

	if outputPath == "" {
		outputPath = comboplot.DefaultOutputPath(inputPath)
	}
	outputPath = comboplot.EnsurePNG(outputPath)

	plan, err := comboplot.Generate(ctx, table, cfg, outputPath, opts)
	if err != nil {
		return err
	}

	fmt.Fprint(a.stdout, output.Summary(a.loc.T("summary.title", map[string]interface{}{
		"XAxis": plan.XAxis,
		"Count": len(plan.Categories),
	}), plan))
	fmt.Fprintln(a.stdout, a.loc.T("generate.done", map[string]interface{}{
		"Path":   outputPath,
		"Width":  cfg.Image.WidthPixels(),
		"Height": cfg.Image.HeightPixels(),
	}))
	return nil
}

// applyFlags lets explicitly set flags override the chart file and template.
func applyFlags(cmd *cobra.Command, f generateFlags, cfg *models.ChartConfiguration, opts *comboplot.Options, outputPath *string) error {
	flags := cmd.Flags()

	if flags.Changed("series") {
		cfg.Series = nil
		for _, spec := range f.series {
			s, err := models.ParseSeries(spec)
			if err != nil {
				return comboplot.NewValidationError("series", fmt.Errorf("%w: %v", comboplot.ErrInvalidSeries, err))
			}
			cfg.Series = append(cfg.Series, s)
		}
	}
	if flags.Changed("x") {
		cfg.XAxis = f.xAxis
	}
	if flags.Changed("width") {
		v, unit, err := models.ParseSize(f.width)
		if err != nil {
			return comboplot.NewValidationError("width", fmt.Errorf("%w: %v", comboplot.ErrInvalidSize, err))
		}
		cfg.Image.Width, cfg.Image.WidthUnit = v, unit
	}
	if flags.Changed("height") {
		v, unit, err := models.ParseSize(f.height)
		if err != nil {
			return comboplot.NewValidationError("height", fmt.Errorf("%w: %v", comboplot.ErrInvalidSize, err))
		}
		cfg.Image.Height, cfg.Image.HeightUnit = v, unit
	}
	if flags.Changed("title") {
		cfg.Image.Title = f.title
	}
	if flags.Changed("legend") {
		cfg.Image.ShowLegend = f.legend
	}
	if flags.Changed("sheet") {
		opts.Sheet = f.sheet
	}
	if flags.Changed("range") {
		opts.Range = f.cellRange
	}
	if flags.Changed("font") {
		opts.FontPath = f.font
	}
	if flags.Changed("output") {
		*outputPath = f.outputPath
	}
	return nil
}
