package comboplot

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ukaji3/comboplot-go/pkg/comboplot/dataset"
	"github.com/ukaji3/comboplot-go/pkg/comboplot/models"
	"github.com/ukaji3/comboplot-go/pkg/comboplot/render"
)

// Validate checks cfg and the output path before anything is rendered. The
// x-axis column and every series column must be distinct.
func Validate(cfg models.ChartConfiguration, outputPath string) error {
	if strings.TrimSpace(cfg.XAxis) == "" {
		return NewValidationError("x_axis", ErrMissingXAxis)
	}
	if len(cfg.Series) == 0 {
		return NewValidationError("series", ErrNoSeries)
	}
	if strings.TrimSpace(outputPath) == "" {
		return NewValidationError("output", ErrMissingOutput)
	}
	if cfg.Image.WidthPixels() <= 0 {
		return NewValidationError("image.width", ErrInvalidSize)
	}
	if cfg.Image.HeightPixels() <= 0 {
		return NewValidationError("image.height", ErrInvalidSize)
	}

	used := map[string]struct{}{cfg.XAxis: {}}
	for _, s := range cfg.Series {
		if strings.TrimSpace(s.Column) == "" {
			return NewValidationError("series", ErrInvalidSeries)
		}
		if _, ok := used[s.Column]; ok {
			return NewValidationError("series", fmt.Errorf("%w: %s", ErrColumnReused, s.Column))
		}
		used[s.Column] = struct{}{}
	}
	return nil
}

// Generate renders cfg over table as a PNG at outputPath and returns the
// binned plan that was drawn. Columns missing from the table are plotted as
// zeros.
func Generate(ctx context.Context, table *models.Table, cfg models.ChartConfiguration, outputPath string, opts Options) (*dataset.Plan, error) {
	logger := zerolog.Ctx(ctx)

	if err := Validate(cfg, outputPath); err != nil {
		return nil, err
	}
	if !table.HasColumn(cfg.XAxis) {
		logger.Debug().Str("column", cfg.XAxis).Msg("x-axis column not found; categories will be empty")
	}
	for _, s := range cfg.Series {
		if !table.HasColumn(s.Column) {
			logger.Debug().Str("column", s.Column).Msg("series column not found; plotting zeros")
		}
	}

	plan := dataset.Build(cfg, table)
	logger.Debug().
		Int("categories", len(plan.Categories)).
		Int("groups", len(plan.Groups)).
		Bool("secondary_axis", plan.HasSecondaryAxis).
		Msg("binned series")

	var ropts render.Options
	if opts.FontPath != "" {
		font, err := render.LoadFont(opts.FontPath)
		if err != nil {
			return nil, &GenerationError{Path: outputPath, Err: err}
		}
		ropts.Font = font
	}

	if err := render.RenderFile(outputPath, plan, cfg.Image, ropts); err != nil {
		return nil, &GenerationError{Path: outputPath, Err: err}
	}

	logger.Info().
		Str("path", outputPath).
		Int("width", cfg.Image.WidthPixels()).
		Int("height", cfg.Image.HeightPixels()).
		Msg("chart written")
	return plan, nil
}
