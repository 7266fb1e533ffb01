// Package config loads chart files (YAML, JSON or TOML) describing one
// chart.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/ukaji3/comboplot-go/pkg/comboplot/models"
)

// SeriesEntry is one series in a chart file. Kind and Axis are optional.
type SeriesEntry struct {
	Column string `mapstructure:"column"`
	Kind   string `mapstructure:"kind"`
	Axis   string `mapstructure:"axis"`
}

// File is the content of a chart file.
type File struct {
	XAxis  string               `mapstructure:"x_axis"`
	Series []SeriesEntry        `mapstructure:"series"`
	Image  models.ImageSettings `mapstructure:"image"`
	Output string               `mapstructure:"output"`
	Sheet  string               `mapstructure:"sheet"`
	Range  string               `mapstructure:"range"`
	Font   string               `mapstructure:"font"`

	// present records which image keys the file spells out.
	present map[string]bool
}

var imageKeys = []string{
	"image.width", "image.width_unit",
	"image.height", "image.height_unit",
	"image.title", "image.show_legend",
}

// LoadConfig reads a chart file. The format follows the file extension.
// Image settings missing from the file keep their defaults.
func LoadConfig(path string) (*File, error) {
	v := viper.New()
	v.SetConfigFile(path)

	defaults := models.DefaultImageSettings()
	v.SetDefault("image.width", defaults.Width)
	v.SetDefault("image.width_unit", string(defaults.WidthUnit))
	v.SetDefault("image.height", defaults.Height)
	v.SetDefault("image.height_unit", string(defaults.HeightUnit))
	v.SetDefault("image.show_legend", defaults.ShowLegend)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read chart file: %w", err)
	}

	var cfg File
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse chart file: %w", err)
	}
	cfg.present = make(map[string]bool, len(imageKeys))
	for _, key := range imageKeys {
		cfg.present[key] = v.InConfig(key)
	}
	return &cfg, nil
}

// Chart converts the file into a chart configuration, normalizing series
// kinds, axes and size units.
func (f *File) Chart() (models.ChartConfiguration, error) {
	cfg := models.ChartConfiguration{XAxis: f.XAxis, Image: f.Image}

	var err error
	if cfg.Image.WidthUnit, err = models.ParseSizeUnit(string(f.Image.WidthUnit)); err != nil {
		return cfg, fmt.Errorf("image.width_unit: %w", err)
	}
	if cfg.Image.HeightUnit, err = models.ParseSizeUnit(string(f.Image.HeightUnit)); err != nil {
		return cfg, fmt.Errorf("image.height_unit: %w", err)
	}

	for i, e := range f.Series {
		s, err := e.series()
		if err != nil {
			return cfg, fmt.Errorf("series[%d]: %w", i, err)
		}
		cfg.Series = append(cfg.Series, s)
	}
	return cfg, nil
}

func (e SeriesEntry) series() (models.Series, error) {
	s := models.NewSeries(e.Column, models.KindBar, models.AxisPrimary)
	if s.Column == "" {
		return s, errors.New("missing column")
	}
	if e.Kind != "" {
		kind, err := models.ParseChartKind(e.Kind)
		if err != nil {
			return s, err
		}
		s.Kind = kind
	}
	if e.Axis != "" {
		axis, err := models.ParseAxis(e.Axis)
		if err != nil {
			return s, err
		}
		s.Axis = axis
	}
	return s, nil
}

// Over lays the file over base, typically a chart template: whatever the
// file sets wins, and base keeps everything the file leaves out.
func (f *File) Over(base models.ChartConfiguration) (models.ChartConfiguration, error) {
	own, err := f.Chart()
	if err != nil {
		return base, err
	}

	out := base
	if own.XAxis != "" {
		out.XAxis = own.XAxis
	}
	if len(own.Series) > 0 {
		out.Series = own.Series
	}
	if f.present["image.width"] || f.present["image.width_unit"] {
		out.Image.Width, out.Image.WidthUnit = own.Image.Width, own.Image.WidthUnit
	}
	if f.present["image.height"] || f.present["image.height_unit"] {
		out.Image.Height, out.Image.HeightUnit = own.Image.Height, own.Image.HeightUnit
	}
	if f.present["image.title"] {
		out.Image.Title = own.Image.Title
	}
	if f.present["image.show_legend"] {
		out.Image.ShowLegend = own.Image.ShowLegend
	}
	return out, nil
}
