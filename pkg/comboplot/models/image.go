package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SizeUnit is the unit an image dimension is expressed in.
type SizeUnit string

const (
	// UnitPixel is one device pixel.
	UnitPixel SizeUnit = "px"
	// UnitMM is one millimetre at 96 DPI.
	UnitMM SizeUnit = "mm"
	// UnitCM is one centimetre at 96 DPI.
	UnitCM SizeUnit = "cm"
)

// Pixels per unit at 96 DPI (1 inch = 25.4 mm = 96 px).
const (
	PixelsPerMM = 3.7795275591
	PixelsPerCM = 37.795275591
)

// ParseSizeUnit parses a unit name. An empty string means pixels.
func ParseSizeUnit(s string) (SizeUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "px", "pixel", "pixels":
		return UnitPixel, nil
	case "mm":
		return UnitMM, nil
	case "cm":
		return UnitCM, nil
	default:
		return "", fmt.Errorf("unknown size unit %q (must be px, mm or cm)", s)
	}
}

// PixelsPerUnit returns the conversion factor to pixels. Unknown units are
// treated as pixels.
func (u SizeUnit) PixelsPerUnit() float64 {
	switch u {
	case UnitMM:
		return PixelsPerMM
	case UnitCM:
		return PixelsPerCM
	default:
		return 1
	}
}

// ToPixels converts a value in this unit to whole pixels, rounding to the
// nearest integer.
func (u SizeUnit) ToPixels(v float64) int {
	return int(math.Round(v * u.PixelsPerUnit()))
}

// ParseSize parses a dimension such as "1024", "1024px", "16cm" or "120 mm".
func ParseSize(s string) (float64, SizeUnit, error) {
	s = strings.TrimSpace(s)
	i := len(s)
	for i > 0 && (s[i-1] < '0' || s[i-1] > '9') && s[i-1] != '.' {
		i--
	}

	unit, err := ParseSizeUnit(s[i:])
	if err != nil {
		return 0, "", err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s[:i]), 64)
	if err != nil {
		return 0, "", fmt.Errorf("invalid size %q", s)
	}
	if v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, "", fmt.Errorf("size %q must be positive", s)
	}
	return v, unit, nil
}

// ImageSettings describes the output image.
type ImageSettings struct {
	// Width is the image width in WidthUnit.
	Width float64 `json:"width" mapstructure:"width"`
	// WidthUnit is the unit of Width.
	WidthUnit SizeUnit `json:"width_unit" mapstructure:"width_unit"`
	// Height is the image height in HeightUnit.
	Height float64 `json:"height" mapstructure:"height"`
	// HeightUnit is the unit of Height.
	HeightUnit SizeUnit `json:"height_unit" mapstructure:"height_unit"`
	// Title is drawn above the plot unless blank.
	Title string `json:"title,omitempty" mapstructure:"title"`
	// ShowLegend draws the series legend.
	ShowLegend bool `json:"show_legend" mapstructure:"show_legend"`
}

// DefaultImageSettings returns 1024x768 pixels, no title, legend shown.
func DefaultImageSettings() ImageSettings {
	return ImageSettings{
		Width:      1024,
		WidthUnit:  UnitPixel,
		Height:     768,
		HeightUnit: UnitPixel,
		ShowLegend: true,
	}
}

// WidthPixels returns the width converted to pixels.
func (s ImageSettings) WidthPixels() int {
	return s.WidthUnit.ToPixels(s.Width)
}

// HeightPixels returns the height converted to pixels.
func (s ImageSettings) HeightPixels() int {
	return s.HeightUnit.ToPixels(s.Height)
}

// HasTitle reports whether a title should be drawn.
func (s ImageSettings) HasTitle() bool {
	return strings.TrimSpace(s.Title) != ""
}
