// Package models defines data structures shared by worksheet loading,
// series binning and chart rendering.
package models

import (
	"math"
	"strconv"
	"strings"
)

// Cell is a single worksheet value.
type Cell struct {
	// Value is the parsed raw value: int64, float64 or string.
	Value interface{} `json:"value"`
	// Text is the value as displayed by Excel (number formats applied).
	Text string `json:"text"`
}

// Record maps column name to cell for one data row. Absent keys are empty
// cells.
type Record map[string]Cell

// Float returns the numeric value of the cell. Numbers pass through, text is
// parsed and anything unparseable or empty is 0.
func (c Cell) Float() float64 {
	switch v := c.Value.(type) {
	case int64:
		return float64(v)
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	default:
		return 0
	}
}

// String returns the display text of the cell, or "" when empty.
func (c Cell) String() string {
	if c.Text != "" {
		return c.Text
	}
	switch v := c.Value.(type) {
	case nil:
		return ""
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
