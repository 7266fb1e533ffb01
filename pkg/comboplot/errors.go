package comboplot

import (
	"errors"
	"fmt"

	"github.com/ukaji3/comboplot-go/pkg/comboplot/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// Load failures reported by the worksheet reader.
var (
	ErrNoRows          = parser.ErrNoRows
	ErrDuplicateColumn = parser.ErrDuplicateColumn
	ErrTooFewColumns   = parser.ErrTooFewColumns
	ErrSheetNotFound   = parser.ErrSheetNotFound
	ErrInvalidRange    = parser.ErrInvalidRange
)

// Configuration problems.
var (
	ErrMissingXAxis  = errors.New("x-axis column is required")
	ErrNoSeries      = errors.New("at least one series is required")
	ErrMissingOutput = errors.New("output path is required")
	ErrColumnReused  = errors.New("column is already used")
	ErrInvalidSize   = errors.New("image size must be positive")
	ErrInvalidSeries = errors.New("invalid series")
)

// LoadError represents a failure to read chart data from a workbook.
type LoadError struct {
	Path  string
	Sheet string
	Err   error
}

func (e *LoadError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("load %s (sheet %q): %v", e.Path, e.Sheet, e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ValidationError represents an incomplete or inconsistent chart
// configuration. Field names the offending setting.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}

// GenerationError represents a failure to render or write the image.
type GenerationError struct {
	Path string
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate %s: %v", e.Path, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
