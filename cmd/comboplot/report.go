package main

import (
	"errors"
	"fmt"

	"github.com/ukaji3/comboplot-go/pkg/comboplot"
	"github.com/ukaji3/comboplot-go/pkg/comboplot/i18n"
)

// reasons maps error causes to message keys, most specific first.
var reasons = []struct {
	err error
	key string
}{
	{comboplot.ErrFileNotFound, "reason.file_not_found"},
	{comboplot.ErrInvalidFormat, "reason.invalid_format"},
	{comboplot.ErrNoRows, "reason.no_rows"},
	{comboplot.ErrDuplicateColumn, "reason.duplicate_column"},
	{comboplot.ErrTooFewColumns, "reason.too_few_columns"},
	{comboplot.ErrSheetNotFound, "reason.sheet_not_found"},
	{comboplot.ErrInvalidRange, "reason.invalid_range"},
	{comboplot.ErrMissingXAxis, "reason.missing_x_axis"},
	{comboplot.ErrNoSeries, "reason.no_series"},
	{comboplot.ErrMissingOutput, "reason.missing_output"},
	{comboplot.ErrColumnReused, "reason.column_reused"},
	{comboplot.ErrInvalidSize, "reason.invalid_size"},
	{comboplot.ErrInvalidSeries, "reason.invalid_series"},
}

// reason returns the localized cause of err, or its text when the cause
// has no message. Unlocalized details are appended in parentheses.
func reason(loc *i18n.Localizer, err error) string {
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			msg := loc.T(r.key)
			if detail := err.Error(); detail != r.err.Error() {
				msg = fmt.Sprintf("%s (%s)", msg, detail)
			}
			return msg
		}
	}
	return err.Error()
}

// describe renders err as one localized line, or its plain text when no
// localizer could be built.
func describe(loc *i18n.Localizer, err error) string {
	if loc == nil {
		return err.Error()
	}

	var loadErr *comboplot.LoadError
	var validationErr *comboplot.ValidationError
	var generationErr *comboplot.GenerationError

	switch {
	case errors.As(err, &loadErr):
		path := loadErr.Path
		if loadErr.Sheet != "" {
			path = fmt.Sprintf("%s [%s]", path, loadErr.Sheet)
		}
		return loc.T("error.load", map[string]interface{}{
			"Path":   path,
			"Reason": reason(loc, loadErr.Err),
		})
	case errors.As(err, &validationErr):
		return loc.T("error.validation", map[string]interface{}{
			"Field":  validationErr.Field,
			"Reason": reason(loc, validationErr.Err),
		})
	case errors.As(err, &generationErr):
		return loc.T("error.generation", map[string]interface{}{
			"Path":   generationErr.Path,
			"Reason": reason(loc, generationErr.Err),
		})
	default:
		return loc.T("error.unexpected", map[string]interface{}{"Reason": err.Error()})
	}
}
