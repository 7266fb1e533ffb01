package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ukaji3/comboplot-go/pkg/comboplot"
	"github.com/ukaji3/comboplot-go/pkg/comboplot/output"
)

type inspectFlags struct {
	xAxis      string
	sheet      string
	cellRange  string
	outputPath string
	pretty     bool
}

func (a *app) newInspectCmd() *cobra.Command {
	var f inspectFlags
	cmd := &cobra.Command{
		Use:   "inspect [input.xlsx]",
		Short: "Describe the sheets, columns and charts of a workbook as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInspect(cmd, args[0], f)
		},
	}

	cmd.Flags().StringVar(&f.xAxis, "x", "", "X-axis column used to list available columns (default: first column)")
	cmd.Flags().StringVar(&f.sheet, "sheet", "", "Worksheet to describe columns of (default: first sheet)")
	cmd.Flags().StringVar(&f.cellRange, "range", "", "Cell range or defined name holding the table")
	cmd.Flags().StringVarP(&f.outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&f.pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func (a *app) runInspect(cmd *cobra.Command, inputPath string, f inspectFlags) error {
	ctx := cmd.Context()

	wb, err := comboplot.Inspect(ctx, inputPath, f.xAxis, comboplot.Options{Sheet: f.sheet, Range: f.cellRange})
	if err != nil {
		return err
	}
	if len(wb.Charts) == 0 {
		zerolog.Ctx(ctx).Info().Msg(a.loc.T("inspect.no_charts"))
	}

	jsonData, err := output.WorkbookToJSON(wb, f.pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if f.outputPath != "" {
		if err := os.WriteFile(f.outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Fprintln(a.stdout, string(jsonData))
	return nil
}
