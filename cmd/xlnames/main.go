// Package main provides the CLI entry point for xlnames.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/BBN-D/poi/pkg/names"
	"github.com/BBN-D/poi/pkg/names/models"
	"github.com/BBN-D/poi/pkg/names/output"
)

var (
	outputPath     string
	pretty         bool
	includeBuiltin bool
	sheetFilter    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xlnames [input.xlsx]",
		Short: "List and canonicalize defined names in Excel files",
		Long: `xlnames reads the defined names of an Excel workbook, canonicalizes
their area references, and outputs a JSON report. References that cannot
be parsed are kept byte-identical and reported as warnings.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVar(&includeBuiltin, "include-builtin", false, "Include application-reserved names (_xlnm.*)")
	rootCmd.Flags().StringVar(&sheetFilter, "sheet", "", "Only report names resolving to this sheet")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	f, err := excelize.OpenFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	var warnings []models.Warning
	reg := names.Load(f, func(refText string, err error) {
		warnings = append(warnings, models.Warning{RefersTo: refText, Reason: err.Error()})
	})

	report := names.BuildReport(filepath.Base(inputPath), reg, names.WorkbookResolver{File: f}, names.ReportOptions{
		IncludeBuiltin: includeBuiltin,
		Sheet:          sheetFilter,
	})
	report.Warnings = warnings

	jsonData, err := output.ToJSON(report, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(jsonData))
	return nil
}
