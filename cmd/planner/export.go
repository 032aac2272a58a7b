package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/simaogato/savings-planner/internal/adapter/xlsx"
	"github.com/simaogato/savings-planner/internal/domain"
	"github.com/simaogato/savings-planner/internal/usecase/report"
)

func newExportCmd() *cobra.Command {
	var input, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the xlsx report for an expense file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := readInput(input, cmd.InOrStdin())
			if err != nil {
				return err
			}

			file, err := report.NewReportService(xlsx.NewRenderer()).Render(cmd.Context(), data)
			if err != nil {
				return err
			}

			if err := os.WriteFile(output, file.Content, 0644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s)\n", output, humanize.Bytes(uint64(len(file.Content))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", stdinPath, `Expense JSON file ("-" for stdin)`)
	cmd.Flags().StringVarP(&output, "output", "o", domain.ReportFilename, "Output xlsx path")
	return cmd
}
