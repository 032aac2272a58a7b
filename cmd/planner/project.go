package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simaogato/savings-planner/internal/adapter/dto"
	"github.com/simaogato/savings-planner/internal/cli"
	"github.com/simaogato/savings-planner/internal/usecase/projection"
)

func newProjectCmd() *cobra.Command {
	var (
		input  string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Print the savings projection for an expense file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := readInput(input, cmd.InOrStdin())
			if err != nil {
				return err
			}

			p := projection.Calculate(data)
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(dto.NewProjectionResponse(p))
			}

			fmt.Fprintln(out, cli.RenderSummary(p))
			if categories := cli.RenderCategories(p); categories != "" {
				fmt.Fprintln(out, categories)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", stdinPath, `Expense JSON file ("-" for stdin)`)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the projection as JSON")
	return cmd
}
