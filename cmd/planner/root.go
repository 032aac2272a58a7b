package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/simaogato/savings-planner/internal/adapter/dto"
	"github.com/simaogato/savings-planner/internal/config"
	"github.com/simaogato/savings-planner/internal/domain"
)

// stdinPath selects standard input for --input
const stdinPath = "-"

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "planner",
		Short: "Savings planner: expense projections and spreadsheet reports",
		Long: `planner projects monthly savings against a ₹1 crore target over five years
and exports the analysis as an xlsx workbook. Run "planner serve" for the
HTTP and gRPC APIs.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "TOML config file (default $"+config.EnvConfigFile+")")

	cmd.AddCommand(
		newServeCmd(opts),
		newProjectCmd(),
		newExportCmd(),
	)
	return cmd
}

// loadConfig reads and validates the configuration named by --config
func (o *rootOptions) loadConfig() (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// readInput decodes expense data from path, or from stdin when path is "-"
func readInput(path string, stdin io.Reader) (domain.ExpenseData, error) {
	if path == stdinPath {
		return dto.Decode(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return domain.ExpenseData{}, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	data, err := dto.Decode(f)
	if err != nil {
		return domain.ExpenseData{}, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}
