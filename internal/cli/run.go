package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elprofesional/dw-etl/internal/db"
	"github.com/elprofesional/dw-etl/internal/logging"
	"github.com/elprofesional/dw-etl/internal/pipeline"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full ETL batch",
	Long: `Run the full ETL batch: extract the source tables, clean them into
conformed dimensions, sync the dimensions into the warehouse and merge the
sales fact table.

Example:
  dw-etl run --source-connection "postgres://...pos" --warehouse-connection "postgres://...dw"`,
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	if err := cfg.ValidateRun(); err != nil {
		return err
	}

	ctx := context.Background()

	srcPool, err := db.Connect(ctx, cfg.SourceConnection)
	if err != nil {
		return fmt.Errorf("failed to connect to source database: %w", err)
	}
	defer srcPool.Close()

	whPool, err := db.Connect(ctx, cfg.WarehouseConnection)
	if err != nil {
		return fmt.Errorf("failed to connect to warehouse: %w", err)
	}
	defer whPool.Close()

	logging.Info().Msg("Starting ETL run")

	return pipeline.New(srcPool, whPool).Run(ctx)
}
