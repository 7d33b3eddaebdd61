package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elprofesional/dw-etl/internal/db"
	"github.com/elprofesional/dw-etl/internal/logging"
	"github.com/elprofesional/dw-etl/internal/warehouse"
)

var initDropExisting bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the warehouse star schema",
	Long: `Create the star schema (dimensions and the sales fact table) in the
warehouse database. Creation is idempotent; existing tables are left alone
unless --drop-existing is given.

Example:
  dw-etl init --warehouse-connection "postgres://...dw"`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initDropExisting, "drop-existing", false,
		"drop the existing star schema before creating it")
}

func runInit(cmd *cobra.Command, args []string) error {
	if err := cfg.ValidateInit(); err != nil {
		return err
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.WarehouseConnection)
	if err != nil {
		return fmt.Errorf("failed to connect to warehouse: %w", err)
	}
	defer pool.Close()

	if initDropExisting {
		logging.Warn().Msg("Dropping existing star schema")
		if err := warehouse.DropSchema(ctx, pool); err != nil {
			return err
		}
	}

	logging.Info().Msg("Creating star schema")
	if err := warehouse.CreateSchema(ctx, pool); err != nil {
		return err
	}

	logging.Info().Msg("Warehouse initialization complete")
	return nil
}
