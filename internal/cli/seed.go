package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elprofesional/dw-etl/internal/db"
	"github.com/elprofesional/dw-etl/internal/logging"
	"github.com/elprofesional/dw-etl/internal/source"
)

var (
	seedOrders       int
	seedCustomers    int
	seedArticles     int
	seedDirtyRatio   float64
	seedDropExisting bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed a development source database with fake operational data",
	Long: `Create the operational point-of-sale schema in a development database
and populate it with fake data, including a configurable fraction of
deliberately dirty rows so every cleaning rule of the pipeline is exercised.

Never point this at a production source database.

Example:
  dw-etl seed --source-connection "postgres://...posdev" --orders 5000`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().IntVar(&seedOrders, "orders", 0,
		"number of sales headers to generate")
	seedCmd.Flags().IntVar(&seedCustomers, "customers", 0,
		"number of customers to generate")
	seedCmd.Flags().IntVar(&seedArticles, "articles", 0,
		"number of articles to generate")
	seedCmd.Flags().Float64Var(&seedDirtyRatio, "dirty-ratio", 0,
		"fraction of rows generated with deliberate data defects")
	seedCmd.Flags().BoolVar(&seedDropExisting, "drop-existing", false,
		"drop the existing operational schema before seeding")
}

func runSeed(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags
	if seedOrders > 0 {
		cfg.Seed.Orders = seedOrders
	}
	if seedCustomers > 0 {
		cfg.Seed.Customers = seedCustomers
	}
	if seedArticles > 0 {
		cfg.Seed.Articles = seedArticles
	}
	if seedDirtyRatio > 0 {
		cfg.Seed.DirtyRatio = seedDirtyRatio
	}
	if seedDropExisting {
		cfg.Seed.DropExisting = true
	}

	if err := cfg.ValidateSeed(); err != nil {
		return err
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.SourceConnection)
	if err != nil {
		return fmt.Errorf("failed to connect to source database: %w", err)
	}
	defer pool.Close()

	if cfg.Seed.DropExisting {
		logging.Warn().Msg("Dropping existing operational schema")
		if err := source.DropSchema(ctx, pool); err != nil {
			return err
		}
	}

	if err := source.CreateSchema(ctx, pool); err != nil {
		return err
	}

	seeder := source.NewSeeder(source.SeedConfig{
		Categories:       cfg.Seed.Categories,
		Articles:         cfg.Seed.Articles,
		Customers:        cfg.Seed.Customers,
		Vendors:          cfg.Seed.Vendors,
		Orders:           cfg.Seed.Orders,
		MaxLinesPerOrder: cfg.Seed.MaxLinesPerOrder,
		DirtyRatio:       cfg.Seed.DirtyRatio,
	})
	return seeder.Seed(ctx, pool)
}
