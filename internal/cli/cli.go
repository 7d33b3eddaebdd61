//-------------------------------------------------------------------------
//
// El Profesional Data Warehouse ETL
//
// Copyright (c) 2025 - 2026, El Profesional
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package cli implements the command-line interface for dw-etl.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/elprofesional/dw-etl/internal/config"
	"github.com/elprofesional/dw-etl/internal/logging"
	"github.com/elprofesional/dw-etl/pkg/version"
)

var (
	// Global flags
	cfgFile             string
	sourceConnection    string
	warehouseConnection string
	logLevel            string

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "dw-etl",
		Short: "Batch ETL from the El Profesional point-of-sale database into the dimensional warehouse",
		Long: `dw-etl extracts the transactional retail tables of the El Profesional
point-of-sale database, cleans and conforms them according to the business
rules of the warehouse, and loads the resulting dimensions and the sales
fact table into the star schema.

It is a scheduled batch tool, not a service: a run either completes fully
or aborts at the failing stage.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./dw-etl.yaml)")
	rootCmd.PersistentFlags().StringVar(&sourceConnection, "source-connection", "",
		"PostgreSQL connection string of the operational source database")
	rootCmd.PersistentFlags().StringVar(&warehouseConnection, "warehouse-connection", "",
		"PostgreSQL connection string of the warehouse")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(seedCmd)
}

func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	if sourceConnection != "" {
		cfg.SourceConnection = sourceConnection
	}
	if warehouseConnection != "" {
		cfg.WarehouseConnection = warehouseConnection
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	// Reinitialize logger with config
	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}
