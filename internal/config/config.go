//-------------------------------------------------------------------------
//
// El Profesional Data Warehouse ETL
//
// Copyright (c) 2025 - 2026, El Profesional
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for dw-etl.
// Configuration is loaded from config files and CLI flags (no environment
// variables). CLI flags take precedence over config file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for dw-etl.
type Config struct {
	// SourceConnection is the connection string of the operational
	// point-of-sale database the ETL extracts from.
	SourceConnection string `mapstructure:"source_connection"`

	// WarehouseConnection is the connection string of the dimensional
	// warehouse the ETL loads into.
	WarehouseConnection string `mapstructure:"warehouse_connection"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Seed holds configuration for the seed subcommand.
	Seed SeedConfig `mapstructure:"seed"`
}

// SeedConfig holds configuration for seeding a development source database.
type SeedConfig struct {
	// Categories is the number of category rows to generate.
	Categories int `mapstructure:"categories"`

	// Articles is the number of article rows to generate.
	Articles int `mapstructure:"articles"`

	// Customers is the number of customer rows to generate.
	Customers int `mapstructure:"customers"`

	// Vendors is the number of vendor rows to generate.
	Vendors int `mapstructure:"vendors"`

	// Orders is the number of sales headers to generate.
	Orders int `mapstructure:"orders"`

	// MaxLinesPerOrder caps the sale lines generated per order.
	MaxLinesPerOrder int `mapstructure:"max_lines_per_order"`

	// DirtyRatio is the fraction of generated rows that deliberately carry
	// data defects (nulls, negative totals, unknown foreign keys) so the
	// cleaning rules are exercised end to end.
	DirtyRatio float64 `mapstructure:"dirty_ratio"`

	// DropExisting drops the operational schema before seeding.
	DropExisting bool `mapstructure:"drop_existing"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Seed: SeedConfig{
			Categories:       40,
			Articles:         500,
			Customers:        300,
			Vendors:          12,
			Orders:           2000,
			MaxLinesPerOrder: 8,
			DirtyRatio:       0.05,
			DropExisting:     false,
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./dw-etl.yaml
// 3. ~/.config/dw-etl/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("dw-etl")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "dw-etl"))
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// ValidateRun checks configuration required for the run command.
func (c *Config) ValidateRun() error {
	if c.SourceConnection == "" {
		return fmt.Errorf("source connection string is required")
	}
	if c.WarehouseConnection == "" {
		return fmt.Errorf("warehouse connection string is required")
	}
	return nil
}

// ValidateInit checks configuration required for the init command.
func (c *Config) ValidateInit() error {
	if c.WarehouseConnection == "" {
		return fmt.Errorf("warehouse connection string is required")
	}
	return nil
}

// ValidateSeed checks configuration required for the seed command.
func (c *Config) ValidateSeed() error {
	if c.SourceConnection == "" {
		return fmt.Errorf("source connection string is required")
	}
	if c.Seed.Categories < 1 || c.Seed.Articles < 1 || c.Seed.Customers < 1 ||
		c.Seed.Vendors < 1 || c.Seed.Orders < 1 {
		return fmt.Errorf("seed row counts must be at least 1")
	}
	if c.Seed.MaxLinesPerOrder < 1 {
		return fmt.Errorf("max_lines_per_order must be at least 1")
	}
	if c.Seed.DirtyRatio < 0 || c.Seed.DirtyRatio >= 1 {
		return fmt.Errorf("dirty_ratio must be in [0, 1)")
	}
	return nil
}
