//-------------------------------------------------------------------------
//
// El Profesional Data Warehouse ETL
//
// Copyright (c) 2025 - 2026, El Profesional
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package pipeline runs the batch ETL: extract the operational tables, clean
// them into conformed dimensions, sync the dimensions into the warehouse and
// build the sales fact table. One linear pass; any stage error aborts the
// run, and upserts already committed are not rolled back.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elprofesional/dw-etl/internal/clean"
	"github.com/elprofesional/dw-etl/internal/logging"
	"github.com/elprofesional/dw-etl/internal/source"
	"github.com/elprofesional/dw-etl/internal/warehouse"
)

// Pipeline wires the source and warehouse databases together for one run.
type Pipeline struct {
	source    *pgxpool.Pool
	warehouse *pgxpool.Pool
}

// New creates a pipeline over the two connection pools.
func New(src, wh *pgxpool.Pool) *Pipeline {
	return &Pipeline{source: src, warehouse: wh}
}

// Run executes the full batch.
func (p *Pipeline) Run(ctx context.Context) error {
	started := time.Now()

	snap, err := source.Extract(ctx, p.source)
	if err != nil {
		return fmt.Errorf("extract stage: %w", err)
	}

	// Dimension cleaning, in dependency order: articles need cleaned
	// categories, customers need cleaned customer types.
	categories := clean.Categories(snap.Categories)
	articles := clean.Articles(snap.Articles, categories)
	types := clean.CustomerTypes(snap.CustomerTypes)
	localities := clean.Localities()
	customers, err := clean.Customers(snap.Customers, types)
	if err != nil {
		return fmt.Errorf("customer stage: %w", err)
	}
	vendors := clean.Vendors(snap.Vendors)

	orders, err := clean.Orders(snap.SalesHeaders, vendors, customers)
	if err != nil {
		return fmt.Errorf("sales header stage: %w", err)
	}
	lines, err := clean.Lines(snap.SalesLines, orders, articles)
	if err != nil {
		return fmt.Errorf("sale line stage: %w", err)
	}
	times := clean.TimeDimension(orders)

	store := warehouse.NewStore(p.warehouse)

	// Referenced dimensions sync before their referents.
	if err := store.Upsert(ctx, categorySpec, categoryRows(categories)); err != nil {
		return fmt.Errorf("sync stage: %w", err)
	}
	if err := store.Upsert(ctx, articleSpec, articleRows(articles)); err != nil {
		return fmt.Errorf("sync stage: %w", err)
	}
	if err := store.Upsert(ctx, customerTypeSpec, customerTypeRows(types)); err != nil {
		return fmt.Errorf("sync stage: %w", err)
	}
	if err := store.Upsert(ctx, localitySpec, localityRows(localities)); err != nil {
		return fmt.Errorf("sync stage: %w", err)
	}
	if err := store.Upsert(ctx, customerSpec, customerRows(customers)); err != nil {
		return fmt.Errorf("sync stage: %w", err)
	}
	if err := store.Upsert(ctx, vendorSpec, vendorRows(vendors)); err != nil {
		return fmt.Errorf("sync stage: %w", err)
	}

	// The time dimension's surrogate keys are assigned by the warehouse, so
	// the fact builder reads the persisted table, not the derived one.
	persistedTimes, err := store.UpsertReturning(ctx, timeSpec, timeRows(times))
	if err != nil {
		return fmt.Errorf("sync stage: %w", err)
	}

	facts, err := BuildFacts(orders, lines, timeKeyIndex(persistedTimes))
	if err != nil {
		return fmt.Errorf("fact stage: %w", err)
	}
	if err := store.ReplaceFacts(ctx, facts); err != nil {
		return fmt.Errorf("fact stage: %w", err)
	}

	logging.Info().
		Int("orders", len(orders)).
		Int("facts", len(facts)).
		Dur("elapsed", time.Since(started)).
		Msg("Pipeline run complete")

	return nil
}

// timeKeyIndex maps persisted timestamps to their warehouse surrogate keys.
// Persisted rows arrive key first, timestamp second (timeSpec's layout).
func timeKeyIndex(persisted [][]any) map[time.Time]int {
	index := make(map[time.Time]int, len(persisted))
	for _, row := range persisted {
		ts, ok := row[1].(time.Time)
		if !ok {
			continue
		}
		index[ts.UTC()] = warehouse.AsInt(row[0])
	}
	return index
}
