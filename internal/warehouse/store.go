//-------------------------------------------------------------------------
//
// El Profesional Data Warehouse ETL
//
// Copyright (c) 2025 - 2026, El Profesional
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package warehouse

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elprofesional/dw-etl/internal/logging"
)

// KeyMode tags how a dimension's primary key is produced.
type KeyMode int

const (
	// KeyCallerSupplied means the pipeline computes the integer key and the
	// upsert merges on it.
	KeyCallerSupplied KeyMode = iota

	// KeyGenerated means the warehouse assigns a serial surrogate key;
	// rows merge on the first listed column, a natural unique column.
	KeyGenerated
)

// TableSpec describes one warehouse table to the upsert operation.
// Columns excludes the key column. For KeyCallerSupplied each row is
// key followed by Columns; for KeyGenerated each row is Columns only and
// Columns[0] is the natural unique column.
type TableSpec struct {
	Name    string
	Key     string
	Mode    KeyMode
	Columns []string
}

// insertSQL builds the upsert statement for one row of the table.
func (t TableSpec) insertSQL() string {
	var cols []string
	if t.Mode == KeyCallerSupplied {
		cols = append(cols, t.Key)
	}
	cols = append(cols, t.Columns...)

	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	if t.Mode == KeyGenerated {
		return fmt.Sprintf(
			"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO NOTHING",
			t.Name, strings.Join(cols, ", "), strings.Join(placeholders, ", "), t.Columns[0],
		)
	}

	assignments := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		assignments[i] = fmt.Sprintf("%s = EXCLUDED.%s", c, c)
	}
	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s",
		t.Name, strings.Join(cols, ", "), strings.Join(placeholders, ", "), t.Key,
		strings.Join(assignments, ", "),
	)
}

// selectSQL builds the read-back of the full persisted table, key first.
func (t TableSpec) selectSQL() string {
	cols := append([]string{t.Key}, t.Columns...)
	return fmt.Sprintf("SELECT %s FROM %s ORDER BY %s", strings.Join(cols, ", "), t.Name, t.Key)
}

// Store persists cleaned tables into the warehouse.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a store over a warehouse connection pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Upsert merges rows into a warehouse table by primary key.
func (s *Store) Upsert(ctx context.Context, spec TableSpec, rows [][]any) error {
	insert := spec.insertSQL()

	batch := &pgx.Batch{}
	for _, row := range rows {
		batch.Queue(insert, row...)
	}
	if err := s.pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("upsert %s: %w", spec.Name, err)
	}

	logging.Info().
		Str("table", spec.Name).
		Int("rows", len(rows)).
		Msg("Synced warehouse table")

	return nil
}

// UpsertReturning merges rows and reads back the full persisted table, key
// column first. The returned rows include any warehouse-assigned surrogate
// key values, which is what downstream steps need for the generated-key
// dimensions; the caller-supplied-key tables have no use for the read-back.
func (s *Store) UpsertReturning(ctx context.Context, spec TableSpec, rows [][]any) ([][]any, error) {
	if err := s.Upsert(ctx, spec, rows); err != nil {
		return nil, err
	}

	persisted, err := s.selectAll(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("read back %s: %w", spec.Name, err)
	}
	return persisted, nil
}

func (s *Store) selectAll(ctx context.Context, spec TableSpec) ([][]any, error) {
	rows, err := s.pool.Query(ctx, spec.selectSQL())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out [][]any
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		out = append(out, values)
	}
	return out, rows.Err()
}

// FactRow is one row of the sales fact table, foreign keys resolved.
type FactRow struct {
	TimeID           int
	ArticleID        int
	Account          int
	VendorCode       int
	OrderNumber      int
	Quantity         float64
	UnitPrice        float64
	UnitPriceWithTax float64
	Total            float64
}

const insertFactSQL = `
INSERT INTO fact_ventas
    (idtiempo, idarticulo, nrocuenta, idvendedor, nroorden,
     cantidad, precio_unitario, precio_unitario_iva, importe)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

// ReplaceFacts rewrites the fact table with this run's rows, inside one
// transaction. The fact table has no natural key: an order can carry several
// lines resolving to the same article (unresolvable references all redirect
// to the OTHER sentinel), and every such line is its own fact row.
func (s *Store) ReplaceFacts(ctx context.Context, facts []FactRow) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("replace fact_ventas: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM fact_ventas"); err != nil {
		return fmt.Errorf("replace fact_ventas: %w", err)
	}

	batch := &pgx.Batch{}
	for _, f := range facts {
		batch.Queue(insertFactSQL,
			f.TimeID, f.ArticleID, f.Account, f.VendorCode, f.OrderNumber,
			f.Quantity, f.UnitPrice, f.UnitPriceWithTax, f.Total)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("replace fact_ventas: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("replace fact_ventas: %w", err)
	}

	logging.Info().
		Int("rows", len(facts)).
		Msg("Replaced fact table")

	return nil
}

// AsInt normalizes the integer types pgx hands back from row values.
func AsInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int16:
		return int(n)
	case int32:
		return int(n)
	case int64:
		return int(n)
	default:
		return 0
	}
}
