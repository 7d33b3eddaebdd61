package source

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elprofesional/dw-etl/internal/logging"
)

// Snapshot holds one full extraction of the source tables, read once at the
// start of a pipeline run.
type Snapshot struct {
	Categories    []CategoryRow
	Articles      []ArticleRow
	CustomerTypes []CustomerTypeRow
	Customers     []CustomerRow
	Vendors       []VendorRow
	SalesHeaders  []SalesHeaderRow
	SalesLines    []SalesLineRow
}

// Extract reads every source table in full. No filtering is pushed down;
// all cleaning rules run in memory downstream.
func Extract(ctx context.Context, pool *pgxpool.Pool) (*Snapshot, error) {
	snap := &Snapshot{}

	var err error
	if snap.Categories, err = extractCategories(ctx, pool); err != nil {
		return nil, fmt.Errorf("extract %s: %w", TableRubros, err)
	}
	if snap.Articles, err = extractArticles(ctx, pool); err != nil {
		return nil, fmt.Errorf("extract %s: %w", TableArticulos, err)
	}
	if snap.CustomerTypes, err = extractCustomerTypes(ctx, pool); err != nil {
		return nil, fmt.Errorf("extract %s: %w", TableTipoCliente, err)
	}
	if snap.Customers, err = extractCustomers(ctx, pool); err != nil {
		return nil, fmt.Errorf("extract %s: %w", TableClientes, err)
	}
	if snap.Vendors, err = extractVendors(ctx, pool); err != nil {
		return nil, fmt.Errorf("extract %s: %w", TableVendedor, err)
	}
	if snap.SalesHeaders, err = extractSalesHeaders(ctx, pool); err != nil {
		return nil, fmt.Errorf("extract %s: %w", TableCabVentas, err)
	}
	if snap.SalesLines, err = extractSalesLines(ctx, pool); err != nil {
		return nil, fmt.Errorf("extract %s: %w", TableItemVentas, err)
	}

	logging.Info().
		Int("rubros", len(snap.Categories)).
		Int("articulos", len(snap.Articles)).
		Int("tipos_cliente", len(snap.CustomerTypes)).
		Int("clientes", len(snap.Customers)).
		Int("vendedores", len(snap.Vendors)).
		Int("cab_ventas", len(snap.SalesHeaders)).
		Int("item_ventas", len(snap.SalesLines)).
		Msg("Extracted source tables")

	return snap, nil
}

func extractCategories(ctx context.Context, pool *pgxpool.Pool) ([]CategoryRow, error) {
	rows, err := pool.Query(ctx, `
        SELECT "Rubro", "Subrubro1", "Subrubro2", "Subrubro3", "Nombre"
        FROM "Rubros"
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CategoryRow
	for rows.Next() {
		var r CategoryRow
		if err := rows.Scan(&r.Rubro, &r.Subrubro1, &r.Subrubro2, &r.Subrubro3, &r.Nombre); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func extractArticles(ctx context.Context, pool *pgxpool.Pool) ([]ArticleRow, error) {
	rows, err := pool.Query(ctx, `
        SELECT "Codigo", "Subcodigo", "Rubro", "Subrubro1", "Subrubro2", "Subrubro3", "Nombre"
        FROM "Articulos"
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ArticleRow
	for rows.Next() {
		var r ArticleRow
		if err := rows.Scan(&r.Codigo, &r.Subcodigo, &r.Rubro, &r.Subrubro1, &r.Subrubro2, &r.Subrubro3, &r.Nombre); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func extractCustomerTypes(ctx context.Context, pool *pgxpool.Pool) ([]CustomerTypeRow, error) {
	rows, err := pool.Query(ctx, `
        SELECT "IDTipoCliente", "Descripcion"
        FROM "TipoCliente"
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CustomerTypeRow
	for rows.Next() {
		var r CustomerTypeRow
		if err := rows.Scan(&r.IDTipoCliente, &r.Descripcion); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func extractCustomers(ctx context.Context, pool *pgxpool.Pool) ([]CustomerRow, error) {
	rows, err := pool.Query(ctx, `
        SELECT "NroCuenta", "Nombre", "TipoCliente", "Localidad"
        FROM "Clientes"
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CustomerRow
	for rows.Next() {
		var r CustomerRow
		if err := rows.Scan(&r.NroCuenta, &r.Nombre, &r.TipoCliente, &r.Localidad); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func extractVendors(ctx context.Context, pool *pgxpool.Pool) ([]VendorRow, error) {
	rows, err := pool.Query(ctx, `
        SELECT "IDVendedor", "Nombre"
        FROM "Vendedor"
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []VendorRow
	for rows.Next() {
		var r VendorRow
		if err := rows.Scan(&r.IDVendedor, &r.Nombre); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func extractSalesHeaders(ctx context.Context, pool *pgxpool.Pool) ([]SalesHeaderRow, error) {
	rows, err := pool.Query(ctx, `
        SELECT "NroOrden", "Comprobante", "IDVendedor", "Fecha", "Hora", "NroCuenta", "Nombre", "ImporteTotal"
        FROM "CabVentas"
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SalesHeaderRow
	for rows.Next() {
		var r SalesHeaderRow
		if err := rows.Scan(&r.NroOrden, &r.Comprobante, &r.IDVendedor, &r.Fecha, &r.Hora, &r.NroCuenta, &r.Nombre, &r.ImporteTotal); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func extractSalesLines(ctx context.Context, pool *pgxpool.Pool) ([]SalesLineRow, error) {
	rows, err := pool.Query(ctx, `
        SELECT "NroOrden", "Codigo", "Subcodigo", "Cantidad", "PrecioUnitario", "PrecioUnitarioIVA", "Importe"
        FROM "ItemVentas"
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SalesLineRow
	for rows.Next() {
		var r SalesLineRow
		if err := rows.Scan(&r.NroOrden, &r.Codigo, &r.Subcodigo, &r.Cantidad, &r.PrecioUnitario, &r.PrecioUnitarioIVA, &r.Importe); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
