//-------------------------------------------------------------------------
//
// El Profesional Data Warehouse ETL
//
// Copyright (c) 2025 - 2026, El Profesional
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package source

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema SQL for the operational point-of-sale tables, used by the seed
// command to stand up a development source database. Column names and the
// loose typing (text dates, text account numbers on sale headers) mirror the
// production system.
const createSchemaSQL = `
CREATE TABLE IF NOT EXISTS "Rubros" (
    "Rubro"      INTEGER,
    "Subrubro1"  INTEGER,
    "Subrubro2"  INTEGER,
    "Subrubro3"  INTEGER,
    "Nombre"     VARCHAR(100)
);

CREATE TABLE IF NOT EXISTS "Articulos" (
    "Codigo"     INTEGER,
    "Subcodigo"  INTEGER,
    "Rubro"      INTEGER,
    "Subrubro1"  INTEGER,
    "Subrubro2"  INTEGER,
    "Subrubro3"  INTEGER,
    "Nombre"     VARCHAR(200)
);

CREATE TABLE IF NOT EXISTS "TipoCliente" (
    "IDTipoCliente" INTEGER NOT NULL,
    "Descripcion"   VARCHAR(50)
);

CREATE TABLE IF NOT EXISTS "Clientes" (
    "NroCuenta"   INTEGER NOT NULL,
    "Nombre"      VARCHAR(200),
    "TipoCliente" INTEGER,
    "Localidad"   VARCHAR(100)
);

CREATE TABLE IF NOT EXISTS "Vendedor" (
    "IDVendedor" INTEGER,
    "Nombre"     VARCHAR(100)
);

CREATE TABLE IF NOT EXISTS "CabVentas" (
    "NroOrden"     INTEGER NOT NULL,
    "Comprobante"  VARCHAR(20),
    "IDVendedor"   VARCHAR(10),
    "Fecha"        VARCHAR(10),
    "Hora"         VARCHAR(8),
    "NroCuenta"    VARCHAR(10),
    "Nombre"       VARCHAR(200),
    "ImporteTotal" DOUBLE PRECISION
);

CREATE TABLE IF NOT EXISTS "ItemVentas" (
    "NroOrden"          INTEGER NOT NULL,
    "Codigo"            INTEGER,
    "Subcodigo"         INTEGER,
    "Cantidad"          DOUBLE PRECISION,
    "PrecioUnitario"    DOUBLE PRECISION,
    "PrecioUnitarioIVA" DOUBLE PRECISION,
    "Importe"           DOUBLE PRECISION
);
`

// dropSchemaSQL removes the operational tables.
const dropSchemaSQL = `
DROP TABLE IF EXISTS "ItemVentas";
DROP TABLE IF EXISTS "CabVentas";
DROP TABLE IF EXISTS "Vendedor";
DROP TABLE IF EXISTS "Clientes";
DROP TABLE IF EXISTS "TipoCliente";
DROP TABLE IF EXISTS "Articulos";
DROP TABLE IF EXISTS "Rubros";
`

// CreateSchema creates the operational schema.
func CreateSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, createSchemaSQL); err != nil {
		return fmt.Errorf("failed to create source schema: %w", err)
	}
	return nil
}

// DropSchema drops the operational schema.
func DropSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, dropSchemaSQL); err != nil {
		return fmt.Errorf("failed to drop source schema: %w", err)
	}
	return nil
}
