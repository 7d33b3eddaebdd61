//-------------------------------------------------------------------------
//
// El Profesional Data Warehouse ETL
//
// Copyright (c) 2025 - 2026, El Profesional
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package warehouse persists the cleaned dimensions and the sales fact table
// into the dimensional warehouse.
package warehouse

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema SQL for the star schema. Every dimension except dim_tiempo uses the
// caller-supplied natural or composite key; dim_tiempo and fact_ventas carry
// warehouse-generated surrogate keys.
const createSchemaSQL = `
CREATE TABLE IF NOT EXISTS dim_rubro (
    idrubro  INTEGER PRIMARY KEY,
    nombre   VARCHAR(100) NOT NULL
);

CREATE TABLE IF NOT EXISTS dim_articulo (
    idarticulo INTEGER PRIMARY KEY,
    nombre     VARCHAR(200) NOT NULL,
    idrubro    INTEGER NOT NULL REFERENCES dim_rubro (idrubro)
);

CREATE TABLE IF NOT EXISTS dim_tipocliente (
    idtipocliente INTEGER PRIMARY KEY,
    nombre        VARCHAR(50) NOT NULL
);

CREATE TABLE IF NOT EXISTS dim_localidad (
    idlocalidad INTEGER PRIMARY KEY,
    nombre      VARCHAR(50) NOT NULL
);

CREATE TABLE IF NOT EXISTS dim_cliente (
    nrocuenta     INTEGER PRIMARY KEY,
    nombre        VARCHAR(200) NOT NULL,
    idtipocliente INTEGER NOT NULL REFERENCES dim_tipocliente (idtipocliente),
    idlocalidad   INTEGER NOT NULL REFERENCES dim_localidad (idlocalidad)
);

CREATE TABLE IF NOT EXISTS dim_vendedor (
    idvendedor INTEGER PRIMARY KEY,
    nombre     VARCHAR(100) NOT NULL
);

CREATE TABLE IF NOT EXISTS dim_tiempo (
    idtiempo    SERIAL PRIMARY KEY,
    fecha       TIMESTAMP NOT NULL UNIQUE,
    momento_dia VARCHAR(10) NOT NULL,
    dia_semana  VARCHAR(10) NOT NULL,
    dia_mes     INTEGER NOT NULL,
    mes_nombre  VARCHAR(12) NOT NULL,
    mes_numero  INTEGER NOT NULL,
    trimestre   INTEGER NOT NULL,
    semestre    INTEGER NOT NULL,
    anio        INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS fact_ventas (
    idventa             SERIAL PRIMARY KEY,
    idtiempo            INTEGER NOT NULL REFERENCES dim_tiempo (idtiempo),
    idarticulo          INTEGER NOT NULL REFERENCES dim_articulo (idarticulo),
    nrocuenta           INTEGER NOT NULL REFERENCES dim_cliente (nrocuenta),
    idvendedor          INTEGER NOT NULL REFERENCES dim_vendedor (idvendedor),
    nroorden            INTEGER NOT NULL,
    cantidad            DOUBLE PRECISION NOT NULL,
    precio_unitario     DOUBLE PRECISION NOT NULL,
    precio_unitario_iva DOUBLE PRECISION NOT NULL,
    importe             DOUBLE PRECISION NOT NULL
);
`

// dropSchemaSQL removes the star schema, facts first.
const dropSchemaSQL = `
DROP TABLE IF EXISTS fact_ventas;
DROP TABLE IF EXISTS dim_tiempo;
DROP TABLE IF EXISTS dim_vendedor;
DROP TABLE IF EXISTS dim_cliente;
DROP TABLE IF EXISTS dim_localidad;
DROP TABLE IF EXISTS dim_tipocliente;
DROP TABLE IF EXISTS dim_articulo;
DROP TABLE IF EXISTS dim_rubro;
`

// CreateSchema creates the star schema.
func CreateSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, createSchemaSQL); err != nil {
		return fmt.Errorf("failed to create warehouse schema: %w", err)
	}
	return nil
}

// DropSchema drops the star schema.
func DropSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, dropSchemaSQL); err != nil {
		return fmt.Errorf("failed to drop warehouse schema: %w", err)
	}
	return nil
}
