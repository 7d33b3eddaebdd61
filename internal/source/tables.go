//-------------------------------------------------------------------------
//
// El Profesional Data Warehouse ETL
//
// Copyright (c) 2025 - 2026, El Profesional
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package source extracts raw rows from the operational point-of-sale
// database. Column and table names are preserved from the source schema;
// nullable columns are pointers. No cleaning happens here.
package source

// Source table names as they exist in the operational database.
const (
	TableArticulos   = "Articulos"
	TableCabVentas   = "CabVentas"
	TableClientes    = "Clientes"
	TableItemVentas  = "ItemVentas"
	TableRubros      = "Rubros"
	TableTipoCliente = "TipoCliente"
	TableVendedor    = "Vendedor"
)

// CategoryRow is a raw row of the Rubros table: four hierarchical code
// fragments plus a name.
type CategoryRow struct {
	Rubro     *int
	Subrubro1 *int
	Subrubro2 *int
	Subrubro3 *int
	Nombre    *string
}

// ArticleRow is a raw row of the Articulos table.
type ArticleRow struct {
	Codigo    *int
	Subcodigo *int
	Rubro     *int
	Subrubro1 *int
	Subrubro2 *int
	Subrubro3 *int
	Nombre    *string
}

// CustomerTypeRow is a raw row of the TipoCliente table.
type CustomerTypeRow struct {
	IDTipoCliente int
	Descripcion   *string
}

// CustomerRow is a raw row of the Clientes table. Localidad is free text
// typed in by the operators, with all the spelling variants that implies.
type CustomerRow struct {
	NroCuenta   int
	Nombre      *string
	TipoCliente *int
	Localidad   *string
}

// VendorRow is a raw row of the Vendedor table.
type VendorRow struct {
	IDVendedor *int
	Nombre     *string
}

// SalesHeaderRow is a raw row of the CabVentas table. Fecha and Hora are the
// two text fragments the source stores for the sale instant; IDVendedor and
// NroCuenta are text in the source and may hold blanks or zeros.
type SalesHeaderRow struct {
	NroOrden     int
	Comprobante  *string
	IDVendedor   *string
	Fecha        *string
	Hora         *string
	NroCuenta    *string
	Nombre       *string
	ImporteTotal *float64
}

// SalesLineRow is a raw row of the ItemVentas table.
type SalesLineRow struct {
	NroOrden          int
	Codigo            *int
	Subcodigo         *int
	Cantidad          *float64
	PrecioUnitario    *float64
	PrecioUnitarioIVA *float64
	Importe           *float64
}
