package pipeline

import (
	"github.com/elprofesional/dw-etl/internal/clean"
	"github.com/elprofesional/dw-etl/internal/warehouse"
)

// Table specs for the star schema. Every dimension except dim_tiempo carries
// a caller-supplied integer key; dim_tiempo merges on its unique timestamp
// and the warehouse assigns the surrogate key.
var (
	categorySpec = warehouse.TableSpec{
		Name:    "dim_rubro",
		Key:     "idrubro",
		Mode:    warehouse.KeyCallerSupplied,
		Columns: []string{"nombre"},
	}
	articleSpec = warehouse.TableSpec{
		Name:    "dim_articulo",
		Key:     "idarticulo",
		Mode:    warehouse.KeyCallerSupplied,
		Columns: []string{"nombre", "idrubro"},
	}
	customerTypeSpec = warehouse.TableSpec{
		Name:    "dim_tipocliente",
		Key:     "idtipocliente",
		Mode:    warehouse.KeyCallerSupplied,
		Columns: []string{"nombre"},
	}
	localitySpec = warehouse.TableSpec{
		Name:    "dim_localidad",
		Key:     "idlocalidad",
		Mode:    warehouse.KeyCallerSupplied,
		Columns: []string{"nombre"},
	}
	customerSpec = warehouse.TableSpec{
		Name:    "dim_cliente",
		Key:     "nrocuenta",
		Mode:    warehouse.KeyCallerSupplied,
		Columns: []string{"nombre", "idtipocliente", "idlocalidad"},
	}
	vendorSpec = warehouse.TableSpec{
		Name:    "dim_vendedor",
		Key:     "idvendedor",
		Mode:    warehouse.KeyCallerSupplied,
		Columns: []string{"nombre"},
	}
	timeSpec = warehouse.TableSpec{
		Name: "dim_tiempo",
		Key:  "idtiempo",
		Mode: warehouse.KeyGenerated,
		Columns: []string{
			"fecha", "momento_dia", "dia_semana", "dia_mes",
			"mes_nombre", "mes_numero", "trimestre", "semestre", "anio",
		},
	}
)

func categoryRows(categories []clean.Category) [][]any {
	rows := make([][]any, len(categories))
	for i, c := range categories {
		rows[i] = []any{c.ID, c.Name}
	}
	return rows
}

func articleRows(articles []clean.Article) [][]any {
	rows := make([][]any, len(articles))
	for i, a := range articles {
		rows[i] = []any{a.ID, a.Name, a.CategoryID}
	}
	return rows
}

func customerTypeRows(types []clean.CustomerType) [][]any {
	rows := make([][]any, len(types))
	for i, t := range types {
		rows[i] = []any{t.ID, t.Label}
	}
	return rows
}

func localityRows(localities []clean.Locality) [][]any {
	rows := make([][]any, len(localities))
	for i, l := range localities {
		rows[i] = []any{l.ID, l.Name}
	}
	return rows
}

func customerRows(customers []clean.Customer) [][]any {
	rows := make([][]any, len(customers))
	for i, c := range customers {
		rows[i] = []any{c.Account, c.Name, c.TypeID, c.LocalityID}
	}
	return rows
}

func vendorRows(vendors []clean.Vendor) [][]any {
	rows := make([][]any, len(vendors))
	for i, v := range vendors {
		rows[i] = []any{v.Code, v.Name}
	}
	return rows
}

func timeRows(times []clean.TimeRow) [][]any {
	rows := make([][]any, len(times))
	for i, t := range times {
		rows[i] = []any{
			t.Timestamp, t.PartOfDay, t.WeekdayName, t.DayOfMonth,
			t.MonthName, t.MonthNumber, t.Quarter, t.HalfYear, t.Year,
		}
	}
	return rows
}
