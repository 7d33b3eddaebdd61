package clean

import (
	"testing"

	"github.com/elprofesional/dw-etl/internal/source"
)

func testCustomerTypes() []CustomerType {
	return CustomerTypes([]source.CustomerTypeRow{
		{IDTipoCliente: 1},
		{IDTipoCliente: 2},
		{IDTipoCliente: 3},
	})
}

func TestClassifyLocality(t *testing.T) {
	tests := []struct {
		name string
		raw  *string
		want int
	}{
		{name: "nil", raw: nil, want: LocalityOther},
		{name: "blank", raw: sptr("   "), want: LocalityOther},
		{name: "parana prefix", raw: sptr("Paraná Centro"), want: LocalityParana},
		{name: "parana plain", raw: sptr("PARANA"), want: LocalityParana},
		{name: "parana misspelled", raw: sptr("BARRIO PARNA"), want: LocalityParana},
		{name: "santa fe mixed case", raw: sptr("Santa fe Oeste"), want: LocalitySantaFe},
		{name: "santa fe prefix", raw: sptr("SANTO TOME"), want: LocalitySantaFe},
		{name: "santa fe abbreviated", raw: sptr("VILLA STA FE"), want: LocalitySantaFe},
		{name: "unmatched", raw: sptr("Rosario"), want: LocalityOther},
		{name: "first match wins on overlap", raw: sptr("PARANA Y SANTA FE"), want: LocalityParana},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyLocality(tt.raw); got != tt.want {
				t.Errorf("classifyLocality(%v) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCustomersTypeFallback(t *testing.T) {
	rows := []source.CustomerRow{
		{NroCuenta: 1000, Nombre: sptr("A"), TipoCliente: nil},
		{NroCuenta: 1001, Nombre: sptr("B"), TipoCliente: iptr(0)},
		{NroCuenta: 1002, Nombre: sptr("C"), TipoCliente: iptr(99)},
		{NroCuenta: 1003, Nombre: sptr("D"), TipoCliente: iptr(2)},
	}

	got, err := Customers(rows, testCustomerTypes())
	if err != nil {
		t.Fatalf("Customers failed: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("Expected 4 customers, got %d", len(got))
	}

	wantTypes := []int{1, 1, 1, 2}
	for i, c := range got {
		if c.TypeID != wantTypes[i] {
			t.Errorf("Customer %d type = %d, want %d", c.Account, c.TypeID, wantTypes[i])
		}
		if c.LocalityID < 1 || c.LocalityID > 3 {
			t.Errorf("Customer %d locality = %d, out of range", c.Account, c.LocalityID)
		}
	}
}

func TestCustomersAdministrativeRowsDropped(t *testing.T) {
	rows := []source.CustomerRow{
		{NroCuenta: 1, Nombre: sptr("real looking name")},
		{NroCuenta: 9999, Nombre: sptr("another")},
		{NroCuenta: 2000, Nombre: sptr("NO USAR")},
		{NroCuenta: 2001, Nombre: sptr("AJUSTES DE STOCK")},
		{NroCuenta: 2002, Nombre: sptr("KEPT")},
	}

	got, err := Customers(rows, testCustomerTypes())
	if err != nil {
		t.Fatalf("Customers failed: %v", err)
	}
	if len(got) != 1 || got[0].Account != 2002 {
		t.Fatalf("Expected only account 2002, got %+v", got)
	}
}

func TestCustomersMissingFallbackType(t *testing.T) {
	// A cleaned type dimension without CUENTA CORRIENTE is a misconfiguration.
	types := []CustomerType{{ID: 5, Label: UnknownTypeLabel}}

	_, err := Customers([]source.CustomerRow{{NroCuenta: 1000, Nombre: sptr("A")}}, types)
	if err == nil {
		t.Fatal("Expected error for missing CUENTA CORRIENTE type, got nil")
	}
}
