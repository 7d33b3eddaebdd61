package clean

import (
	"testing"

	"github.com/elprofesional/dw-etl/internal/source"
)

func TestCustomerTypesFixedMapping(t *testing.T) {
	rows := []source.CustomerTypeRow{
		{IDTipoCliente: 3, Descripcion: sptr("tarjeta de credito")},
		{IDTipoCliente: 1, Descripcion: sptr("cta cte")},
		{IDTipoCliente: 2, Descripcion: nil},
	}

	got := CustomerTypes(rows)
	want := []CustomerType{
		{ID: 1, Label: "CUENTA CORRIENTE"},
		{ID: 2, Label: "CONTADO"},
		{ID: 3, Label: "TARJETA"},
	}

	if len(got) != len(want) {
		t.Fatalf("Expected %d types, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Type %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestCustomerTypesUnknownKept(t *testing.T) {
	rows := []source.CustomerTypeRow{
		{IDTipoCliente: 1, Descripcion: sptr("cta cte")},
		{IDTipoCliente: 7, Descripcion: sptr("convenio")},
	}

	got := CustomerTypes(rows)
	if len(got) != 2 {
		t.Fatalf("Expected 2 types, got %d", len(got))
	}
	if got[1].ID != 7 || got[1].Label != UnknownTypeLabel {
		t.Errorf("Expected id 7 labeled %q, got %+v", UnknownTypeLabel, got[1])
	}
}

func TestCustomerTypesDeduplicated(t *testing.T) {
	rows := []source.CustomerTypeRow{
		{IDTipoCliente: 2},
		{IDTipoCliente: 2},
	}

	got := CustomerTypes(rows)
	if len(got) != 1 {
		t.Fatalf("Expected 1 type, got %d", len(got))
	}
}
