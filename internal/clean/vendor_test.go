package clean

import (
	"testing"

	"github.com/elprofesional/dw-etl/internal/source"
)

func TestVendorsFiltering(t *testing.T) {
	rows := []source.VendorRow{
		{IDVendedor: iptr(10), Nombre: sptr("PEREZ")},
		{IDVendedor: iptr(11), Nombre: nil},
		{IDVendedor: iptr(12), Nombre: sptr("  ")},
		{IDVendedor: iptr(13), Nombre: sptr("NOTA DE CREDITO")},
		{IDVendedor: nil, Nombre: sptr("SIN CODIGO")},
		{IDVendedor: iptr(0), Nombre: sptr("CODIGO CERO")},
	}

	got := Vendors(rows)
	if len(got) != 1 {
		t.Fatalf("Expected 1 vendor, got %d: %+v", len(got), got)
	}
	if got[0].Code != 10 || got[0].Name != "PEREZ" {
		t.Errorf("Unexpected vendor %+v", got[0])
	}
}

func TestVendorsDeduplicatedAndSorted(t *testing.T) {
	rows := []source.VendorRow{
		{IDVendedor: iptr(20), Nombre: sptr("GOMEZ")},
		{IDVendedor: iptr(5), Nombre: sptr("TODOS")},
		{IDVendedor: iptr(20), Nombre: sptr("GOMEZ")},
	}

	got := Vendors(rows)
	if len(got) != 2 {
		t.Fatalf("Expected 2 vendors, got %d", len(got))
	}
	if got[0].Code != 5 || got[1].Code != 20 {
		t.Errorf("Rows not sorted by code: %+v", got)
	}
}
