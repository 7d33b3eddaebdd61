package clean

import (
	"sort"
	"strings"

	"github.com/elprofesional/dw-etl/internal/logging"
	"github.com/elprofesional/dw-etl/internal/source"
)

// CreditNoteLabel marks vendor rows the operational system uses for credit
// notes; they are not real vendors.
const CreditNoteLabel = "NOTA DE CREDITO"

// Vendors builds the vendor dimension: rows with blank or placeholder names
// or without a usable code are dropped, exact duplicates are removed, and the
// result is sorted by code.
func Vendors(rows []source.VendorRow) []Vendor {
	seen := make(map[Vendor]struct{}, len(rows))
	out := make([]Vendor, 0, len(rows))
	dropped := 0
	for _, r := range rows {
		name := strings.TrimSpace(strOrEmpty(r.Nombre))
		if name == "" || name == CreditNoteLabel {
			dropped++
			continue
		}
		code := intOrZero(r.IDVendedor)
		if code == 0 {
			dropped++
			continue
		}

		v := Vendor{Code: code, Name: name}
		if _, dup := seen[v]; dup {
			dropped++
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })

	logging.Debug().
		Int("in", len(rows)).
		Int("out", len(out)).
		Int("dropped", dropped).
		Msg("Cleaned vendor dimension")

	return out
}
