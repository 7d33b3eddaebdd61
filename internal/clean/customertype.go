package clean

import (
	"sort"

	"github.com/elprofesional/dw-etl/internal/logging"
	"github.com/elprofesional/dw-etl/internal/source"
)

// Labels of the customer-type dimension. CurrentAccountLabel doubles as the
// fallback target for customers with no resolvable type.
const (
	CurrentAccountLabel = "CUENTA CORRIENTE"
	UnknownTypeLabel    = "UNKNOWN"
)

// customerTypeLabels is the fixed business mapping for the known type ids.
var customerTypeLabels = map[int]string{
	1: CurrentAccountLabel,
	2: "CONTADO",
	3: "TARJETA",
}

// CustomerTypes builds the customer-type dimension. Known ids get their fixed
// label; any other observed id is kept and labeled UNKNOWN rather than
// dropped, so sales referencing it still resolve.
func CustomerTypes(rows []source.CustomerTypeRow) []CustomerType {
	seen := make(map[int]struct{}, len(rows))
	out := make([]CustomerType, 0, len(rows))
	for _, r := range rows {
		if _, ok := seen[r.IDTipoCliente]; ok {
			continue
		}
		seen[r.IDTipoCliente] = struct{}{}

		label, ok := customerTypeLabels[r.IDTipoCliente]
		if !ok {
			label = UnknownTypeLabel
		}
		out = append(out, CustomerType{ID: r.IDTipoCliente, Label: label})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	logging.Debug().
		Int("in", len(rows)).
		Int("out", len(out)).
		Msg("Cleaned customer-type dimension")

	return out
}
