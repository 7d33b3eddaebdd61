package clean

import (
	"fmt"
	"sort"
	"strings"

	"github.com/elprofesional/dw-etl/internal/logging"
	"github.com/elprofesional/dw-etl/internal/source"
)

// Known spellings of the two named localities as the operators type them,
// accents and misspellings included.
var (
	paranaSpellings  = []string{"PARANA", "PARANÁ", "PARNA"}
	santaFeSpellings = []string{"SANTA FE", "STA FE", "STA. FE"}
)

// Administrative placeholder rows in Clientes that are not real customers.
var (
	excludedAccounts      = map[int]struct{}{1: {}, 9999: {}}
	excludedCustomerNames = map[string]struct{}{"NO USAR": {}, "AJUSTES DE STOCK": {}}
)

// classifyLocality maps raw locality text to a locality id. The predicates
// run in a fixed order and the first match wins: blank text is Other, then
// Paraná, then Santa Fe, then the catch-all. A text that would match both
// named localities therefore classifies as Paraná.
func classifyLocality(raw *string) int {
	if raw == nil {
		return LocalityOther
	}
	s := strings.ToUpper(strings.TrimSpace(*raw))
	if s == "" {
		return LocalityOther
	}
	if strings.HasPrefix(s, "PA") || containsAny(s, paranaSpellings) {
		return LocalityParana
	}
	if strings.HasPrefix(s, "SANT") || containsAny(s, santaFeSpellings) {
		return LocalitySantaFe
	}
	return LocalityOther
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Customers builds the customer dimension. Locality is classified from the
// free-text Localidad column; the customer type falls back to the
// CUENTA CORRIENTE id when null, zero or unresolvable. The fallback id must
// exist in the cleaned customer-type dimension or the run aborts.
func Customers(rows []source.CustomerRow, types []CustomerType) ([]Customer, error) {
	fallbackType := 0
	typeIDs := make(map[int]struct{}, len(types))
	for _, t := range types {
		typeIDs[t.ID] = struct{}{}
		if t.Label == CurrentAccountLabel {
			fallbackType = t.ID
		}
	}
	if fallbackType == 0 {
		return nil, fmt.Errorf("customer type %q not present in cleaned customer-type dimension", CurrentAccountLabel)
	}

	out := make([]Customer, 0, len(rows))
	dropped := 0
	for _, r := range rows {
		if _, ok := excludedAccounts[r.NroCuenta]; ok {
			dropped++
			continue
		}
		name := strOrEmpty(r.Nombre)
		if _, ok := excludedCustomerNames[name]; ok {
			dropped++
			continue
		}

		out = append(out, Customer{
			Account:    r.NroCuenta,
			Name:       name,
			TypeID:     resolveOrDefault(intOrZero(r.TipoCliente), typeIDs, fallbackType),
			LocalityID: classifyLocality(r.Localidad),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Account < out[j].Account })

	logging.Debug().
		Int("in", len(rows)).
		Int("out", len(out)).
		Int("dropped", dropped).
		Msg("Cleaned customer dimension")

	return out, nil
}
