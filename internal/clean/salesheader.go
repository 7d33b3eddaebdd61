package clean

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/elprofesional/dw-etl/internal/logging"
	"github.com/elprofesional/dw-etl/internal/source"
)

// Well-known sentinel rows the sales-header cleaner redirects to. Both must
// exist in the already-cleaned dimensions; their absence is a fatal data
// inconsistency, not something to paper over.
const (
	AllVendorsName    = "TODOS"
	FinalConsumerName = "CONSUMIDOR FINAL"
)

// InvoicePrefix marks the document codes that count as sales; everything
// else (remitos, credit notes) is excluded.
const InvoicePrefix = "F"

// timestampLayout is the only accepted format for the reconstructed sale
// instant. A mismatch aborts the run: it signals a data-quality incident.
const timestampLayout = "2006-01-02 15:04:05"

// cancelPattern matches customer names the operators use to void a sale.
// Case-sensitive prefix match, spaced-letter variant included.
var cancelPattern = regexp.MustCompile(`^(CANCELADO|CANCELADA|ANULADO|ANULADA|A N U L A D A)`)

// Orders cleans the CabVentas table against the cleaned vendor and customer
// dimensions. Rows missing required fields, with non-invoice document codes,
// duplicate timestamps, or non-positive totals are dropped; unresolvable
// vendor and account references fall back to the TODOS vendor and the
// CONSUMIDOR FINAL customer.
func Orders(rows []source.SalesHeaderRow, vendors []Vendor, customers []Customer) ([]Order, error) {
	allVendors := 0
	vendorCodes := make(map[int]struct{}, len(vendors))
	for _, v := range vendors {
		vendorCodes[v.Code] = struct{}{}
		if v.Name == AllVendorsName {
			allVendors = v.Code
		}
	}
	if allVendors == 0 {
		return nil, fmt.Errorf("vendor %q not present in cleaned vendor dimension", AllVendorsName)
	}

	finalConsumer := 0
	accounts := make(map[int]struct{}, len(customers))
	for _, c := range customers {
		accounts[c.Account] = struct{}{}
		if c.Name == FinalConsumerName {
			finalConsumer = c.Account
		}
	}
	if finalConsumer == 0 {
		return nil, fmt.Errorf("customer %q not present in cleaned customer dimension", FinalConsumerName)
	}

	seen := make(map[time.Time]struct{}, len(rows))
	out := make([]Order, 0, len(rows))
	dropped := 0
	for _, r := range rows {
		if r.Comprobante == nil || r.Fecha == nil || r.Hora == nil || r.ImporteTotal == nil {
			dropped++
			continue
		}
		doc := *r.Comprobante
		if !strings.HasPrefix(doc, InvoicePrefix) {
			dropped++
			continue
		}

		ts, err := time.Parse(timestampLayout, *r.Fecha+" "+*r.Hora)
		if err != nil {
			return nil, fmt.Errorf("order %d: malformed sale timestamp %q %q: %w",
				r.NroOrden, *r.Fecha, *r.Hora, err)
		}
		if _, dup := seen[ts]; dup {
			dropped++
			continue
		}
		seen[ts] = struct{}{}

		vendor := resolveOrDefault(parseCode(r.IDVendedor), vendorCodes, allVendors)
		account := resolveOrDefault(parseCode(r.NroCuenta), accounts, finalConsumer)

		name := strings.TrimSpace(strOrEmpty(r.Nombre))
		if name == "" {
			name = FinalConsumerName
		}
		if cancelPattern.MatchString(name) {
			name = FinalConsumerName
		}
		// Applied last: the sentinel account always reads as final consumer.
		if account == finalConsumer {
			name = FinalConsumerName
		}

		if *r.ImporteTotal <= 0 {
			dropped++
			continue
		}

		out = append(out, Order{
			Number:       r.NroOrden,
			DocumentCode: doc,
			VendorCode:   vendor,
			Timestamp:    ts,
			Account:      account,
			CustomerName: name,
			Total:        *r.ImporteTotal,
		})
	}

	logging.Debug().
		Int("in", len(rows)).
		Int("out", len(out)).
		Int("dropped", dropped).
		Msg("Cleaned sales headers")

	return out, nil
}

// parseCode reads the text-typed vendor and account columns of CabVentas.
// Null, blank, space-only or unparsable values read as 0, which the sentinel
// fallback then redirects.
func parseCode(raw *string) int {
	if raw == nil {
		return 0
	}
	s := strings.TrimSpace(*raw)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
