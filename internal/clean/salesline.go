package clean

import (
	"fmt"

	"github.com/elprofesional/dw-etl/internal/logging"
	"github.com/elprofesional/dw-etl/internal/source"
)

// OtherArticleName is the label of the sentinel article unresolved line
// references redirect to.
const OtherArticleName = "OTHER"

// Lines cleans the ItemVentas table against the cleaned sales headers and
// the cleaned article dimension. Lines of dropped orders are discarded,
// unresolvable article references redirect to the OTHER article, and rows
// violating the numeric sign constraints are dropped.
func Lines(rows []source.SalesLineRow, orders []Order, articles []Article) ([]Line, error) {
	orderNumbers := make(map[int]struct{}, len(orders))
	for _, o := range orders {
		orderNumbers[o.Number] = struct{}{}
	}

	otherID := 0
	articleIDs := make(map[int]struct{}, len(articles))
	for _, a := range articles {
		articleIDs[a.ID] = struct{}{}
		if a.Name == OtherArticleName {
			otherID = a.ID
		}
	}
	if otherID == 0 {
		return nil, fmt.Errorf("article %q not present in cleaned article dimension", OtherArticleName)
	}

	out := make([]Line, 0, len(rows))
	dropped := 0
	for _, r := range rows {
		if _, ok := orderNumbers[r.NroOrden]; !ok {
			dropped++
			continue
		}

		code := intOrZero(r.Codigo)
		if code <= 0 {
			code = OtherArticleCode
		}
		sub := intOrZero(r.Subcodigo)
		if sub < 0 {
			sub = 0
		}
		articleID := resolveOrDefault(articleKey(code, sub), articleIDs, otherID)

		if r.Cantidad == nil || *r.Cantidad <= 0 ||
			r.PrecioUnitario == nil || *r.PrecioUnitario < 0 ||
			r.PrecioUnitarioIVA == nil || *r.PrecioUnitarioIVA < 0 ||
			r.Importe == nil || *r.Importe <= 0 {
			dropped++
			continue
		}

		out = append(out, Line{
			OrderNumber:      r.NroOrden,
			ArticleID:        articleID,
			Quantity:         *r.Cantidad,
			UnitPrice:        *r.PrecioUnitario,
			UnitPriceWithTax: *r.PrecioUnitarioIVA,
			Total:            *r.Importe,
		})
	}

	logging.Debug().
		Int("in", len(rows)).
		Int("out", len(out)).
		Int("dropped", dropped).
		Msg("Cleaned sale lines")

	return out, nil
}
